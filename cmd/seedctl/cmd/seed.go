// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

var seedCmdFlags struct {
	count int
}

// seedCmd represents the seed command.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print seeds from the selected entropy source",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedCmdFlags.count < 1 {
			return fmt.Errorf("count should be positive, got %d", seedCmdFlags.count)
		}

		return withSeederOptions(cmd, func(logger *zap.Logger, opts []seeder.Option) error {
			handle, err := seeder.New(opts...)
			if err != nil {
				return err
			}

			for range seedCmdFlags.count {
				s, err := handle.Seed()
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", handle.Source(), s)
			}

			return nil
		})
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedCmdFlags.count, "count", "n", 1, "number of seeds to print")

	rootCmd.AddCommand(seedCmd)
}
