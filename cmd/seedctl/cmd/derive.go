// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siderolabs/go-seeder/pkg/seeder"
)

// deriveCmd represents the derive command.
var deriveCmd = &cobra.Command{
	Use:   "derive [<context>]",
	Short: "Print the deterministic seed of a context",
	Long: `Derive computes the seed of the deterministic source without selecting a source.

Without arguments the default context literal is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := seeder.NewSharedContext()

		if len(args) > 0 {
			store.Set(args[0])
		}

		s, err := seeder.NewDeterministicSeeder(store).Seed()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), s)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deriveCmd)
}
