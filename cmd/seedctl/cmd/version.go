// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siderolabs/go-seeder/internal/pkg/version"
	"github.com/siderolabs/go-seeder/pkg/seeder"
)

var versionCmdFlags struct {
	short bool
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionCmdFlags.short {
			fmt.Fprintln(cmd.OutOrStdout(), version.Short())

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Client:")

		return version.WriteLong(cmd.OutOrStdout(), version.New(seeder.CurrentTarget().String()))
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionCmdFlags.short, "short", false, "print the short version")

	rootCmd.AddCommand(versionCmd)
}
