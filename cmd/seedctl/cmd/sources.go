// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package cmd

import (
	"fmt"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/siderolabs/go-seeder/internal/pkg/rng"
	"github.com/siderolabs/go-seeder/pkg/seeder"
	"github.com/siderolabs/go-seeder/pkg/seeder/config"
)

// sourcesCmd represents the sources command.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List entropy sources with their priority and availability",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		defer logger.Sync() //nolint:errcheck

		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		return printSources(cmd, logger, cfg)
	},
}

func printSources(cmd *cobra.Command, logger *zap.Logger, cfg *config.Config) error {
	descs := seeder.DefaultDescriptors(seeder.SourceConfig{
		Logger:     logger,
		DevicePath: cfg.DevicePath,
	})

	features := cfg.SeederFeatures()
	target := seeder.CurrentTarget()

	s := []string{"SOURCE | PRIORITY | TARGET | ENABLED | AVAILABLE"}

	for _, desc := range descs {
		available := "-"

		// only sources of the running target are probed
		if desc.Target == target {
			available = strconv.FormatBool(desc.Probe())
		}

		s = append(s, fmt.Sprintf("%s | %d | %s | %t | %s", desc.Name, desc.Priority, desc.Target, features.Enabled(desc.Feature), available))
	}

	fmt.Fprintln(cmd.OutOrStdout(), columnize.SimpleFormat(s))

	if stats, err := rng.ReadPoolStats(); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\nkernel entropy pool: %d/%d bits available (%s)\n",
			stats.Available, stats.Size, humanize.IBytes(stats.Size/8))
	} else {
		logger.Debug("kernel pool statistics unavailable", zap.Error(err))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
