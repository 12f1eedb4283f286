// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package cmd implements seedctl commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/siderolabs/go-pointer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/siderolabs/go-seeder/internal/pkg/logging"
	"github.com/siderolabs/go-seeder/pkg/seeder"
	"github.com/siderolabs/go-seeder/pkg/seeder/config"
)

// Common options set on root command.
var rootCmdFlags struct {
	configPath string
	context    string
	mode       string
	debug      bool

	deterministic bool
	rdseed        bool
	secureService bool
	deviceFile    bool
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "seedctl",
	Short:         "Obtain 128-bit seeds from the best entropy source of this host",
	Long:          ``,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
	}

	return err
}

func init() {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&rootCmdFlags.configPath, "config", "", "path to the seeder configuration file")
	flags.StringVar(&rootCmdFlags.context, "context", "", "context of the deterministic source")
	flags.StringVar(&rootCmdFlags.mode, "mode", "", "error reporting mode (library or embedded)")
	flags.BoolVar(&rootCmdFlags.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&rootCmdFlags.deterministic, "deterministic", false, "enable the deterministic source")
	flags.BoolVar(&rootCmdFlags.rdseed, "rdseed", true, "enable the rdseed source")
	flags.BoolVar(&rootCmdFlags.secureService, "secure-service", true, "enable the platform secure random service source")
	flags.BoolVar(&rootCmdFlags.deviceFile, "device-file", true, "enable the device file source")
}

// loadConfig merges the configuration file, the environment and the command line flags, flags win.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(rootCmdFlags.configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("mode") {
		cfg.Mode = rootCmdFlags.mode
	}

	if flags.Changed("context") {
		cfg.Context = pointer.To(rootCmdFlags.context)
		cfg.Features.Deterministic = true
	}

	if flags.Changed("deterministic") {
		cfg.Features.Deterministic = rootCmdFlags.deterministic
	}

	if flags.Changed("rdseed") {
		cfg.Features.RDSEED = rootCmdFlags.rdseed
	}

	if flags.Changed("secure-service") {
		cfg.Features.SecureService = rootCmdFlags.secureService
	}

	if flags.Changed("device-file") {
		cfg.Features.DeviceFile = rootCmdFlags.deviceFile
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger() *zap.Logger {
	return logging.CommandLogger(os.Stderr, "seedctl", rootCmdFlags.debug)
}

// withSeederOptions wraps common code to build the logger and seeder options.
func withSeederOptions(cmd *cobra.Command, action func(logger *zap.Logger, opts []seeder.Option) error) error {
	logger := newLogger()

	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	opts, err := cfg.Options(seeder.DefaultContext())
	if err != nil {
		return err
	}

	opts = append(opts,
		seeder.WithLogger(logger),
		seeder.WithContext(cmd.Context()),
	)

	return action(logger, opts)
}
