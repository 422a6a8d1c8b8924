package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/vshell/archive"
	"github.com/dendrascience/vshell/internal/config"
	"github.com/dendrascience/vshell/internal/logging"
	"github.com/dendrascience/vshell/vfs"
)

const (
	flagUser     = "user"
	flagHostname = "hostname"
	flagColor    = "color"
	flagTar      = "tar"
	flagRoot     = "root"
	flagFormat   = "format"
	flagLogLevel = "log-level"
	flagLogDev   = "log-dev"
)

func addLogFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(flagLogLevel, "warn", "Log level: debug, info, warn or error (env VSHELL_LOG_LEVEL)")
	cmd.PersistentFlags().Bool(flagLogDev, false, "Human readable log output (env VSHELL_LOG_DEVELOPMENT)")
}

func addArchiveFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagTar, "", "Path to the filesystem archive (env VSHELL_TAR)")
	cmd.Flags().String(flagRoot, vfs.DefaultRoot, "Root directory inside the archive (env VSHELL_ROOT)")
	cmd.Flags().String(flagFormat, archive.FormatAuto.String(), "Archive format: auto, tar, cpio or zip (env VSHELL_FORMAT)")
}

// resolveConfig loads the configuration from the environment and overrides
// it with every flag set on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	stringFlags := map[string]*string{
		flagUser:     &cfg.User,
		flagHostname: &cfg.Hostname,
		flagTar:      &cfg.Tar,
		flagRoot:     &cfg.Root,
		flagFormat:   &cfg.Format,
		flagLogLevel: &cfg.LogLevel,
	}

	for name, target := range stringFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			*target = flag.Value.String()
		}
	}

	boolFlags := map[string]*bool{
		flagColor:  &cfg.Color,
		flagLogDev: &cfg.LogDevelopment,
	}

	for name, target := range boolFlags {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			value, err := cmd.Flags().GetBool(name)
			if err != nil {
				return nil, err
			}

			*target = value
		}
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logCfg := logging.DefaultConfig()
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	logCfg.Development = cfg.LogDevelopment

	log, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	return log.Named("vshell"), nil
}

// loadStore loads the configured archive. Only the archive path is
// required.
func loadStore(cfg *config.Config, log *zap.Logger) (*vfs.Store, error) {
	if cfg.Tar == "" {
		return nil, fmt.Errorf("%w: %s", config.ErrMissingParameter, flagTar)
	}

	format, err := archive.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return archive.Load(cfg.Tar,
		archive.WithFormat(format),
		archive.WithLogger(log),
	)
}

// setup resolves the configuration and builds the logger. The returned
// function flushes the logger.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, log, func() { _ = log.Sync() }, nil
}
