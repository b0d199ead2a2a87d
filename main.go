package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/toaster/internal/config"
	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/logging"
	"github.com/llehouerou/toaster/internal/notify"
	"github.com/llehouerou/toaster/internal/toast"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	logLevel   string
	dev        bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "toaster",
		Short: "Toast notifications for the terminal",
		Long: `Toaster keeps a queue of toast notifications: short messages that
appear at a screen position, close after a while and are removed once
their exit animation has finished.

  demo   interactive full-screen demo
  pipe   read toasts from stdin, one per line`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file (default: XDG config, then ./config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flags.dev, "log-dev", false, "human-readable log encoding")

	rootCmd.AddCommand(
		demoCmd(&flags),
		pipeCmd(&flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// setup loads the config and builds the logger and queue options.
func setup(flags *globalFlags) (*config.Config, *zap.Logger, []toast.Option, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configFile != "" {
		cfg, err = config.LoadFiles(flags.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, nil, nil, errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}
	log, err := logging.New(logging.Options{Path: logPath, Level: cfg.Log.Level, Dev: flags.dev})
	if err != nil {
		return nil, nil, nil, errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}

	opts, err := cfg.ToastOptions()
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, errors.New(errmsg.Format(errmsg.OpQueueConfig, err))
	}
	opts = append(opts, toast.WithLogger(log))

	return cfg, log, opts, nil
}

// desktopMirror connects to the notification daemon when enabled. A nil
// mirror with a nil error means mirroring is off.
func desktopMirror(cfg *config.Config, log *zap.Logger) (*notify.Mirror, error) {
	if !cfg.Notify.Desktop {
		return nil, nil
	}
	n, err := notify.New()
	if err != nil {
		return nil, err
	}
	log.Info("desktop notifications enabled")
	return notify.NewMirror(n, log), nil
}
