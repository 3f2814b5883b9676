package main

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	rosterPath string
	logLevel   string
	logFormat  string

	logger *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "knockoutsim",
		Short:        "Simulate a group phase and knockout tournament",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.rosterPath, "roster", "r", "groups.yaml", "roster file with the groups (YAML or JSON)")
	flags.StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(
		newSimulateCmd(opts),
		newOddsCmd(opts),
		newValidateCmd(opts),
	)

	return cmd
}

func newLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return logger, nil
}

// Seed 0 picks a seed from the clock
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
