package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookscan/config"
	"github.com/katalvlaran/bookscan/internal/logging"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	logLevel string
	logJSON  bool
	stdout   io.Writer
	stderr   io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "bookscan",
		Short:         "Plan library signups and book scans for the book scanning problem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config, else info)")
	root.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "emit JSON log records")

	root.AddCommand(newSolveCmd(g), newCompareCmd(g), newScoreCmd(g))

	return root
}

// loadConfig reads path, or returns the defaults when path is empty.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// logger builds the run logger: the config's log section, overridden by the
// persistent flags when they were set.
func (g *globals) logger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	lc := cfg.Log
	if cmd.Flags().Changed("log-level") {
		lc.Level = g.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		lc.JSON = g.logJSON
	}
	c, err := lc.Logging(g.stderr)
	if err != nil {
		return nil, err
	}

	return logging.New(c), nil
}
