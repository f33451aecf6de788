package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookscan/config"
	"github.com/katalvlaran/bookscan/hashcode"
	"github.com/katalvlaran/bookscan/scoring"
)

func newScoreCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "score <instance> <submission>",
		Short: "Validate a submission and print its score",
		Long: `Parses the instance and the submission, checks the submission against
the instance and prints its score. The persistent --log-level and --log-json
flags apply on top of the default log settings.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := g.logger(cmd, config.Default())
			if err != nil {
				return err
			}

			in, err := hashcode.ParseFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("instance loaded", "path", args[0],
				"days", in.Days(), "books", in.NumBooks(), "libraries", in.NumLibraries())

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open submission: %w", err)
			}
			defer f.Close()

			sol, err := hashcode.ParseSubmission(f, in)
			if err != nil {
				logger.Error("submission rejected", "path", args[1], "error", err)
				return fmt.Errorf("%s: %w", args[1], err)
			}
			ev := scoring.Evaluate(in, sol)
			logger.Info("submission scored", "path", args[1], "score", ev.Score, "signups", len(ev.Signups))
			fmt.Fprintf(g.stdout, "score=%d max=%d signups=%d scanned=%d\n",
				ev.Score, in.MaxScore(), len(ev.Signups), ev.Scanned())

			return nil
		},
	}
}
