package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bookscan/hashcode"
	"github.com/katalvlaran/bookscan/solver"
)

func newCompareCmd(g *globals) *cobra.Command {
	var (
		algos   []string
		cfgPath string
	)
	defaults := make([]string, 0, len(solver.Algos()))
	for _, a := range solver.Algos() {
		defaults = append(defaults, a.String())
	}

	cmd := &cobra.Command{
		Use:   "compare <instance>",
		Short: "Run several strategies on one instance and print a score table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger, err := g.logger(cmd, cfg)
			if err != nil {
				return err
			}
			opts, err := cfg.SolverOptions()
			if err != nil {
				return err
			}
			opts.Logger = logger

			list := make([]solver.Algo, 0, len(algos))
			for _, name := range algos {
				a, err := solver.ParseAlgo(name)
				if err != nil {
					return err
				}
				list = append(list, a)
			}

			in, err := hashcode.ParseFile(args[0])
			if err != nil {
				return err
			}
			reps, err := solver.Compare(in, opts, list...)
			if err != nil {
				return err
			}

			return printReports(g.stdout, reps)
		},
	}
	cmd.Flags().StringSliceVar(&algos, "algos", defaults, "comma-separated strategies to run")
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML configuration file")

	return cmd
}

// Table palette, shared with the other terminal output of the tool.
var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
)

// printReports renders one row per report. Styles are bound to w, so colour
// is only emitted when w is a terminal that supports it. The best score is
// highlighted.
func printReports(w io.Writer, reps []solver.Report) error {
	r := lipgloss.NewRenderer(w)
	var (
		header = r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
		cell   = r.NewStyle().Padding(0, 1)
		best   = r.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
		muted  = r.NewStyle().Foreground(colorMuted).Padding(0, 1)
		top    int64
		i      int
	)
	for i = range reps {
		top = max(top, reps[i].Result.Score)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(colorBorder)).
		Headers("ALGORITHM", "SCORE", "SIGNUPS", "EVALUATIONS", "ELAPSED").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 1 && reps[row].Result.Score == top:
				return best
			case col == 4:
				return muted
			default:
				return cell
			}
		})
	for i = range reps {
		t.Row(
			reps[i].Algo.String(),
			strconv.FormatInt(reps[i].Result.Score, 10),
			strconv.Itoa(reps[i].Result.Solution.Len()),
			strconv.Itoa(reps[i].Result.Evaluations),
			reps[i].Elapsed.String(),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())

	return err
}
