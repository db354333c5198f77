package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nsxbet/datadict/pkg/quality"
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Score how well the dictionary is documented",
	Args:  cobra.NoArgs,
	RunE:  runQuality,
}

func init() {
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, _ []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	r, err := newReviewer(s)
	if err != nil {
		return err
	}

	report := r.Quality()
	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, s.Output, report); ok {
		return err
	}
	printQuality(out, report)
	return nil
}

func printQuality(w io.Writer, report quality.Report) {
	score := string(report.QualityScore)
	switch report.QualityScore {
	case quality.ScoreExcellent:
		score = okStyle.Render(score)
	case quality.ScoreGood:
		score = warnStyle.Render(score)
	default:
		score = errorStyle.Render(score)
	}

	fmt.Fprintf(w, "Quality: %s\n", score)
	fmt.Fprintf(w, "Completeness: avg %.2f%%, min %.2f%%, max %.2f%%, stdev %.2f\n",
		report.AverageCompleteness, report.MinCompleteness, report.MaxCompleteness, report.StdDeviation)
	if len(report.ColumnsNeedingImprovement) > 0 {
		fmt.Fprintln(w, "Columns needing improvement:")
		for _, name := range report.ColumnsNeedingImprovement {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}
}
