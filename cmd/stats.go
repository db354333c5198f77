package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nsxbet/datadict/pkg/reviewer"
	"github.com/nsxbet/datadict/pkg/sensitivity"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics about the data dictionary",
	Long: `Show table and column counts, the data type and sensitivity
distributions, business-rule categories and the compliance summary.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	r, err := newReviewer(s)
	if err != nil {
		return err
	}

	result := r.Analyze()
	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, s.Output, result); ok {
		return err
	}
	printStats(out, result)
	return nil
}

func printStats(w io.Writer, result *reviewer.AnalysisResult) {
	report := result.Report
	stats := report.GeneralStatistics

	fmt.Fprintln(w, titleStyle.Render("General statistics"))
	t := newTable(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Tables", stats.TableCount},
		{"Columns", stats.ColumnCount},
		{"Avg columns per table", fmt.Sprintf("%.2f", stats.AvgColumnsPerTable)},
		{"Min columns per table", stats.MinColumnsPerTable},
		{"Max columns per table", stats.MaxColumnsPerTable},
		{"Primary keys", stats.PrimaryKeyCount},
		{"Nullable columns", stats.NullableCount},
		{"Non-nullable columns", stats.NonNullableCount},
	})
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Data types"))
	t = newTable(w)
	t.AppendHeader(table.Row{"Type", "Columns"})
	for _, tc := range report.DataTypeDistribution {
		t.AppendRow(table.Row{tc.Type, tc.Count})
	}
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Sensitivity"))
	dist := report.SensitivityDistribution
	labels := make([]string, 0, len(dist.Distribution))
	for label := range dist.Distribution {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	t = newTable(w)
	t.AppendHeader(table.Row{"Level", "Columns", "Percent"})
	for _, label := range labels {
		t.AppendRow(table.Row{label, dist.Distribution[label], fmt.Sprintf("%.2f%%", dist.Percentages[label])})
	}
	t.AppendFooter(table.Row{"Requires protection", dist.RequiresProtectionCount, ""})
	t.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Business rules"))
	rules := report.BusinessRules
	t = newTable(w)
	t.AppendHeader(table.Row{"Category", "Columns"})
	t.AppendRows([]table.Row{
		{"Required", rules.RequiredCount},
		{"Unique", rules.UniqueCount},
		{"Auto-generated", rules.AutoGeneratedCount},
	})
	t.Render()

	fmt.Fprintln(w)
	compliance := result.Compliance
	status := okStyle.Render(compliance.Status)
	if compliance.Status == sensitivity.StatusRequiresAttention {
		status = warnStyle.Render(compliance.Status)
	}
	fmt.Fprintf(w, "Compliance: %s (%d of %d columns are high sensitivity)\n",
		status, compliance.SensitiveColumnCount, compliance.TotalColumns)
}
