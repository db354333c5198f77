package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/datadict/pkg/render"
	"github.com/nsxbet/datadict/pkg/reviewer"
)

var reportCmd = &cobra.Command{
	Use:   "report [flags]",
	Short: "Generate data dictionary documents",
	Long: `Write the data dictionary as CSV, HTML, JSON, Markdown and MySQL DDL into
an output directory, then print the dictionary analysis.

The generated DDL is parsed with the MySQL grammar before anything is written
unless --check-ddl=false is given.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("output-dir", "./data_dictionary_reports", "directory the documents are written to")
	reportCmd.Flags().StringSlice("formats", render.Formats, "document formats to write (csv, html, json, markdown, ddl)")
	reportCmd.Flags().Bool("check-ddl", true, "parse the generated DDL before writing")
	reportCmd.Flags().StringSlice("destinations", nil, "lineage destinations (default Data Warehouse, Analytics Platform)")

	_ = viper.BindPFlag("output-dir", reportCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("formats", reportCmd.Flags().Lookup("formats"))
	_ = viper.BindPFlag("check-ddl", reportCmd.Flags().Lookup("check-ddl"))
	_ = viper.BindPFlag("destinations", reportCmd.Flags().Lookup("destinations"))
}

type reportOutput struct {
	Files    map[string]string        `json:"files"    yaml:"files"`
	Analysis *reviewer.AnalysisResult `json:"analysis" yaml:"analysis"`
}

func runReport(cmd *cobra.Command, _ []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	r, err := newReviewer(s)
	if err != nil {
		return err
	}

	files, err := r.WriteDocuments(s.OutputDir, s.Formats)
	if err != nil {
		return err
	}

	result := r.Analyze()
	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, s.Output, reportOutput{Files: files, Analysis: result}); ok {
		return err
	}
	printReport(out, files, result)
	return nil
}

func printReport(w io.Writer, files map[string]string, result *reviewer.AnalysisResult) {
	fmt.Fprintln(w, titleStyle.Render("Documents"))
	formats := make([]string, 0, len(files))
	for format := range files {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	for _, format := range formats {
		fmt.Fprintf(w, "%s %-8s %s\n", okStyle.Render("✓"), format, files[format])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, result.String())
	if len(result.Lineage.Transformations) > 0 {
		fmt.Fprintln(w, mutedStyle.Render("Derived columns:"))
		for _, tr := range result.Lineage.Transformations {
			fmt.Fprintf(w, "  - %s\n", tr)
		}
	}
}
