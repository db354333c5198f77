package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/datadict/pkg/config"
	"github.com/nsxbet/datadict/pkg/sample"
	"github.com/nsxbet/datadict/pkg/types"
	"github.com/nsxbet/datadict/pkg/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags]",
	Short: "Validate data rows against the dictionary",
	Long: `Validate a YAML or JSON list of rows against the column definitions
of one table.

Each field is checked for primary-key nulls, nullability and type. Fields not
defined for the table produce warnings. Without --rows and --dictionary the
embedded sample rows are validated.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("table", "t", "", "table the rows belong to (default: the only table of the dictionary)")
	validateCmd.Flags().StringP("rows", "r", "", "path to the rows file (YAML or JSON)")
	validateCmd.Flags().Bool("fail-on-error", false, "exit with non-zero code if errors are found")
	validateCmd.Flags().Bool("fail-on-warning", false, "exit with non-zero code if warnings are found")

	_ = viper.BindPFlag("table", validateCmd.Flags().Lookup("table"))
	_ = viper.BindPFlag("rows", validateCmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("fail-on-error", validateCmd.Flags().Lookup("fail-on-error"))
	_ = viper.BindPFlag("fail-on-warning", validateCmd.Flags().Lookup("fail-on-warning"))
}

func runValidate(cmd *cobra.Command, _ []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	r, err := newReviewer(s)
	if err != nil {
		return err
	}

	rows, err := loadRows(s)
	if err != nil {
		return err
	}

	tableName := s.Table
	if tableName == "" {
		names := r.Engine().TableNames()
		if len(names) != 1 {
			return errors.Errorf("--table is required when the dictionary has %d tables", len(names))
		}
		tableName = names[0]
	}

	report, err := r.ValidateRows(cmd.Context(), tableName, rows)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, s.Output, report); ok {
		if err != nil {
			return err
		}
	} else {
		printValidation(out, report)
	}

	if report.HasErrors() && s.FailOnError {
		return errFindings
	}
	if report.HasWarnings() && s.FailOnWarning {
		return errFindings
	}
	return nil
}

func loadRows(s *config.Settings) ([]types.DataRow, error) {
	if s.Rows != "" {
		return config.LoadRows(s.Rows)
	}
	if s.Dictionary == "" {
		slog.Info("No rows given, using the embedded sample rows")
		return sample.Rows(), nil
	}
	return nil, errors.New("--rows is required when --dictionary is given")
}

func printValidation(w io.Writer, report *validator.Report) {
	fmt.Fprintln(w, titleStyle.Render("Validation of "+report.Table))

	findings := append(append([]validator.RowFinding(nil), report.Errors...), report.Warnings...)
	if len(findings) > 0 {
		t := newTable(w)
		t.AppendHeader(table.Row{"Row", "Status", "Code", "Column", "Message"})
		for _, rf := range findings {
			status := warnStyle.Render(rf.Finding.Status.String())
			if rf.Finding.Status == validator.StatusError {
				status = errorStyle.Render(rf.Finding.Status.String())
			}
			t.AppendRow(table.Row{rf.Row, status, rf.Finding.Code, rf.Finding.Column, rf.Finding.Message})
		}
		t.Render()
	}

	summary := fmt.Sprintf("%d rows: %d valid, %d invalid (%s)",
		report.TotalRows, report.ValidRows, report.InvalidRows, report.SuccessRate)
	switch {
	case report.HasErrors():
		fmt.Fprintln(w, errorStyle.Render(summary))
	case report.HasWarnings():
		fmt.Fprintln(w, warnStyle.Render(summary))
	default:
		fmt.Fprintln(w, okStyle.Render(summary))
	}
	fmt.Fprintln(w, mutedStyle.Render("report "+report.ID))
}
