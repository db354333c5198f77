package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nsxbet/datadict/pkg/analytics"
)

var tableCmd = &cobra.Command{
	Use:   "table <name>",
	Short: "Show the details of one table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	s, err := settings()
	if err != nil {
		return err
	}
	r, err := newReviewer(s)
	if err != nil {
		return err
	}

	result := r.TableDetail(args[0])
	out := cmd.OutOrStdout()
	if ok, err := writeStructured(out, s.Output, result); ok {
		if err != nil {
			return err
		}
	} else if result.Found() {
		printTableDetail(out, result.Detail)
	}

	if !result.Found() {
		return errors.New(result.NotFound.Message)
	}
	return nil
}

func printTableDetail(w io.Writer, detail *analytics.TableDetail) {
	fmt.Fprintln(w, titleStyle.Render("Table "+detail.TableName))

	t := newTable(w)
	t.AppendHeader(table.Row{"Column", "Type", "Sensitivity", "PK", "Nullable", "Description"})
	for _, col := range detail.Columns {
		t.AppendRow(table.Row{col.Column, col.Type, col.Sensitivity, yesNo(col.IsPrimaryKey), yesNo(col.IsNullable), col.Description})
	}
	t.AppendFooter(table.Row{"Columns", detail.ColumnCount, "", "", "", ""})
	t.Render()

	fmt.Fprintf(w, "Primary keys: %v\n", detail.PrimaryKeys)
	if len(detail.HighSensitivityColumns) > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("High sensitivity: %v", detail.HighSensitivityColumns)))
	}
}
