package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
)

// Markdown writes page as a Markdown document with one table per section.
func Markdown(w io.Writer, page *Page) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", page.Title)
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- **Tables:** %d\n", page.Summary.TotalTables)
	fmt.Fprintf(&b, "- **Columns:** %d\n", page.Summary.TotalColumns)
	fmt.Fprintf(&b, "- **High sensitivity columns:** %d\n", page.Summary.HighSensitivityColumns)
	fmt.Fprintf(&b, "- **Primary keys:** %d\n\n", page.Summary.PrimaryKeys)

	for _, section := range page.Tables {
		fmt.Fprintf(&b, "## Table: %s\n\n", section.Name)

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Column", "Type", "Description", "Domain", "Business rule", "Sensitivity", "PK", "Nullable"})
		for _, col := range section.Columns {
			t.AppendRow(table.Row{
				col.Column,
				col.Type,
				col.Description,
				col.Domain,
				col.BusinessRule,
				col.Sensitivity.String(),
				yesNo(col.IsPrimaryKey),
				yesNo(col.IsNullable),
			})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "---\n\n*Generated at %s*\n", timestamp(page.GeneratedAt))

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write Markdown")
}
