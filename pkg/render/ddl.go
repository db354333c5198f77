package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/nsxbet/datadict/pkg/analytics"
	"github.com/nsxbet/datadict/pkg/types"
)

// fallbackType is used for columns whose type is blank.
const fallbackType = "TEXT"

// DDL writes one MySQL CREATE TABLE statement per table, sorted by name.
// Primary keys are declared as a table constraint so composite keys work.
func DDL(w io.Writer, columns []types.ColumnDefinition) error {
	engine := analytics.New(columns)

	var b strings.Builder
	for i, name := range engine.TableNames() {
		if i > 0 {
			b.WriteString("\n")
		}
		writeCreateTable(&b, name, engine.TableColumns(name))
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write DDL")
}

func writeCreateTable(b *strings.Builder, table string, columns []types.ColumnDefinition) {
	var lines, keys []string
	for _, col := range columns {
		lines = append(lines, "  "+columnClause(col))
		if col.IsPrimaryKey {
			keys = append(keys, quoteIdentifier(col.Column))
		}
	}
	if len(keys) > 0 {
		lines = append(lines, fmt.Sprintf("  PRIMARY KEY (%s)", strings.Join(keys, ", ")))
	}

	fmt.Fprintf(b, "-- Table: %s\n", strings.ReplaceAll(table, "\n", " "))
	fmt.Fprintf(b, "CREATE TABLE %s (\n", quoteIdentifier(table))
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n);\n")
}

func columnClause(col types.ColumnDefinition) string {
	typ := strings.TrimSpace(col.Type)
	if typ == "" {
		typ = fallbackType
	}

	clause := fmt.Sprintf("%s %s", quoteIdentifier(col.Column), typ)
	if !col.IsNullable {
		clause += " NOT NULL"
	}
	if desc := strings.TrimSpace(col.Description); desc != "" {
		clause += fmt.Sprintf(" COMMENT %s", quoteString(desc))
	}
	return clause
}

func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func quoteString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}
