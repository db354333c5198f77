// Package render writes data dictionaries and analysis reports as CSV, HTML,
// Markdown, JSON, YAML and MySQL DDL. It depends on the analysis packages but
// they never depend on it.
package render

import (
	"time"

	"github.com/nsxbet/datadict/pkg/analytics"
	"github.com/nsxbet/datadict/pkg/types"
)

// DefaultTitle is the heading of HTML and Markdown documents.
const DefaultTitle = "Data Dictionary"

// Summary holds the headline counts of a dictionary document.
type Summary struct {
	TotalTables            int `json:"totalTables"            yaml:"totalTables"`
	TotalColumns           int `json:"totalColumns"           yaml:"totalColumns"`
	HighSensitivityColumns int `json:"highSensitivityColumns" yaml:"highSensitivityColumns"`
	PrimaryKeys            int `json:"primaryKeys"            yaml:"primaryKeys"`
}

// TableSection is one table of a Page.
type TableSection struct {
	Name    string
	Columns []types.ColumnDefinition
}

// Page is the input of the HTML and Markdown renderers. Tables are sorted by
// name; columns keep dictionary order.
type Page struct {
	Title       string
	GeneratedAt time.Time
	Summary     Summary
	Tables      []TableSection
}

// NewPage groups columns by table and computes the summary.
func NewPage(title string, columns []types.ColumnDefinition, now time.Time) *Page {
	if title == "" {
		title = DefaultTitle
	}
	engine := analytics.New(columns)
	page := &Page{
		Title:       title,
		GeneratedAt: now,
		Summary:     summarize(engine),
	}
	for _, name := range engine.TableNames() {
		page.Tables = append(page.Tables, TableSection{Name: name, Columns: engine.TableColumns(name)})
	}
	return page
}

func summarize(engine *analytics.Engine) Summary {
	stats := engine.TableStatistics()
	return Summary{
		TotalTables:            stats.TableCount,
		TotalColumns:           stats.ColumnCount,
		HighSensitivityColumns: engine.SensitivityDistribution().HighSensitivityCount,
		PrimaryKeys:            stats.PrimaryKeyCount,
	}
}
