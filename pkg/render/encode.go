package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/datadict/pkg/analytics"
	"github.com/nsxbet/datadict/pkg/types"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode JSON")
}

// YAML writes v as YAML.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode YAML")
	}
	return errors.Wrap(enc.Close(), "failed to encode YAML")
}

// TableDocument is a table entry of DictionaryDocument.
type TableDocument struct {
	ColumnCount int                      `json:"columnCount" yaml:"columnCount"`
	Columns     []types.ColumnDefinition `json:"columns"     yaml:"columns"`
}

// DictionaryDocument is the JSON export of a dictionary.
type DictionaryDocument struct {
	GeneratedAt time.Time                `json:"generatedAt" yaml:"generatedAt"`
	Summary     Summary                  `json:"summary"     yaml:"summary"`
	Tables      map[string]TableDocument `json:"tables"      yaml:"tables"`
}

// NewDictionaryDocument groups columns by table.
func NewDictionaryDocument(columns []types.ColumnDefinition, now time.Time) *DictionaryDocument {
	engine := analytics.New(columns)
	doc := &DictionaryDocument{
		GeneratedAt: now,
		Summary:     summarize(engine),
		Tables:      make(map[string]TableDocument),
	}
	for _, name := range engine.TableNames() {
		cols := engine.TableColumns(name)
		doc.Tables[name] = TableDocument{ColumnCount: len(cols), Columns: cols}
	}
	return doc
}

// DictionaryJSON writes the JSON export of columns.
func DictionaryJSON(w io.Writer, columns []types.ColumnDefinition, now time.Time) error {
	return JSON(w, NewDictionaryDocument(columns, now))
}
