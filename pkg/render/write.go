package render

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/nsxbet/datadict/pkg/types"
)

// Document formats accepted by WriteAll.
const (
	FormatCSV      = "csv"
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatDDL      = "ddl"
)

// Formats lists every document format in the order WriteAll writes them.
var Formats = []string{FormatCSV, FormatHTML, FormatJSON, FormatMarkdown, FormatDDL}

// FileNames maps each format to the file WriteAll creates for it.
var FileNames = map[string]string{
	FormatCSV:      "data_dictionary.csv",
	FormatHTML:     "data_dictionary.html",
	FormatJSON:     "data_dictionary.json",
	FormatMarkdown: "DATA_DICTIONARY.md",
	FormatDDL:      "ddl_tables.sql",
}

// WriteAll renders columns in each of formats into dir, creating it if
// needed, and returns the path written per format. An empty formats list
// means every format.
func WriteAll(dir string, columns []types.ColumnDefinition, formats []string, now time.Time) (map[string]string, error) {
	if len(formats) == 0 {
		formats = Formats
	}
	for _, format := range formats {
		if _, ok := FileNames[format]; !ok {
			return nil, errors.Errorf("unsupported format: %s", format)
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	page := NewPage(DefaultTitle, columns, now)
	written := make(map[string]string, len(formats))
	for _, format := range formats {
		var buf bytes.Buffer
		var err error
		switch format {
		case FormatCSV:
			err = CSV(&buf, columns)
		case FormatHTML:
			err = HTML(&buf, page)
		case FormatJSON:
			err = DictionaryJSON(&buf, columns, now)
		case FormatMarkdown:
			err = Markdown(&buf, page)
		case FormatDDL:
			err = DDL(&buf, columns)
		}
		if err != nil {
			return written, err
		}

		path := filepath.Join(dir, FileNames[format])
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", path)
		}
		slog.Debug("Wrote document", "format", format, "path", path)
		written[format] = path
	}
	return written, nil
}
