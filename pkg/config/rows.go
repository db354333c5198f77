package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/datadict/pkg/types"
)

// LoadRows loads a list of data rows from a YAML or JSON file.
func LoadRows(filename string) ([]types.DataRow, error) {
	slog.Debug("Loading rows from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows file %s", filename)
	}

	rows, err := ParseRows(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rows file %s", filename)
	}
	slog.Debug("Loaded rows", "rows_count", len(rows))
	return rows, nil
}

// ParseRows decodes a list of objects. YAML is tried first; JSON numbers are
// kept as int64 when integral and float64 otherwise.
func ParseRows(data []byte) ([]types.DataRow, error) {
	var rows []types.DataRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		slog.Debug("YAML unmarshal failed", "error", err)
		rows, err = parseJSONRows(data)
		if err != nil {
			slog.Debug("JSON unmarshal failed", "error", err)
			return nil, errors.Wrap(err, "malformed rows")
		}
	}

	for i, row := range rows {
		if row == nil {
			return nil, errors.Errorf("row %d is not an object", i+1)
		}
	}
	return rows, nil
}

func parseJSONRows(data []byte) ([]types.DataRow, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var rows []types.DataRow
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		for k, v := range row {
			if n, ok := v.(json.Number); ok {
				row[k] = number(n)
			}
		}
	}
	return rows, nil
}

func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
