package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/datadict/pkg/types"
)

// ErrInvalidDictionary is the cause of every structural dictionary error.
var ErrInvalidDictionary = errors.New("invalid dictionary")

// LoadDictionary loads a data dictionary from a YAML or JSON file. The document
// is either a list of columns or an object with name and columns.
func LoadDictionary(filename string) (*types.Dictionary, error) {
	slog.Debug("Loading dictionary from file", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dictionary file %s", filename)
	}

	dict, err := ParseDictionary(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dictionary file %s", filename)
	}
	if dict.Name == "" {
		dict.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	slog.Debug("Loaded dictionary", "name", dict.Name, "columns_count", len(dict.Columns))
	return dict, nil
}

// ParseDictionary decodes dictionary bytes, trying YAML first and then JSON.
func ParseDictionary(data []byte) (*types.Dictionary, error) {
	slog.Debug("Attempting YAML unmarshal")
	dict, err := decodeYAMLDictionary(data)
	if err != nil {
		slog.Debug("YAML unmarshal failed", "error", err)
		slog.Debug("Attempting JSON unmarshal")
		var jerr error
		dict, jerr = decodeJSONDictionary(data)
		if jerr != nil {
			slog.Debug("JSON unmarshal failed", "error", jerr)
			return nil, errors.Wrap(err, "malformed dictionary")
		}
	}

	if err := Validate(dict.Columns); err != nil {
		return nil, err
	}
	return dict, nil
}

func decodeYAMLDictionary(data []byte) (*types.Dictionary, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.Wrap(ErrInvalidDictionary, "empty document")
	}

	root := doc.Content[0]
	dict := &types.Dictionary{}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&dict.Columns); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if err := root.Decode(dict); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(ErrInvalidDictionary, "unexpected document at line %d", root.Line)
	}
	return dict, nil
}

func decodeJSONDictionary(data []byte) (*types.Dictionary, error) {
	dict := &types.Dictionary{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &dict.Columns); err != nil {
			return nil, err
		}
		return dict, nil
	}
	if err := json.Unmarshal(trimmed, dict); err != nil {
		return nil, err
	}
	return dict, nil
}

// Validate checks that every column names its table and column and that no
// (table, column) pair repeats.
func Validate(columns []types.ColumnDefinition) error {
	seen := make(map[string]int, len(columns))
	for i, col := range columns {
		if strings.TrimSpace(col.Table) == "" {
			return errors.Wrapf(ErrInvalidDictionary, "entry %d: table is empty", i+1)
		}
		if strings.TrimSpace(col.Column) == "" {
			return errors.Wrapf(ErrInvalidDictionary, "entry %d: column is empty", i+1)
		}
		key := col.QualifiedName()
		if prev, ok := seen[key]; ok {
			return errors.Wrapf(ErrInvalidDictionary, "entry %d: duplicate column %s (first at entry %d)", i+1, key, prev)
		}
		seen[key] = i + 1
	}
	return nil
}
