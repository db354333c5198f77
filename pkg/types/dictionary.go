package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sensitivity represents the data-protection classification of a column
type Sensitivity int32

const (
	Sensitivity_UNCLASSIFIED Sensitivity = 0
	Sensitivity_HIGH         Sensitivity = 1
	Sensitivity_MEDIUM       Sensitivity = 2
	Sensitivity_LOW          Sensitivity = 3
)

func (s Sensitivity) String() string {
	switch s {
	case Sensitivity_HIGH:
		return "High"
	case Sensitivity_MEDIUM:
		return "Medium"
	case Sensitivity_LOW:
		return "Low"
	default:
		return "Unclassified"
	}
}

// ParseSensitivity converts a label to a Sensitivity.
// English names are matched case-insensitively; the Portuguese labels used by
// legacy dictionaries (Alta, Média, Baixa) are accepted as well.
// Anything else is Unclassified.
func ParseSensitivity(label string) Sensitivity {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "high", "alta":
		return Sensitivity_HIGH
	case "medium", "média", "media":
		return Sensitivity_MEDIUM
	case "low", "baixa":
		return Sensitivity_LOW
	default:
		return Sensitivity_UNCLASSIFIED
	}
}

// MarshalText implements encoding.TextMarshaler so the level is written by name,
// both as a value and as a map key.
func (s Sensitivity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Sensitivity
func (s *Sensitivity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var label string
	if err := unmarshal(&label); err != nil {
		return err
	}
	*s = ParseSensitivity(label)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Sensitivity
func (s *Sensitivity) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	*s = ParseSensitivity(label)
	return nil
}

// ColumnDefinition describes one physical column of the data dictionary.
// The (Table, Column) pair identifies it. When decoded from YAML or JSON,
// IsNullable defaults to true.
type ColumnDefinition struct {
	Table        string      `json:"table"                  yaml:"table"`
	Column       string      `json:"column"                 yaml:"column"`
	Type         string      `json:"type"                   yaml:"type"`
	Description  string      `json:"description,omitempty"  yaml:"description,omitempty"`
	Domain       string      `json:"domain,omitempty"       yaml:"domain,omitempty"`
	BusinessRule string      `json:"businessRule,omitempty" yaml:"businessRule,omitempty"`
	Example      string      `json:"example,omitempty"      yaml:"example,omitempty"`
	Sensitivity  Sensitivity `json:"sensitivity"            yaml:"sensitivity"`
	IsPrimaryKey bool        `json:"primaryKey"             yaml:"primaryKey"`
	IsNullable   bool        `json:"nullable"               yaml:"nullable"`
}

// UnmarshalYAML implements yaml.Unmarshaler. A column without a nullable
// key accepts nulls.
func (c *ColumnDefinition) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain ColumnDefinition
	col := plain{IsNullable: true}
	if err := unmarshal(&col); err != nil {
		return err
	}
	*c = ColumnDefinition(col)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler with the same nullable default as
// UnmarshalYAML.
func (c *ColumnDefinition) UnmarshalJSON(data []byte) error {
	type plain ColumnDefinition
	col := plain{IsNullable: true}
	if err := json.Unmarshal(data, &col); err != nil {
		return err
	}
	*c = ColumnDefinition(col)
	return nil
}

// QualifiedName returns "table.column".
func (c ColumnDefinition) QualifiedName() string {
	return fmt.Sprintf("%s.%s", c.Table, c.Column)
}

// Dictionary is an ordered list of column definitions, optionally named.
type Dictionary struct {
	Name    string             `json:"name,omitempty" yaml:"name,omitempty"`
	Columns []ColumnDefinition `json:"columns"        yaml:"columns"`
}

// DataRow maps column names to values supplied for validation.
// A nil value represents SQL NULL.
type DataRow map[string]any

// Position represents a position in a source text
type Position struct {
	Line   int32 `json:"line"`
	Column int32 `json:"column"`
}
