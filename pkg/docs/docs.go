// Package docs derives descriptive documentation from a data dictionary:
// an entity-relationship outline and a coarse data lineage.
package docs

import (
	"fmt"
	"sort"

	"github.com/nsxbet/datadict/pkg/normalize"
	"github.com/nsxbet/datadict/pkg/types"
)

// DefaultDestinations are the lineage sinks used when none are configured.
var DefaultDestinations = []string{"Data Warehouse", "Analytics Platform"}

type Attribute struct {
	Name     string `json:"name"     yaml:"name"`
	Type     string `json:"type"     yaml:"type"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// Entity describes one table. ForeignKeys is always empty: the dictionary
// format has no way to express references.
type Entity struct {
	Attributes  []Attribute `json:"attributes"  yaml:"attributes"`
	PrimaryKeys []string    `json:"primaryKeys" yaml:"primaryKeys"`
	ForeignKeys []string    `json:"foreignKeys" yaml:"foreignKeys"`
}

type Lineage struct {
	Sources         []string `json:"sources"         yaml:"sources"`
	Transformations []string `json:"transformations" yaml:"transformations"`
	Destinations    []string `json:"destinations"    yaml:"destinations"`
}

// Builder produces documentation for a fixed dictionary.
type Builder struct {
	columns      []types.ColumnDefinition
	destinations []string
}

type Option func(*Builder)

// WithDestinations overrides the lineage destinations.
func WithDestinations(destinations ...string) Option {
	return func(b *Builder) {
		b.destinations = append([]string(nil), destinations...)
	}
}

func New(columns []types.ColumnDefinition, opts ...Option) *Builder {
	b := &Builder{
		columns:      append([]types.ColumnDefinition(nil), columns...),
		destinations: append([]string(nil), DefaultDestinations...),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// EntityRelationship returns one Entity per table, keyed by table name.
func (b *Builder) EntityRelationship() map[string]*Entity {
	entities := make(map[string]*Entity)
	for _, col := range b.columns {
		e, ok := entities[col.Table]
		if !ok {
			e = &Entity{Attributes: []Attribute{}, PrimaryKeys: []string{}, ForeignKeys: []string{}}
			entities[col.Table] = e
		}
		e.Attributes = append(e.Attributes, Attribute{Name: col.Column, Type: col.Type, Nullable: col.IsNullable})
		if col.IsPrimaryKey {
			e.PrimaryKeys = append(e.PrimaryKeys, col.Column)
		}
	}
	return entities
}

// Lineage lists source tables, derived columns and destinations.
func (b *Builder) Lineage() Lineage {
	seen := make(map[string]bool)
	lineage := Lineage{
		Sources:         []string{},
		Transformations: []string{},
		Destinations:    append([]string(nil), b.destinations...),
	}
	for _, col := range b.columns {
		if !seen[col.Table] {
			seen[col.Table] = true
			lineage.Sources = append(lineage.Sources, col.Table)
		}
		if normalize.IsDerivedRule(col.BusinessRule) {
			lineage.Transformations = append(lineage.Transformations, fmt.Sprintf("%s - %s", col.Column, col.BusinessRule))
		}
	}
	sort.Strings(lineage.Sources)
	return lineage
}

