// Package analytics computes statistics over a data dictionary itself:
// table sizes, type and sensitivity distributions, business-rule categories
// and per-table comparisons.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nsxbet/datadict/pkg/normalize"
	"github.com/nsxbet/datadict/pkg/types"
)

// ReportType identifies a FullReport.
const ReportType = "DATA_DICTIONARY_ANALYSIS"

// Engine analyses a fixed set of column definitions. Columns are grouped by
// table once, at construction. An Engine is safe for concurrent use.
type Engine struct {
	columns []types.ColumnDefinition
	tables  map[string][]types.ColumnDefinition
	order   []string
	now     func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock sets the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an Engine over a copy of columns.
func New(columns []types.ColumnDefinition, opts ...Option) *Engine {
	e := &Engine{
		columns: append([]types.ColumnDefinition(nil), columns...),
		tables:  make(map[string][]types.ColumnDefinition),
		now:     time.Now,
	}
	for _, col := range e.columns {
		if _, ok := e.tables[col.Table]; !ok {
			e.order = append(e.order, col.Table)
		}
		e.tables[col.Table] = append(e.tables[col.Table], col)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Columns returns the analysed column definitions in dictionary order.
func (e *Engine) Columns() []types.ColumnDefinition {
	return append([]types.ColumnDefinition(nil), e.columns...)
}

// TableNames returns the table names sorted alphabetically.
func (e *Engine) TableNames() []string {
	names := append([]string(nil), e.order...)
	sort.Strings(names)
	return names
}

// TableColumns returns the columns of table in dictionary order.
func (e *Engine) TableColumns(table string) []types.ColumnDefinition {
	return append([]types.ColumnDefinition(nil), e.tables[table]...)
}

// TableStatistics holds dictionary-wide counts.
type TableStatistics struct {
	TableCount         int       `json:"tableCount"         yaml:"tableCount"`
	ColumnCount        int       `json:"columnCount"        yaml:"columnCount"`
	AvgColumnsPerTable float64   `json:"avgColumnsPerTable" yaml:"avgColumnsPerTable"`
	MinColumnsPerTable int       `json:"minColumnsPerTable" yaml:"minColumnsPerTable"`
	MaxColumnsPerTable int       `json:"maxColumnsPerTable" yaml:"maxColumnsPerTable"`
	PrimaryKeyCount    int       `json:"primaryKeyCount"    yaml:"primaryKeyCount"`
	NullableCount      int       `json:"nullableCount"      yaml:"nullableCount"`
	NonNullableCount   int       `json:"nonNullableCount"   yaml:"nonNullableCount"`
	Timestamp          time.Time `json:"timestamp"          yaml:"timestamp"`
}

// TableStatistics computes table and column counts. An empty dictionary
// yields zeros.
func (e *Engine) TableStatistics() TableStatistics {
	stats := TableStatistics{
		TableCount:  len(e.tables),
		ColumnCount: len(e.columns),
		Timestamp:   e.now(),
	}
	if stats.TableCount > 0 {
		stats.AvgColumnsPerTable = round2(float64(stats.ColumnCount) / float64(stats.TableCount))
		stats.MinColumnsPerTable = math.MaxInt
		for _, cols := range e.tables {
			stats.MinColumnsPerTable = min(stats.MinColumnsPerTable, len(cols))
			stats.MaxColumnsPerTable = max(stats.MaxColumnsPerTable, len(cols))
		}
	}
	for _, col := range e.columns {
		if col.IsPrimaryKey {
			stats.PrimaryKeyCount++
		}
		if col.IsNullable {
			stats.NullableCount++
		}
	}
	stats.NonNullableCount = stats.ColumnCount - stats.NullableCount
	return stats
}

// TypeCount is the number of columns sharing a base type.
type TypeCount struct {
	Type  string `json:"type"  yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// TypeDistribution is ordered by descending count; ties keep the order in
// which the types first appear in the dictionary.
type TypeDistribution []TypeCount

// AsMap returns the distribution keyed by base type.
func (d TypeDistribution) AsMap() map[string]int {
	m := make(map[string]int, len(d))
	for _, tc := range d {
		m[tc.Type] = tc.Count
	}
	return m
}

// Total returns the sum of all counts.
func (d TypeDistribution) Total() int {
	total := 0
	for _, tc := range d {
		total += tc.Count
	}
	return total
}

// DataTypeDistribution counts columns per base type.
func (e *Engine) DataTypeDistribution() TypeDistribution {
	return typeDistribution(e.columns)
}

func typeDistribution(columns []types.ColumnDefinition) TypeDistribution {
	index := make(map[string]int)
	dist := TypeDistribution{}
	for _, col := range columns {
		base := normalize.BaseType(col.Type)
		i, ok := index[base]
		if !ok {
			i = len(dist)
			index[base] = i
			dist = append(dist, TypeCount{Type: base})
		}
		dist[i].Count++
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})
	return dist
}

// SensitivityDistribution describes how columns spread over sensitivity labels.
type SensitivityDistribution struct {
	Distribution            map[string]int     `json:"distribution"            yaml:"distribution"`
	Percentages             map[string]float64 `json:"percentages"             yaml:"percentages"`
	HighSensitivityCount    int                `json:"highSensitivityCount"    yaml:"highSensitivityCount"`
	RequiresProtectionCount int                `json:"requiresProtectionCount" yaml:"requiresProtectionCount"`
}

// SensitivityDistribution counts columns per sensitivity label, including
// Unclassified. Labels absent from the dictionary count as zero.
func (e *Engine) SensitivityDistribution() SensitivityDistribution {
	counts := make(map[string]int)
	for _, col := range e.columns {
		counts[col.Sensitivity.String()]++
	}

	percentages := make(map[string]float64, len(counts))
	total := len(e.columns)
	for label, count := range counts {
		percentages[label] = round2(float64(count) / float64(total) * 100)
	}

	high := counts[types.Sensitivity_HIGH.String()]
	return SensitivityDistribution{
		Distribution:            counts,
		Percentages:             percentages,
		HighSensitivityCount:    high,
		RequiresProtectionCount: high + counts[types.Sensitivity_MEDIUM.String()],
	}
}

// RuleDetails lists "table.column" names per business-rule category.
type RuleDetails struct {
	Required      []string `json:"required"      yaml:"required"`
	Unique        []string `json:"unique"        yaml:"unique"`
	AutoGenerated []string `json:"autoGenerated" yaml:"autoGenerated"`
}

// BusinessRuleAnalysis counts columns per business-rule category.
type BusinessRuleAnalysis struct {
	RequiredCount      int         `json:"requiredCount"      yaml:"requiredCount"`
	UniqueCount        int         `json:"uniqueCount"        yaml:"uniqueCount"`
	AutoGeneratedCount int         `json:"autoGeneratedCount" yaml:"autoGeneratedCount"`
	Details            RuleDetails `json:"details"            yaml:"details"`
}

// BusinessRuleAnalysis classifies every business rule with normalize.ClassifyRule.
func (e *Engine) BusinessRuleAnalysis() BusinessRuleAnalysis {
	details := RuleDetails{
		Required:      []string{},
		Unique:        []string{},
		AutoGenerated: []string{},
	}
	for _, col := range e.columns {
		switch normalize.ClassifyRule(col.BusinessRule) {
		case normalize.RuleRequired:
			details.Required = append(details.Required, col.QualifiedName())
		case normalize.RuleUnique:
			details.Unique = append(details.Unique, col.QualifiedName())
		case normalize.RuleAutoGenerated:
			details.AutoGenerated = append(details.AutoGenerated, col.QualifiedName())
		}
	}
	return BusinessRuleAnalysis{
		RequiredCount:      len(details.Required),
		UniqueCount:        len(details.Unique),
		AutoGeneratedCount: len(details.AutoGenerated),
		Details:            details,
	}
}

// TableComparison is the per-table row of CompareTables.
type TableComparison struct {
	ColumnCount                int     `json:"columnCount"                yaml:"columnCount"`
	PrimaryKeyCount            int     `json:"primaryKeyCount"            yaml:"primaryKeyCount"`
	HighSensitivityColumnCount int     `json:"highSensitivityColumnCount" yaml:"highSensitivityColumnCount"`
	NullablePercentage         float64 `json:"nullablePercentage"         yaml:"nullablePercentage"`
}

// CompareTables summarizes every table side by side.
func (e *Engine) CompareTables() map[string]TableComparison {
	comparison := make(map[string]TableComparison, len(e.tables))
	for name, cols := range e.tables {
		var c TableComparison
		nullable := 0
		for _, col := range cols {
			if col.IsPrimaryKey {
				c.PrimaryKeyCount++
			}
			if col.Sensitivity == types.Sensitivity_HIGH {
				c.HighSensitivityColumnCount++
			}
			if col.IsNullable {
				nullable++
			}
		}
		// Grouping guarantees at least one column per table.
		c.ColumnCount = len(cols)
		c.NullablePercentage = round2(float64(nullable) / float64(len(cols)) * 100)
		comparison[name] = c
	}
	return comparison
}

// FullReport composes every analysis of the engine.
type FullReport struct {
	ID                      string                     `json:"id"                      yaml:"id"`
	ReportType              string                     `json:"reportType"              yaml:"reportType"`
	GeneratedAt             time.Time                  `json:"generatedAt"             yaml:"generatedAt"`
	GeneralStatistics       TableStatistics            `json:"generalStatistics"       yaml:"generalStatistics"`
	DataTypeDistribution    TypeDistribution           `json:"dataTypeDistribution"    yaml:"dataTypeDistribution"`
	SensitivityDistribution SensitivityDistribution    `json:"sensitivityDistribution" yaml:"sensitivityDistribution"`
	BusinessRules           BusinessRuleAnalysis       `json:"businessRules"           yaml:"businessRules"`
	TableComparison         map[string]TableComparison `json:"tableComparison"         yaml:"tableComparison"`
}

// FullReport runs every analysis.
func (e *Engine) FullReport() *FullReport {
	return &FullReport{
		ID:                      uuid.NewString(),
		ReportType:              ReportType,
		GeneratedAt:             e.now(),
		GeneralStatistics:       e.TableStatistics(),
		DataTypeDistribution:    e.DataTypeDistribution(),
		SensitivityDistribution: e.SensitivityDistribution(),
		BusinessRules:           e.BusinessRuleAnalysis(),
		TableComparison:         e.CompareTables(),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
