package analytics

import (
	"fmt"

	"github.com/nsxbet/datadict/pkg/types"
)

// TableDetail is the breakdown of a single table.
type TableDetail struct {
	TableName              string                   `json:"tableName"              yaml:"tableName"`
	ColumnCount            int                      `json:"columnCount"            yaml:"columnCount"`
	PrimaryKeys            []string                 `json:"primaryKeys"            yaml:"primaryKeys"`
	NullableColumns        []string                 `json:"nullableColumns"        yaml:"nullableColumns"`
	HighSensitivityColumns []string                 `json:"highSensitivityColumns" yaml:"highSensitivityColumns"`
	DataTypes              TypeDistribution         `json:"dataTypes"              yaml:"dataTypes"`
	Columns                []types.ColumnDefinition `json:"columns"                yaml:"columns"`
}

// NotFound reports a lookup that matched nothing.
type NotFound struct {
	Code    types.Code `json:"code"    yaml:"code"`
	Table   string     `json:"table"   yaml:"table"`
	Message string     `json:"message" yaml:"message"`
}

// TableDetailResult carries either Detail or NotFound.
type TableDetailResult struct {
	Detail   *TableDetail `json:"detail,omitempty"   yaml:"detail,omitempty"`
	NotFound *NotFound    `json:"notFound,omitempty" yaml:"notFound,omitempty"`
}

// Found reports whether the table exists.
func (r TableDetailResult) Found() bool {
	return r.Detail != nil
}

// TableDetail returns the breakdown of table, or a NotFound result when the
// dictionary has no columns for it.
func (e *Engine) TableDetail(table string) TableDetailResult {
	cols, ok := e.tables[table]
	if !ok || len(cols) == 0 {
		return TableDetailResult{NotFound: &NotFound{
			Code:    types.TableNotFound,
			Table:   table,
			Message: fmt.Sprintf("table %q not found", table),
		}}
	}

	detail := &TableDetail{
		TableName:              table,
		ColumnCount:            len(cols),
		PrimaryKeys:            []string{},
		NullableColumns:        []string{},
		HighSensitivityColumns: []string{},
		DataTypes:              typeDistribution(cols),
		Columns:                append([]types.ColumnDefinition(nil), cols...),
	}
	for _, col := range cols {
		if col.IsPrimaryKey {
			detail.PrimaryKeys = append(detail.PrimaryKeys, col.Column)
		}
		if col.IsNullable {
			detail.NullableColumns = append(detail.NullableColumns, col.Column)
		}
		if col.Sensitivity == types.Sensitivity_HIGH {
			detail.HighSensitivityColumns = append(detail.HighSensitivityColumns, col.Column)
		}
	}
	return TableDetailResult{Detail: detail}
}
