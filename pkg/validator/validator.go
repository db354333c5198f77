// Package validator checks data rows against the column definitions of a data
// dictionary.
//
// Every data-quality problem is reported as a Finding inside the returned
// result; the validator never returns a Go error for bad data. A Validator is
// immutable after construction and safe for concurrent use.
//
//	v := validator.New(columns)
//	result := v.ValidateRow("clientes", types.DataRow{"id": 1, "nome": "Ana"})
//	if !result.Valid {
//	    for _, f := range result.Errors {
//	        fmt.Println(f.Message)
//	    }
//	}
package validator

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nsxbet/datadict/pkg/normalize"
	"github.com/nsxbet/datadict/pkg/types"
)

type columnKey struct {
	table  string
	column string
}

// Validator validates values against a fixed set of column definitions.
type Validator struct {
	columns []types.ColumnDefinition
	byKey   map[columnKey]types.ColumnDefinition
	byName  map[string]types.ColumnDefinition
	now     func() time.Time
}

// Option customizes a Validator.
type Option func(*Validator)

// WithClock sets the time source used for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a Validator over a copy of columns.
func New(columns []types.ColumnDefinition, opts ...Option) *Validator {
	v := &Validator{
		columns: append([]types.ColumnDefinition(nil), columns...),
		byKey:   make(map[columnKey]types.ColumnDefinition, len(columns)),
		byName:  make(map[string]types.ColumnDefinition, len(columns)),
		now:     time.Now,
	}
	for _, col := range v.columns {
		key := columnKey{table: col.Table, column: col.Column}
		if _, ok := v.byKey[key]; !ok {
			v.byKey[key] = col
		}
		if _, ok := v.byName[col.Column]; !ok {
			v.byName[col.Column] = col
		}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Lookup returns the definition of table.column.
func (v *Validator) Lookup(table, column string) (types.ColumnDefinition, bool) {
	col, ok := v.byKey[columnKey{table: table, column: column}]
	return col, ok
}

// LookupColumn returns the first definition named column in any table.
// Column names are not unique across tables; prefer Lookup when the table is known.
func (v *Validator) LookupColumn(column string) (types.ColumnDefinition, bool) {
	col, ok := v.byName[column]
	return col, ok
}

// ValidateType checks that value has the kind the column type requires.
// Null values pass; nullability is checked separately.
func (v *Validator) ValidateType(table, column string, value any) *Finding {
	col, ok := v.Lookup(table, column)
	if !ok {
		return columnNotFound(table, column)
	}
	return checkType(col, value)
}

// ValidateNullability fails when value is null and the column is not nullable.
func (v *Validator) ValidateNullability(table, column string, value any) *Finding {
	col, ok := v.Lookup(table, column)
	if !ok {
		return columnNotFound(table, column)
	}
	return checkNullability(col, value)
}

// ValidatePrimaryKey fails when the column is part of the primary key and value is null.
func (v *Validator) ValidatePrimaryKey(table, column string, value any) *Finding {
	col, ok := v.Lookup(table, column)
	if !ok {
		return columnNotFound(table, column)
	}
	return checkPrimaryKey(col, value)
}

// ValidateRow validates every field of row against the definitions of table.
//
// Fields are visited in column-name order. A field unknown to the table adds a
// ColumnNotInTable warning and is skipped. Otherwise the primary-key,
// nullability and type checks run in that order and the first failure is the
// field's only error.
func (v *Validator) ValidateRow(table string, row types.DataRow) *ValidationResult {
	result := &ValidationResult{
		Errors:    []*Finding{},
		Warnings:  []*Finding{},
		Timestamp: v.now(),
	}

	names := make([]string, 0, len(row))
	for name := range row {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := row[name]
		col, ok := v.Lookup(table, name)
		if !ok {
			result.Warnings = append(result.Warnings, &Finding{
				Status:  StatusWarning,
				Code:    types.ColumnNotInTable,
				Table:   table,
				Column:  name,
				Message: fmt.Sprintf("column %q does not belong to table %q", name, table),
			})
			continue
		}

		for _, check := range fieldChecks {
			if f := check(col, value); f != nil {
				result.Errors = append(result.Errors, f)
				break
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateRows validates rows of table and aggregates the outcome.
// Rows are numbered from 1.
func (v *Validator) ValidateRows(table string, rows []types.DataRow) *Report {
	report, _ := v.ValidateRowsContext(context.Background(), table, rows)
	return report
}

// ValidateRowsContext is ValidateRows with cancellation checked between rows.
// When ctx is done it returns the report for the rows validated so far along
// with ctx.Err().
func (v *Validator) ValidateRowsContext(ctx context.Context, table string, rows []types.DataRow) (*Report, error) {
	report := &Report{
		ID:       uuid.NewString(),
		Table:    table,
		Errors:   []RowFinding{},
		Warnings: []RowFinding{},
	}
	for i, row := range rows {
		select {
		case <-ctx.Done():
			report.finish(v.now())
			return report, ctx.Err()
		default:
		}
		report.add(i+1, v.ValidateRow(table, row))
	}
	report.finish(v.now())
	return report, nil
}

func (r *Report) add(rowNumber int, result *ValidationResult) {
	r.TotalRows++
	if result.Valid {
		r.ValidRows++
	} else {
		r.InvalidRows++
	}
	for _, f := range result.Errors {
		r.Errors = append(r.Errors, RowFinding{Row: rowNumber, Finding: f})
	}
	for _, f := range result.Warnings {
		r.Warnings = append(r.Warnings, RowFinding{Row: rowNumber, Finding: f})
	}
}

func (r *Report) finish(now time.Time) {
	r.SuccessRate = SuccessRate(r.ValidRows, r.TotalRows)
	r.GeneratedAt = now
}

type fieldCheck func(col types.ColumnDefinition, value any) *Finding

var fieldChecks = []fieldCheck{
	checkPrimaryKey,
	checkNullability,
	checkType,
}

func checkPrimaryKey(col types.ColumnDefinition, value any) *Finding {
	if !col.IsPrimaryKey || !normalize.IsNull(value) {
		return nil
	}
	return &Finding{
		Status:  StatusError,
		Code:    types.PrimaryKeyNull,
		Table:   col.Table,
		Column:  col.Column,
		Message: fmt.Sprintf("primary key %q cannot be null", col.Column),
	}
}

func checkNullability(col types.ColumnDefinition, value any) *Finding {
	if col.IsNullable || !normalize.IsNull(value) {
		return nil
	}
	return &Finding{
		Status:  StatusError,
		Code:    types.NullNotAllowed,
		Table:   col.Table,
		Column:  col.Column,
		Message: fmt.Sprintf("column %q does not accept null values", col.Column),
	}
}

func checkType(col types.ColumnDefinition, value any) *Finding {
	kind := normalize.ValueKind(value)
	// Null is never a type error; checkNullability decides whether it is allowed.
	if kind == normalize.KindNull {
		return nil
	}

	class := normalize.ClassifyType(col.Type)
	var ok bool
	switch class {
	case normalize.ClassInteger:
		ok = kind == normalize.KindInteger
	case normalize.ClassText:
		ok = kind == normalize.KindText
	case normalize.ClassNumeric:
		ok = kind.IsNumeric()
	case normalize.ClassDate:
		ok = isISODate(value)
	default:
		ok = true
	}
	if ok {
		return nil
	}

	actual := kind.String()
	message := fmt.Sprintf("column %q expected %s (%s), got %s", col.Column, class, col.Type, actual)
	if class == normalize.ClassDate && kind == normalize.KindText {
		message = fmt.Sprintf("column %q has invalid date %q", col.Column, value)
	}
	return &Finding{
		Status:   StatusError,
		Code:     types.TypeMismatch,
		Table:    col.Table,
		Column:   col.Column,
		Message:  message,
		Expected: class.String(),
		Actual:   actual,
	}
}

func columnNotFound(table, column string) *Finding {
	return &Finding{
		Status:  StatusError,
		Code:    types.ColumnNotFound,
		Table:   table,
		Column:  column,
		Message: fmt.Sprintf("column %q not found in table %q", column, table),
	}
}
