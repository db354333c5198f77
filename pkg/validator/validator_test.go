package validator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/datadict/pkg/types"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func clientes() []types.ColumnDefinition {
	return []types.ColumnDefinition{
		{Table: "clientes", Column: "id", Type: "INT", IsPrimaryKey: true, IsNullable: false},
		{Table: "clientes", Column: "nome", Type: "VARCHAR(100)", IsNullable: false},
		{Table: "clientes", Column: "saldo", Type: "DECIMAL(10,2)", IsNullable: true},
		{Table: "clientes", Column: "nascimento", Type: "DATE", IsNullable: true},
		{Table: "clientes", Column: "cpf", Type: "CHAR(11)", IsNullable: true},
		{Table: "pedidos", Column: "id", Type: "VARCHAR(36)", IsPrimaryKey: true},
		{Table: "pedidos", Column: "cliente_id", Type: "INT", IsNullable: false},
	}
}

func newTestValidator() *Validator {
	return New(clientes(), WithClock(func() time.Time { return fixedNow }))
}

func TestValidateRow_Valid(t *testing.T) {
	v := newTestValidator()

	result := v.ValidateRow("clientes", types.DataRow{"id": 1, "nome": "Ana"})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, fixedNow, result.Timestamp)
}

func TestValidateRow_PrimaryKeyNull(t *testing.T) {
	v := newTestValidator()

	result := v.ValidateRow("clientes", types.DataRow{"id": nil, "nome": "Ana"})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, types.PrimaryKeyNull, result.Errors[0].Code)
	assert.Equal(t, "id", result.Errors[0].Column)
}

func TestValidateRow_TypeMismatch(t *testing.T) {
	v := newTestValidator()

	result := v.ValidateRow("clientes", types.DataRow{"id": 1, "nome": 42})

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	f := result.Errors[0]
	assert.Equal(t, types.TypeMismatch, f.Code)
	assert.Equal(t, "nome", f.Column)
	assert.Equal(t, "text", f.Expected)
	assert.Equal(t, "integer", f.Actual)
}

func TestValidateRow_ColumnNotInTableIsWarning(t *testing.T) {
	v := newTestValidator()

	result := v.ValidateRow("clientes", types.DataRow{"id": 1, "cliente_id": 7, "unknown": "x"})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, types.ColumnNotInTable, result.Warnings[0].Code)
	assert.Equal(t, "cliente_id", result.Warnings[0].Column)
	assert.Equal(t, "unknown", result.Warnings[1].Column)
}

func TestValidateRow_OneErrorPerField(t *testing.T) {
	v := newTestValidator()

	// A null primary key is reported once, even though nullability would also fail.
	result := v.ValidateRow("clientes", types.DataRow{"id": nil, "nome": nil, "saldo": "abc"})

	require.Len(t, result.Errors, 3)
	assert.Equal(t, types.PrimaryKeyNull, result.Errors[0].Code)
	assert.Equal(t, "id", result.Errors[0].Column)
	assert.Equal(t, types.NullNotAllowed, result.Errors[1].Code)
	assert.Equal(t, "nome", result.Errors[1].Column)
	assert.Equal(t, types.TypeMismatch, result.Errors[2].Code)
	assert.Equal(t, "saldo", result.Errors[2].Column)
	assert.Len(t, result.ErrorMessages(), 3)
}

func TestValidateRow_SameColumnNameInTwoTables(t *testing.T) {
	v := newTestValidator()

	// pedidos.id is VARCHAR while clientes.id is INT.
	assert.True(t, v.ValidateRow("pedidos", types.DataRow{"id": "b3c1", "cliente_id": 1}).Valid)
	assert.False(t, v.ValidateRow("clientes", types.DataRow{"id": "b3c1"}).Valid)
}

func TestValidateRow_ResultsAreIndependent(t *testing.T) {
	v := newTestValidator()

	first := v.ValidateRow("clientes", types.DataRow{"id": nil})
	second := v.ValidateRow("clientes", types.DataRow{"id": 1})

	assert.Len(t, first.Errors, 1)
	assert.Empty(t, second.Errors)
}

func TestValidateRow_Concurrent(t *testing.T) {
	v := newTestValidator()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r := v.ValidateRow("clientes", types.DataRow{"id": i, "nome": "x"})
				assert.True(t, r.Valid)
				assert.Empty(t, r.Errors)
			} else {
				r := v.ValidateRow("clientes", types.DataRow{"id": nil, "nome": 1})
				assert.False(t, r.Valid)
				assert.Len(t, r.Errors, 2)
			}
		}(i)
	}
	wg.Wait()
}

func TestValidateType(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		column string
		value  any
		code   types.Code
	}{
		{name: "int ok", column: "id", value: int64(10), code: types.Ok},
		{name: "int rejects float", column: "id", value: 1.5, code: types.TypeMismatch},
		{name: "int rejects text", column: "id", value: "1", code: types.TypeMismatch},
		{name: "int rejects bool", column: "id", value: true, code: types.TypeMismatch},
		{name: "varchar ok", column: "nome", value: "Ana", code: types.Ok},
		{name: "varchar pointer ok", column: "nome", value: ptr("Ana"), code: types.Ok},
		{name: "decimal accepts float", column: "saldo", value: 10.5, code: types.Ok},
		{name: "decimal accepts int", column: "saldo", value: 10, code: types.Ok},
		{name: "decimal rejects text", column: "saldo", value: "10.5", code: types.TypeMismatch},
		{name: "date ok", column: "nascimento", value: "1990-05-17", code: types.Ok},
		{name: "datetime ok", column: "nascimento", value: "1990-05-17T10:30:00", code: types.Ok},
		{name: "datetime with zone ok", column: "nascimento", value: "1990-05-17T10:30:00Z", code: types.Ok},
		{name: "fractional seconds ok", column: "nascimento", value: "1990-05-17 10:30:00.123", code: types.Ok},
		{name: "datetime with space and minutes ok", column: "nascimento", value: "1990-05-17 10:30", code: types.Ok},
		{name: "basic date ok", column: "nascimento", value: "19900517", code: types.Ok},
		{name: "basic date with time ok", column: "nascimento", value: "19900517T10:30:00", code: types.Ok},
		{name: "datetime with offset ok", column: "nascimento", value: "1990-05-17T10:30:00.5+03:00", code: types.Ok},
		{name: "datetime with compact offset ok", column: "nascimento", value: "1990-05-17 10:30-0300", code: types.Ok},
		{name: "hour only ok", column: "nascimento", value: "1990-05-17T10", code: types.Ok},
		{name: "time value ok", column: "nascimento", value: fixedNow, code: types.Ok},
		{name: "invalid month", column: "nascimento", value: "1990-13-17", code: types.TypeMismatch},
		{name: "short basic date", column: "nascimento", value: "1990517", code: types.TypeMismatch},
		{name: "invalid date", column: "nascimento", value: "17/05/1990", code: types.TypeMismatch},
		{name: "date rejects int", column: "nascimento", value: 19900517, code: types.TypeMismatch},
		{name: "unknown type passes", column: "cpf", value: 12345678901, code: types.Ok},
		{name: "null passes", column: "nome", value: nil, code: types.Ok},
		{name: "missing column", column: "email", value: "a@b.c", code: types.ColumnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := v.ValidateType("clientes", tt.column, tt.value)
			if tt.code == types.Ok {
				assert.Nil(t, f)
				return
			}
			require.NotNil(t, f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, StatusError, f.Status)
		})
	}
}

func TestValidateNullability(t *testing.T) {
	v := newTestValidator()

	assert.Nil(t, v.ValidateNullability("clientes", "saldo", nil))
	assert.Nil(t, v.ValidateNullability("clientes", "nome", "Ana"))

	f := v.ValidateNullability("clientes", "nome", nil)
	require.NotNil(t, f)
	assert.Equal(t, types.NullNotAllowed, f.Code)

	var missing *string
	f = v.ValidateNullability("clientes", "nome", missing)
	require.NotNil(t, f, "typed nil pointers are null")

	f = v.ValidateNullability("clientes", "email", nil)
	require.NotNil(t, f)
	assert.Equal(t, types.ColumnNotFound, f.Code)
}

func TestValidatePrimaryKey(t *testing.T) {
	v := newTestValidator()

	assert.Nil(t, v.ValidatePrimaryKey("clientes", "id", 1))
	assert.Nil(t, v.ValidatePrimaryKey("clientes", "saldo", nil))

	f := v.ValidatePrimaryKey("clientes", "id", nil)
	require.NotNil(t, f)
	assert.Equal(t, types.PrimaryKeyNull, f.Code)
}

func TestLookupColumn_FirstMatchWins(t *testing.T) {
	v := newTestValidator()

	col, ok := v.LookupColumn("id")
	require.True(t, ok)
	assert.Equal(t, "clientes", col.Table)

	col, ok = v.Lookup("pedidos", "id")
	require.True(t, ok)
	assert.Equal(t, "VARCHAR(36)", col.Type)

	_, ok = v.Lookup("pedidos", "nome")
	assert.False(t, ok)
}

func TestValidateRows(t *testing.T) {
	v := newTestValidator()

	report := v.ValidateRows("clientes", []types.DataRow{
		{"id": 1, "nome": "Ana"},
		{"id": nil, "nome": "Bia"},
		{"id": 3, "nome": 42, "extra": true},
	})

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "clientes", report.Table)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 1, report.ValidRows)
	assert.Equal(t, 2, report.InvalidRows)
	assert.Equal(t, "33.33%", report.SuccessRate)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Equal(t, 3, report.Errors[1].Row)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, 3, report.Warnings[0].Row)
	assert.Equal(t, fixedNow, report.GeneratedAt)
	assert.True(t, report.HasErrors())
	assert.Len(t, report.FilterByCode(types.TypeMismatch), 1)
	extra := report.FilterByCode(types.ColumnNotInTable)
	require.Len(t, extra, 1)
	assert.Equal(t, 3, extra[0].Row)
	assert.Equal(t, StatusWarning, extra[0].Finding.Status)
	assert.Equal(t, "Validation of clientes: 3 rows (1 valid, 2 invalid, 33.33%)", report.String())
}

func TestValidateRows_Empty(t *testing.T) {
	v := newTestValidator()

	report := v.ValidateRows("clientes", nil)

	assert.Equal(t, 0, report.TotalRows)
	assert.Equal(t, "0%", report.SuccessRate)
	assert.Empty(t, report.Errors)
	assert.False(t, report.HasErrors())
}

func TestSuccessRate(t *testing.T) {
	assert.Equal(t, "0%", SuccessRate(0, 0))
	assert.Equal(t, "100.00%", SuccessRate(4, 4))
	assert.Equal(t, "66.67%", SuccessRate(2, 3))
}

func ptr[T any](v T) *T {
	return &v
}

func TestValidateRowsContext_Cancelled(t *testing.T) {
	v := newTestValidator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := v.ValidateRowsContext(ctx, "clientes", []types.DataRow{{"id": 1, "nome": "Ana"}})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Zero(t, report.TotalRows)
	assert.Equal(t, "0%", report.SuccessRate)
}
