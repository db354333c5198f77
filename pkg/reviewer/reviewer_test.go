package reviewer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsxbet/datadict/pkg/quality"
	"github.com/nsxbet/datadict/pkg/render"
	"github.com/nsxbet/datadict/pkg/sample"
	"github.com/nsxbet/datadict/pkg/types"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newSampleReviewer(opts ...Option) *Reviewer {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewDictionary(sample.Dictionary(), opts...)
}

func TestNewDictionary(t *testing.T) {
	r := newSampleReviewer()

	assert.Equal(t, sample.Table, r.Name())
	assert.Len(t, r.Columns(), 5)
	assert.Equal(t, []string{sample.Table}, r.Engine().TableNames())
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {table: t, column: id, type: INT, primaryKey: true}\n"), 0o644))

	r, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dict", r.Name())
	assert.Len(t, r.Columns(), 1)
}

func TestNewFromFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {table: t, column: id}\n- {table: t, column: id}\n"), 0o644))

	_, err := NewFromFile(path)
	require.Error(t, err)
}

func TestValidateRows(t *testing.T) {
	r := newSampleReviewer()

	report, err := r.ValidateRows(context.Background(), sample.Table, sample.Rows())
	require.NoError(t, err)

	assert.Equal(t, sample.Table, report.Table)
	assert.Equal(t, 3, report.TotalRows)
	assert.Equal(t, 2, report.ValidRows)
	assert.Equal(t, 1, report.InvalidRows)
	assert.Equal(t, "66.67%", report.SuccessRate)
	assert.Equal(t, fixedNow, report.GeneratedAt)

	assert.Len(t, report.FilterByCode(types.PrimaryKeyNull), 1)
	assert.Len(t, report.FilterByCode(types.TypeMismatch), 1)
	// tipo_seguro is not part of the dictionary.
	require.Len(t, report.FilterByCode(types.ColumnNotInTable), 1)
	assert.Equal(t, 1, report.FilterByCode(types.ColumnNotInTable)[0].Row)
}

func TestValidateRows_Cancelled(t *testing.T) {
	r := newSampleReviewer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.ValidateRows(ctx, sample.Table, sample.Rows())

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Zero(t, report.TotalRows)
}

func TestValidateRow(t *testing.T) {
	r := newSampleReviewer()

	result := r.ValidateRow(sample.Table, types.DataRow{"id_cliente": 10, "nome_cliente": "Ana", "cpf": "1"})

	assert.True(t, result.Valid)
	assert.Equal(t, fixedNow, result.Timestamp)
}

func TestAnalyze(t *testing.T) {
	r := newSampleReviewer(WithDestinations("Lakehouse"))

	result := r.Analyze()

	assert.Equal(t, sample.Table, result.Dictionary)
	assert.Equal(t, Summary{
		Tables:             1,
		Columns:            5,
		HighSensitivity:    2,
		RequiresProtection: 4,
		QualityScore:       quality.ScoreExcellent,
	}, result.Summary)
	assert.Equal(t, fixedNow, result.Report.GeneratedAt)
	assert.Equal(t, []string{"nome_cliente", "cpf"}, result.Sensitivity[types.Sensitivity_HIGH])
	assert.True(t, result.RequiresAttention())
	assert.True(t, result.IsWellDocumented())
	assert.Equal(t, []string{"id_cliente"}, result.Entities[sample.Table].PrimaryKeys)
	assert.Equal(t, []string{"Lakehouse"}, result.Lineage.Destinations)
	assert.Equal(t, []string{
		"id_cliente - Gerado pelo sistema",
		"score_risco - Calculado por modelo atuarial",
	}, result.Lineage.Transformations)
	assert.Equal(t,
		"Analysis: 1 tables, 5 columns (2 high sensitivity, 4 requiring protection, quality Excellent)",
		result.String())
}

func TestAnalyze_Empty(t *testing.T) {
	result := New(nil).Analyze()

	assert.Zero(t, result.Summary.Tables)
	assert.Equal(t, quality.ScoreNeedsImprovement, result.Summary.QualityScore)
	assert.False(t, result.RequiresAttention())
}

func TestTableDetail(t *testing.T) {
	r := newSampleReviewer()

	assert.True(t, r.TableDetail(sample.Table).Found())

	missing := r.TableDetail("sinistros")
	require.False(t, missing.Found())
	assert.Equal(t, types.TableNotFound, missing.NotFound.Code)
}

func TestCheckDDL(t *testing.T) {
	result, err := newSampleReviewer().CheckDDL()
	require.NoError(t, err)

	require.Len(t, result.Tables, 1)
	assert.Equal(t, sample.Table, result.Tables[0].Name)
	assert.Equal(t, []string{"id_cliente"}, result.Tables[0].PrimaryKey)
	assert.Len(t, result.Tables[0].Columns, 5)
}

func TestWriteDocuments(t *testing.T) {
	dir := t.TempDir()

	paths, err := newSampleReviewer().WriteDocuments(dir, nil)
	require.NoError(t, err)

	assert.Len(t, paths, len(render.Formats))
	data, err := os.ReadFile(paths[render.FormatDDL])
	require.NoError(t, err)
	assert.Contains(t, string(data), "CREATE TABLE `clientes_seguros`")
}

func TestWriteDocuments_WithoutDDLCheck(t *testing.T) {
	dir := t.TempDir()

	paths, err := newSampleReviewer(WithDDLCheck(false)).WriteDocuments(dir, []string{render.FormatCSV})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{render.FormatCSV: filepath.Join(dir, "data_dictionary.csv")}, paths)
}

func TestReviewer_ConcurrentUse(t *testing.T) {
	r := newSampleReviewer()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = r.ValidateRows(context.Background(), sample.Table, sample.Rows())
			_ = r.Analyze()
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
