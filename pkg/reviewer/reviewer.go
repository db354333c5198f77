// Package reviewer provides a high-level API over a data dictionary.
//
// It ties the validator, analytics, sensitivity, quality, documentation and
// rendering packages together behind a single type, making it easy to embed
// dictionary checks into Go applications.
//
// # Quick Start
//
//	r, err := reviewer.NewFromFile("dictionary.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Validate rows
//	report, err := r.ValidateRows(ctx, "clientes", rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report)
//
//	// Analyse the dictionary itself
//	result := r.Analyze()
//	fmt.Println(result)
//
// # Writing Documents
//
//	paths, err := r.WriteDocuments("./reports", nil)
//	for format, path := range paths {
//	    fmt.Printf("%s: %s\n", format, path)
//	}
package reviewer

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/nsxbet/datadict/pkg/analytics"
	"github.com/nsxbet/datadict/pkg/config"
	"github.com/nsxbet/datadict/pkg/ddlparser"
	"github.com/nsxbet/datadict/pkg/docs"
	"github.com/nsxbet/datadict/pkg/quality"
	"github.com/nsxbet/datadict/pkg/render"
	"github.com/nsxbet/datadict/pkg/sensitivity"
	"github.com/nsxbet/datadict/pkg/types"
	"github.com/nsxbet/datadict/pkg/validator"
)

// Reviewer provides a high-level API for data dictionary operations.
// It is built once from a set of column definitions.
//
// Reviewer is safe for concurrent use by multiple goroutines.
type Reviewer struct {
	name      string
	columns   []types.ColumnDefinition
	validator *validator.Validator
	engine    *analytics.Engine
	docs      *docs.Builder
	opts      *options
}

// New creates a Reviewer for the given column definitions.
//
// Example:
//
//	r := reviewer.New(dict.Columns, reviewer.WithDestinations("Lakehouse"))
func New(columns []types.ColumnDefinition, opts ...Option) *Reviewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var docOpts []docs.Option
	if o.destinations != nil {
		docOpts = append(docOpts, docs.WithDestinations(o.destinations...))
	}

	cols := append([]types.ColumnDefinition(nil), columns...)
	return &Reviewer{
		columns:   cols,
		validator: validator.New(cols, validator.WithClock(o.now)),
		engine:    analytics.New(cols, analytics.WithClock(o.now)),
		docs:      docs.New(cols, docOpts...),
		opts:      o,
	}
}

// NewDictionary creates a Reviewer for a loaded dictionary, keeping its name.
func NewDictionary(dict *types.Dictionary, opts ...Option) *Reviewer {
	r := New(dict.Columns, opts...)
	r.name = dict.Name
	return r
}

// NewFromFile loads a dictionary from a YAML or JSON file and creates a
// Reviewer for it.
//
// Returns an error if the file cannot be read, parsed or validated.
func NewFromFile(filename string, opts ...Option) (*Reviewer, error) {
	dict, err := config.LoadDictionary(filename)
	if err != nil {
		return nil, err
	}
	return NewDictionary(dict, opts...), nil
}

// Name returns the dictionary name, which may be empty.
func (r *Reviewer) Name() string {
	return r.name
}

// Columns returns a copy of the column definitions.
func (r *Reviewer) Columns() []types.ColumnDefinition {
	return append([]types.ColumnDefinition(nil), r.columns...)
}

// Engine returns the analytics engine over the dictionary.
func (r *Reviewer) Engine() *analytics.Engine {
	return r.engine
}

// ValidateRow validates a single row of table.
func (r *Reviewer) ValidateRow(table string, row types.DataRow) *validator.ValidationResult {
	return r.validator.ValidateRow(table, row)
}

// ValidateRows validates rows of table.
//
// The context parameter supports cancellation and timeouts. Validation stops
// between rows when the context is cancelled, returning the partial report
// together with ctx.Err().
func (r *Reviewer) ValidateRows(ctx context.Context, table string, rows []types.DataRow) (*validator.Report, error) {
	slog.Debug("Validating rows", "table", table, "rows", len(rows))
	report, err := r.validator.ValidateRowsContext(ctx, table, rows)
	if err != nil {
		slog.Debug("Validation interrupted", "table", table, "validated", report.TotalRows, "error", err)
		return report, err
	}
	slog.Debug("Validated rows", "table", table, "valid", report.ValidRows, "invalid", report.InvalidRows)
	return report, nil
}

// Analyze runs every dictionary-level analysis.
func (r *Reviewer) Analyze() *AnalysisResult {
	report := r.engine.FullReport()
	q := quality.DocumentationQuality(r.columns)
	return &AnalysisResult{
		Dictionary:  r.name,
		Report:      report,
		Sensitivity: sensitivity.ClassifyBySensitivity(r.columns),
		Compliance:  sensitivity.ComplianceReport(r.columns),
		Quality:     q,
		Entities:    r.docs.EntityRelationship(),
		Lineage:     r.docs.Lineage(),
		Summary: Summary{
			Tables:             report.GeneralStatistics.TableCount,
			Columns:            report.GeneralStatistics.ColumnCount,
			HighSensitivity:    report.SensitivityDistribution.HighSensitivityCount,
			RequiresProtection: report.SensitivityDistribution.RequiresProtectionCount,
			QualityScore:       q.QualityScore,
		},
	}
}

// Quality scores the documentation of the dictionary.
func (r *Reviewer) Quality() quality.Report {
	return quality.DocumentationQuality(r.columns)
}

// TableDetail returns the breakdown of a single table.
func (r *Reviewer) TableDetail(table string) analytics.TableDetailResult {
	return r.engine.TableDetail(table)
}

// CheckDDL renders the dictionary as MySQL DDL and parses it back.
func (r *Reviewer) CheckDDL() (*ddlparser.Result, error) {
	var buf bytes.Buffer
	if err := render.DDL(&buf, r.columns); err != nil {
		return nil, err
	}
	result, err := ddlparser.Check(buf.String())
	if err != nil {
		return nil, errors.Wrap(err, "generated DDL does not parse")
	}
	return result, nil
}

// WriteDocuments writes the dictionary in each of formats into dir and
// returns the path written per format. A nil formats list writes every
// format. When the DDL check is enabled and DDL is among the formats, the
// generated script is parsed first and nothing is written if it fails.
func (r *Reviewer) WriteDocuments(dir string, formats []string) (map[string]string, error) {
	if r.opts.checkDDL && wantsDDL(formats) {
		if _, err := r.CheckDDL(); err != nil {
			return nil, err
		}
	}
	return render.WriteAll(dir, r.columns, formats, r.opts.now())
}

func wantsDDL(formats []string) bool {
	if len(formats) == 0 {
		return true
	}
	for _, f := range formats {
		if f == render.FormatDDL {
			return true
		}
	}
	return false
}
