package validator

import (
	"fmt"
	"time"

	"github.com/nsxbet/datadict/pkg/types"
)

// Status is the severity of a finding.
type Status int32

const (
	StatusUnspecified Status = 0
	StatusWarning     Status = 2
	StatusError       Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "WARNING"
	case StatusError:
		return "ERROR"
	default:
		return "UNSPECIFIED"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is a single problem found while validating a value.
type Finding struct {
	Status  Status     `json:"status"             yaml:"status"`
	Code    types.Code `json:"code"               yaml:"code"`
	Table   string     `json:"table,omitempty"    yaml:"table,omitempty"`
	Column  string     `json:"column"             yaml:"column"`
	Message string     `json:"message"            yaml:"message"`
	// Expected and Actual are set for TypeMismatch findings.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"   yaml:"actual,omitempty"`
}

func (f *Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Status, f.Code, f.Message)
}

// ValidationResult is the outcome of validating one row.
//
// Valid is true iff Errors is empty; warnings never affect validity.
type ValidationResult struct {
	Valid     bool       `json:"valid"     yaml:"valid"`
	Errors    []*Finding `json:"errors"    yaml:"errors"`
	Warnings  []*Finding `json:"warnings"  yaml:"warnings"`
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
}

// HasErrors returns true if the row produced any error.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if the row produced any warning.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// ErrorMessages returns the error messages in order.
func (r *ValidationResult) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the warning messages in order.
func (r *ValidationResult) WarningMessages() []string {
	return messages(r.Warnings)
}

func messages(findings []*Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

// RowFinding ties a finding to its 1-based row number.
type RowFinding struct {
	Row     int      `json:"row"     yaml:"row"`
	Finding *Finding `json:"finding" yaml:"finding"`
}

// Report aggregates the validation of many rows of one table.
type Report struct {
	ID          string       `json:"id"          yaml:"id"`
	Table       string       `json:"table"       yaml:"table"`
	TotalRows   int          `json:"totalRows"   yaml:"totalRows"`
	ValidRows   int          `json:"validRows"   yaml:"validRows"`
	InvalidRows int          `json:"invalidRows" yaml:"invalidRows"`
	SuccessRate string       `json:"successRate" yaml:"successRate"`
	Errors      []RowFinding `json:"errors"      yaml:"errors"`
	Warnings    []RowFinding `json:"warnings"    yaml:"warnings"`
	GeneratedAt time.Time    `json:"generatedAt" yaml:"generatedAt"`
}

// HasErrors returns true if any row was invalid.
//
//	if report.HasErrors() {
//	    os.Exit(1)
//	}
func (r *Report) HasErrors() bool {
	return r.InvalidRows > 0
}

// HasWarnings returns true if any row produced a warning.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a one-line summary.
//
// Example output:
//
//	Validation of clientes: 3 rows (2 valid, 1 invalid, 66.67%)
func (r *Report) String() string {
	return fmt.Sprintf(
		"Validation of %s: %d rows (%d valid, %d invalid, %s)",
		r.Table,
		r.TotalRows,
		r.ValidRows,
		r.InvalidRows,
		r.SuccessRate,
	)
}

// FilterByCode returns the row findings carrying the given code, errors
// first and then warnings.
//
//	mismatches := report.FilterByCode(types.TypeMismatch)
func (r *Report) FilterByCode(code types.Code) []RowFinding {
	filtered := make([]RowFinding, 0)
	for _, findings := range [][]RowFinding{r.Errors, r.Warnings} {
		for _, rf := range findings {
			if rf.Finding.Code == code {
				filtered = append(filtered, rf)
			}
		}
	}
	return filtered
}

// SuccessRate formats valid/total as a percentage with two decimals,
// or "0%" when there are no rows.
func SuccessRate(valid, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(valid)/float64(total)*100)
}
