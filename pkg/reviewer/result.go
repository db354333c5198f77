package reviewer

import (
	"fmt"

	"github.com/nsxbet/datadict/pkg/analytics"
	"github.com/nsxbet/datadict/pkg/docs"
	"github.com/nsxbet/datadict/pkg/quality"
	"github.com/nsxbet/datadict/pkg/sensitivity"
	"github.com/nsxbet/datadict/pkg/types"
)

// AnalysisResult gathers every dictionary-level analysis.
//
// It is what the report command prints and what library users get from
// Reviewer.Analyze.
type AnalysisResult struct {
	// Dictionary is the name of the analysed dictionary, if any.
	Dictionary string `json:"dictionary,omitempty" yaml:"dictionary,omitempty"`

	// Report holds statistics, distributions, rule analysis and table comparison.
	Report *analytics.FullReport `json:"report" yaml:"report"`

	// Sensitivity lists column names per sensitivity level.
	Sensitivity map[types.Sensitivity][]string `json:"sensitivity" yaml:"sensitivity"`

	// Compliance is the data-protection compliance summary.
	Compliance sensitivity.Compliance `json:"compliance" yaml:"compliance"`

	// Quality scores how well the dictionary is documented.
	Quality quality.Report `json:"quality" yaml:"quality"`

	// Entities outlines each table for an entity-relationship diagram.
	Entities map[string]*docs.Entity `json:"entities" yaml:"entities"`

	// Lineage describes sources, derived columns and destinations.
	Lineage docs.Lineage `json:"lineage" yaml:"lineage"`

	// Summary provides the headline numbers.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary provides the headline numbers of an analysis.
type Summary struct {
	// Tables is the number of distinct tables.
	Tables int `json:"tables" yaml:"tables"`

	// Columns is the number of column definitions.
	Columns int `json:"columns" yaml:"columns"`

	// HighSensitivity is the number of High sensitivity columns.
	HighSensitivity int `json:"highSensitivity" yaml:"highSensitivity"`

	// RequiresProtection counts High and Medium columns.
	RequiresProtection int `json:"requiresProtection" yaml:"requiresProtection"`

	// QualityScore is the documentation grade.
	QualityScore quality.Score `json:"qualityScore" yaml:"qualityScore"`
}

// RequiresAttention returns true if the dictionary holds High sensitivity
// columns.
//
// CI pipelines can use it to demand an encryption review:
//
//	if result.RequiresAttention() {
//	    os.Exit(1)
//	}
func (r *AnalysisResult) RequiresAttention() bool {
	return r.Compliance.Status == sensitivity.StatusRequiresAttention
}

// IsWellDocumented returns true if no column needs documentation work.
func (r *AnalysisResult) IsWellDocumented() bool {
	return len(r.Quality.ColumnsNeedingImprovement) == 0
}

// String returns a human-readable summary of the analysis.
//
// Example output:
//
//	Analysis: 2 tables, 9 columns (3 high sensitivity, 5 requiring protection, quality Good)
func (r *AnalysisResult) String() string {
	return fmt.Sprintf(
		"Analysis: %d tables, %d columns (%d high sensitivity, %d requiring protection, quality %s)",
		r.Summary.Tables,
		r.Summary.Columns,
		r.Summary.HighSensitivity,
		r.Summary.RequiresProtection,
		r.Summary.QualityScore,
	)
}
