// Package quality scores how well a data dictionary is documented.
package quality

import (
	"math"
	"strings"

	"github.com/nsxbet/datadict/pkg/types"
)

// Score is the overall documentation grade.
type Score string

const (
	ScoreExcellent        Score = "Excellent"
	ScoreGood             Score = "Good"
	ScoreNeedsImprovement Score = "NeedsImprovement"
)

const (
	excellentThreshold = 90.0
	goodThreshold      = 80.0
)

// documentedFields are the column attributes that count toward completeness.
var documentedFields = []func(types.ColumnDefinition) string{
	func(c types.ColumnDefinition) string { return c.Column },
	func(c types.ColumnDefinition) string { return c.Type },
	func(c types.ColumnDefinition) string { return c.Description },
	func(c types.ColumnDefinition) string { return c.Domain },
	func(c types.ColumnDefinition) string { return c.BusinessRule },
}

// DocumentationCompleteness returns the percentage of documented fields that
// are non-blank, rounded to 2 decimals.
func DocumentationCompleteness(col types.ColumnDefinition) float64 {
	filled := 0
	for _, field := range documentedFields {
		if strings.TrimSpace(field(col)) != "" {
			filled++
		}
	}
	return round2(float64(filled) / float64(len(documentedFields)) * 100)
}

// Report aggregates completeness over a dictionary.
type Report struct {
	AverageCompleteness       float64  `json:"averageCompleteness"       yaml:"averageCompleteness"`
	MinCompleteness           float64  `json:"minCompleteness"           yaml:"minCompleteness"`
	MaxCompleteness           float64  `json:"maxCompleteness"           yaml:"maxCompleteness"`
	StdDeviation              float64  `json:"stdDeviation"              yaml:"stdDeviation"`
	ColumnsNeedingImprovement []string `json:"columnsNeedingImprovement" yaml:"columnsNeedingImprovement"`
	QualityScore              Score    `json:"qualityScore"              yaml:"qualityScore"`
}

// DocumentationQuality computes completeness statistics. Columns scoring
// below 80 are listed by name. An empty dictionary scores NeedsImprovement
// with every statistic at zero.
func DocumentationQuality(cols []types.ColumnDefinition) Report {
	report := Report{
		ColumnsNeedingImprovement: []string{},
		QualityScore:              ScoreNeedsImprovement,
	}
	if len(cols) == 0 {
		return report
	}

	scores := make([]float64, len(cols))
	for i, col := range cols {
		scores[i] = DocumentationCompleteness(col)
		if scores[i] < goodThreshold {
			report.ColumnsNeedingImprovement = append(report.ColumnsNeedingImprovement, col.Column)
		}
	}

	mean, lo, hi := summarize(scores)
	report.AverageCompleteness = round2(mean)
	report.MinCompleteness = lo
	report.MaxCompleteness = hi
	report.StdDeviation = round2(sampleStdDev(scores, mean))
	report.QualityScore = grade(mean)
	return report
}

func grade(mean float64) Score {
	switch {
	case mean >= excellentThreshold:
		return ScoreExcellent
	case mean >= goodThreshold:
		return ScoreGood
	default:
		return ScoreNeedsImprovement
	}
}

func summarize(values []float64) (mean, lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	sum := 0.0
	for _, v := range values {
		sum += v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return sum / float64(len(values)), lo, hi
}

// sampleStdDev uses the n-1 denominator; fewer than two samples yield 0.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
