// Package sensitivity groups dictionary columns by data-protection level and
// summarizes compliance requirements.
package sensitivity

import (
	"github.com/nsxbet/datadict/pkg/types"
)

// Compliance status values.
const (
	StatusOK                = "OK"
	StatusRequiresAttention = "RequiresAttention"
)

// Levels are the classified levels reported by ClassifyBySensitivity.
var Levels = []types.Sensitivity{
	types.Sensitivity_HIGH,
	types.Sensitivity_MEDIUM,
	types.Sensitivity_LOW,
}

// ClassifyBySensitivity returns column names grouped by High, Medium and Low.
// Unclassified columns are left out. All three keys are always present.
func ClassifyBySensitivity(columns []types.ColumnDefinition) map[types.Sensitivity][]string {
	classified := make(map[types.Sensitivity][]string, len(Levels))
	for _, level := range Levels {
		classified[level] = []string{}
	}
	for _, col := range columns {
		if names, ok := classified[col.Sensitivity]; ok {
			classified[col.Sensitivity] = append(names, col.Column)
		}
	}
	return classified
}

// Compliance summarizes the high-sensitivity columns of a dictionary.
type Compliance struct {
	TotalColumns         int      `json:"totalColumns"         yaml:"totalColumns"`
	SensitiveColumnCount int      `json:"sensitiveColumnCount" yaml:"sensitiveColumnCount"`
	SensitiveColumnNames []string `json:"sensitiveColumnNames" yaml:"sensitiveColumnNames"`
	RequiresEncryption   bool     `json:"requiresEncryption"   yaml:"requiresEncryption"`
	Status               string   `json:"status"               yaml:"status"`
}

// ComplianceReport lists the High columns; any such column requires attention.
func ComplianceReport(columns []types.ColumnDefinition) Compliance {
	report := Compliance{
		TotalColumns:         len(columns),
		SensitiveColumnNames: []string{},
		Status:               StatusOK,
	}
	for _, col := range columns {
		if col.Sensitivity == types.Sensitivity_HIGH {
			report.SensitiveColumnNames = append(report.SensitiveColumnNames, col.Column)
		}
	}
	report.SensitiveColumnCount = len(report.SensitiveColumnNames)
	report.RequiresEncryption = report.SensitiveColumnCount > 0
	if report.RequiresEncryption {
		report.Status = StatusRequiresAttention
	}
	return report
}
