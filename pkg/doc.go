// Package pkg provides data dictionary tooling for Go applications.
//
// A data dictionary is a list of column definitions (table, column, type,
// description, domain, business rule, example, sensitivity, primary key and
// nullability). The packages below validate rows against it, analyse it and
// render it as documentation.
//
// # Package Structure
//
//   - reviewer: High-level API combining everything below (recommended starting point)
//   - types: Column definitions, sensitivity levels and finding codes
//   - normalize: Base types, business-rule categories and value kinds shared by the analyses
//   - validator: Row validation with per-field findings and aggregated reports
//   - sensitivity: Sensitivity grouping and compliance summary
//   - analytics: Dictionary statistics, distributions and table comparison
//   - quality: Documentation completeness scoring
//   - docs: Entity-relationship outline and data lineage
//   - render: CSV, HTML, Markdown, JSON, YAML and MySQL DDL output
//   - ddlparser: ANTLR-based MySQL parser used to check generated DDL
//   - config: Dictionary and row file loading, CLI settings
//   - sample: Embedded example dictionary
//   - logger: Logging abstraction layer
//
// # Getting Started
//
//	r, err := reviewer.NewFromFile("dictionary.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := r.ValidateRows(ctx, "clientes", rows)
//	fmt.Println(report)
//
// # Thread Safety
//
// Validators, analytics engines and reviewers are immutable after
// construction and safe for concurrent use.
//
// # Error Handling
//
// Data-quality problems are returned as findings inside results. Go errors
// are reserved for unreadable or malformed input files, DDL that fails to
// parse and cancelled contexts.
package pkg
