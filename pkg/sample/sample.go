// Package sample ships a small insurance dictionary and matching rows, used by
// the CLI when no dictionary file is given.
package sample

import (
	_ "embed"

	"github.com/nsxbet/datadict/pkg/config"
	"github.com/nsxbet/datadict/pkg/types"
)

// Table is the only table of the sample dictionary.
const Table = "clientes_seguros"

//go:embed clientes_seguros.yaml
var dictionaryYAML []byte

//go:embed rows.yaml
var rowsYAML []byte

// Dictionary returns a fresh copy of the sample dictionary.
func Dictionary() *types.Dictionary {
	dict, err := config.ParseDictionary(dictionaryYAML)
	if err != nil {
		panic("sample: embedded dictionary is invalid: " + err.Error())
	}
	return dict
}

// Rows returns sample rows for Table. The last row has a null primary key and
// a numeric name, so it fails validation.
func Rows() []types.DataRow {
	rows, err := config.ParseRows(rowsYAML)
	if err != nil {
		panic("sample: embedded rows are invalid: " + err.Error())
	}
	return rows
}
