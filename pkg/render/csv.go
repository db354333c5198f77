package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/nsxbet/datadict/pkg/types"
)

var csvHeader = []string{
	"table", "column", "type", "description", "domain", "businessRule",
	"example", "sensitivity", "primaryKey", "nullable",
}

// CSV writes one record per column, preceded by a header.
func CSV(w io.Writer, columns []types.ColumnDefinition) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, col := range columns {
		record := []string{
			col.Table,
			col.Column,
			col.Type,
			col.Description,
			col.Domain,
			col.BusinessRule,
			col.Example,
			col.Sensitivity.String(),
			strconv.FormatBool(col.IsPrimaryKey),
			strconv.FormatBool(col.IsNullable),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write CSV record for %s", col.QualifiedName())
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}
