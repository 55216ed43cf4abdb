package catalog

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ColumnDocRow describes one export column.
type ColumnDocRow struct {
	Position  int    // 1-based
	Header    string // e.g. "Course Reference Number"
	SourceKey string // course object key, e.g. "courseReferenceNumber"
	ValueType string // Text, Whole number, Decimal number, Boolean
}

type ColumnDocumentation struct {
	Rows []ColumnDocRow
}

// DescribeColumns documents Columns in export order.
func DescribeColumns() ColumnDocumentation {
	doc := ColumnDocumentation{Rows: make([]ColumnDocRow, 0, len(Columns))}
	for i, c := range Columns {
		doc.Rows = append(doc.Rows, ColumnDocRow{
			Position:  i + 1,
			Header:    c.Header,
			SourceKey: c.Key,
			ValueType: c.Kind.String(),
		})
	}
	return doc
}

// DocHeaders are the column headings used when rendering the documentation.
var DocHeaders = []string{"#", "Export Column", "Source Key", "Value Type"}

// FormatCSV formats the column documentation as CSV.
func (d ColumnDocumentation) FormatCSV() (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(DocHeaders); err != nil {
		return "", err
	}
	for _, row := range d.Rows {
		record := []string{strconv.Itoa(row.Position), row.Header, row.SourceKey, row.ValueType}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
