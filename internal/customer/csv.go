package customer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dhruvbhat/kagaz/internal/textenc"
)

// csvColumns maps recognized header names to CreateParams fields. Headers
// are matched case-insensitively after trimming.
var csvColumns = map[string]int{
	"name": 0, "customer": 0, "customer name": 0,
	"phone": 1, "mobile": 1, "tel": 1,
	"email": 2, "e-mail": 2,
	"address": 3,
}

// ParseCSV reads a customer list export. The file may be in any encoding
// textenc can detect; the first row must be a header containing at least a
// name column.
func ParseCSV(r io.Reader) ([]CreateParams, error) {
	utf8r, err := textenc.UTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	fields, ok := mapHeader(rows[0])
	if !ok {
		return nil, fmt.Errorf("header row has no name column")
	}

	var params []CreateParams

	for _, row := range rows[1:] {
		var p CreateParams

		for i, cell := range row {
			switch fields[i] {
			case 0:
				p.Name = strings.TrimSpace(cell)
			case 1:
				p.Phone = strings.TrimSpace(cell)
			case 2:
				p.Email = strings.TrimSpace(cell)
			case 3:
				p.Address = strings.TrimSpace(cell)
			}
		}

		if p.Name != "" {
			params = append(params, p)
		}
	}

	return params, nil
}

// mapHeader resolves each header cell to a field index, -1 for unknown
// columns. Reports whether a name column is present.
func mapHeader(header []string) (map[int]int, bool) {
	fields := make(map[int]int, len(header))
	hasName := false

	for i, cell := range header {
		field, ok := csvColumns[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			fields[i] = -1
			continue
		}

		fields[i] = field
		if field == 0 {
			hasName = true
		}
	}

	return fields, hasName
}
