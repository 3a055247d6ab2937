// Package sheet converts the raw cell grid returned by an upstream worksheet
// into typed records keyed by the header row.
package sheet

// Grid is the raw worksheet content - a header row followed by zero or more
// data rows. Rows are not required to be rectangular.
type Grid [][]string

// Materialize builds one Record per data row, pairing each header field with
// the corresponding cell positionally. Rows shorter than the header are
// padded on the right with empty cells so every record carries exactly the
// header's field set; cells beyond the header length are dropped. The header
// is used verbatim - duplicate header names are not rejected and collapse to
// a single field (last value wins).
func Materialize(grid Grid) []*Record {
	records := []*Record{}

	if len(grid) == 0 {
		return records
	}

	header := grid[0]
	for _, row := range grid[1:] {
		record := NewRecord()
		for i, field := range header {
			v := ""
			if i < len(row) {
				v = row[i]
			}

			record.Set(field, v)
		}

		records = append(records, record)
	}

	return records
}
