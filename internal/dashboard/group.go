package dashboard

import (
	"github.com/goldrock/minelines/internal/sheet"
)

// Line is one mining line's bucket in the dashboard document. LineName and
// Location are taken from the first record encountered for the line; later
// records never override them.
type Line struct {
	LineID   string          `json:"line_id"`
	LineName string          `json:"line_name"`
	Location string          `json:"location"`
	Records  []*sheet.Record `json:"records"`
}

// Document is the dashboard data file content.
type Document struct {
	Lines []*Line `json:"lines"`
}

// Group buckets records by their line_id value, preserving both the record
// order within a line and the first-encounter order of the lines themselves.
// A record whose line_id column is absent groups under UnknownLine; an empty
// line_id cell is a valid key in its own right and is not coerced to the
// sentinel.
func Group(records []*sheet.Record) *Document {
	index := map[string]*Line{}
	doc := &Document{
		Lines: []*Line{},
	}

	for _, r := range records {
		id := UnknownLine
		if v, ok := r.Get(FieldLineID); ok {
			id = v
		}

		line, ok := index[id]
		if !ok {
			name, _ := r.Get(FieldLineName)
			location, _ := r.Get(FieldLocation)

			line = &Line{
				LineID:   id,
				LineName: name,
				Location: location,
				Records:  []*sheet.Record{},
			}

			index[id] = line
			doc.Lines = append(doc.Lines, line)
		}

		line.Records = append(line.Records, r)
	}

	return doc
}
