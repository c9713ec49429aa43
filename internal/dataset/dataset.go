// Package dataset holds the in-memory survey table and the spreadsheet loaders
// that produce it.
package dataset

import "fmt"

// Cell is one spreadsheet value; Present is false for blank or absent cells.
type Cell struct {
	Value   string
	Present bool
}

func Missing() Cell { return Cell{} }

func Text(v string) Cell { return Cell{Value: v, Present: true} }

// Row maps a column header to its cell.
type Row map[string]Cell

// Dataset is an ordered, read-only table of survey responses.
type Dataset struct {
	Source  string
	headers []string
	rows    []Row
}

// New builds a Dataset from a header row and raw string records. Empty strings and
// records shorter than the header become missing cells.
func New(source string, headers []string, records [][]string) *Dataset {
	hs := normalizeHeaders(headers)

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(hs))
		for i, h := range hs {
			if i < len(rec) && rec[i] != "" {
				row[h] = Text(rec[i])
			} else {
				row[h] = Missing()
			}
		}
		rows = append(rows, row)
	}

	return &Dataset{Source: source, headers: hs, rows: rows}
}

// Headers returns a copy of the column headers in sheet order.
func (d *Dataset) Headers() []string {
	out := make([]string, len(d.headers))
	copy(out, d.headers)
	return out
}

func (d *Dataset) Len() int { return len(d.rows) }

// Column returns the cells of the named column in row order.
func (d *Dataset) Column(name string) ([]Cell, bool) {
	found := false
	for _, h := range d.headers {
		if h == name {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	cells := make([]Cell, len(d.rows))
	for i, row := range d.rows {
		cells[i] = row[name]
	}
	return cells, true
}

// normalizeHeaders names blank headers Column_N and disambiguates duplicates the way
// pandas does (Header, Header.1, ...).
func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	used := make(map[string]bool, len(headers))
	suffix := make(map[string]int, len(headers))
	for i, h := range headers {
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		// A duplicate takes the next free ".N" name, skipping names already taken by
		// other headers, so every column stays addressable.
		if used[h] {
			base := h
			for n := suffix[base] + 1; ; n++ {
				h = fmt.Sprintf("%s.%d", base, n)
				if !used[h] {
					suffix[base] = n
					break
				}
			}
		}
		used[h] = true
		out[i] = h
	}
	return out
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}
