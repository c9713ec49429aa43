// Package survey turns dataset columns into per-question answer frequencies.
package survey

import (
	"sort"
	"strings"

	"survey-report/internal/dataset"
)

const DefaultDelimiter = ";"

// FrequencyTable maps an answer label to the number of times it was given.
type FrequencyTable map[string]int

type Entry struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

func (ft FrequencyTable) Len() int { return len(ft) }

func (ft FrequencyTable) Sum() int {
	total := 0
	for _, n := range ft {
		total += n
	}
	return total
}

// Entries lists the table by descending count, ties broken by label.
func (ft FrequencyTable) Entries() []Entry {
	out := make([]Entry, 0, len(ft))
	for label, n := range ft {
		out = append(out, Entry{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// CountValues tallies exact cell values; missing cells are skipped.
func CountValues(cells []dataset.Cell) FrequencyTable {
	ft := make(FrequencyTable)
	for _, c := range cells {
		if !c.Present {
			continue
		}
		ft[c.Value]++
	}
	return ft
}

// Tokenize splits every present cell on delimiter and tallies the trimmed, non-empty
// pieces. A respondent choosing several options contributes one count per option.
func Tokenize(cells []dataset.Cell, delimiter string) FrequencyTable {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	ft := make(FrequencyTable)
	for _, c := range cells {
		if !c.Present {
			continue
		}
		for _, part := range strings.Split(c.Value, delimiter) {
			if token := strings.TrimSpace(part); token != "" {
				ft[token]++
			}
		}
	}
	return ft
}

// Respondents counts the present cells of a column.
func Respondents(cells []dataset.Cell) int {
	n := 0
	for _, c := range cells {
		if c.Present {
			n++
		}
	}
	return n
}

// ResolveColumn returns the first header containing substring, case-insensitively.
func ResolveColumn(headers []string, substring string) (string, bool) {
	needle := strings.ToLower(substring)
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), needle) {
			return h, true
		}
	}
	return "", false
}
