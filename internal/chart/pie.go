// Package chart renders answer frequencies as annotated pie charts.
package chart

import (
	"fmt"
	"math"

	"survey-report/internal/survey"
)

// Slice is one wedge of a pie.
type Slice struct {
	Label   string
	Count   int
	Percent float64
	// Shown is the count printed on the wedge. It is re-derived from Percent rather
	// than copied from Count, so it can drift from Count by floating point rounding.
	Shown int
}

// Caption is the text drawn on the wedge.
func (s Slice) Caption() string {
	return fmt.Sprintf("%s: %.1f%% (%d)", s.Label, s.Percent, s.Shown)
}

type Pie struct {
	Title       string
	Respondents int
	Slices      []Slice
}

// NewPie builds a pie for table; it returns nil when the table has nothing to draw.
func NewPie(title string, table survey.FrequencyTable, respondents int) *Pie {
	total := table.Sum()
	if table.Len() == 0 || total == 0 {
		return nil
	}

	entries := table.Entries()
	slices := make([]Slice, 0, len(entries))
	for _, e := range entries {
		pct, shown := Annotate(e.Count, total)
		slices = append(slices, Slice{
			Label:   e.Label,
			Count:   e.Count,
			Percent: pct,
			Shown:   shown,
		})
	}

	return &Pie{
		Title:       title,
		Respondents: respondents,
		Slices:      slices,
	}
}

// Annotate returns the wedge percentage and the count recovered from it.
func Annotate(count, total int) (float64, int) {
	if total <= 0 {
		return 0, 0
	}
	pct := 100 * float64(count) / float64(total)
	return pct, int(math.RoundToEven(pct * float64(total) / 100))
}

// Heading is the chart title line including the respondent total.
func (p *Pie) Heading() string {
	return fmt.Sprintf("%s - Total de respondentes: %d", p.Title, p.Respondents)
}
