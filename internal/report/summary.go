package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"survey-report/internal/survey"
)

type SectionSummary struct {
	Tab         string         `json:"tab" yaml:"tab"`
	Title       string         `json:"title" yaml:"title"`
	Column      string         `json:"column,omitempty" yaml:"column,omitempty"`
	Found       bool           `json:"found" yaml:"found"`
	Multiple    bool           `json:"multiple" yaml:"multiple"`
	Respondents int            `json:"respondents" yaml:"respondents"`
	Selections  int            `json:"selections" yaml:"selections"`
	Answers     []survey.Entry `json:"answers,omitempty" yaml:"answers,omitempty"`
}

type Summary struct {
	Source   string           `json:"source" yaml:"source"`
	Rows     int              `json:"rows" yaml:"rows"`
	Sections []SectionSummary `json:"sections" yaml:"sections"`
}

func (r *Report) Summary() Summary {
	out := Summary{
		Source:   r.Source,
		Rows:     r.Rows,
		Sections: make([]SectionSummary, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		ss := SectionSummary{
			Tab:      s.Question.TabLabel,
			Title:    s.Question.ChartTitle,
			Column:   s.Column,
			Found:    s.Found,
			Multiple: s.Question.Multiple,
		}
		if s.Found {
			ss.Respondents = s.Result.Respondents
			ss.Selections = s.Result.Table.Sum()
			ss.Answers = s.Result.Table.Entries()
		}
		out.Sections = append(out.Sections, ss)
	}
	return out
}

// WriteSummary encodes the summary as "yaml" or "json".
func (r *Report) WriteSummary(w io.Writer, format string) error {
	sum := r.Summary()
	switch format {
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}
