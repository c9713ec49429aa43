// Package report computes every question section of the survey report without
// touching any UI type.
package report

import (
	"context"
	"errors"

	"survey-report/internal/chart"
	"survey-report/internal/dataset"
	"survey-report/internal/logger"
	"survey-report/internal/survey"
	"survey-report/internal/timing"
)

// Section is one tab's worth of computed data. Pie is nil when the column could not
// be resolved or the answers produced an empty table.
type Section struct {
	Question survey.QuestionSpec
	Column   string
	Found    bool
	Result   survey.Result
	Pie      *chart.Pie
}

type Report struct {
	Source   string
	Rows     int
	Sections []Section
}

// Charts counts the sections that have something to draw.
func (r *Report) Charts() int {
	n := 0
	for _, s := range r.Sections {
		if s.Pie != nil {
			n++
		}
	}
	return n
}

type Builder struct {
	questions     []survey.QuestionSpec
	delimiter     string
	logger        logger.Logger
	timingTracker *timing.Tracker
}

func NewBuilder(questions []survey.QuestionSpec, delimiter string, log logger.Logger, tracker *timing.Tracker) *Builder {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if tracker == nil {
		tracker = timing.NewTracker(log)
	}
	if delimiter == "" {
		delimiter = survey.DefaultDelimiter
	}
	return &Builder{
		questions:     questions,
		delimiter:     delimiter,
		logger:        log,
		timingTracker: tracker,
	}
}

// Build aggregates every question in order. Unresolvable columns and empty tables are
// logged and produce a section without a pie; they never fail the build.
func (b *Builder) Build(ctx context.Context, ds *dataset.Dataset) (*Report, error) {
	ctx = b.timingTracker.StartTiming(ctx, timing.OpBuildReport)
	defer b.timingTracker.EndTiming(ctx)

	rep := &Report{
		Source:   ds.Source,
		Rows:     ds.Len(),
		Sections: make([]Section, 0, len(b.questions)),
	}

	for _, q := range b.questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rep.Sections = append(rep.Sections, b.section(ds, q))
	}

	b.logger.Info("Report", "report built", map[string]interface{}{
		"sections": len(rep.Sections),
		"charts":   rep.Charts(),
		"rows":     rep.Rows,
	})
	return rep, nil
}

func (b *Builder) section(ds *dataset.Dataset, q survey.QuestionSpec) Section {
	sec := Section{Question: q}

	res, err := survey.Aggregate(ds, q, b.delimiter)
	if err != nil {
		if errors.Is(err, survey.ErrColumnNotFound) {
			b.logger.Warning("Report", "column not found", map[string]interface{}{
				"tab":   q.TabLabel,
				"match": q.Match,
			})
		} else {
			b.logger.Error("Report", err, map[string]interface{}{"tab": q.TabLabel})
		}
		sec.Result = res
		return sec
	}

	sec.Found = true
	sec.Column = res.Column
	sec.Result = res
	sec.Pie = chart.NewPie(q.ChartTitle, res.Table, res.Respondents)

	if sec.Pie == nil {
		b.logger.Warning("Report", "no answers to chart", map[string]interface{}{
			"tab":    q.TabLabel,
			"column": res.Column,
		})
	} else {
		b.logger.Debug("Report", "section aggregated", map[string]interface{}{
			"tab":         q.TabLabel,
			"labels":      res.Table.Len(),
			"selections":  res.Table.Sum(),
			"respondents": res.Respondents,
		})
	}
	return sec
}
