package app

import (
	"fyne.io/fyne/v2"

	"survey-report/internal/logger"
	"survey-report/internal/shutdown"
	"survey-report/internal/timing"
)

var timedOperations = []string{timing.OpLoadDataset, timing.OpBuildReport}

type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   logger.Logger
}

// NewLifecycle registers components in start order; they stop in reverse. The timing
// summary is registered first so it is logged after every component has stopped.
func NewLifecycle(log logger.Logger, tracker *timing.Tracker, components ...shutdown.Shutdownable) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mgr := shutdown.NewManager(log)
	if tracker != nil {
		mgr.Register(shutdown.Func(func() { logTimings(log, tracker) }))
	}
	for _, c := range components {
		mgr.Register(c)
	}
	return &Lifecycle{shutdown: mgr, logger: log}
}

func logTimings(log logger.Logger, tracker *timing.Tracker) {
	for _, op := range timedOperations {
		runs := tracker.GetTimings(op)
		if len(runs) == 0 {
			continue
		}
		log.Info("Timing", "operation summary", map[string]interface{}{
			"operation":  op,
			"runs":       len(runs),
			"average_ms": float64(tracker.GetAverageTime(op).Microseconds()) / 1000,
		})
	}
}

// Attach closes the window through the shutdown sequence and quits on SIGINT/SIGTERM.
func (l *Lifecycle) Attach(window fyne.Window, quit func()) {
	window.SetCloseIntercept(func() {
		l.logger.Info("Lifecycle", "window close requested", nil)
		l.Shutdown()
		window.Close()
	})
	l.shutdown.Listen(quit)
}

func (l *Lifecycle) Shutdown() {
	l.shutdown.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdown.Done()
}
