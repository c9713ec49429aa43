package timing

import (
	"context"
	"sync"
	"time"

	"survey-report/internal/logger"
)

// Operations recorded while preparing a report.
const (
	OpLoadDataset = "load_dataset"
	OpBuildReport = "build_report"
)

type timingKey struct{}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

// Tracker records wall-clock durations per named operation.
type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	logger  logger.Logger
}

func NewTracker(log logger.Logger) *Tracker {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Tracker{
		timings: make(map[string][]time.Duration),
		logger:  log,
	}
}

func (tt *Tracker) StartTiming(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: time.Now(),
	})
}

func (tt *Tracker) EndTiming(ctx context.Context) time.Duration {
	info, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return 0
	}

	duration := time.Since(info.StartTime)

	tt.mu.Lock()
	tt.timings[info.Operation] = append(tt.timings[info.Operation], duration)
	tt.mu.Unlock()

	tt.logger.Debug("Timing", "operation completed", map[string]interface{}{
		"operation":   info.Operation,
		"duration_ms": float64(duration.Microseconds()) / 1000,
	})

	return duration
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}
