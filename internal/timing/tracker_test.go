package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRecordsDurations(t *testing.T) {
	tr := NewTracker(nil)

	ctx := tr.StartTiming(context.Background(), "load")
	time.Sleep(2 * time.Millisecond)
	d := tr.EndTiming(ctx)

	timings := tr.GetTimings("load")
	require.Len(t, timings, 1)
	assert.Equal(t, d, timings[0])
	assert.GreaterOrEqual(t, tr.GetAverageTime("load"), 2*time.Millisecond)
}

func TestTrackerIgnoresUntimedContext(t *testing.T) {
	tr := NewTracker(nil)
	assert.Zero(t, tr.EndTiming(context.Background()))
	assert.Nil(t, tr.GetTimings("load"))
	assert.Zero(t, tr.GetAverageTime("load"))
}
