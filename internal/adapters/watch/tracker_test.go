package watch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mmd/internal/adapters/watch"
)

func TestTracker_FirstObservationIsChange(t *testing.T) {
	tr := watch.NewTracker()
	assert.True(t, tr.Changed([]byte("flowchart TD")))
}

func TestTracker_RepeatIsNotChange(t *testing.T) {
	tr := watch.NewTracker()

	assert.True(t, tr.Changed([]byte("flowchart TD")))
	assert.False(t, tr.Changed([]byte("flowchart TD")))
	assert.False(t, tr.Changed([]byte("flowchart TD")))
}

func TestTracker_NewContentIsChange(t *testing.T) {
	tr := watch.NewTracker()

	assert.True(t, tr.Changed([]byte("flowchart TD")))
	assert.True(t, tr.Changed([]byte("flowchart LR")))
	assert.False(t, tr.Changed([]byte("flowchart LR")))

	// Reverting to earlier content is still a change from the baseline.
	assert.True(t, tr.Changed([]byte("flowchart TD")))
}

func TestTracker_Reset(t *testing.T) {
	tr := watch.NewTracker()

	assert.True(t, tr.Changed([]byte("flowchart TD")))
	tr.Reset()
	assert.True(t, tr.Changed([]byte("flowchart TD")))
}
