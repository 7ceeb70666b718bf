package trace

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeveledThreshold(t *testing.T) {
	var buf bytes.Buffer
	l := NewLeveled(slog.New(slog.NewTextHandler(&buf, nil)), LevelSearch)

	l.Emit(LevelSummary, "summary")
	l.Emit(LevelSearch, "search")
	l.Emit(LevelMutation, "mutation")

	out := buf.String()
	assert.Contains(t, out, "summary")
	assert.Contains(t, out, "search")
	assert.NotContains(t, out, "mutation")
	assert.Contains(t, out, "verbosity=2")
}

func TestSetVerbosity(t *testing.T) {
	var buf bytes.Buffer
	l := NewLeveled(slog.New(slog.NewTextHandler(&buf, nil)), 0)
	Printf(l, LevelSummary, "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.SetVerbosity(LevelDetail)
	assert.Equal(t, LevelDetail, l.Verbosity())
	Printf(l, LevelDetail, "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	Printf(r, LevelMutation, "Adding node: %v", "A")
	r.Emit(LevelSummary, "done")

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, Event{Level: LevelMutation, Message: "Adding node: A"}, events[0])
	assert.Equal(t, LevelSummary, events[1].Level)

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestNopAndNil(t *testing.T) {
	assert.NotPanics(t, func() {
		Printf(Nop, LevelSummary, "ignored")
		Printf(nil, LevelSummary, "ignored")
		Nop.Emit(LevelSummary, "ignored")
	})
}
