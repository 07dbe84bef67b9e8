package investigation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	result string
	err    error
	calls  int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ string, _ int) (string, error) {
	s.calls++
	return s.result, s.err
}

func recordTurns(m *MemoryManager, s *State, n int) {
	for i := 1; i <= n; i++ {
		m.RecordTurn(s, TurnRecord{
			TurnNumber:         i,
			Phase:              PhaseValidation,
			AgentActionSummary: fmt.Sprintf("checked deploy %d", i),
			Outcome:            OutcomeProgress,
			RecordedAt:         time.Now(),
		})
	}
	s.CurrentTurn = n
}

func TestMemoryManager_ShouldCompact(t *testing.T) {
	m := NewMemoryManager(DefaultSettings(), nil)

	t.Run("every third turn", func(t *testing.T) {
		s := newTestState(3)
		s.Memory.LastCompactedTurn = 0
		assert.True(t, m.ShouldCompact(s))

		s.Memory.LastCompactedTurn = 2
		assert.False(t, m.ShouldCompact(s))
	})

	t.Run("hot overflow", func(t *testing.T) {
		s := newTestState(1)
		s.Memory.LastCompactedTurn = 1
		recordTurns(m, s, 6)
		s.CurrentTurn = 2
		assert.True(t, m.ShouldCompact(s))
	})
}

func TestMemoryManager_Compact(t *testing.T) {
	t.Run("enforces tier capacities", func(t *testing.T) {
		m := NewMemoryManager(DefaultSettings(), nil)
		s := newTestState(1)
		recordTurns(m, s, 20)

		m.Compact(context.Background(), s)

		assert.Len(t, s.Memory.Hot, 3)
		assert.Len(t, s.Memory.Warm, 5)
		assert.Len(t, s.Memory.Cold, 10)
		assert.Equal(t, 20, s.Memory.LastCompactedTurn)

		// Newest turns stay hot; demotion takes the oldest first.
		assert.Equal(t, "turn-18", s.Memory.Hot[0].SnapshotID)
		assert.Equal(t, "turn-20", s.Memory.Hot[2].SnapshotID)
		assert.Equal(t, TierWarm, s.Memory.Warm[0].Tier)
		assert.Equal(t, TierCold, s.Memory.Cold[0].Tier)
		assert.True(t, strings.HasPrefix(s.Memory.Cold[0].SnapshotID, "cold-"))
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		m := NewMemoryManager(DefaultSettings(), nil)
		s := newTestState(1)
		recordTurns(m, s, 9)

		m.Compact(context.Background(), s)
		first, err := s.Clone()
		require.NoError(t, err)

		m.Compact(context.Background(), s)
		assert.Equal(t, first.Memory, s.Memory)
	})

	t.Run("warm snapshots keep live hypothesis references", func(t *testing.T) {
		settings := DefaultSettings()
		m := NewMemoryManager(settings, nil)
		hm := NewHypothesisManager(settings)
		s := newTestState(1)
		h := hm.Capture(s, "pool exhaustion", CategoryInfrastructure, 0.50, GenerationOpportunistic)
		hm.Activate(h)
		recordTurns(m, s, 5)

		m.Compact(context.Background(), s)

		require.NotEmpty(t, s.Memory.Warm)
		assert.Contains(t, s.Memory.Warm[0].HypothesisIDs, h.ID)
	})

	t.Run("summarizer failure falls back to truncation", func(t *testing.T) {
		sum := &stubSummarizer{err: errors.New("model unavailable")}
		m := NewMemoryManager(DefaultSettings(), sum)
		s := newTestState(1)
		recordTurns(m, s, 5)
		long := strings.Repeat("a", 5000)
		s.Memory.Hot[0].ContentSummary = long

		m.Compact(context.Background(), s)

		require.NotEmpty(t, s.Memory.Warm)
		assert.Greater(t, sum.calls, 0)
		assert.Less(t, len(s.Memory.Warm[0].ContentSummary), len(long))
	})

	t.Run("summarizer output is used when it succeeds", func(t *testing.T) {
		sum := &stubSummarizer{result: "condensed"}
		m := NewMemoryManager(DefaultSettings(), sum)
		s := newTestState(1)
		recordTurns(m, s, 5)

		m.Compact(context.Background(), s)

		require.NotEmpty(t, s.Memory.Warm)
		assert.Equal(t, "condensed", s.Memory.Warm[0].ContentSummary)
	})
}

func TestMemoryManager_Context(t *testing.T) {
	m := NewMemoryManager(DefaultSettings(), nil)
	s := newTestState(1)
	s.Memory.Cold = []MemorySnapshot{{ContentSummary: "incident began after deploy"}}
	s.Memory.Warm = []MemorySnapshot{{ContentSummary: "ruled out network"}}
	s.Memory.Hot = []MemorySnapshot{{ContentSummary: "checking connection pool"}}

	out := m.Context(s)

	coldIdx := strings.Index(out, "incident began after deploy")
	hotIdx := strings.Index(out, "checking connection pool")
	require.GreaterOrEqual(t, coldIdx, 0)
	require.GreaterOrEqual(t, hotIdx, 0)
	assert.Less(t, coldIdx, hotIdx, "cold facts render before recent detail")
}

func TestTruncateTokens(t *testing.T) {
	assert.Equal(t, "short", truncateTokens("short", 100))

	long := strings.Repeat("x", 1000)
	got := truncateTokens(long, 100)
	assert.LessOrEqual(t, len(got), 400)
	assert.True(t, strings.HasSuffix(got, "…"))

	// Trimming lands on a rune boundary even for multibyte text.
	multibyte := strings.Repeat("ночной деплой сломал кэш ", 50)
	got = truncateTokens(multibyte, 100)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
