package investigation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Summarizer condenses snapshot text. The LLM-backed implementation
// lives outside this package; compaction falls back to deterministic
// concatenation-with-truncation on any error.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxTokens int) (string, error)
}

// Approximate token budgets per tier.
const (
	hotTokenBudget  = 500
	warmTokenBudget = 300
	coldTokenBudget = 100
)

// MemoryManager organises turn history into hot/warm/cold tiers to
// bound prompt context. Compression is deterministic: the same state
// always produces the same tiering, and running it twice in succession
// is a no-op after the first run.
type MemoryManager struct {
	settings   Settings
	summarizer Summarizer
}

// NewMemoryManager creates a manager. summarizer may be nil, in which
// case compaction always uses the deterministic fallback.
func NewMemoryManager(settings Settings, summarizer Summarizer) *MemoryManager {
	return &MemoryManager{settings: settings, summarizer: summarizer}
}

// RecordTurn appends a hot snapshot for the given turn record.
func (m *MemoryManager) RecordTurn(s *State, rec TurnRecord) {
	s.Memory.Hot = append(s.Memory.Hot, MemorySnapshot{
		SnapshotID:     fmt.Sprintf("turn-%d", rec.TurnNumber),
		TurnRange:      [2]int{rec.TurnNumber, rec.TurnNumber},
		Tier:           TierHot,
		ContentSummary: turnSummary(rec),
		EvidenceIDs:    rec.EvidenceCollected,
		HypothesisIDs:  rec.HypothesesUpdated,
		TokenEstimate:  hotTokenBudget,
	})
}

// ShouldCompact reports whether the compression triggers are met:
// every N turns, or when hot memory overflows.
func (m *MemoryManager) ShouldCompact(s *State) bool {
	if len(s.Memory.Hot) > m.settings.MemoryHotOverflow {
		return true
	}
	return s.CurrentTurn-s.Memory.LastCompactedTurn >= m.settings.MemoryCompactEveryTurn
}

// Compact enforces tier capacities: oldest hot snapshots demote to
// warm, oldest warm merge into cold, oldest cold are discarded. The
// warm summary folds in ACTIVE hypothesis and evidence references so
// the prompt layer keeps the live investigation threads.
func (m *MemoryManager) Compact(ctx context.Context, s *State) {
	mem := &s.Memory

	for len(mem.Hot) > m.settings.MemoryHotCapacity {
		oldest := mem.Hot[0]
		mem.Hot = mem.Hot[1:]
		mem.Warm = append(mem.Warm, m.demoteToWarm(ctx, s, oldest))
	}

	for len(mem.Warm) > m.settings.MemoryWarmCapacity {
		oldest := mem.Warm[0]
		mem.Warm = mem.Warm[1:]
		mem.Cold = append(mem.Cold, m.demoteToCold(ctx, oldest))
	}

	for len(mem.Cold) > m.settings.MemoryColdCapacity {
		mem.Cold = mem.Cold[1:]
	}

	mem.LastCompactedTurn = s.CurrentTurn
}

// Context renders the tiers for prompt injection, coldest first so the
// most recent detail appears last.
func (m *MemoryManager) Context(s *State) string {
	var sb strings.Builder
	writeTier := func(label string, snaps []MemorySnapshot) {
		if len(snaps) == 0 {
			return
		}
		sb.WriteString(label)
		sb.WriteString(":\n")
		for _, snap := range snaps {
			sb.WriteString("- ")
			sb.WriteString(snap.ContentSummary)
			sb.WriteString("\n")
		}
	}
	writeTier("Key facts", s.Memory.Cold)
	writeTier("Earlier findings", s.Memory.Warm)
	writeTier("Recent turns", s.Memory.Hot)
	return sb.String()
}

func (m *MemoryManager) demoteToWarm(ctx context.Context, s *State, snap MemorySnapshot) MemorySnapshot {
	snap.Tier = TierWarm
	snap.SnapshotID = "warm-" + snap.SnapshotID
	snap.ContentSummary = m.condense(ctx, snap.ContentSummary, warmTokenBudget)
	snap.TokenEstimate = warmTokenBudget

	// Keep references to the still-live investigation threads.
	for _, h := range s.ActiveHypotheses() {
		snap.HypothesisIDs = appendUnique(snap.HypothesisIDs, h.ID)
	}
	return snap
}

func (m *MemoryManager) demoteToCold(ctx context.Context, snap MemorySnapshot) MemorySnapshot {
	snap.Tier = TierCold
	snap.SnapshotID = strings.Replace(snap.SnapshotID, "warm-", "cold-", 1)
	snap.ContentSummary = m.condense(ctx, snap.ContentSummary, coldTokenBudget)
	snap.TokenEstimate = coldTokenBudget
	return snap
}

// condense shortens text to roughly maxTokens. The LLM summarizer is
// tried first when configured; any failure falls back to truncation so
// compaction stays deterministic under error.
func (m *MemoryManager) condense(ctx context.Context, text string, maxTokens int) string {
	if m.summarizer != nil {
		summary, err := m.summarizer.Summarize(ctx, text, maxTokens)
		if err == nil && summary != "" {
			return summary
		}
		if err != nil {
			slog.Warn("Memory summarizer failed, using truncation fallback", "error", err)
		}
	}
	return truncateTokens(text, maxTokens)
}

// truncateTokens clips text to approximately maxTokens using the
// 4-characters-per-token heuristic, trimming on a rune boundary so the
// persisted summary stays valid UTF-8.
func truncateTokens(text string, maxTokens int) string {
	maxChars := maxTokens * 4
	if len(text) <= maxChars {
		return text
	}
	cut := maxChars - 1
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "…"
}

func turnSummary(rec TurnRecord) string {
	var parts []string
	if rec.UserInputSummary != "" {
		parts = append(parts, "user: "+rec.UserInputSummary)
	}
	if rec.AgentActionSummary != "" {
		parts = append(parts, "agent: "+rec.AgentActionSummary)
	}
	if len(rec.MilestonesCompleted) > 0 {
		names := make([]string, len(rec.MilestonesCompleted))
		for i, ms := range rec.MilestonesCompleted {
			names[i] = string(ms)
		}
		parts = append(parts, "milestones: "+strings.Join(names, ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, string(rec.Outcome))
	}
	return fmt.Sprintf("turn %d (%s): %s", rec.TurnNumber, rec.Phase, strings.Join(parts, "; "))
}
