package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseChannel(t *testing.T) {
	assert.Equal(t, "case:abc-123", CaseChannel("abc-123"))
	assert.Equal(t, "cases", GlobalCasesChannel)
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		payload := `{"type":"turn.completed","case_id":"c-1","turn_number":4}`
		out, err := truncateIfNeeded(payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})

	t.Run("oversized payload collapses to routing envelope", func(t *testing.T) {
		big := map[string]any{
			"type":    "turn.completed",
			"case_id": "c-1",
			"filler":  strings.Repeat("x", 9000),
		}
		data, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(data))
		require.NoError(t, err)
		assert.Less(t, len(out), 7900)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		assert.Equal(t, "turn.completed", envelope["type"])
		assert.Equal(t, "c-1", envelope["case_id"])
		assert.Equal(t, true, envelope["truncated"])
		assert.NotContains(t, envelope, "filler")
	})
}
