package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/j2ghz/BetterQuestingTools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var sb strings.Builder
	cmd := NewRootCmd(&sb)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return sb.String(), err
}

func TestValidateCommand(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	out, err := runCommand(t, "validate", root)
	require.NoError(t, err)
	assert.Equal(t, "OK: 3 quests, 1 quest lines\n", out)
}

func TestValidateCommandBrokenExport(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	broken := filepath.Join(root, "Quests", "9.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"questID:3": 9, "preRequisites:11": [777]}`), 0o644))

	out, err := runCommand(t, "validate", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "777")
	assert.Empty(t, out)
}

func TestStatsCommandText(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	out, err := runCommand(t, "stats", root)
	require.NoError(t, err)

	assert.Contains(t, out, "format version: 3.0.329")
	assert.Contains(t, out, "quests:         3")
	assert.Contains(t, out, "quest lines:    1")
	assert.Contains(t, out, "line entries:   3")
	assert.Contains(t, out, "tasks:          1")
	assert.Contains(t, out, "rewards:        1")
}

func TestStatsCommandJSON(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	out, err := runCommand(t, "stats", root, "--json")
	require.NoError(t, err)

	doc := strings.TrimSpace(out)
	require.True(t, gjson.Valid(doc))
	assert.Equal(t, "3.0.329", gjson.Get(doc, "version").String())
	assert.Equal(t, int64(3), gjson.Get(doc, "quests").Int())
	assert.Equal(t, int64(1), gjson.Get(doc, "questLines").Int())
	assert.Equal(t, int64(3), gjson.Get(doc, "lineEntries").Int())
}

func TestGraphCommand(t *testing.T) {
	root := testutil.WriteSampleExport(t)

	t.Run("stdout", func(t *testing.T) {
		out, err := runCommand(t, "graph", root)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "digraph quests {"))
		assert.Contains(t, out, "1 -> 2\n")
		assert.Contains(t, out, "2 -> 3 [style=dashed]\n")
	})

	t.Run("output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quests.dot")
		out, err := runCommand(t, "graph", root, "-o", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "digraph quests {")
	})
}

func TestRankCommandJSON(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	out, err := runCommand(t, "rank", root, "--json", "--top", "2")
	require.NoError(t, err)

	doc := strings.TrimSpace(out)
	require.True(t, gjson.Valid(doc))
	entries := gjson.Parse(doc).Array()
	require.Len(t, entries, 2)

	// Quest 1 anchors the chain, so it ranks first.
	assert.Equal(t, int64(1), entries[0].Get("id").Int())
	assert.Equal(t, "Start Here", entries[0].Get("name").String())
	assert.Greater(t, entries[0].Get("score").Float(), entries[1].Get("score").Float())
}

func TestRankCommandConfigFile(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	config := filepath.Join(t.TempDir(), "rank.yaml")
	require.NoError(t, os.WriteFile(config, []byte("alpha: 0.5\nlog_scale: false\nnormalize: false\ntop: 1\n"), 0o644))

	t.Run("file options apply", func(t *testing.T) {
		out, err := runCommand(t, "rank", root, "--json", "--config", config)
		require.NoError(t, err)
		entries := gjson.Parse(strings.TrimSpace(out)).Array()
		require.Len(t, entries, 1)
		// No log scale or normalization: 1 + 0.5 propagated from the chain.
		assert.InDelta(t, 1.5, entries[0].Get("score").Float(), 1e-9)
	})

	t.Run("explicit flag overrides file", func(t *testing.T) {
		out, err := runCommand(t, "rank", root, "--json", "--config", config, "--top", "3")
		require.NoError(t, err)
		entries := gjson.Parse(strings.TrimSpace(out)).Array()
		assert.Len(t, entries, 3)
	})
}

func TestRankCommandBadAlpha(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	_, err := runCommand(t, "rank", root, "--alpha", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestRootCommandBadLogLevel(t *testing.T) {
	root := testutil.WriteSampleExport(t)
	_, err := runCommand(t, "--log-level", "loud", "validate", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
