package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "backrooms-crawl"), dir)
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "share", "backrooms-crawl")), dir)
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	require.NoError(t, saveRunLog(RunLog{
		Level:        "Level 0",
		TurnsPlayed:  42,
		Kills:        map[string]int{"smiler": 1},
		DamageTaken:  12,
		CauseOfDeath: "bacteria_spawn",
	}))

	data, err := os.ReadFile(filepath.Join(tmp, "backrooms-crawl", "runs.jsonl"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"))

	var got RunLog
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Level 0", got.Level)
	assert.Equal(t, 1, got.Kills["smiler"])
	assert.Equal(t, "bacteria_spawn", got.CauseOfDeath)
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := 0; i < 3; i++ {
		require.NoError(t, saveRunLog(RunLog{Level: "closet", TurnsPlayed: i + 1, Kills: map[string]int{}}))
	}

	data, err := os.ReadFile(filepath.Join(tmp, "backrooms-crawl", "runs.jsonl"))
	require.NoError(t, err)
	// Each call appends one JSON line; count the newlines.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
}
