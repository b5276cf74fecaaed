package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 80.0, cfg.Swarmer.SenseRange)
	assert.Equal(t, 1.5, cfg.Swarmer.AttackRange)
	assert.Equal(t, 0.6, cfg.Swarmer.HoldChance)
	assert.Equal(t, 3.0, cfg.Support.HealRadius)
	assert.Equal(t, "bacteria_spawn", cfg.Spawner.MinionKind)
	assert.Equal(t, 4, cfg.Stalker.TeleportInterval)
	assert.Equal(t, "sound", cfg.Stalker.KillTag)
	assert.Zero(t, cfg.Engine.ForgetAfterTurns, "remembered positions never expire by default")
	assert.Equal(t, 2222, cfg.Server.Port)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := `
engine:
  seed: 42
  forget_after_turns: 12
swarmer:
  sense_range: 10
  hold_chance: 0
stalker:
  kill_tag: silence
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Engine.Seed)
	assert.Equal(t, 12, cfg.Engine.ForgetAfterTurns)
	assert.Equal(t, 10.0, cfg.Swarmer.SenseRange)
	assert.Zero(t, cfg.Swarmer.HoldChance)
	assert.Equal(t, "silence", cfg.Stalker.KillTag)
	// Untouched keys keep their defaults.
	assert.Equal(t, 1, cfg.Swarmer.Moves)
	assert.Equal(t, 8, cfg.Spawner.SpawnCooldown)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
