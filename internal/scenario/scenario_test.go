package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/level"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const small = `
name: closet
legend:
  s: bacteria_spawn
  L: fluorescent_light
map:
  - "######"
  - "#@.s~#"
  - "#L+.x#"
  - "######"
`

func TestParseAndBuild(t *testing.T) {
	sc, err := Parse([]byte(small))
	require.NoError(t, err)
	assert.Equal(t, "closet", sc.Name)

	l, err := sc.Build(level.Options{})
	require.NoError(t, err)
	assert.Equal(t, "closet", l.Name)
	assert.Equal(t, 6, l.Map.Width)
	assert.Equal(t, 4, l.Map.Height)
	assert.Equal(t, component.Position{X: 1, Y: 1}, l.PlayerPos())
	assert.Equal(t, float64(PlayerMaxHP), l.PlayerHealth().Max)

	assert.Equal(t, gamemap.TilePuddle, l.Map.At(4, 1).Kind)
	assert.Equal(t, gamemap.TileDoor, l.Map.At(2, 2).Kind)
	assert.Equal(t, gamemap.TileExit, l.Map.At(4, 2).Kind)
	assert.Equal(t, gamemap.TileFloor, l.Map.At(3, 1).Kind, "legend entities stand on floor")

	spawn := l.EntityAt(component.Position{X: 3, Y: 1})
	require.True(t, l.ECS().Alive(spawn))
	assert.Equal(t, assets.KindBacteriaSpawn, l.ECS().Get(spawn, component.CActor).(component.Actor).Kind)
	assert.Len(t, l.ECS().Query(component.CFlicker), 1)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty map":       "name: x\nmap: []\n",
		"ragged rows":     "name: x\nmap:\n  - \"###\"\n  - \"#@\"\n",
		"no player":       "name: x\nmap:\n  - \"...\"\n",
		"two players":     "name: x\nmap:\n  - \"@.@\"\n",
		"unknown char":    "name: x\nmap:\n  - \"@.?\"\n",
		"shadowing key":   "name: x\nlegend:\n  '#': smiler\nmap:\n  - \"@.\"\n",
		"long legend key": "name: x\nlegend:\n  ab: smiler\nmap:\n  - \"@.\"\n",
		"bad yaml":        "name: [unterminated\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestBuildUnknownArchetype(t *testing.T) {
	sc, err := Parse([]byte("name: x\nlegend:\n  g: ghost\nmap:\n  - \"@g\"\n"))
	require.NoError(t, err)
	_, err = sc.Build(level.Options{})
	assert.ErrorIs(t, err, level.ErrUnknownArchetype)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "closet", sc.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEmbeddedArenaBuilds(t *testing.T) {
	sc, err := Default()
	require.NoError(t, err)
	l, err := sc.Build(level.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, l.ECS().Query(component.CActor))
}
