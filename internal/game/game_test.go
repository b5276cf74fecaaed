package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/scenario"
	"backrooms-crawl/internal/trace"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const duel = `
name: duel
legend:
  s: bacteria_spawn
map:
  - "#####"
  - "#@s.#"
  - "#####"
`

const smile = `
name: smile
legend:
  S: smiler
map:
  - "#####"
  - "#@S.#"
  - "#####"
`

const hatch = `
name: hatch
legend:
  s: bacteria_spawn
map:
  - "########"
  - "#@x...s#"
  - "########"
`

func newGame(t *testing.T, yml string, sink trace.Recorder) (*Game, tcell.SimulationScreen) {
	t.Helper()
	sc, err := scenario.Parse([]byte(yml))
	require.NoError(t, err)

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Engine.Seed = 1
	return New(screen, sc, cfg, zap.NewNop(), sink), screen
}

func started(t *testing.T, yml string) *Game {
	t.Helper()
	g, _ := newGame(t, yml, nil)
	require.NoError(t, g.Start())
	return g
}

func hasMessage(g *Game, substr string) bool {
	for _, m := range g.Messages() {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestWaitRunsGlobalTurn(t *testing.T) {
	g := started(t, duel)

	g.processAction(ActionWait)

	assert.Equal(t, 1, g.eng.Turn())
	assert.Equal(t, float64(scenario.PlayerMaxHP-2), g.Level().PlayerHealth().Current)
	assert.True(t, hasMessage(g, "hits you for 2"), g.Messages())
	assert.True(t, hasMessage(g, assets.Archetypes[assets.KindBacteriaSpawn].Name))
	assert.Equal(t, StatePlaying, g.State())
}

func TestBumpPunches(t *testing.T) {
	g := started(t, duel)

	g.processAction(ActionMoveE)

	assert.Equal(t, component.Position{X: 1, Y: 1}, g.Level().PlayerPos())
	assert.True(t, hasMessage(g, "You hit the bacteria spawn for 3"), g.Messages())
	assert.Equal(t, 1, g.eng.Turn())
}

func TestWallBumpDoesNotSpendTurn(t *testing.T) {
	g := started(t, duel)

	g.processAction(ActionMoveN)
	g.processAction(ActionNone)

	assert.Equal(t, 0, g.eng.Turn())
	assert.Equal(t, float64(scenario.PlayerMaxHP), g.Level().PlayerHealth().Current)
}

func TestPunchDoesNotHurtSmiler(t *testing.T) {
	g := started(t, smile)

	g.processAction(ActionMoveE)

	assert.True(t, hasMessage(g, "does not seem to notice"), g.Messages())
	assert.Equal(t, StatePlaying, g.State())
}

func TestClapKillsSmilerAndClearsLevel(t *testing.T) {
	g := started(t, smile)

	g.processAction(ActionClap)

	assert.True(t, hasMessage(g, "You kill the smiler!"), g.Messages())
	assert.True(t, hasMessage(g, assets.EntityLore[assets.KindSmiler]))
	assert.Equal(t, StateEscaped, g.State())
	assert.Equal(t, 1, g.runLog.Kills[assets.KindSmiler])
	assert.True(t, g.runLog.Escaped)
}

func TestExitEndsRun(t *testing.T) {
	g := started(t, hatch)

	g.processAction(ActionMoveE)

	assert.Equal(t, StateEscaped, g.State())
	assert.Equal(t, 1, g.runLog.TurnsPlayed)
	assert.Equal(t, 0, g.eng.Turn(), "stepping onto the exit ends the run before the world moves")
}

func TestDeath(t *testing.T) {
	g := started(t, duel)
	w := g.Level().ECS()
	hp := w.Get(g.Level().Player, component.CHealth).(component.Health)
	hp.Current = 1
	w.Add(g.Level().Player, hp)

	g.processAction(ActionWait)
	assert.Equal(t, StateDead, g.State())
	assert.Equal(t, assets.KindBacteriaSpawn, g.runLog.CauseOfDeath)
	assert.Contains(t, g.summary(), "Killed by: bacteria spawn")

	g.processAction(ActionWait)
	assert.Equal(t, 1, g.eng.Turn(), "no turns after death")
}

func TestEventsReachSink(t *testing.T) {
	sink := &trace.Memory{}
	g, _ := newGame(t, duel, sink)
	require.NoError(t, g.Start())

	g.processAction(ActionWait)
	g.processAction(ActionWait)

	assert.NotEmpty(t, sink.OfKind(trace.KindAttack))
}

func TestStartResetsRun(t *testing.T) {
	g := started(t, smile)
	g.processAction(ActionClap)
	require.Equal(t, StateEscaped, g.State())

	require.NoError(t, g.Start())
	assert.Equal(t, StatePlaying, g.State())
	assert.Empty(t, g.runLog.Kills)
	assert.Equal(t, 1, countHostiles(g))
}

func countHostiles(g *Game) int {
	n := 0
	for _, id := range g.Level().ECS().Query(component.CActor) {
		if g.Level().ECS().Get(id, component.CActor).(component.Actor).Kind == assets.KindSmiler {
			n++
		}
	}
	return n
}

func TestRunLoop(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	g, screen := newGame(t, smile, nil)
	screen.InjectKey(tcell.KeyRune, 'c', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, g.Run())
	assert.Equal(t, StateEscaped, g.State())

	data, err := os.ReadFile(filepath.Join(tmp, "backrooms-crawl", "runs.jsonl"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"escaped":true`)
}

func TestRunQuitsImmediately(t *testing.T) {
	g, screen := newGame(t, duel, nil)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	require.NoError(t, g.Run())
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.eng.Turn())
}
