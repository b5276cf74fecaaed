package behavior

import (
	"math/rand"
	"testing"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/level"
	"backrooms-crawl/internal/nav"
	"backrooms-crawl/internal/trace"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// openLevel creates an all-floor level with the player at (px, py).
func openLevel(t *testing.T, width, height, px, py int) *level.Level {
	t.Helper()
	gmap := gamemap.New(width, height)
	gmap.Fill(0, 0, width-1, height-1, gamemap.MakeFloor())
	l := level.New("test", gmap, level.Options{PathSearchLimit: nav.DefaultSearchLimit})
	_, err := l.PlacePlayer(component.Position{X: px, Y: py}, 30)
	require.NoError(t, err)
	return l
}

func spawnAt(t *testing.T, l *level.Level, kind string, x, y int) ecs.EntityID {
	t.Helper()
	id, err := l.Spawn(kind, component.Position{X: x, Y: y})
	require.NoError(t, err)
	return id
}

func newTurn(l *level.Level, seed int64) (*Turn, *trace.Memory) {
	events := &trace.Memory{}
	return &Turn{
		World:  l,
		Player: l.PlayerPos(),
		Rand:   rand.New(rand.NewSource(seed)),
		Number: 1,
		Log:    zap.NewNop(),
		Events: events,
	}, events
}

// act runs reset + process for one entity and stores the result, the same
// way the orchestrator does minus the gate and cooldown ticks.
func act(l *level.Level, s Strategy, turn *Turn, id ecs.EntityID) component.Actor {
	a := l.ECS().Get(id, component.CActor).(component.Actor)
	s.ResetTurnState(&a)
	s.ProcessTurn(turn, id, &a)
	l.ECS().Add(id, a)
	return a
}

func setActor(l *level.Level, id ecs.EntityID, edit func(a *component.Actor)) {
	a := l.ECS().Get(id, component.CActor).(component.Actor)
	edit(&a)
	l.ECS().Add(id, a)
}

func setHealth(l *level.Level, id ecs.EntityID, current float64) {
	hp := l.ECS().Get(id, component.CHealth).(component.Health)
	hp.Current = current
	l.ECS().Add(id, hp)
}

func healthOf(l *level.Level, id ecs.EntityID) component.Health {
	return l.ECS().Get(id, component.CHealth).(component.Health)
}

func posOf(l *level.Level, id ecs.EntityID) component.Position {
	return l.ECS().Get(id, component.CPosition).(component.Position)
}
