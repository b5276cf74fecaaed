package behavior

import (
	"testing"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/level"
	"backrooms-crawl/internal/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minions lists every living entity of the spawner's minion kind.
func minions(l *level.Level) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range l.ECS().Query(component.CActor) {
		if l.ECS().Get(id, component.CActor).(component.Actor).Kind == assets.KindBacteriaSpawn {
			out = append(out, id)
		}
	}
	return out
}

func TestSpawnerSpawnsWhenSensingAndReady(t *testing.T) {
	l := openLevel(t, 20, 12, 10, 5)
	id := spawnAt(t, l, assets.KindBroodMother, 5, 5)
	turn, events := newTurn(l, 4)

	a := act(l, NewSpawner(config.Default().Spawner), turn, id)

	spawned := minions(l)
	require.Len(t, spawned, 1)
	p := posOf(l, spawned[0])
	assert.Equal(t, 1, abs(p.X-5)+abs(p.Y-5), "minion lands orthogonally adjacent")

	assert.Equal(t, 8, a.SpawnCooldown)
	assert.True(t, a.MustWait)
	assert.Zero(t, a.MovesRemaining)
	assert.Equal(t, component.Position{X: 5, Y: 5}, posOf(l, id), "spawning forfeits movement")
	require.Len(t, events.OfKind(trace.KindSpawn), 1)
	assert.Equal(t, spawned[0], events.OfKind(trace.KindSpawn)[0].Target)
}

func TestSpawnerChasesWithDoubledMovesOnCooldown(t *testing.T) {
	l := openLevel(t, 20, 12, 10, 5)
	id := spawnAt(t, l, assets.KindBroodMother, 5, 5)
	setActor(l, id, func(a *component.Actor) { a.SpawnCooldown = 3 })
	turn, _ := newTurn(l, 4)

	a := act(l, NewSpawner(config.Default().Spawner), turn, id)

	assert.Empty(t, minions(l))
	assert.Equal(t, component.Position{X: 7, Y: 5}, posOf(l, id))
	assert.Zero(t, a.MovesRemaining)
	assert.False(t, a.MustWait)
}

func TestSpawnerWandersWhenNothingSensed(t *testing.T) {
	l := openLevel(t, 60, 10, 50, 5)
	id := spawnAt(t, l, assets.KindBroodMother, 2, 5)
	turn, _ := newTurn(l, 4)

	a := act(l, NewSpawner(config.Default().Spawner), turn, id)

	assert.Empty(t, minions(l))
	assert.False(t, a.HasLastSeen)
	p := posOf(l, id)
	assert.Equal(t, 1, max(abs(p.X-2), abs(p.Y-5)), "one wander step with the base budget")
	assert.Zero(t, a.MovesRemaining)
}

func TestSpawnerAttackBlocksSpawn(t *testing.T) {
	cases := []struct {
		name      string
		hold      float64
		wantMoves int
	}{
		{"holds after attacking", 1, 1},
		{"shuffles after attacking", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := openLevel(t, 12, 12, 6, 5)
			id := spawnAt(t, l, assets.KindBroodMother, 5, 5)
			turn, events := newTurn(l, 4)
			cfg := config.Default().Spawner
			cfg.HoldChance = tc.hold

			a := act(l, NewSpawner(cfg), turn, id)

			require.Len(t, events.OfKind(trace.KindAttack), 1)
			assert.Empty(t, minions(l))
			assert.Zero(t, a.SpawnCooldown)
			assert.Equal(t, 2, a.AttackCooldown)
			assert.False(t, a.MustWait)
			assert.Equal(t, tc.wantMoves, a.MovesRemaining, "attacking cuts the doubled budget back to one")
			assert.Equal(t, 26.0, l.PlayerHealth().Current)
		})
	}
}

func TestSpawnerNoFreeTileSkipsSpawn(t *testing.T) {
	l := openLevel(t, 20, 12, 10, 5)
	id := spawnAt(t, l, assets.KindBroodMother, 5, 5)
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		spawnAt(t, l, assets.KindMannequin, 5+d[0], 5+d[1])
	}
	turn, events := newTurn(l, 4)

	a := act(l, NewSpawner(config.Default().Spawner), turn, id)

	assert.Empty(t, minions(l))
	assert.Empty(t, events.OfKind(trace.KindSpawn))
	assert.Zero(t, a.SpawnCooldown)
	assert.False(t, a.MustWait)
}

func TestSpawnerResetUsesBaseMoves(t *testing.T) {
	s := NewSpawner(config.Default().Spawner)
	a := component.Actor{MovesRemaining: 2}
	s.ResetTurnState(&a)
	assert.Equal(t, 1, a.MovesRemaining)
	assert.Equal(t, 4.0, a.AttackDamage)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
