package behavior

import (
	"testing"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/trace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwarmerResetIsNotCumulative(t *testing.T) {
	s := NewSwarmer(config.Default().Swarmer)
	a := component.Actor{MovesRemaining: 7, AttackDamage: 99, AttackRange: 42}
	s.ResetTurnState(&a)
	assert.Equal(t, 1, a.MovesRemaining)
	assert.Equal(t, 2.0, a.AttackDamage)
	assert.Equal(t, 1.5, a.AttackRange)

	a.MovesRemaining = 0
	s.ResetTurnState(&a)
	assert.Equal(t, 1, a.MovesRemaining)
}

func TestSwarmerSensesAndAdvancesOneTile(t *testing.T) {
	l := openLevel(t, 60, 5, 51, 2)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 1, 2)
	s := NewSwarmer(config.Default().Swarmer)
	turn, _ := newTurn(l, 1)

	a := act(l, s, turn, id)

	assert.True(t, a.HasLastSeen)
	assert.Equal(t, component.Position{X: 51, Y: 2}, a.LastSeen)
	assert.Equal(t, component.Position{X: 2, Y: 2}, posOf(l, id))
	assert.Zero(t, a.MovesRemaining)
}

func TestSwarmerAttacksAdjacentPlayer(t *testing.T) {
	l := openLevel(t, 12, 12, 6, 5)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 5)
	s := NewSwarmer(config.Default().Swarmer)
	turn, events := newTurn(l, 1)

	a := act(l, s, turn, id)

	assert.Equal(t, 1, a.AttackCooldown)
	assert.True(t, a.MustWait)
	assert.Equal(t, 28.0, l.PlayerHealth().Current)
	require.Len(t, events.OfKind(trace.KindAttack), 1)
	assert.Equal(t, "💥", events.OfKind(trace.KindAttack)[0].Glyph)

	hits := l.DrainHits()
	require.Len(t, hits, 1)
	assert.Equal(t, id, hits[0].From)
	assert.Equal(t, []string{TagPhysical}, hits[0].Tags)

	// Whatever it chose afterwards, it stays in reach and off the player.
	p := posOf(l, id)
	assert.LessOrEqual(t, p.DistanceTo(l.PlayerPos()), 1.5)
	assert.NotEqual(t, l.PlayerPos(), p)
}

func TestSwarmerWaitsForCooldown(t *testing.T) {
	l := openLevel(t, 12, 12, 6, 5)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 5)
	setActor(l, id, func(a *component.Actor) { a.AttackCooldown = 1 })
	turn, events := newTurn(l, 1)

	a := act(l, NewSwarmer(config.Default().Swarmer), turn, id)

	assert.Empty(t, events.OfKind(trace.KindAttack))
	assert.False(t, a.MustWait)
	assert.Equal(t, 30.0, l.PlayerHealth().Current)
}

func TestSwarmerNeedsLineOfSight(t *testing.T) {
	l := openLevel(t, 12, 12, 7, 5)
	l.Map.Set(6, 5, gamemap.MakeWall())
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 5)

	cfg := config.Default().Swarmer
	cfg.AttackRange = 3
	turn, events := newTurn(l, 1)
	a := act(l, NewSwarmer(cfg), turn, id)

	assert.Empty(t, events.OfKind(trace.KindAttack))
	assert.Zero(t, a.AttackCooldown)
	assert.False(t, a.MustWait)
}

func TestSwarmerHoldOrShuffleInRange(t *testing.T) {
	cfg := config.Default().Swarmer

	t.Run("hold", func(t *testing.T) {
		l := openLevel(t, 12, 12, 6, 5)
		id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 5)
		setActor(l, id, func(a *component.Actor) { a.AttackCooldown = 5 })
		cfg.HoldChance = 1
		turn, _ := newTurn(l, 3)

		a := act(l, NewSwarmer(cfg), turn, id)
		assert.Equal(t, component.Position{X: 5, Y: 5}, posOf(l, id))
		assert.Equal(t, 1, a.MovesRemaining)
	})

	t.Run("shuffle", func(t *testing.T) {
		l := openLevel(t, 12, 12, 6, 5)
		id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 5)
		setActor(l, id, func(a *component.Actor) { a.AttackCooldown = 5 })
		cfg.HoldChance = 0
		turn, _ := newTurn(l, 3)

		a := act(l, NewSwarmer(cfg), turn, id)
		p := posOf(l, id)
		assert.NotEqual(t, component.Position{X: 5, Y: 5}, p)
		assert.LessOrEqual(t, p.DistanceTo(l.PlayerPos()), cfg.AttackRange)
		assert.Zero(t, a.MovesRemaining)
	})
}

func TestSwarmerIdleWithoutMemory(t *testing.T) {
	l := openLevel(t, 40, 5, 30, 2)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 1, 2)
	cfg := config.Default().Swarmer
	cfg.SenseRange = 5
	turn, _ := newTurn(l, 1)

	a := act(l, NewSwarmer(cfg), turn, id)

	assert.False(t, a.HasLastSeen)
	assert.Equal(t, component.Position{X: 1, Y: 2}, posOf(l, id))
}

func TestSwarmerChasesStaleMemoryForever(t *testing.T) {
	l := openLevel(t, 40, 5, 30, 2)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 1, 2)
	setActor(l, id, func(a *component.Actor) {
		a.LastSeen = component.Position{X: 10, Y: 2}
		a.HasLastSeen = true
		a.LastSeenTurn = 1
	})
	cfg := config.Default().Swarmer
	cfg.SenseRange = 5
	turn, _ := newTurn(l, 1)
	turn.Number = 500

	a := act(l, NewSwarmer(cfg), turn, id)

	assert.True(t, a.HasLastSeen)
	assert.Equal(t, component.Position{X: 2, Y: 2}, posOf(l, id))
}

func TestSwarmerForgetsAfterTimeout(t *testing.T) {
	l := openLevel(t, 40, 5, 30, 2)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 1, 2)
	setActor(l, id, func(a *component.Actor) {
		a.LastSeen = component.Position{X: 10, Y: 2}
		a.HasLastSeen = true
		a.LastSeenTurn = 1
	})
	cfg := config.Default().Swarmer
	cfg.SenseRange = 5
	turn, _ := newTurn(l, 1)
	turn.Number = 5
	turn.ForgetAfter = 3

	a := act(l, NewSwarmer(cfg), turn, id)

	assert.False(t, a.HasLastSeen)
	assert.Equal(t, component.Position{X: 1, Y: 2}, posOf(l, id))
}

func TestSwarmerRoutesAroundBlocker(t *testing.T) {
	l := openLevel(t, 20, 9, 15, 4)
	id := spawnAt(t, l, assets.KindBacteriaSpawn, 5, 4)
	spawnAt(t, l, assets.KindMannequin, 6, 4)
	turn, _ := newTurn(l, 1)

	act(l, NewSwarmer(config.Default().Swarmer), turn, id)

	p := posOf(l, id)
	assert.Equal(t, 6, p.X, "steps around the mannequin, still making progress")
	assert.Contains(t, []int{3, 5}, p.Y)
}
