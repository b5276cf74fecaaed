// Package behavior holds the per-archetype decision strategies for
// non-player actors. Strategies keep no per-entity state: everything they
// read or change lives on the entity's components.
package behavior

import (
	"math/rand"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/nav"
	"backrooms-crawl/internal/trace"

	"go.uber.org/zap"
)

// Damage tags understood by the strategies.
const (
	TagPhysical = "physical"
	TagSound    = "sound"
)

// World is the collaborator a strategy queries and mutates.
type World interface {
	nav.Grid
	ECS() *ecs.World
	HasLineOfSight(a, b component.Position) bool
	// EntityAt returns the living movement-blocking entity on p, or ecs.NilEntity.
	EntityAt(p component.Position) ecs.EntityID
	// Pathfinder returns nil when no route service is available.
	Pathfinder() nav.Pathfinder
	Spawn(kind string, p component.Position) (ecs.EntityID, error)
	Move(id ecs.EntityID, to component.Position)
	DamagePlayer(from ecs.EntityID, amount float64, tags []string)
}

// Turn carries everything one entity's turn may consult.
type Turn struct {
	World  World
	Player component.Position
	Rand   *rand.Rand
	Number int
	// ForgetAfter clears a remembered player position not refreshed for this
	// many turns; 0 keeps it forever.
	ForgetAfter int
	Log         *zap.Logger
	Events      trace.Recorder
}

// Strategy is the behavior contract of one archetype.
type Strategy interface {
	// Static strategies are never dispatched and never tick cooldowns.
	Static() bool
	// ResetTurnState sets the base per-turn budget and stats.
	ResetTurnState(a *component.Actor)
	// ProcessTurn senses, decides and acts for entity id.
	ProcessTurn(t *Turn, id ecs.EntityID, a *component.Actor)
	// TakeDamage applies one damage instance and reports whether it killed.
	TakeDamage(h *component.Health, amount float64, tags []string) bool
	// AttackEmoji is the on-hit effect glyph.
	AttackEmoji() string
}

// base provides the default damage handling and no-op hooks.
type base struct{}

func (base) Static() bool                                      { return false }
func (base) ResetTurnState(*component.Actor)                   {}
func (base) ProcessTurn(*Turn, ecs.EntityID, *component.Actor) {}
func (base) AttackEmoji() string                               { return "" }

func (base) TakeDamage(h *component.Health, amount float64, _ []string) bool {
	return ApplyDefaultDamage(h, amount)
}

// ApplyDefaultDamage clamps hit points into [0, Max] after subtracting
// amount and marks the record dead the first time it reaches zero.
func ApplyDefaultDamage(h *component.Health, amount float64) bool {
	if h.Dead {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current <= 0 {
		h.Dead = true
		return true
	}
	return false
}

// HasTag reports whether tags contains want.
func HasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

func (t *Turn) record(e trace.Event) {
	if t.Events == nil {
		return
	}
	e.Turn = t.Number
	t.Events.Record(e)
}

func (t *Turn) logger() *zap.Logger {
	if t.Log == nil {
		return zap.NewNop()
	}
	return t.Log
}

// sense refreshes the remembered player position when the player is within
// senseRange, and expires a stale memory when forgetting is enabled.
func (t *Turn) sense(pos component.Position, a *component.Actor, senseRange float64) bool {
	if pos.DistanceTo(t.Player) <= senseRange {
		a.LastSeen = t.Player
		a.HasLastSeen = true
		a.LastSeenTurn = t.Number
		return true
	}
	if a.HasLastSeen && t.ForgetAfter > 0 && t.Number-a.LastSeenTurn > t.ForgetAfter {
		a.HasLastSeen = false
		a.LastSeen = component.Position{}
	}
	return false
}

func (t *Turn) inRange(pos component.Position, a *component.Actor) bool {
	return pos.DistanceTo(t.Player) <= a.AttackRange
}

func (t *Turn) canAttack(pos component.Position, a *component.Actor) bool {
	return a.AttackCooldown == 0 && t.inRange(pos, a) && t.World.HasLineOfSight(pos, t.Player)
}

// attack hits the player with the entity's current attack damage and starts
// its attack cooldown.
func (t *Turn) attack(id ecs.EntityID, pos component.Position, a *component.Actor, cooldown int, glyph string) {
	t.World.DamagePlayer(id, a.AttackDamage, []string{TagPhysical})
	a.AttackCooldown = cooldown
	t.record(trace.Event{
		Kind:   trace.KindAttack,
		Entity: id,
		Actor:  a.Kind,
		At:     pos,
		Amount: a.AttackDamage,
		Glyph:  glyph,
	})
}

func position(w World, id ecs.EntityID) component.Position {
	return w.ECS().Get(id, component.CPosition).(component.Position)
}

// mover spends one entity's movement budget.
type mover struct {
	t   *Turn
	id  ecs.EntityID
	pos component.Position
	a   *component.Actor
	nav nav.Navigator
}

func newMover(t *Turn, id ecs.EntityID, a *component.Actor) *mover {
	return &mover{
		t:   t,
		id:  id,
		pos: position(t.World, id),
		a:   a,
		nav: nav.Navigator{
			Grid:   t.World,
			Paths:  t.World.Pathfinder(),
			Player: t.Player,
			Rand:   t.Rand,
		},
	}
}

// step moves one tile if a movement point is left.
func (m *mover) step(to component.Position) bool {
	if m.a.MovesRemaining <= 0 {
		return false
	}
	m.t.World.Move(m.id, to)
	m.pos = to
	m.a.MovesRemaining--
	return true
}

// advance spends the whole budget walking toward target.
func (m *mover) advance(target component.Position) {
	for m.a.MovesRemaining > 0 {
		next, ok := m.nav.StepToward(m.pos, target)
		if !ok || !m.step(next) {
			return
		}
	}
}

// wander spends the budget on random steps, stopping at the first dead end.
func (m *mover) wander() {
	for m.a.MovesRemaining > 0 {
		next, ok := m.nav.Wander(m.pos)
		if !ok || !m.step(next) {
			return
		}
	}
}

// holdOrShuffle keeps an in-range unit near the player: it stays put with
// probability hold, otherwise it sidles to another tile still in reach.
func (m *mover) holdOrShuffle(hold float64) {
	if m.t.Rand.Float64() < hold {
		return
	}
	if next, ok := m.nav.ShuffleInRange(m.pos, m.t.Player, m.a.AttackRange); ok {
		m.step(next)
	}
}
