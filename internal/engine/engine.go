// Package engine runs the global turn: one ordered pass over every actor.
package engine

import (
	"fmt"
	"math/rand"

	"backrooms-crawl/internal/behavior"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/trace"

	"go.uber.org/zap"
)

// World is the behavior collaborator plus reaping of dead records.
type World interface {
	behavior.World
	// RemoveDead destroys every dead non-player entity and returns their ids.
	RemoveDead() []ecs.EntityID
}

// Engine dispatches actors to their strategies.
type Engine struct {
	world    World
	registry *behavior.Registry
	rng      *rand.Rand
	log      *zap.Logger
	events   trace.Recorder

	forgetAfter int
	flicker     config.FlickerConfig
	turn        int
	warned      map[string]bool
}

// New builds an engine. A nil logger is replaced by a no-op logger and a nil
// events recorder discards events.
func New(world World, registry *behavior.Registry, cfg *config.Config, rng *rand.Rand, log *zap.Logger, events trace.Recorder) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if events == nil {
		events = trace.Discard
	}
	return &Engine{
		world:       world,
		registry:    registry,
		rng:         rng,
		log:         log,
		events:      events,
		forgetAfter: cfg.Engine.ForgetAfterTurns,
		flicker:     cfg.Flicker,
		warned:      make(map[string]bool),
	}
}

// Turn returns the number of completed global turns.
func (e *Engine) Turn() int { return e.turn }

// RunTurn processes every actor alive at the start of the pass in ascending
// id order, reaps the dead and advances the light fixtures. Entities created
// during the pass first act on the next one.
func (e *Engine) RunTurn(player component.Position) {
	e.turn++
	w := e.world.ECS()
	for _, id := range w.Query(component.CActor) {
		if !w.Alive(id) {
			continue
		}
		e.processSafely(id, player)
	}
	for _, id := range e.world.RemoveDead() {
		e.log.Debug("entity removed", zap.Uint64("entity", uint64(id)), zap.Int("turn", e.turn))
	}
	behavior.TickVisuals(w, e.turn, e.flicker)
}

// processSafely contains a panicking strategy to its own entity.
func (e *Engine) processSafely(id ecs.EntityID, player component.Position) {
	defer func() {
		if r := recover(); r != nil {
			kind := ""
			if c := e.world.ECS().Get(id, component.CActor); c != nil {
				kind = c.(component.Actor).Kind
			}
			e.log.Error("entity turn failed",
				zap.Uint64("entity", uint64(id)),
				zap.String("entity_type", kind),
				zap.Any("panic", r))
			e.events.Record(trace.Event{Turn: e.turn, Kind: trace.KindFault, Entity: id, Actor: kind})
		}
	}()
	e.ProcessEntityTurn(id, player)
}

// ProcessEntityTurn runs one entity's turn: the must-wait gate, the static
// check, the per-turn reset, cooldown ticks, then the strategy itself.
func (e *Engine) ProcessEntityTurn(id ecs.EntityID, player component.Position) {
	w := e.world.ECS()
	ac := w.Get(id, component.CActor)
	if ac == nil || isDead(w, id) {
		return
	}
	act := ac.(component.Actor)

	if act.MustWait {
		act.MustWait = false
		w.Add(id, act)
		e.events.Record(trace.Event{Turn: e.turn, Kind: trace.KindSkip, Entity: id, Actor: act.Kind})
		return
	}

	strategy := e.strategy(id, act.Kind)
	if strategy.Static() {
		return
	}

	strategy.ResetTurnState(&act)
	act.AttackCooldown = max(act.AttackCooldown-1, 0)
	act.SpawnCooldown = max(act.SpawnCooldown-1, 0)

	strategy.ProcessTurn(&behavior.Turn{
		World:       e.world,
		Player:      player,
		Rand:        e.rng,
		Number:      e.turn,
		ForgetAfter: e.forgetAfter,
		Log:         e.log,
		Events:      e.events,
	}, id, &act)
	w.Add(id, act)
}

// ApplyDamage routes one damage instance through the target's strategy and
// reports whether it killed. Entities without an actor use default handling.
func (e *Engine) ApplyDamage(id ecs.EntityID, amount float64, tags []string) (bool, error) {
	w := e.world.ECS()
	hc := w.Get(id, component.CHealth)
	if hc == nil {
		return false, fmt.Errorf("apply damage to #%d: no health", id)
	}
	hp := hc.(component.Health)
	if hp.Dead {
		return false, nil
	}

	kind := ""
	var strategy behavior.Strategy = behavior.Default{}
	if ac := w.Get(id, component.CActor); ac != nil {
		kind = ac.(component.Actor).Kind
		strategy = e.strategy(id, kind)
	}

	before := hp.Current
	died := strategy.TakeDamage(&hp, amount, tags)
	w.Add(id, hp)

	pos, _ := w.Get(id, component.CPosition).(component.Position)
	if taken := before - hp.Current; taken > 0 {
		e.events.Record(trace.Event{Turn: e.turn, Kind: trace.KindDamage, Entity: id, Actor: kind, At: pos, Amount: taken})
	}
	if died {
		e.log.Debug("entity died", zap.Uint64("entity", uint64(id)), zap.String("entity_type", kind), zap.Strings("tags", tags))
		e.events.Record(trace.Event{Turn: e.turn, Kind: trace.KindDeath, Entity: id, Actor: kind, At: pos})
	}
	return died, nil
}

// AttackEmoji returns the on-hit glyph of the strategy driving id.
func (e *Engine) AttackEmoji(id ecs.EntityID) string {
	ac := e.world.ECS().Get(id, component.CActor)
	if ac == nil {
		return ""
	}
	s, _ := e.registry.Lookup(ac.(component.Actor).Kind)
	return s.AttackEmoji()
}

func (e *Engine) strategy(id ecs.EntityID, kind string) behavior.Strategy {
	s, ok := e.registry.Lookup(kind)
	if !ok && !e.warned[kind] {
		e.warned[kind] = true
		e.log.Warn("unknown entity type", zap.Uint64("entity", uint64(id)), zap.String("entity_type", kind))
	}
	return s
}

func isDead(w *ecs.World, id ecs.EntityID) bool {
	hc := w.Get(id, component.CHealth)
	return hc != nil && hc.(component.Health).Dead
}
