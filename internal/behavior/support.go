package behavior

import (
	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/trace"
)

// Support heals nearby allies of its category every turn and attacks with
// an area burst that does not cost it the next turn.
type Support struct {
	base
	cfg config.SupportConfig
}

func NewSupport(cfg config.SupportConfig) *Support {
	return &Support{cfg: cfg}
}

func (s *Support) ResetTurnState(a *component.Actor) {
	a.MovesRemaining = s.cfg.Moves
	a.AttackDamage = s.cfg.AttackDamage
	a.AttackRange = s.cfg.AttackRange
}

func (s *Support) ProcessTurn(t *Turn, id ecs.EntityID, a *component.Actor) {
	m := newMover(t, id, a)
	s.heal(t, id, m.pos, a)
	t.sense(m.pos, a, s.cfg.SenseRange)

	if t.canAttack(m.pos, a) {
		t.attack(id, m.pos, a, s.cfg.AttackCooldown, s.AttackEmoji())
	}
	if t.inRange(m.pos, a) {
		m.holdOrShuffle(s.cfg.HoldChance)
		return
	}
	if a.HasLastSeen {
		m.advance(a.LastSeen)
	}
}

// heal restores AttackDamage percent of max HP to every living ally of the
// same category within the heal radius. Other supports are never healed, so
// two healers cannot keep each other alive.
func (s *Support) heal(t *Turn, id ecs.EntityID, pos component.Position, a *component.Actor) {
	self, ok := assets.Lookup(a.Kind)
	if !ok {
		return
	}
	w := t.World.ECS()
	for _, other := range w.Query(component.CActor, component.CHealth, component.CPosition) {
		if other == id {
			continue
		}
		oa := w.Get(other, component.CActor).(component.Actor)
		if oa.Kind == a.Kind {
			continue
		}
		def, ok := assets.Lookup(oa.Kind)
		if !ok || def.Category != self.Category {
			continue
		}
		if w.Get(other, component.CPosition).(component.Position).DistanceTo(pos) > s.cfg.HealRadius {
			continue
		}
		hp := w.Get(other, component.CHealth).(component.Health)
		if hp.Dead || hp.Current >= hp.Max {
			continue
		}
		before := hp.Current
		hp.Current += hp.Max * a.AttackDamage / 100
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		w.Add(other, hp)
		t.record(trace.Event{
			Kind:   trace.KindHeal,
			Entity: id,
			Actor:  a.Kind,
			Target: other,
			At:     pos,
			Amount: hp.Current - before,
			Glyph:  self.Glyph,
		})
	}
}

func (s *Support) AttackEmoji() string { return "☣️" }
