package behavior

import (
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
)

// Swarmer is the fast melee unit. It senses from far away, may attack and
// move in the same turn, and skips its next turn after every attack.
type Swarmer struct {
	base
	cfg config.SwarmerConfig
}

func NewSwarmer(cfg config.SwarmerConfig) *Swarmer {
	return &Swarmer{cfg: cfg}
}

func (s *Swarmer) ResetTurnState(a *component.Actor) {
	a.MovesRemaining = s.cfg.Moves
	a.AttackDamage = s.cfg.AttackDamage
	a.AttackRange = s.cfg.AttackRange
}

func (s *Swarmer) ProcessTurn(t *Turn, id ecs.EntityID, a *component.Actor) {
	m := newMover(t, id, a)
	t.sense(m.pos, a, s.cfg.SenseRange)

	if t.canAttack(m.pos, a) {
		t.attack(id, m.pos, a, s.cfg.AttackCooldown, s.AttackEmoji())
		a.MustWait = true
	}
	if t.inRange(m.pos, a) {
		m.holdOrShuffle(s.cfg.HoldChance)
		return
	}
	if a.HasLastSeen {
		m.advance(a.LastSeen)
	}
}

func (s *Swarmer) AttackEmoji() string { return "💥" }
