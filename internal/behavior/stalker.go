package behavior

import (
	"math"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/trace"
)

// Stalker never attacks. Every TeleportInterval turns it blinks to the tile
// that keeps it closest to its preferred distance from the player, and only
// damage carrying the kill tag can hurt it.
type Stalker struct {
	base
	cfg config.StalkerConfig
}

func NewStalker(cfg config.StalkerConfig) *Stalker {
	return &Stalker{cfg: cfg}
}

func (s *Stalker) ResetTurnState(a *component.Actor) {
	a.MovesRemaining = 0
	a.AttackDamage = 0
	a.AttackRange = 0
}

func (s *Stalker) ProcessTurn(t *Turn, id ecs.EntityID, a *component.Actor) {
	pos := position(t.World, id)
	t.sense(pos, a, s.cfg.SenseRange)

	if a.TeleportCooldown > 0 {
		a.TeleportCooldown--
		return
	}
	if !a.HasLastSeen {
		return
	}

	dest := s.destination(t, pos, a.LastSeen)
	if dest != pos {
		t.World.Move(id, dest)
		t.record(trace.Event{
			Kind:   trace.KindTeleport,
			Entity: id,
			Actor:  a.Kind,
			At:     dest,
		})
	}
	a.TeleportCooldown = max(s.cfg.TeleportInterval-1, 0)
}

// destination scores every tile inside the Euclidean teleport radius by how
// close its distance to target is to the preferred stand-off. The current
// tile always competes, so the result is never worse than staying.
func (s *Stalker) destination(t *Turn, pos, target component.Position) component.Position {
	r := s.cfg.TeleportRadius
	best := pos
	bestScore := math.Inf(-1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			c := pos.Offset(dx, dy)
			if c != pos && (c == t.Player || !t.World.IsWalkable(c) || t.World.IsOccupied(c)) {
				continue
			}
			score := -math.Abs(c.DistanceTo(target)-s.cfg.PreferredDistance) + t.Rand.Float64()*s.cfg.Jitter
			if score > bestScore {
				best, bestScore = c, score
			}
		}
	}
	return best
}

// TakeDamage ignores everything except the kill tag, which is always lethal.
func (s *Stalker) TakeDamage(h *component.Health, _ float64, tags []string) bool {
	if h.Dead || !HasTag(tags, s.cfg.KillTag) {
		return false
	}
	h.Current = 0
	h.Dead = true
	return true
}
