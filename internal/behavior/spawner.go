package behavior

import (
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/nav"
	"backrooms-crawl/internal/trace"

	"go.uber.org/zap"
)

// Spawner is the slow heavy unit that breeds minions while it can sense the
// player. Spawning and moving are exclusive within one turn.
type Spawner struct {
	base
	cfg config.SpawnerConfig
}

func NewSpawner(cfg config.SpawnerConfig) *Spawner {
	return &Spawner{cfg: cfg}
}

func (s *Spawner) ResetTurnState(a *component.Actor) {
	a.MovesRemaining = s.cfg.Moves
	a.AttackDamage = s.cfg.AttackDamage
	a.AttackRange = s.cfg.AttackRange
}

func (s *Spawner) ProcessTurn(t *Turn, id ecs.EntityID, a *component.Actor) {
	m := newMover(t, id, a)
	sensed := t.sense(m.pos, a, s.cfg.SenseRange)
	if sensed {
		a.MovesRemaining = s.cfg.Moves * 2
	}

	attacked := false
	if t.canAttack(m.pos, a) {
		t.attack(id, m.pos, a, s.cfg.AttackCooldown, s.AttackEmoji())
		a.MovesRemaining = s.cfg.Moves
		attacked = true
	}

	if !attacked && sensed && a.SpawnCooldown == 0 && s.spawn(t, id, m.pos, a) {
		a.SpawnCooldown = s.cfg.SpawnCooldown
		a.MustWait = true
		a.MovesRemaining = 0
		return
	}

	if t.inRange(m.pos, a) {
		m.holdOrShuffle(s.cfg.HoldChance)
		return
	}
	if a.HasLastSeen {
		m.advance(a.LastSeen)
		return
	}
	m.wander()
}

// spawn places one minion on a random free orthogonal neighbour. It reports
// false, leaving cooldowns untouched, when no neighbour can take it.
func (s *Spawner) spawn(t *Turn, id ecs.EntityID, pos component.Position, a *component.Actor) bool {
	dirs := nav.Neighbors4
	t.Rand.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		c := pos.Offset(d.X, d.Y)
		if c == t.Player || !t.World.IsWalkable(c) || t.World.IsOccupied(c) {
			continue
		}
		minion, err := t.World.Spawn(s.cfg.MinionKind, c)
		if err != nil {
			t.logger().Warn("spawn failed",
				zap.Uint64("entity", uint64(id)),
				zap.String("minion", s.cfg.MinionKind),
				zap.Error(err))
			return false
		}
		t.record(trace.Event{
			Kind:   trace.KindSpawn,
			Entity: id,
			Actor:  a.Kind,
			Target: minion,
			At:     c,
		})
		return true
	}
	return false
}

func (s *Spawner) AttackEmoji() string { return "🩸" }
