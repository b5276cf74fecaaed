package component

import "backrooms-crawl/internal/ecs"

const CActor ecs.ComponentType = 4

// Actor is the per-turn AI state of a non-player entity. Kind selects the
// behavior strategy and never changes after creation.
type Actor struct {
	Kind string

	// Reset by the strategy at the start of every active turn.
	MovesRemaining int
	AttackDamage   float64
	AttackRange    float64

	// Ticked by the orchestrator once per active turn, floored at 0.
	AttackCooldown int
	SpawnCooldown  int

	// Owned by the stalker strategy; the orchestrator never ticks it.
	TeleportCooldown int

	// MustWait skips the whole next turn; cleared when consumed.
	MustWait bool

	// LastSeen is the remembered player tile, valid while HasLastSeen.
	LastSeen     Position
	HasLastSeen  bool
	LastSeenTurn int
}

func (Actor) Type() ecs.ComponentType { return CActor }
