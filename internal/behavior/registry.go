package behavior

import (
	"backrooms-crawl/assets"
	"backrooms-crawl/internal/config"
)

// Registry maps entity types to their shared strategy instance.
type Registry struct {
	strategies map[string]Strategy
	fallback   Strategy
}

// NewRegistry returns an empty registry whose lookups all fall back to
// Default.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
		fallback:   Default{},
	}
}

// NewDefaultRegistry registers the full archetype roster tuned by cfg.
func NewDefaultRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()
	r.Register(assets.KindBacteriaSpawn, NewSwarmer(cfg.Swarmer))
	r.Register(assets.KindSpreader, NewSupport(cfg.Support))
	r.Register(assets.KindBroodMother, NewSpawner(cfg.Spawner))
	r.Register(assets.KindSmiler, NewStalker(cfg.Stalker))

	static := Static{}
	for _, kind := range []string{
		assets.KindLight,
		assets.KindLightBroken,
		assets.KindMannequin,
		assets.KindBarrelFire,
	} {
		r.Register(kind, static)
	}
	return r
}

// Register adds or replaces the strategy for kind.
func (r *Registry) Register(kind string, s Strategy) {
	r.strategies[kind] = s
}

// Lookup returns the strategy for kind. Unknown kinds get the shared
// Default strategy and ok == false.
func (r *Registry) Lookup(kind string) (Strategy, bool) {
	if s, ok := r.strategies[kind]; ok {
		return s, true
	}
	return r.fallback, false
}
