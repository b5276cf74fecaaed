package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Swarmer SwarmerConfig `mapstructure:"swarmer"`
	Support SupportConfig `mapstructure:"support"`
	Spawner SpawnerConfig `mapstructure:"spawner"`
	Stalker StalkerConfig `mapstructure:"stalker"`
	Flicker FlickerConfig `mapstructure:"flicker"`
	Server  ServerConfig  `mapstructure:"server"`
}

type EngineConfig struct {
	Seed  int64 `mapstructure:"seed"` // 0 = seed from the clock
	Debug bool  `mapstructure:"debug"`
	// ForgetAfterTurns clears a remembered player position that has not been
	// refreshed for this many turns. 0 keeps it forever.
	ForgetAfterTurns int    `mapstructure:"forget_after_turns"`
	TracePath        string `mapstructure:"trace_path"` // empty disables the trace file
	PathSearchLimit  int    `mapstructure:"path_search_limit"`
	DisablePathfind  bool   `mapstructure:"disable_pathfinder"`
}

// SwarmerConfig tunes the fast melee swarm unit.
type SwarmerConfig struct {
	SenseRange     float64 `mapstructure:"sense_range"`
	Moves          int     `mapstructure:"moves"`
	AttackDamage   float64 `mapstructure:"attack_damage"`
	AttackRange    float64 `mapstructure:"attack_range"`
	AttackCooldown int     `mapstructure:"attack_cooldown"`
	HoldChance     float64 `mapstructure:"hold_chance"`
}

// SupportConfig tunes the healer. HealRadius is Euclidean.
type SupportConfig struct {
	SenseRange     float64 `mapstructure:"sense_range"`
	Moves          int     `mapstructure:"moves"`
	AttackDamage   float64 `mapstructure:"attack_damage"`
	AttackRange    float64 `mapstructure:"attack_range"`
	AttackCooldown int     `mapstructure:"attack_cooldown"`
	HoldChance     float64 `mapstructure:"hold_chance"`
	HealRadius     float64 `mapstructure:"heal_radius"`
}

// SpawnerConfig tunes the brood mother. Moves doubles while the player is sensed.
type SpawnerConfig struct {
	SenseRange     float64 `mapstructure:"sense_range"`
	Moves          int     `mapstructure:"moves"`
	AttackDamage   float64 `mapstructure:"attack_damage"`
	AttackRange    float64 `mapstructure:"attack_range"`
	AttackCooldown int     `mapstructure:"attack_cooldown"`
	HoldChance     float64 `mapstructure:"hold_chance"`
	SpawnCooldown  int     `mapstructure:"spawn_cooldown"`
	MinionKind     string  `mapstructure:"minion_kind"`
}

// StalkerConfig tunes the teleporting observer.
type StalkerConfig struct {
	SenseRange        float64 `mapstructure:"sense_range"`
	TeleportInterval  int     `mapstructure:"teleport_interval"`
	TeleportRadius    int     `mapstructure:"teleport_radius"`
	PreferredDistance float64 `mapstructure:"preferred_distance"`
	Jitter            float64 `mapstructure:"jitter"`
	KillTag           string  `mapstructure:"kill_tag"`
}

// FlickerConfig drives the entropy-lock light fixtures.
type FlickerConfig struct {
	Period  int     `mapstructure:"period"`   // turns per flicker roll
	LitOdds float64 `mapstructure:"lit_odds"` // 0..1
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.seed", 0)
	v.SetDefault("engine.debug", false)
	v.SetDefault("engine.forget_after_turns", 0)
	v.SetDefault("engine.trace_path", "")
	v.SetDefault("engine.path_search_limit", 4096)
	v.SetDefault("engine.disable_pathfinder", false)

	v.SetDefault("swarmer.sense_range", 80.0)
	v.SetDefault("swarmer.moves", 1)
	v.SetDefault("swarmer.attack_damage", 2.0)
	v.SetDefault("swarmer.attack_range", 1.5)
	v.SetDefault("swarmer.attack_cooldown", 1)
	v.SetDefault("swarmer.hold_chance", 0.6)

	v.SetDefault("support.sense_range", 40.0)
	v.SetDefault("support.moves", 1)
	v.SetDefault("support.attack_damage", 3.0)
	v.SetDefault("support.attack_range", 1.5)
	v.SetDefault("support.attack_cooldown", 2)
	v.SetDefault("support.hold_chance", 0.6)
	v.SetDefault("support.heal_radius", 3.0)

	v.SetDefault("spawner.sense_range", 40.0)
	v.SetDefault("spawner.moves", 1)
	v.SetDefault("spawner.attack_damage", 4.0)
	v.SetDefault("spawner.attack_range", 1.5)
	v.SetDefault("spawner.attack_cooldown", 2)
	v.SetDefault("spawner.hold_chance", 0.6)
	v.SetDefault("spawner.spawn_cooldown", 8)
	v.SetDefault("spawner.minion_kind", "bacteria_spawn")

	v.SetDefault("stalker.sense_range", 40.0)
	v.SetDefault("stalker.teleport_interval", 4)
	v.SetDefault("stalker.teleport_radius", 5)
	v.SetDefault("stalker.preferred_distance", 5.0)
	v.SetDefault("stalker.jitter", 0.01)
	v.SetDefault("stalker.kill_tag", "sound")

	v.SetDefault("flicker.period", 3)
	v.SetDefault("flicker.lit_odds", 0.75)

	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
}

// Default returns the built-in tuning without reading any file.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load reads config from the given YAML file path, layered over the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
