// Package scenario loads hand-authored arenas from YAML.
//
// A scenario is a grid of characters plus a legend:
//
//	name: Level 0
//	legend:
//	  s: bacteria_spawn
//	map:
//	  - "#####"
//	  - "#@.s#"
//	  - "#####"
//
// '#' is wall, '.' floor, '+' door, '~' puddle, 'x' exit and '@' the player.
// Legend characters stand on floor.
package scenario

import (
	"fmt"
	"os"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/gamemap"
	"backrooms-crawl/internal/level"

	"gopkg.in/yaml.v3"
)

// PlayerMaxHP is the player's starting health in every scenario.
const PlayerMaxHP = 30

type Scenario struct {
	Name   string            `yaml:"name"`
	Map    []string          `yaml:"map"`
	Legend map[string]string `yaml:"legend"`
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return &sc, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Default parses the embedded Level 0 arena.
func Default() (*Scenario, error) { return Parse(assets.Level0) }

func (sc *Scenario) validate() error {
	if len(sc.Map) == 0 {
		return fmt.Errorf("empty map")
	}
	for key := range sc.Legend {
		if len([]rune(key)) != 1 {
			return fmt.Errorf("legend key %q must be a single character", key)
		}
		if _, ok := terrain([]rune(key)[0]); ok || key == "@" {
			return fmt.Errorf("legend key %q shadows a terrain character", key)
		}
	}

	width := len([]rune(sc.Map[0]))
	players := 0
	for y, row := range sc.Map {
		runes := []rune(row)
		if len(runes) != width {
			return fmt.Errorf("row %d is %d wide, want %d", y, len(runes), width)
		}
		for x, ch := range runes {
			if ch == '@' {
				players++
				continue
			}
			if _, ok := terrain(ch); ok {
				continue
			}
			if _, ok := sc.Legend[string(ch)]; !ok {
				return fmt.Errorf("unknown character %q at (%d,%d)", ch, x, y)
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("want exactly one player start, found %d", players)
	}
	return nil
}

// Build assembles a ready level: tiles, the player and every legend entity.
func (sc *Scenario) Build(opts level.Options) (*level.Level, error) {
	height := len(sc.Map)
	width := len([]rune(sc.Map[0]))
	gmap := gamemap.New(width, height)

	var start component.Position
	type placement struct {
		kind string
		pos  component.Position
	}
	var actors []placement

	for y, row := range sc.Map {
		for x, ch := range []rune(row) {
			pos := component.Position{X: x, Y: y}
			if t, ok := terrain(ch); ok {
				gmap.Set(x, y, t)
				continue
			}
			gmap.Set(x, y, gamemap.MakeFloor())
			if ch == '@' {
				start = pos
				continue
			}
			actors = append(actors, placement{kind: sc.Legend[string(ch)], pos: pos})
		}
	}

	l := level.New(sc.Name, gmap, opts)
	if _, err := l.PlacePlayer(start, PlayerMaxHP); err != nil {
		return nil, fmt.Errorf("build %q: %w", sc.Name, err)
	}
	for _, a := range actors {
		if _, err := l.Spawn(a.kind, a.pos); err != nil {
			return nil, fmt.Errorf("build %q: %w", sc.Name, err)
		}
	}
	return l, nil
}

func terrain(ch rune) (gamemap.Tile, bool) {
	switch ch {
	case '#':
		return gamemap.MakeWall(), true
	case '.':
		return gamemap.MakeFloor(), true
	case '+':
		return gamemap.MakeDoor(), true
	case '~':
		return gamemap.MakePuddle(), true
	case 'x':
		return gamemap.MakeExit(), true
	}
	return gamemap.Tile{}, false
}
