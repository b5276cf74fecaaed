// Package trace records what the AI did each turn.
package trace

import (
	"fmt"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"
)

// Kind names one kind of turn event.
type Kind string

const (
	KindAttack   Kind = "attack"
	KindHeal     Kind = "heal"
	KindSpawn    Kind = "spawn"
	KindTeleport Kind = "teleport"
	KindDamage   Kind = "damage"
	KindDeath    Kind = "death"
	KindSkip     Kind = "skip"
	KindFault    Kind = "fault"
)

// Event is one observable action taken during a turn.
type Event struct {
	Turn   int                `json:"turn"`
	Kind   Kind               `json:"kind"`
	Entity ecs.EntityID       `json:"entity"`
	Actor  string             `json:"actor,omitempty"` // entity_type of Entity
	Target ecs.EntityID       `json:"target,omitempty"`
	At     component.Position `json:"at"`
	Amount float64            `json:"amount,omitempty"`
	Glyph  string             `json:"glyph,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case KindAttack:
		return fmt.Sprintf("%s %s hits you for %.0f", e.Glyph, e.Actor, e.Amount)
	case KindHeal:
		return fmt.Sprintf("%s %s mends #%d (+%.1f)", e.Glyph, e.Actor, e.Target, e.Amount)
	case KindSpawn:
		return fmt.Sprintf("%s %s births #%d", e.Glyph, e.Actor, e.Target)
	case KindTeleport:
		return fmt.Sprintf("%s %s is somewhere else now", e.Glyph, e.Actor)
	case KindDamage:
		return fmt.Sprintf("%s %s takes %.0f", e.Glyph, e.Actor, e.Amount)
	case KindDeath:
		return fmt.Sprintf("%s %s dies", e.Glyph, e.Actor)
	case KindFault:
		return fmt.Sprintf("#%d (%s) faulted and was skipped", e.Entity, e.Actor)
	}
	return fmt.Sprintf("#%d %s", e.Entity, e.Kind)
}

// Recorder receives turn events.
type Recorder interface {
	Record(Event)
}

// Discard drops every event.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Event) {}

// Memory keeps events in memory, for tests and the HUD message log.
type Memory struct {
	Events []Event
}

func (m *Memory) Record(e Event) { m.Events = append(m.Events, e) }

// OfKind returns the recorded events of kind k, in order.
func (m *Memory) OfKind(k Kind) []Event {
	var out []Event
	for _, e := range m.Events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// Reset forgets every recorded event.
func (m *Memory) Reset() { m.Events = m.Events[:0] }

// Tee fans one event out to several recorders.
type Tee []Recorder

func (t Tee) Record(e Event) {
	for _, r := range t {
		r.Record(e)
	}
}
