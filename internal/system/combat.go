package system

import (
	"backrooms-crawl/assets"
	"backrooms-crawl/internal/behavior"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/level"
)

// Player attack tuning.
const (
	PunchDamage = 3.0
	ClapDamage  = 1.0
	ClapRadius  = 2.0
)

// Damager applies tagged damage through the target's behavior.
type Damager interface {
	ApplyDamage(id ecs.EntityID, amount float64, tags []string) (bool, error)
}

// AttackResult holds the outcome of one player attack on one target.
type AttackResult struct {
	Target ecs.EntityID
	Kind   string
	Damage float64 // hit points actually lost
	Killed bool
}

// Punch hits target with physical damage.
func Punch(l *level.Level, d Damager, target ecs.EntityID) (AttackResult, error) {
	return strike(l, d, target, PunchDamage, []string{behavior.TagPhysical})
}

// Clap deals sound damage to every living actor within ClapRadius of the
// player, in entity order.
func Clap(l *level.Level, d Damager) ([]AttackResult, error) {
	origin := l.PlayerPos()
	var results []AttackResult
	for _, id := range l.ECS().Query(component.CActor, component.CHealth, component.CPosition) {
		if l.ECS().Get(id, component.CPosition).(component.Position).DistanceTo(origin) > ClapRadius {
			continue
		}
		if l.ECS().Get(id, component.CHealth).(component.Health).Dead {
			continue
		}
		res, err := strike(l, d, id, ClapDamage, []string{behavior.TagSound})
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func strike(l *level.Level, d Damager, target ecs.EntityID, amount float64, tags []string) (AttackResult, error) {
	res := AttackResult{Target: target}
	if c := l.ECS().Get(target, component.CActor); c != nil {
		res.Kind = c.(component.Actor).Kind
	}
	before := hpOf(l, target)
	killed, err := d.ApplyDamage(target, amount, tags)
	if err != nil {
		return res, err
	}
	res.Damage = before - hpOf(l, target)
	res.Killed = killed
	return res, nil
}

func hpOf(l *level.Level, id ecs.EntityID) float64 {
	if c := l.ECS().Get(id, component.CHealth); c != nil {
		return c.(component.Health).Current
	}
	return 0
}

// Hostiles counts the living actors that are not fixtures.
func Hostiles(l *level.Level) int {
	n := 0
	for _, id := range l.ECS().Query(component.CActor, component.CHealth) {
		if l.ECS().Get(id, component.CHealth).(component.Health).Dead {
			continue
		}
		def, ok := assets.Lookup(l.ECS().Get(id, component.CActor).(component.Actor).Kind)
		if ok && def.Category == assets.CategoryFixture {
			continue
		}
		n++
	}
	return n
}
