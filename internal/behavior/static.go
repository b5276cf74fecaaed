package behavior

import (
	"encoding/binary"

	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"

	"github.com/cespare/xxhash/v2"
)

// Static is shared by decoration, light fixtures and targets. The
// orchestrator skips it entirely.
type Static struct{ base }

func (Static) Static() bool { return true }

// Default is what unknown entity types resolve to: an active strategy that
// does nothing.
type Default struct{ base }

// TickVisuals advances the entropy-lock flicker of every light fixture.
// A fixture's lit state is a pure function of its seed and the flicker
// epoch (turn / period), so replays light up identically.
func TickVisuals(w *ecs.World, turn int, cfg config.FlickerConfig) {
	period := max(cfg.Period, 1)
	epoch := uint64(turn / period)
	var buf [16]byte
	for _, id := range w.Query(component.CFlicker) {
		f := w.Get(id, component.CFlicker).(component.Flicker)
		if f.Broken {
			f.Lit = false
		} else {
			binary.LittleEndian.PutUint64(buf[:8], f.Seed)
			binary.LittleEndian.PutUint64(buf[8:], epoch)
			roll := float64(xxhash.Sum64(buf[:])%10000) / 10000
			f.Lit = roll < cfg.LitOdds
		}
		w.Add(id, f)
	}
}
