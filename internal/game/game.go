package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"backrooms-crawl/assets"
	"backrooms-crawl/internal/behavior"
	"backrooms-crawl/internal/component"
	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/ecs"
	"backrooms-crawl/internal/engine"
	"backrooms-crawl/internal/level"
	"backrooms-crawl/internal/render"
	"backrooms-crawl/internal/scenario"
	"backrooms-crawl/internal/system"
	"backrooms-crawl/internal/trace"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateEscaped
)

// FOVRadius is how far the player sees in tiles.
const FOVRadius = 8

const maxMessages = 50

// Game is the top-level orchestrator for one arena.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	cfg      *config.Config
	log      *zap.Logger
	scenario *scenario.Scenario
	sink     trace.Recorder
	rng      *rand.Rand

	lvl        *level.Level
	eng        *engine.Engine
	events     *trace.Memory
	memory     *system.Memory
	state      GameState
	messages   []string
	discovered map[string]bool
	runLog     RunLog
}

// New prepares a game on an already initialized screen. Every turn event is
// also forwarded to sink when it is non-nil. Call Start (or Run) to build
// the arena.
func New(screen tcell.Screen, sc *scenario.Scenario, cfg *config.Config, log *zap.Logger, sink trace.Recorder) *Game {
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if sink == nil {
		sink = trace.Discard
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		cfg:      cfg,
		log:      log,
		scenario: sc,
		sink:     sink,
		rng:      rand.New(rand.NewSource(seed)),
		events:   &trace.Memory{},
	}
}

// Start builds a fresh arena from the scenario and resets all per-run state.
func (g *Game) Start() error {
	lvl, err := g.scenario.Build(level.Options{
		DisablePathfinder: g.cfg.Engine.DisablePathfind,
		PathSearchLimit:   g.cfg.Engine.PathSearchLimit,
	})
	if err != nil {
		return fmt.Errorf("start arena: %w", err)
	}

	g.lvl = lvl
	g.events.Reset()
	g.eng = engine.New(lvl, behavior.NewDefaultRegistry(g.cfg), g.cfg, g.rng, g.log, trace.Tee{g.events, g.sink})
	g.memory = system.NewMemory()
	g.state = StatePlaying
	g.messages = nil
	g.discovered = make(map[string]bool)
	g.runLog = RunLog{Level: lvl.Name, Kills: make(map[string]int)}

	g.updateFOV()
	g.addMessage(assets.LevelLore[g.rng.Intn(len(assets.LevelLore))])
	g.addMessage("Move with hjklyubn or arrows. c claps, . waits.")
	g.log.Info("arena started", zap.String("level", lvl.Name), zap.Int("hostiles", system.Hostiles(lvl)))
	return nil
}

// State returns the current state of the run.
func (g *Game) State() GameState { return g.state }

// Level returns the arena being played.
func (g *Game) Level() *level.Level { return g.lvl }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the main loop. It supports consecutive runs through the end
// screen and returns when the player quits.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		if err := g.Start(); err != nil {
			return err
		}

		for g.state == StatePlaying {
			g.draw()

			switch ev := g.screen.PollEvent().(type) {
			case nil:
				return nil
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				action := keyToAction(ev)
				if action == ActionQuit {
					return nil
				}
				g.processAction(action)
			}
		}

		if err := saveRunLog(g.runLog); err != nil {
			g.log.Warn("run log not saved", zap.Error(err))
		}
		if !g.showEndScreen() {
			return nil
		}
	}
}

func (g *Game) draw() {
	g.renderer.CenterOn(g.lvl.PlayerPos())
	g.renderer.DrawFrame(g.lvl, g.memory)
	g.renderer.DrawHUD(render.Status{
		Level:    g.lvl.Name,
		HP:       g.lvl.PlayerHealth(),
		Turn:     g.eng.Turn(),
		Hostiles: system.Hostiles(g.lvl),
	}, g.messages)
}

// processAction handles one player action. Committed actions advance the
// world by one global turn.
func (g *Game) processAction(action Action) {
	if g.state != StatePlaying {
		return
	}
	turnUsed := false

	switch action {
	case ActionWait:
		turnUsed = true

	case ActionClap:
		results, err := system.Clap(g.lvl, g.eng)
		if err != nil {
			g.log.Error("clap failed", zap.Error(err))
		}
		if len(results) == 0 {
			g.addMessage("You clap. The hum swallows it.")
		}
		for _, res := range results {
			g.reportStrike(res)
		}
		turnUsed = true

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return
		}
		result, target := system.MovePlayer(g.lvl, dx, dy)
		switch result {
		case system.MoveOK:
			turnUsed = true
		case system.MoveAttack:
			res, err := system.Punch(g.lvl, g.eng, target)
			if err != nil {
				g.log.Error("punch failed", zap.Uint64("target", uint64(target)), zap.Error(err))
			} else {
				g.reportStrike(res)
			}
			turnUsed = true
		case system.MoveBlocked:
			// no message for walking into walls
		}
	}

	if turnUsed {
		g.endTurn()
	}
}

// endTurn runs the global AI turn and settles its consequences.
func (g *Game) endTurn() {
	g.runLog.TurnsPlayed++
	if system.OnExit(g.lvl) {
		g.state = StateEscaped
		g.runLog.Escaped = true
		g.addMessage("The floor gives way. You land somewhere with different carpet.")
		return
	}

	g.events.Reset()
	g.eng.RunTurn(g.lvl.PlayerPos())
	g.updateFOV()

	for _, h := range g.lvl.DrainHits() {
		kind := g.kindOf(h.From)
		g.runLog.DamageTaken += h.Amount
		g.runLog.CauseOfDeath = kind
		g.addMessage(fmt.Sprintf("%s The %s hits you for %.0f.", g.eng.AttackEmoji(h.From), nameOf(kind), h.Amount))
	}
	for _, e := range g.events.Events {
		if msg := g.describe(e); msg != "" {
			g.addMessage(msg)
		}
	}

	switch {
	case g.lvl.PlayerHealth().Dead:
		g.state = StateDead
	case system.Hostiles(g.lvl) == 0:
		g.state = StateEscaped
		g.runLog.Escaped = true
		g.addMessage("Nothing else moves. The lights hum on without you.")
	}
}

// describe turns an AI event into a log line, or "" when the player could
// not have noticed it.
func (g *Game) describe(e trace.Event) string {
	if !g.memory.Visible(e.At) {
		return ""
	}
	switch e.Kind {
	case trace.KindHeal:
		return fmt.Sprintf("The %s knits its neighbour back together.", nameOf(e.Actor))
	case trace.KindSpawn:
		return fmt.Sprintf("The %s splits off something small and wet.", nameOf(e.Actor))
	case trace.KindTeleport:
		return fmt.Sprintf("The %s is somewhere else now.", nameOf(e.Actor))
	case trace.KindFault:
		return fmt.Sprintf("The %s stutters in place.", nameOf(e.Actor))
	}
	return ""
}

func (g *Game) reportStrike(res system.AttackResult) {
	name := nameOf(res.Kind)
	if !res.Killed {
		if res.Damage > 0 {
			g.addMessage(fmt.Sprintf("You hit the %s for %.0f.", name, res.Damage))
		} else {
			g.addMessage(fmt.Sprintf("The %s does not seem to notice.", name))
		}
		return
	}
	g.runLog.Kills[res.Kind]++
	g.addMessage(fmt.Sprintf("You kill the %s!", name))
	if !g.discovered[res.Kind] {
		g.discovered[res.Kind] = true
		if lore, ok := assets.EntityLore[res.Kind]; ok {
			g.addMessage(lore)
		}
	}
}

func (g *Game) updateFOV() {
	g.memory.Update(system.ComputeFOV(g.lvl.Map, g.lvl.PlayerPos(), FOVRadius))
}

func (g *Game) kindOf(id ecs.EntityID) string {
	if c := g.lvl.ECS().Get(id, component.CActor); c != nil {
		return c.(component.Actor).Kind
	}
	return ""
}

func nameOf(kind string) string {
	if def, ok := assets.Lookup(kind); ok {
		return def.Name
	}
	return "thing"
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	for {
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		if g.state == StateDead {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		g.renderer.DrawCentered(g.summary(), style)

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			switch keyToAction(ev) {
			case ActionRestart:
				return true
			case ActionQuit:
				return false
			}
		}
	}
}

// summary lists the end-of-run lines, kills sorted by count descending.
func (g *Game) summary() []string {
	title := "YOU NOCLIPPED OUT"
	if g.state == StateDead {
		title = "THE LEVEL KEEPS YOU"
	}
	lines := []string{
		title,
		"",
		fmt.Sprintf("Level: %s", g.runLog.Level),
		fmt.Sprintf("Turns survived: %d", g.runLog.TurnsPlayed),
		fmt.Sprintf("Damage taken: %.0f", g.runLog.DamageTaken),
	}

	kinds := make([]string, 0, len(g.runLog.Kills))
	for k := range g.runLog.Kills {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		ci, cj := g.runLog.Kills[kinds[i]], g.runLog.Kills[kinds[j]]
		if ci != cj {
			return ci > cj
		}
		return kinds[i] < kinds[j]
	})
	for _, k := range kinds {
		lines = append(lines, fmt.Sprintf("%s x%d", nameOf(k), g.runLog.Kills[k]))
	}
	if g.state == StateDead && g.runLog.CauseOfDeath != "" {
		lines = append(lines, fmt.Sprintf("Killed by: %s", nameOf(g.runLog.CauseOfDeath)))
	}
	return append(lines, "", "[R] Try again   [Q] Quit")
}
