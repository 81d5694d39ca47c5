package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"
	"asteroids/internal/render"
	"asteroids/internal/system"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Game is the top-level orchestrator: it owns the screen, the world and
// the schedule, and turns wall-clock time and key events into ticks.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	schedule *system.Schedule
	ctx      *system.Context
	keys     *KeyState
	cfg      *config.Config
	logger   *slog.Logger // without run attributes
	runLog   RunLog
	events   chan tcell.Event
	done     chan struct{}
}

// New creates and returns a Game with screen initialized.
func New(cfg *config.Config, rng *rand.Rand, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, rng, logger), nil
}

// NewWithScreen creates a Game on an already initialized screen.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, rng *rand.Rand, logger *slog.Logger) *Game {
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, mgl32.Vec2{cfg.Window.Width, cfg.Window.Height}),
		world:    ecs.NewWorld(),
		schedule: system.DefaultSchedule(),
		ctx:      system.NewContext(cfg, rng),
		keys:     NewKeyState(cfg.Input.Hold),
		cfg:      cfg,
		logger:   logger,
		events:   make(chan tcell.Event, 32),
		done:     make(chan struct{}),
	}
	factory.Setup(g.world, cfg)
	g.startRun(time.Now())
	return g
}

// startRun opens a new RunLog and tags every log line with its id.
func (g *Game) startRun(now time.Time) {
	g.runLog = newRunLog(now)
	g.ctx.Log = g.logger.With("run", g.runLog.ID.String())
	g.ctx.Log.Info("run started", "systems", g.schedule.Names())
}

// endRun logs the summary of the current run.
func (g *Game) endRun(reason string) {
	g.ctx.Log.Info("run ended", "reason", reason, "stats", g.runLog)
}

// Run is the main loop. It returns when the player quits.
func (g *Game) Run() {
	defer g.screen.Fini()
	defer close(g.done)
	go g.pollEvents()

	frame := time.Second / time.Duration(g.cfg.Tick.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	g.draw()
	for {
		select {
		case ev, ok := <-g.events:
			if !ok || !g.handleEvent(ev, time.Now()) {
				g.endRun("quit")
				return
			}
		case now := <-ticker.C:
			dt := min(float32(now.Sub(last).Seconds()), g.cfg.Tick.MaxDelta)
			last = now
			g.Step(dt, now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or Run
// has returned.
func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			close(g.events)
			return
		}
		select {
		case g.events <- ev:
		case <-g.done:
			return
		}
	}
}

// handleEvent applies one screen event. It returns false on quit.
func (g *Game) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		action := keyToAction(ev)
		if action == ActionQuit {
			return false
		}
		g.keys.Press(action, now)
	}
	return true
}

// Step advances the simulation by dt seconds and redraws.
func (g *Game) Step(dt float32, now time.Time) {
	g.ctx.Delta = dt
	g.ctx.Input = g.keys.Sample(now)
	if g.ctx.Input.Restart {
		g.endRun("restart")
	}

	g.schedule.Tick(g.world, g.ctx)

	if g.ctx.Restarted {
		g.startRun(now)
	}
	g.runLog.record(g.ctx.Collisions, g.score())
	g.draw()
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.world)
	g.renderer.DrawHUD(g.world)
}

// score is the highest score on any scoreboard.
func (g *Game) score() int {
	best := 0
	for _, sb := range ecs.NewQuery(g.world, ecs.Read[component.Scoreboard]()).Each() {
		best = max(best, sb.Score)
	}
	return best
}
