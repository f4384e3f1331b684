// Package engine runs the life simulation: it owns the grid and run state,
// applies operator commands, paces generations against the wall clock and
// hands frames to a display sink.
package engine

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// Config is the initial configuration of a controller.
type Config struct {
	Settings core.Settings
	Seed     uint64
	Mode     core.PrintMode
}

// Controller owns the grid and run state of one simulation.
// Every method must be called from the goroutine that calls Run.
type Controller struct {
	settings core.Settings
	state    RunState
	grid     *life.Grid
	events   <-chan core.KeyEvent
	sink     DisplaySink
	clock    Clock
	sleep    func(time.Duration)
	logger   *log.Logger

	lastStep   time.Duration
	lastSample time.Duration
	elapsed    time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithGrid replaces the seeded grid.
func WithGrid(g *life.Grid) Option {
	return func(c *Controller) {
		c.grid = g
	}
}

// WithClock sets the clock used by Run. By default Run starts a SystemClock.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithSleep sets the function used for the FPS cap sleep.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Controller) {
		c.sleep = sleep
	}
}

// WithLogger sets the logger. By default output is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller. The grid is seeded from cfg.Seed with the
// dimensions in cfg.Settings unless WithGrid is given.
// A nil events channel means no input will ever arrive.
func New(cfg Config, events <-chan core.KeyEvent, sink DisplaySink, opts ...Option) *Controller {
	c := &Controller{
		settings: cfg.Settings,
		state:    RunState{Mode: cfg.Mode},
		events:   events,
		sink:     sink,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.grid == nil {
		c.grid = life.NewGrid(cfg.Settings.Width, cfg.Settings.Height, cfg.Seed)
	}
	c.settings.Width = c.grid.Width()
	c.settings.Height = c.grid.Height()
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// State returns a copy of the run state.
func (c *Controller) State() RunState {
	return c.state.clone()
}

// Settings returns the current settings, including the viewport origin.
func (c *Controller) Settings() core.Settings {
	return c.settings
}

// Grid returns the simulated grid.
func (c *Controller) Grid() *life.Grid {
	return c.grid
}

// ProcessCommand applies a key event. Key releases are ignored entirely.
func (c *Controller) ProcessCommand(ev core.KeyEvent) {
	if !ev.IsDown {
		return
	}

	c.state.CommandCount++
	c.state.LatestInput = ev.Char
	cmd := core.Decode(ev.Char)
	c.state.LatestCommand = cmd

	switch cmd {
	case core.CommandToggleMode:
		c.state.Mode = c.state.Mode.Toggle()
		c.sinkErr("clear", c.sink.Clear())
	case core.CommandPausePlay:
		c.state.Paused = !c.state.Paused
	case core.CommandToggleFps:
		c.state.FPSLimited = !c.state.FPSLimited
	case core.CommandMoveUp:
		c.moved(c.settings.Origin.MoveUp())
	case core.CommandMoveLeft:
		c.moved(c.settings.Origin.MoveLeft())
	case core.CommandMoveDown:
		c.moved(c.settings.Origin.MoveDown())
	case core.CommandMoveRight:
		c.moved(c.settings.Origin.MoveRight())
	}

	c.logger.Debug("command", "input", string(ev.Char), "command", cmd.String())
}

// moved clears the rows the board covered when the origin actually changed.
func (c *Controller) moved(changed bool) {
	if !changed {
		return
	}
	rows := c.settings.DisplayRows()
	if c.state.Mode == core.ModeDebug {
		rows += core.DebugPanelRows + 1
	}
	c.sinkErr("clear rows", c.sink.ClearRows(rows))
}

// Run drives the simulation until a quit command arrives or a step leaves
// the grid unchanged. It never blocks on input.
func (c *Controller) Run() Result {
	if c.clock == nil {
		c.clock = NewSystemClock()
	}
	c.sinkErr("clear", c.sink.Clear())
	c.logger.Info("simulation started",
		"width", c.settings.Width, "height", c.settings.Height, "mode", c.state.Mode.String())

	for {
		c.poll()
		if c.state.LatestCommand == core.CommandQuit {
			return c.finish(OutcomeQuit)
		}

		c.tick()

		if c.state.FPSLimited {
			c.sleep(c.settings.FrameSleep)
		}

		c.sinkErr("render", c.sink.Render(c.Frame()))

		// previous starts as a copy of current, so stability only counts after a step.
		if c.state.Rounds > 0 && c.grid.IsStable() {
			return c.finish(OutcomeStable)
		}
	}
}

// poll consumes at most one pending event.
func (c *Controller) poll() {
	if c.events == nil {
		return
	}
	select {
	case ev, ok := <-c.events:
		if !ok {
			c.logger.Debug("input channel closed")
			c.events = nil
			return
		}
		c.ProcessCommand(ev)
	default:
	}
}

// tick samples FPS and advances the grid when a round is due.
func (c *Controller) tick() {
	elapsed, err := c.clock.Elapsed()
	if err != nil {
		c.state.LatestErr = err.Error()
		c.logger.Warn("clock read failed", "err", err)
		return
	}
	c.elapsed = elapsed

	if since := elapsed - c.lastSample; since > c.settings.FPSSampleWindow {
		c.state.FPSLast = uint64(math.Floor(float64(c.state.FPSCurrent) / since.Seconds()))
		c.state.FPSCurrent = 0
		c.lastSample = elapsed
	}
	c.state.FPSCurrent++

	if !c.state.Paused && elapsed-c.lastStep > c.settings.RoundDuration {
		c.grid.Step()
		c.state.Rounds++
		c.lastStep = elapsed
		c.state.recordPopulation(c.grid.Population())
	}
}

// Frame builds the frame for the current iteration.
func (c *Controller) Frame() Frame {
	f := Frame{
		Cells:    c.grid.Snapshot(),
		Settings: c.settings,
		Mode:     c.state.Mode,
	}
	if c.state.Mode == core.ModeDebug {
		f.Debug = &DebugInfo{
			Rounds:        c.state.Rounds,
			LatestCommand: c.state.LatestCommand,
			LatestInput:   c.state.LatestInput,
			CommandCount:  c.state.CommandCount,
			Mode:          c.state.Mode,
			Paused:        c.state.Paused,
			FPSLast:       c.state.FPSLast,
			LatestErr:     c.state.LatestErr,
			Populations:   append([]int(nil), c.state.Populations...),
		}
	}
	return f
}

func (c *Controller) finish(outcome Outcome) Result {
	c.logger.Info("simulation finished",
		"outcome", outcome.String(), "rounds", c.state.Rounds, "population", c.grid.Population())
	return Result{
		Outcome:    outcome,
		State:      c.State(),
		Population: c.grid.Population(),
		Elapsed:    c.elapsed,
	}
}

func (c *Controller) sinkErr(op string, err error) {
	if err != nil {
		c.logger.Debug("display sink failed", "op", op, "err", err)
	}
}
