package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Coreymillia/psyscreen/internal/display"
	"github.com/Coreymillia/psyscreen/internal/render"
)

type phase int

const (
	phaseIdle phase = iota
	phaseRunning
)

// Metric observes per-frame timings. Implementations feed the bench command
// and the live view sidebar.
type Metric interface {
	Name() string
	Observe(effect string, frame int, stepTime time.Duration)
	Value() float64
	Reset()
}

// Config holds the fixed timing constants supplied at construction.
type Config struct {
	FrameInterval  time.Duration
	EffectDuration time.Duration
	Seed           int64
}

// Cycler is the engine aggregate: it exclusively owns the scheduler state
// and the shared surfaces, lending them to one effect instance at a time.
type Cycler struct {
	reg      *render.Registry
	fb       *render.FrameBuffer
	pal      *render.Palette
	guardian *Guardian
	disp     display.Display
	cfg      Config
	metrics  []Metric

	phase       phase
	next        int // registry index the next init will try
	frame       int
	windowDur   time.Duration
	effectStart time.Time
	nextFrame   time.Time
	active      render.Effect
	activeName  string
	forceNext   bool
	rotations   int

	// injectable for the accelerated test harness
	now   func() time.Time
	sleep func(time.Duration)
}

// New wires the aggregate. Effects whose declared bound exceeds the
// guardian's budget are not rejected here; the budget check at init time
// skips them, which is what keeps a starved profile running on the
// zero-scratch baseline instead of refusing to start.
func New(reg *render.Registry, fb *render.FrameBuffer, pal *render.Palette, guardian *Guardian, disp display.Display, cfg Config) (*Cycler, error) {
	if cfg.FrameInterval <= 0 {
		return nil, fmt.Errorf("frame interval must be positive, got %v", cfg.FrameInterval)
	}
	if cfg.EffectDuration <= 0 {
		return nil, fmt.Errorf("effect duration must be positive, got %v", cfg.EffectDuration)
	}
	if disp == nil {
		disp = display.Null{}
	}
	return &Cycler{
		reg:      reg,
		fb:       fb,
		pal:      pal,
		guardian: guardian,
		disp:     disp,
		cfg:      cfg,
		now:      time.Now,
		sleep:    time.Sleep,
	}, nil
}

func (c *Cycler) AddMetric(m Metric) { c.metrics = append(c.metrics, m) }

// CurrentEffect returns the active effect's name, or "" before first init.
func (c *Cycler) CurrentEffect() string { return c.activeName }

// Frame returns the frame counter within the current effect window.
func (c *Cycler) Frame() int { return c.frame }

// Rotations returns how many effect windows have completed.
func (c *Cycler) Rotations() int { return c.rotations }

// Elapsed returns wall-clock time spent in the current effect window.
func (c *Cycler) Elapsed(now time.Time) time.Duration {
	if c.phase != phaseRunning {
		return 0
	}
	return now.Sub(c.effectStart)
}

// RequestNext cuts the current window short at the next Advance.
func (c *Cycler) RequestNext() { c.forceNext = true }

// Run drives the rotation until the context is canceled. The loop has no
// other exit: a nil-error return only ever means shutdown was requested.
func (c *Cycler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return ctx.Err()
		default:
		}

		if err := c.Advance(c.now()); err != nil {
			return err
		}

		// Cooperative yield until the next frame boundary; never a tight
		// spin, so housekeeping (display push, input) gets its slice.
		if wait := c.nextFrame.Sub(c.now()); wait > 0 {
			c.sleep(wait)
		}
	}
}

// Advance performs one cooperative iteration of the state machine: rotating
// when the duration has elapsed, stepping when a frame boundary has passed,
// doing nothing otherwise. External UIs call it from their own tick.
func (c *Cycler) Advance(now time.Time) error {
	if c.phase == phaseIdle {
		if err := c.initNext(now); err != nil {
			return err
		}
	}

	if c.forceNext || now.Sub(c.effectStart) >= c.windowDur {
		c.forceNext = false
		c.teardown()
		if err := c.initNext(now); err != nil {
			return err
		}
	}

	if now.Before(c.nextFrame) {
		return nil
	}

	stepStart := c.now()
	c.active.Step(c.fb, c.pal, c.frame)
	stepTime := c.now().Sub(stepStart)
	if err := c.disp.Push(c.fb, c.pal); err != nil {
		return fmt.Errorf("display push: %w", err)
	}
	for _, m := range c.metrics {
		m.Observe(c.activeName, c.frame, stepTime)
	}

	c.frame++
	c.nextFrame = c.nextFrame.Add(c.cfg.FrameInterval)
	if c.nextFrame.Before(now) {
		// Fell behind; resync instead of bursting catch-up frames.
		c.nextFrame = now
	}
	return nil
}

// initNext walks the rotation looking for an effect that initializes. A
// scratch-budget failure skips the effect; after a full circle of failures
// the guaranteed-safe baseline takes over. Any other init error is fatal.
func (c *Cycler) initNext(now time.Time) error {
	for tries := 0; tries < c.reg.Len(); tries++ {
		d := c.reg.At(c.next)
		c.next = (c.next + 1) % c.reg.Len()
		err := c.initEffect(d, now)
		if err == nil {
			return nil
		}
		if !errors.Is(err, render.ErrScratchBudget) {
			return err
		}
	}
	d := c.reg.At(c.reg.Baseline())
	c.next = (c.reg.Baseline() + 1) % c.reg.Len()
	if err := c.initEffect(d, now); err != nil {
		return fmt.Errorf("baseline %s failed: %w", d.Name, err)
	}
	return nil
}

func (c *Cycler) initEffect(d render.Descriptor, now time.Time) error {
	if err := c.guardian.CheckBudget(d.ScratchBytes); err != nil {
		return &render.InitError{Effect: d.Name, Wrapped: err}
	}

	seed := c.cfg.Seed
	if d.Seed != 0 {
		seed = d.Seed
	}
	dur := c.cfg.EffectDuration
	if d.Duration > 0 {
		dur = d.Duration
	}

	eff := d.New()
	c.pal.Unseal()
	if err := eff.Init(c.fb, c.pal, c.guardian.Scratch(), seed); err != nil {
		// Partial claims from the failed init must not leak into the next
		// attempt.
		c.guardian.ReclaimBarrier()
		return &render.InitError{Effect: d.Name, Wrapped: err}
	}
	c.fb.Limit(d.PaletteSize)
	c.pal.Seal()

	c.active = eff
	c.activeName = d.Name
	c.forceNext = false
	c.frame = 0
	c.windowDur = dur
	c.effectStart = now
	c.nextFrame = now
	c.phase = phaseRunning
	return nil
}

func (c *Cycler) teardown() {
	c.active.Teardown()
	c.active = nil
	c.activeName = ""
	c.pal.Unseal()
	c.guardian.ReclaimBarrier()
	c.phase = phaseIdle
	c.rotations++
}

func (c *Cycler) shutdown() {
	if c.phase == phaseRunning {
		c.teardown()
	}
}
