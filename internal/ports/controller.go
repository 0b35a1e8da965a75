package ports

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/the-light/internal/domain"
)

// Controller owns the single UIState and is the only entry point for input.
// Each event runs to completion (transition, render, dispatch, journal)
// before the next one is accepted.
type Controller struct {
	mu sync.Mutex

	engine  domain.Engine
	display Display
	buttons ModeButtons
	torch   Flashlight
	journal domain.EventJournal

	flushers []Flusher

	state     domain.UIState
	out       domain.RenderInstructions
	sessionID string
	active    bool
}

// Outcome is the state an event produced and the render dispatched for it,
// tagged with the activation it belongs to
type Outcome struct {
	SessionID string
	State     domain.UIState
	Render    domain.RenderInstructions
}

// Option configures optional Controller collaborators
type Option func(*Controller)

// WithJournal records every accepted event to j
func WithJournal(j domain.EventJournal) Option {
	return func(c *Controller) {
		c.journal = j
	}
}

// NewController wires the engine to its effectors. Effectors are expected
// to be pointer types; display and buttons may be the same value.
func NewController(engine domain.Engine, display Display, buttons ModeButtons, torch Flashlight, opts ...Option) *Controller {
	c := &Controller{
		engine:  engine,
		display: display,
		buttons: buttons,
		torch:   torch,
		state:   domain.DefaultState(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if f, ok := display.(Flusher); ok {
		c.flushers = append(c.flushers, f)
	}
	if f, ok := buttons.(Flusher); ok && any(buttons) != any(display) {
		c.flushers = append(c.flushers, f)
	}

	return c
}

// Activate resets to the default state and issues the initial render
func (c *Controller) Activate(ctx context.Context) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessionID = uuid.NewString()
	c.active = true

	log.Info().Str("session", c.sessionID).Msg("light activated")

	return c.apply(ctx, domain.EventActivate, domain.ModeScreenSimple, domain.DefaultState())
}

// TapScreen advances the active mode
func (c *Controller) TapScreen(ctx context.Context) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureActive(ctx)
	next := c.engine.TapScreen(c.state)
	return c.apply(ctx, domain.EventTapScreen, c.state.Mode, next)
}

// TapModeButton handles a tap on the selector for mode
func (c *Controller) TapModeButton(ctx context.Context, mode domain.Mode) (Outcome, error) {
	if !mode.Valid() {
		return Outcome{}, domain.ErrInvalidMode
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureActive(ctx)
	next := c.engine.SelectModeButton(c.state, mode)
	return c.apply(ctx, domain.EventTapModeButton, mode, next), nil
}

// State returns a copy of the current state
func (c *Controller) State() domain.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Instructions returns the last dispatched render
func (c *Controller) Instructions() domain.RenderInstructions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out
}

// Current returns the session, state and render read under one lock
func (c *Controller) Current() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Outcome{SessionID: c.sessionID, State: c.state, Render: c.out}
}

// SessionID identifies the current activation
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Palette returns the traffic-light palette in use
func (c *Controller) Palette() domain.Palette {
	return c.engine.Palette()
}

// ensureActive issues the initial render if no one called Activate.
// Caller holds mu.
func (c *Controller) ensureActive(ctx context.Context) {
	if c.active {
		return
	}
	c.sessionID = uuid.NewString()
	c.active = true
	c.apply(ctx, domain.EventActivate, domain.ModeScreenSimple, domain.DefaultState())
}

// apply stores next, renders it and hands the result to every effector.
// Caller holds mu.
func (c *Controller) apply(ctx context.Context, kind domain.EventKind, target domain.Mode, next domain.UIState) Outcome {
	c.state = next
	c.out = c.engine.Render(next)

	c.dispatch(ctx, c.out)

	log.Debug().
		Str("kind", string(kind)).
		Stringer("mode", next.Mode).
		Bool("screen", next.IsScreenLightOn).
		Bool("camera", next.IsCameraLightOn).
		Int("traffic_index", next.TrafficLightsIndex).
		Msg("state applied")

	if c.journal != nil {
		event := domain.NewTapEvent(c.sessionID, kind, target, next, c.out)
		if err := c.journal.SaveEvent(ctx, event); err != nil {
			log.Error().Err(err).Str("kind", string(kind)).Msg("failed to journal event")
		}
	}

	return Outcome{SessionID: c.sessionID, State: next, Render: c.out}
}

func (c *Controller) dispatch(ctx context.Context, out domain.RenderInstructions) {
	c.display.SetBackground(out.Background)
	for _, b := range out.Buttons {
		c.buttons.SetButton(b)
	}

	// Fire and forget: a torch failure never changes state
	if err := c.torch.SetTorch(ctx, bool(out.Torch)); err != nil {
		switch {
		case errors.Is(err, domain.ErrDeviceUnavailable):
			log.Warn().Err(err).Stringer("torch", out.Torch).Msg("torch is not available")
		case errors.Is(err, domain.ErrLockAcquisitionFailed):
			log.Warn().Err(err).Stringer("torch", out.Torch).Msg("torch could not be used")
		default:
			log.Error().Err(err).Stringer("torch", out.Torch).Msg("torch command failed")
		}
	}

	for _, f := range c.flushers {
		if err := f.Flush(); err != nil {
			log.Error().Err(err).Msg("failed to present frame")
		}
	}
}
