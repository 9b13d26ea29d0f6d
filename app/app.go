// Package app implements the unidirectional update/render loop.
//
// An App owns a single mutable state record. Update is the only
// mutation entry point: it shallow-merges a partial record into the
// state and synchronously re-renders before returning. The render
// function is pure, mapping state to a markup string; the string is
// handed to an injected view.View for materialization, after which
// every event-binding marker in the fresh markup gets its named
// handler attached.
//
// There is no base type to embed. An application supplies its render
// function and a handler registry in Config; registering method
// values fixes the receiver at registration time, so handlers resolve
// their own component regardless of how they are later invoked:
//
//	t := &todoApp{}
//	t.app = app.New(app.Config{
//		State:  app.State{"todos": []Todo(nil)},
//		Render: t.render,
//		On:     map[string]app.Handler{"addTodo": t.addTodo},
//	})
//
// All state mutation and rendering happen synchronously on the
// calling goroutine; an App is not safe for concurrent use and does
// not share state with any other instance.
package app

import (
	"errors"
	"fmt"

	"github.com/elizafairlady/go-miniui/view"
)

// State is the application state record: an opaque mapping from field
// name to value. The driver enforces no invariant on it beyond what
// Update's shallow merge produces.
type State map[string]any

// Partial is a partial state record passed to Update.
type Partial map[string]any

// Event is the payload delivered to handlers.
type Event = view.Event

// Handler is a callback registered under a symbolic name.
type Handler func(Event)

// ErrNoRender is returned when the first render runs with no render
// function configured.
var ErrNoRender = errors.New("app: no render function configured")

// ErrNotMounted is returned when a render is attempted before Mount.
var ErrNotMounted = errors.New("app: not mounted")

// BindError reports a markup binding whose symbolic name has no
// registered handler. Rendering never proceeds past one: a missing
// handler is a fatal programming error, not a skippable marker.
type BindError struct {
	Name string
	Kind string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("app: no handler registered for %s binding %q", e.Kind, e.Name)
}

// Config configures an App.
type Config struct {
	// Render maps the current state to a markup string. It must be
	// pure: no state mutation, no side effects. Required; its absence
	// is surfaced as ErrNoRender at the first render attempt.
	Render func(State) string

	// On is the handler registry: symbolic callback names that
	// binding markers in rendered markup may reference.
	On map[string]Handler

	// State is the initial state record. Copied by New.
	State State

	// Fatal receives non-recoverable errors hit by Update (render or
	// bind failures after a successful Mount). Nil means panic.
	Fatal func(error)
}

// App is one update/render loop instance.
type App struct {
	cfg   Config
	state State
	view  view.View
}

// New creates an unrendered App with its own copy of the initial
// state record.
func New(cfg Config) *App {
	st := make(State, len(cfg.State))
	for k, v := range cfg.State {
		st[k] = v
	}
	return &App{cfg: cfg, state: st}
}

// Mount attaches the view and performs the first render. After a
// successful Mount the instance is rendered and every Update
// re-renders into v.
func (a *App) Mount(v view.View) error {
	a.view = v
	return a.renderToView()
}

// Update shallow-merges p into the state record, overwriting prior
// values for the provided keys and retaining all others, then
// triggers exactly one full re-render before returning. A nil or
// empty partial merges nothing but still renders. Calls are
// synchronous and never batched.
//
// Render or bind failures after a successful Mount are programming
// errors; they go through Config.Fatal and are never retried.
func (a *App) Update(p Partial) {
	for k, v := range p {
		a.state[k] = v
	}
	if err := a.renderToView(); err != nil {
		a.fatal(err)
	}
}

// State returns the live state record. The render function always
// reads this, never a snapshot, so an Update issued from a handler
// attached by an earlier render still observes current state.
func (a *App) State() State { return a.state }

// renderToView is the single redraw path: render, materialize, then
// attach a handler for every binding marker in the fresh markup.
func (a *App) renderToView() error {
	if a.view == nil {
		return ErrNotMounted
	}
	if a.cfg.Render == nil {
		return ErrNoRender
	}
	src := a.cfg.Render(a.state)
	if err := a.view.Materialize(src); err != nil {
		return err
	}
	for _, b := range a.view.Bindings() {
		h, ok := a.cfg.On[b.Name]
		if !ok {
			return &BindError{Name: b.Name, Kind: b.Kind}
		}
		if err := a.view.Attach(b, h); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) fatal(err error) {
	if a.cfg.Fatal != nil {
		a.cfg.Fatal(err)
		return
	}
	panic(err)
}
