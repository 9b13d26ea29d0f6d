// Package view defines the view materialization boundary consumed by
// the update/render driver, and an in-memory implementation of it.
//
// A View turns a markup string into a live element tree (replacing
// whatever was displayed before), reports the event-binding markers
// found in that tree, and attaches handlers to them. The driver never
// touches a display directly; hosts inject whichever View suits their
// environment, and tests inject Mem.
package view

import "github.com/elizafairlady/go-miniui/markup"

// Binding is an event-binding marker found in the current subtree.
type Binding = markup.Binding

// Event is delivered to an attached handler when a bound event fires.
type Event struct {
	Kind   string
	Target *markup.Element
	// Key and Value are set for keypress events: the key that was
	// pressed and the target's current text.
	Key   string
	Value string
}

// View is the materialization boundary.
//
// Materialize replaces the entire previously-displayed subtree with
// the tree described by the markup string. Element identity does not
// survive a Materialize call; neither do attached handlers.
type View interface {
	Materialize(src string) error
	Bindings() []Binding
	Attach(b Binding, h func(Event)) error
}
