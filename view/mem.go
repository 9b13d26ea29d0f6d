package view

import (
	"fmt"

	"github.com/elizafairlady/go-miniui/markup"
)

// Mem is the in-memory View. It holds the most recently materialized
// element tree and the handlers attached to it, and can dispatch
// events into them, which makes it both the test double for the
// boundary and the backing store for host-environment views.
type Mem struct {
	root     *markup.Element
	handlers map[*markup.Element]map[string]func(Event)
	renders  int
}

var _ View = (*Mem)(nil)

// NewMem creates an empty in-memory view.
func NewMem() *Mem {
	return &Mem{handlers: make(map[*markup.Element]map[string]func(Event))}
}

// Materialize parses src and replaces the current tree with it. All
// previously materialized elements and their handlers are discarded.
func (m *Mem) Materialize(src string) error {
	root, err := markup.Parse(src)
	if err != nil {
		return fmt.Errorf("view: materialize: %w", err)
	}
	m.root = root
	m.handlers = make(map[*markup.Element]map[string]func(Event))
	m.renders++
	return nil
}

// Bindings returns the binding markers in the current tree.
func (m *Mem) Bindings() []Binding {
	if m.root == nil {
		return nil
	}
	return markup.Bindings(m.root)
}

// Attach attaches h as the handler for b. Attaching a second handler
// for the same element and event kind is an error: each marker gets
// exactly one live handler per render.
func (m *Mem) Attach(b Binding, h func(Event)) error {
	if b.Target == nil {
		return fmt.Errorf("view: attach %s %q: nil target", b.Kind, b.Name)
	}
	if h == nil {
		return fmt.Errorf("view: attach %s %q: nil handler", b.Kind, b.Name)
	}
	kinds := m.handlers[b.Target]
	if kinds == nil {
		kinds = make(map[string]func(Event))
		m.handlers[b.Target] = kinds
	}
	if _, dup := kinds[b.Kind]; dup {
		return fmt.Errorf("view: duplicate %s handler on %q", b.Kind, b.Target.ID())
	}
	kinds[b.Kind] = h
	return nil
}

// Root returns the current tree, a synthetic container holding the
// materialized elements. Nil before the first Materialize.
func (m *Mem) Root() *markup.Element { return m.root }

// ByID returns the element with the given id in the current tree.
func (m *Mem) ByID(id string) *markup.Element {
	if m.root == nil {
		return nil
	}
	return m.root.ByID(id)
}

// Renders returns how many times Materialize has succeeded.
func (m *Mem) Renders() int { return m.renders }

// HandlerCount returns the number of handlers currently attached.
func (m *Mem) HandlerCount() int {
	n := 0
	for _, kinds := range m.handlers {
		n += len(kinds)
	}
	return n
}

// Fire dispatches ev to the handler attached to its target for its
// kind. It reports whether a handler was invoked. Events targeting
// elements from a previous render find no handler: materialization
// discarded them.
func (m *Mem) Fire(ev Event) bool {
	h := m.handlers[ev.Target][ev.Kind]
	if h == nil {
		return false
	}
	h(ev)
	return true
}

// Click fires a click event on the element with the given id.
func (m *Mem) Click(id string) bool {
	el := m.ByID(id)
	if el == nil {
		return false
	}
	return m.Fire(Event{Kind: markup.Click, Target: el})
}

// Submit fires an Enter keypress on the element with the given id,
// carrying value as the element's current text.
func (m *Mem) Submit(id, value string) bool {
	el := m.ByID(id)
	if el == nil {
		return false
	}
	return m.Fire(Event{Kind: markup.Keypress, Target: el, Key: "Enter", Value: value})
}
