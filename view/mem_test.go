package view

import (
	"strings"
	"testing"

	"github.com/elizafairlady/go-miniui/markup"
)

func attachAll(t *testing.T, m *Mem, h func(Event)) {
	t.Helper()
	for _, b := range m.Bindings() {
		if err := m.Attach(b, h); err != nil {
			t.Fatalf("Attach(%s %q): %v", b.Kind, b.Name, err)
		}
	}
}

func TestMaterializeAndDispatch(t *testing.T) {
	m := NewMem()
	if err := m.Materialize(`<button id="go" data-onclick="go">Go</button>`); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	var fired []Event
	attachAll(t, m, func(ev Event) { fired = append(fired, ev) })

	if m.HandlerCount() != 1 {
		t.Errorf("handlers = %d, want 1", m.HandlerCount())
	}
	if !m.Click("go") {
		t.Fatal("Click(go) found no handler")
	}
	if len(fired) != 1 || fired[0].Kind != markup.Click || fired[0].Target.ID() != "go" {
		t.Errorf("fired = %+v", fired)
	}
}

func TestSubmitCarriesKeyAndValue(t *testing.T) {
	m := NewMem()
	if err := m.Materialize(`<input type="text" id="in" data-onkeypress="add">`); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	var got Event
	attachAll(t, m, func(ev Event) { got = ev })

	if !m.Submit("in", "Learn JS") {
		t.Fatal("Submit found no handler")
	}
	if got.Kind != markup.Keypress || got.Key != "Enter" || got.Value != "Learn JS" {
		t.Errorf("event = %+v", got)
	}
}

func TestMaterializeReplacesSubtree(t *testing.T) {
	m := NewMem()
	if err := m.Materialize(`<button id="go" data-onclick="go">Go</button>`); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	attachAll(t, m, func(Event) {})
	stale := m.ByID("go")

	if err := m.Materialize(`<button id="go" data-onclick="go">Go</button>`); err != nil {
		t.Fatalf("second Materialize: %v", err)
	}
	// Identical markup, but the old element and its handler are gone.
	if m.HandlerCount() != 0 {
		t.Errorf("handlers after rematerialize = %d, want 0", m.HandlerCount())
	}
	if m.Fire(Event{Kind: markup.Click, Target: stale}) {
		t.Error("stale element still had a live handler")
	}
	if m.ByID("go") == stale {
		t.Error("element identity survived materialization")
	}
	if m.Renders() != 2 {
		t.Errorf("renders = %d, want 2", m.Renders())
	}
}

func TestAttachDuplicate(t *testing.T) {
	m := NewMem()
	if err := m.Materialize(`<button id="go" data-onclick="go">Go</button>`); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	b := m.Bindings()[0]
	if err := m.Attach(b, func(Event) {}); err != nil {
		t.Fatalf("first Attach: %v", err)
	}
	err := m.Attach(b, func(Event) {})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("second Attach err = %v, want duplicate error", err)
	}
}

func TestAttachNil(t *testing.T) {
	m := NewMem()
	if err := m.Attach(Binding{Kind: markup.Click, Name: "go"}, func(Event) {}); err == nil {
		t.Error("Attach with nil target succeeded")
	}
	b := Binding{Target: markup.Button("x"), Kind: markup.Click, Name: "go"}
	if err := m.Attach(b, nil); err == nil {
		t.Error("Attach with nil handler succeeded")
	}
}

func TestFireMisses(t *testing.T) {
	m := NewMem()
	if m.Click("nope") {
		t.Error("Click on empty view fired")
	}
	if err := m.Materialize(`<button id="plain">x</button>`); err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	if m.Click("plain") {
		t.Error("Click on unbound element fired")
	}
	if m.Submit("plain", "v") {
		t.Error("Submit on unbound element fired")
	}
}
