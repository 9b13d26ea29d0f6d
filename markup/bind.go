package markup

import "strings"

// Event kinds recognized by binding markers.
const (
	Click    = "click"
	Keypress = "keypress"
)

// markerPrefix prefixes binding marker attributes: data-onclick,
// data-onkeypress. Marker attributes with an unrecognized kind
// (any other data-on*) are ignored, not rejected.
const markerPrefix = "data-on"

// Binding is one event-binding marker found in a tree: an element
// declaring that the handler registered under Name should receive
// its events of the given Kind. Bindings carry no identity across
// renders; they are recomputed from the fresh tree every time.
type Binding struct {
	Target *Element
	Kind   string
	Name   string
}

// Bindings scans the subtree for binding markers and returns them in
// document order. An element may declare one marker per event kind.
func Bindings(root *Element) []Binding {
	var out []Binding
	root.Walk(func(el *Element) {
		for _, a := range el.Attrs {
			kind, ok := strings.CutPrefix(a.Key, markerPrefix)
			if !ok || a.Val == "" {
				continue
			}
			switch kind {
			case Click, Keypress:
				out = append(out, Binding{Target: el, Kind: kind, Name: a.Val})
			}
		}
	})
	return out
}
