package markup

// Builder helpers for assembling element trees in render functions.
// All of them return the element for chaining.

// El creates a new element with the given tag.
func El(tag string) *Element {
	return &Element{Tag: tag}
}

// Set sets an attribute, replacing any existing value for the key.
func (e *Element) Set(key, val string) *Element {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Val = val
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attribute{Key: key, Val: val})
	return e
}

// Unset removes an attribute if present.
func (e *Element) Unset(key string) *Element {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs = append(e.Attrs[:i], e.Attrs[i+1:]...)
			return e
		}
	}
	return e
}

// SetText sets the element's direct text content.
func (e *Element) SetText(s string) *Element {
	e.Text = s
	return e
}

// Child appends child elements.
func (e *Element) Child(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// OnClick declares a click binding to the named handler.
func (e *Element) OnClick(name string) *Element {
	return e.Set(markerPrefix+Click, name)
}

// OnKeypress declares a keypress binding to the named handler.
func (e *Element) OnKeypress(name string) *Element {
	return e.Set(markerPrefix+Keypress, name)
}

// --- Convenience constructors ---

// Div creates a <div> with the given children.
func Div(children ...*Element) *Element {
	return El("div").Child(children...)
}

// Ul creates a <ul> with the given children.
func Ul(children ...*Element) *Element {
	return El("ul").Child(children...)
}

// Li creates a <li> with text content and the given children.
func Li(text string, children ...*Element) *Element {
	return El("li").SetText(text).Child(children...)
}

// Span creates a <span> with text content.
func Span(text string) *Element {
	return El("span").SetText(text)
}

// Button creates a <button> with the given label.
func Button(label string) *Element {
	return El("button").SetText(label)
}

// Input creates an <input> of the given type.
func Input(typ string) *Element {
	return El("input").Set("type", typ)
}

// Checkbox creates an <input type="checkbox">, checked or not.
func Checkbox(checked bool) *Element {
	e := Input("checkbox")
	if checked {
		e.Set("checked", "checked")
	}
	return e
}
