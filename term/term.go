// Package term materializes markup for a terminal.
//
// term.View satisfies the view boundary by delegating materialization
// and event dispatch to the in-memory view, and adds a Render method
// that draws the current element tree as styled text: checkboxes as
// [ ]/[x], buttons as a bracketed label, text inputs as a prompt
// line. It draws, it does not lay out: elements appear in document
// order, one block element per line.
package term

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/elizafairlady/go-miniui/markup"
	"github.com/elizafairlady/go-miniui/view"
)

// View is a terminal-backed view.
type View struct {
	*view.Mem
	theme Theme
	color bool
}

var _ view.View = (*View)(nil)

// New creates a terminal view with the given theme. ANSI styling is
// enabled when stdout is a terminal.
func New(theme Theme) *View {
	return &View{
		Mem:   view.NewMem(),
		theme: theme,
		color: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// SetColor overrides terminal detection for ANSI styling.
func (v *View) SetColor(enabled bool) { v.color = enabled }

// Render draws the current element tree as text, one line per block
// element. Before the first materialization it returns "".
func (v *View) Render() string {
	root := v.Root()
	if root == nil {
		return ""
	}
	var b strings.Builder
	for _, c := range root.Children {
		v.renderBlock(&b, c, 0)
	}
	return b.String()
}

func (v *View) renderBlock(b *strings.Builder, el *markup.Element, depth int) {
	indent := strings.Repeat(v.theme.Indent, depth)
	switch el.Tag {
	case "div":
		if el.Text != "" {
			b.WriteString(indent + el.Text + "\n")
		}
		for _, c := range el.Children {
			v.renderBlock(b, c, depth)
		}
	case "ul", "ol":
		for _, c := range el.Children {
			v.renderBlock(b, c, depth+1)
		}
	case "li":
		b.WriteString(indent + v.renderItem(el) + "\n")
	case "input":
		if el.Attr("type") == "checkbox" {
			b.WriteString(indent + v.checkbox(el) + "\n")
			return
		}
		text := el.Attr("value")
		if text == "" {
			text = v.paint(v.theme.ButtonStyle, el.Attr("placeholder"))
		}
		b.WriteString(indent + v.theme.Prompt + text + "\n")
	case "h1", "h2", "h3":
		b.WriteString(indent + v.paint(v.theme.AccentStyle, el.Text) + "\n")
	case "button":
		b.WriteString(indent + v.button(el) + "\n")
	default:
		if el.Text != "" {
			b.WriteString(indent + el.Text + "\n")
		}
		for _, c := range el.Children {
			v.renderBlock(b, c, depth)
		}
	}
}

// renderItem draws a list item on one line: checkbox first if the
// item carries one, then the text, then any buttons. Text of a
// completed item (checked checkbox) gets the done style.
func (v *View) renderItem(el *markup.Element) string {
	var parts []string
	marker := v.theme.Bullet
	done := false
	for _, c := range el.Children {
		if c.Tag == "input" && c.Attr("type") == "checkbox" {
			marker = v.checkbox(c)
			done = c.HasAttr("checked")
			break
		}
	}
	parts = append(parts, marker)
	if el.Text != "" {
		text := el.Text
		if done {
			text = v.paint(v.theme.DoneStyle, text)
		}
		parts = append(parts, text)
	}
	for _, c := range el.Children {
		if c.Tag == "button" {
			parts = append(parts, v.button(c))
		}
	}
	line := strings.Join(parts, " ")
	// Hosts mark their current selection with data-selected.
	if el.HasAttr("data-selected") {
		line = v.paint(v.theme.AccentStyle, line)
	}
	return line
}

func (v *View) checkbox(el *markup.Element) string {
	if el.HasAttr("checked") {
		return v.theme.CheckedBox
	}
	return v.theme.UncheckedBox
}

func (v *View) button(el *markup.Element) string {
	return v.paint(v.theme.ButtonStyle, "<"+el.Text+">")
}

// paint wraps s in the given SGR style when color is enabled.
func (v *View) paint(style, s string) string {
	if !v.color || style == "" || s == "" {
		return s
	}
	return "\x1b[" + style + "m" + s + "\x1b[0m"
}
