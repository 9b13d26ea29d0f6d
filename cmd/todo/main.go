// Todo is the example app for the update/render loop: the classic
// todo list, hosted in a bubbletea program on a terminal view.
//
// Type a description and press Enter to add it. Up/Down move the
// selection, Ctrl+T toggles the selected item, Ctrl+X removes it.
// Esc or Ctrl+C quits.
//
// Usage: todo [-theme file.yaml]
//
// The key handling here is host glue: it translates terminal keys
// into events fired at the bound elements, and owns the view-local
// state (typed-but-unsubmitted input, list selection) that a
// re-render would otherwise drop. The library only ever sees clicks
// and keypresses.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elizafairlady/go-miniui/markup"
	"github.com/elizafairlady/go-miniui/term"
	"github.com/elizafairlady/go-miniui/view"
)

var themeFile = flag.String("theme", "", "YAML theme file")

func main() {
	flag.Parse()

	theme := term.DefaultTheme()
	if *themeFile != "" {
		var err error
		theme, err = term.LoadTheme(*themeFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	t := newTodoApp()
	v := term.New(theme)
	if err := t.app.Mount(v); err != nil {
		log.Fatal(err)
	}

	m := model{ta: t, view: v}
	m.sync()
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

// model holds the view-local state: the text typed into the input so
// far and the list selection. Neither belongs in the application
// state; both are owned by the host.
type model struct {
	ta     *todoApp
	view   *term.View
	input  string
	cursor int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.view.Fire(view.Event{
			Kind:   markup.Keypress,
			Target: m.view.ByID("new-todo"),
			Key:    "Enter",
			Value:  m.input,
		})
		m.input = ""
	case "backspace":
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor+1 < len(m.items()) {
			m.cursor++
		}
	case "ctrl+t":
		if items := m.items(); m.cursor < len(items) {
			m.view.Click("toggle-" + items[m.cursor].Attr("data-id"))
		}
	case "ctrl+x":
		if items := m.items(); m.cursor < len(items) {
			m.view.Click("remove-" + items[m.cursor].Attr("data-id"))
		}
	default:
		switch key.Type {
		case tea.KeyRunes:
			m.input += string(key.Runes)
		case tea.KeySpace:
			m.input += " "
		}
	}
	m.sync()
	return m, nil
}

// sync pushes the view-local state back onto the live tree after any
// event. Keystrokes live on the input element's value attribute until
// the next render replaces the tree, exactly like an uncontrolled
// input; the selection is marked with data-selected.
func (m *model) sync() {
	if el := m.view.ByID("new-todo"); el != nil {
		el.Set("value", m.input)
	}
	items := m.items()
	if len(items) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	for i, li := range items {
		if i == m.cursor {
			li.Set("data-selected", "1")
		} else {
			li.Unset("data-selected")
		}
	}
}

func (m model) items() []*markup.Element {
	root := m.view.Root()
	if root == nil {
		return nil
	}
	return root.ByTag("li")
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.view.Render())
	todos := m.ta.todos()
	done := 0
	for _, td := range todos {
		if td.Done {
			done++
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d/%d done\n", done, len(todos)))
	b.WriteString("enter add, up/down select, ctrl+t toggle, ctrl+x remove, esc quit\n")
	return b.String()
}
