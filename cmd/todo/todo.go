package main

import (
	"strconv"
	"strings"

	"github.com/elizafairlady/go-miniui/app"
	"github.com/elizafairlady/go-miniui/markup"
)

// Todo is a single todo entry. Identity is the ID: toggle and remove
// look items up by id, not by position, so they stay stable across
// reorderings.
type Todo struct {
	ID          int
	Description string
	Done        bool
}

// todoApp wires the todo component: state, render, handlers. The
// handler registry holds method values, so each handler carries its
// receiver no matter who fires it.
type todoApp struct {
	app *app.App
}

func newTodoApp() *todoApp {
	t := &todoApp{}
	t.app = app.New(app.Config{
		State: app.State{
			"todos":     []Todo(nil),
			"idCounter": 0,
		},
		Render: t.render,
		On: map[string]app.Handler{
			"addTodo":    t.addTodo,
			"toggleTodo": t.toggleTodo,
			"removeTodo": t.removeTodo,
		},
	})
	return t
}

func (t *todoApp) todos() []Todo {
	todos, _ := t.app.State()["todos"].([]Todo)
	return todos
}

// render maps state to markup. Pure: it reads state and builds a
// tree, nothing else.
func (t *todoApp) render(s app.State) string {
	todos, _ := s["todos"].([]Todo)
	list := markup.Ul().Set("id", "todo-list")
	for _, td := range todos {
		id := strconv.Itoa(td.ID)
		list.Child(
			markup.Li(td.Description,
				markup.Checkbox(td.Done).
					Set("id", "toggle-"+id).
					Set("data-id", id).
					OnClick("toggleTodo"),
				markup.Button("x").
					Set("id", "remove-"+id).
					Set("data-id", id).
					OnClick("removeTodo"),
			).Set("id", "todo-"+id).Set("data-id", id),
		)
	}
	return markup.Div(
		markup.El("h1").SetText("todos"),
		markup.Input("text").
			Set("id", "new-todo").
			Set("placeholder", "What needs to be done?").
			OnKeypress("addTodo"),
		list,
	).String()
}

// addTodo appends the typed description as a new item on Enter.
func (t *todoApp) addTodo(ev app.Event) {
	if ev.Key != "Enter" {
		return
	}
	desc := strings.TrimSpace(ev.Value)
	if desc == "" {
		return
	}
	s := t.app.State()
	next, _ := s["idCounter"].(int)
	next++
	t.app.Update(app.Partial{
		"todos":     append(t.todos(), Todo{ID: next, Description: desc}),
		"idCounter": next,
	})
}

// toggleTodo flips the done flag of the item named by the target's
// data-id. An unknown id changes nothing, but still renders once.
func (t *todoApp) toggleTodo(ev app.Event) {
	id, err := strconv.Atoi(ev.Target.Attr("data-id"))
	if err != nil {
		return
	}
	old := t.todos()
	todos := make([]Todo, len(old))
	copy(todos, old)
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Done = !todos[i].Done
			break
		}
	}
	t.app.Update(app.Partial{"todos": todos})
}

// removeTodo deletes the item named by the target's data-id, keeping
// the remaining items in their original relative order.
func (t *todoApp) removeTodo(ev app.Event) {
	id, err := strconv.Atoi(ev.Target.Attr("data-id"))
	if err != nil {
		return
	}
	kept := make([]Todo, 0, len(t.todos()))
	for _, td := range t.todos() {
		if td.ID != id {
			kept = append(kept, td)
		}
	}
	t.app.Update(app.Partial{"todos": kept})
}
