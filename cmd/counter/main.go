// Counter is a minimal headless example of the update/render loop.
//
// It mounts a counter component on the in-memory view, clicks its
// buttons, and prints the display element after each render. Mostly
// useful as the smallest complete wiring of Config, Mount and Update.
//
// Usage: counter
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/elizafairlady/go-miniui/app"
	"github.com/elizafairlady/go-miniui/markup"
	"github.com/elizafairlady/go-miniui/view"
)

func main() {
	var a *app.App

	render := func(s app.State) string {
		count := s["count"].(int)
		return markup.Div(
			markup.Span("count: "+strconv.Itoa(count)).Set("id", "display"),
			markup.Button("+1").Set("id", "inc").OnClick("increment"),
			markup.Button("-1").Set("id", "dec").OnClick("decrement"),
		).String()
	}

	step := func(delta int) app.Handler {
		return func(app.Event) {
			a.Update(app.Partial{"count": a.State()["count"].(int) + delta})
		}
	}

	a = app.New(app.Config{
		State:  app.State{"count": 0},
		Render: render,
		On: map[string]app.Handler{
			"increment": step(1),
			"decrement": step(-1),
		},
	})

	v := view.NewMem()
	if err := a.Mount(v); err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		v.Click("inc")
		fmt.Println(v.ByID("display").Text)
	}
	v.Click("dec")
	fmt.Println(v.ByID("display").Text)
}
