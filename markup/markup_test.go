package markup

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseBasic(t *testing.T) {
	root, err := Parse(`<div id="root"><span id="s">hello</span></div>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("top-level elements = %d, want 1", len(root.Children))
	}
	div := root.Children[0]
	if div.Tag != "div" || div.ID() != "root" {
		t.Errorf("root element = <%s id=%q>", div.Tag, div.ID())
	}
	span := root.ByID("s")
	if span == nil {
		t.Fatal("ByID(s) = nil")
	}
	if span.Text != "hello" {
		t.Errorf("span text = %q", span.Text)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	root, err := Parse("<div>\n  <span>\n    padded\n  </span>\n</div>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	span := root.Children[0].Children[0]
	if span.Text != "padded" {
		t.Errorf("span text = %q, want %q", span.Text, "padded")
	}
}

func TestParseAttrOrder(t *testing.T) {
	root, err := Parse(`<input type="text" id="q" placeholder="search">`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	in := root.Children[0]
	want := []Attribute{
		{Key: "type", Val: "text"},
		{Key: "id", Val: "q"},
		{Key: "placeholder", Val: "search"},
	}
	if diff := cmp.Diff(want, in.Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestAttrLookup(t *testing.T) {
	el := El("button").Set("id", "ok").Set("data-id", "7")
	tests := []struct {
		key  string
		want string
	}{
		{"id", "ok"},
		{"data-id", "7"},
		{"missing", ""},
	}
	for _, tt := range tests {
		if got := el.Attr(tt.key); got != tt.want {
			t.Errorf("Attr(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
	if el.HasAttr("missing") {
		t.Error("HasAttr(missing) = true")
	}
	if !el.HasAttr("data-id") {
		t.Error("HasAttr(data-id) = false")
	}
}

func TestSetReplacesAndUnsetRemoves(t *testing.T) {
	el := El("li").Set("data-selected", "1").Set("data-selected", "2")
	if got := el.Attr("data-selected"); got != "2" {
		t.Errorf("after double Set, attr = %q", got)
	}
	if len(el.Attrs) != 1 {
		t.Errorf("attrs = %d, want 1", len(el.Attrs))
	}
	el.Unset("data-selected")
	if el.HasAttr("data-selected") {
		t.Error("attr survived Unset")
	}
	el.Unset("data-selected") // no-op on absent key
}

func TestStringVoidElements(t *testing.T) {
	got := Input("text").Set("id", "q").String()
	want := `<input type="text" id="q">`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Contains(got, "</input>") {
		t.Error("void element got a closing tag")
	}
}

func TestStringEscapes(t *testing.T) {
	got := Span(`a < b & "c"`).Set("title", `say "hi"`).String()
	root, err := Parse(got)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	span := root.Children[0]
	if span.Text != `a < b & "c"` {
		t.Errorf("roundtrip text = %q", span.Text)
	}
	if span.Attr("title") != `say "hi"` {
		t.Errorf("roundtrip title = %q", span.Attr("title"))
	}
}

func TestBuilderRoundtrip(t *testing.T) {
	tree := Div(
		El("h1").SetText("todos"),
		Ul(
			Li("Learn CSS",
				Checkbox(false).Set("id", "toggle-1"),
				Button("x").Set("id", "remove-1"),
			).Set("id", "todo-1"),
			Li("Learn HTML",
				Checkbox(true).Set("id", "toggle-2"),
			).Set("id", "todo-2"),
		).Set("id", "list"),
	).Set("id", "root")

	root, err := Parse(tree.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(tree, root.Children[0]); diff != "" {
		t.Errorf("roundtrip mismatch (-built +parsed):\n%s", diff)
	}
}

func TestByTagOrder(t *testing.T) {
	root, err := Parse(`<ul><li id="a"></li><li id="b"></li></ul><li id="c"></li>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var ids []string
	for _, li := range root.ByTag("li") {
		ids = append(ids, li.ID())
	}
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("document order (-want +got):\n%s", diff)
	}
}
