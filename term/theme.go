package term

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme holds the glyphs and ANSI styles used when drawing an element
// tree as text. Color fields are SGR parameter strings ("2" dim,
// "1;36" bold cyan); they apply only when color output is enabled.
type Theme struct {
	CheckedBox   string `yaml:"checked_box"`
	UncheckedBox string `yaml:"unchecked_box"`
	Bullet       string `yaml:"bullet"`
	Prompt       string `yaml:"prompt"`
	Indent       string `yaml:"indent"`
	DoneStyle    string `yaml:"done_style"`
	ButtonStyle  string `yaml:"button_style"`
	AccentStyle  string `yaml:"accent_style"`
}

// DefaultTheme returns the plain-ASCII default.
func DefaultTheme() Theme {
	return Theme{
		CheckedBox:   "[x]",
		UncheckedBox: "[ ]",
		Bullet:       "-",
		Prompt:       "> ",
		Indent:       "  ",
		DoneStyle:    "2;9",
		ButtonStyle:  "2",
		AccentStyle:  "1",
	}
}

// LoadTheme reads a YAML theme file. Fields absent from the file keep
// their default values.
func LoadTheme(path string) (Theme, error) {
	th := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("term: load theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &th); err != nil {
		return th, fmt.Errorf("term: load theme %s: %w", path, err)
	}
	return th, nil
}
