// Package theme loads the colour the trail is drawn in.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/automoto/gooey-cursor/field"
)

var (
	ErrUnknownTheme = errors.New("theme: unknown theme")
	ErrInvalidColor = errors.New("theme: invalid colour")
	ErrEmpty        = errors.New("theme: no themes defined")
)

//go:embed default.yaml
var defaultYAML []byte

var hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

type Theme struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// RGB parses the theme's hex colour.
func (t Theme) RGB() (field.RGB, error) {
	if !hexColor.MatchString(t.Color) {
		return field.RGB{}, fmt.Errorf("%w: %q in theme %q", ErrInvalidColor, t.Color, t.Name)
	}
	c := gg.Hex(t.Color)
	return field.RGB{c.R, c.G, c.B}, nil
}

type File struct {
	Active string  `yaml:"active"`
	Themes []Theme `yaml:"themes"`
}

// Default returns the built-in theme file.
func Default() *File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("theme: built-in themes: %v", err))
	}
	return f
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a theme file. An empty Active selects the first
// theme.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: unmarshal: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, ErrEmpty
	}
	for _, t := range f.Themes {
		if _, err := t.RGB(); err != nil {
			return nil, err
		}
	}
	if f.Active == "" {
		f.Active = f.Themes[0].Name
	}
	if _, err := f.Lookup(f.Active); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) Lookup(name string) (Theme, error) {
	for _, t := range f.Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Index returns the position of name, or -1.
func (f *File) Index(name string) int {
	for i, t := range f.Themes {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Next returns the theme after name, wrapping around.
func (f *File) Next(name string) Theme {
	i := f.Index(name)
	return f.Themes[(i+1)%len(f.Themes)]
}
