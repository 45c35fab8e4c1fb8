package show

import (
	"fmt"
	"sort"

	"github.com/stripshow/stripshow/internal/strip"
)

// Factory builds a pattern bound to a strip.
type Factory func(*strip.Strip) Pattern

var registry = map[string]Factory{
	"solidcolor":   func(s *strip.Strip) Pattern { return NewSolidColor(s) },
	"rainbow":      func(s *strip.Strip) Pattern { return NewRainbow(s) },
	"theaterchase": func(s *strip.Strip) Pattern { return NewTheaterChase(s) },
	"pixelrun":     func(s *strip.Strip) Pattern { return NewPixelRun(s) },
}

// New builds the named pattern.
func New(name string, s *strip.Strip) (Pattern, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown show %q (have: %v)", name, Names())
	}
	return f(s), nil
}

// Names lists the registered shows, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
