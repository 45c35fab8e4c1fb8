// Package config loads the layered YAML settings: a shipped defaults
// file patched by an optional user file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tree is one level of the settings hierarchy.
type Tree map[string]any

// Load reads a single YAML file into a Tree.
func Load(path string) (Tree, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tree
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return t, nil
}

// Merge overlays update onto base: update's values win, nested trees
// are merged recursively, everything else is overwritten. Both inputs
// are left untouched.
func Merge(base, update Tree) Tree {
	merged := deepCopy(base)
	for key, val := range update {
		if sub, ok := treeOf(val); ok {
			if baseSub, ok := treeOf(merged[key]); ok {
				merged[key] = Merge(baseSub, sub)
				continue
			}
			merged[key] = deepCopy(sub)
			continue
		}
		merged[key] = val
	}
	return merged
}

// treeOf normalizes the map types yaml.v3 may produce.
func treeOf(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

func deepCopy(t Tree) Tree {
	out := make(Tree, len(t))
	for key, val := range t {
		if sub, ok := treeOf(val); ok {
			out[key] = deepCopy(sub)
		} else {
			out[key] = val
		}
	}
	return out
}

// LoadConfiguration builds the effective settings: defaults patched by
// the user file. A missing user file is fine; missing defaults are not.
func LoadConfiguration(defaultsPath, userPath string) (Tree, error) {
	defaults, err := Load(defaultsPath)
	if err != nil {
		return nil, err
	}
	user, err := Load(userPath)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return Merge(defaults, user), nil
}

// Sub returns the nested tree at key, or an empty one.
func (t Tree) Sub(key string) Tree {
	if sub, ok := treeOf(t[key]); ok {
		return sub
	}
	return Tree{}
}

// Int returns the integer at key, or fallback.
func (t Tree) Int(key string, fallback int) int {
	switch n := t[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return fallback
}

// String returns the string at key, or fallback.
func (t Tree) String(key string, fallback string) string {
	if s, ok := t[key].(string); ok {
		return s
	}
	return fallback
}
