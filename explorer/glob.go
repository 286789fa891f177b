package explorer

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/just1ngray/jfswatch/pattern"
	"github.com/just1ngray/jfswatch/snapshot"
)

// Glob watches every path matching a set of basic glob patterns. The set is
// produced once at construction time by expanding an extended glob
// pattern's brace alternations.
type Glob struct {
	patterns []string
}

// NewGlob expands the extended glob pattern arg and validates every
// resulting basic pattern. An error refuses construction and names the
// offending pattern; no partially-valid explorer is ever produced.
func NewGlob(arg string) (*Glob, error) {
	patterns, err := pattern.Expand(arg)
	if err != nil {
		return nil, err
	}
	for _, p := range patterns {
		if err := pattern.Validate(p); err != nil {
			return nil, fmt.Errorf("glob pattern from %q is invalid: %w", arg, err)
		}
	}
	return &Glob{patterns: patterns}, nil
}

// Explore enumerates the filesystem entries matching each basic pattern.
// Entries that disappear between enumeration and the metadata read are
// skipped silently.
func (g *Glob) Explore(snap *snapshot.Snapshot) {
	for _, p := range g.patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			continue
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			snap.Found(match, info.ModTime())
		}
	}
}
