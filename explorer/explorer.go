// Package explorer discovers watched paths and records them into a
// snapshot. Explorers are configured once at startup from CLI-style
// arguments and queried once per poll cycle.
package explorer

import (
	"os"

	"github.com/just1ngray/jfswatch/snapshot"
)

// An Explorer contributes zero or more (path, mtime) facts to a snapshot.
// Exploration never fails: a path that cannot currently be read is simply
// absent from the snapshot until it can.
type Explorer interface {
	Explore(snap *snapshot.Snapshot)
}

// Exact watches one literal filesystem path. The path is not required to
// exist when the explorer is constructed, or ever.
type Exact struct {
	path string
}

// NewExact returns an explorer for the given literal path.
func NewExact(path string) *Exact {
	return &Exact{path: path}
}

// Explore records the path if it currently exists. Stat errors of any kind
// mean the path is not present this cycle.
func (e *Exact) Explore(snap *snapshot.Snapshot) {
	info, err := os.Stat(e.path)
	if err != nil {
		return
	}
	snap.Found(e.path, info.ModTime())
}
