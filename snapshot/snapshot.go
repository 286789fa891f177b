// Package snapshot holds the state of the watched file system as observed
// during one poll cycle, and computes the difference between two
// consecutive observations.
package snapshot

import (
	"sort"
	"strings"
	"time"
)

// Kind classifies the difference between two snapshots.
type Kind int

const (
	DiffUnchanged Kind = iota
	DiffNew
	DiffModified
	DiffDeleted
)

// String returns the value substituted for $diff in command templates.
func (k Kind) String() string {
	switch k {
	case DiffNew:
		return "new"
	case DiffModified:
		return "modified"
	case DiffDeleted:
		return "deleted"
	}
	return "unchanged"
}

// Difference is the single change detected between two snapshots. MTime is
// the zero value for Unchanged and Deleted: a deleted path's last known
// modification time is not retained.
type Difference struct {
	Kind  Kind
	Path  string
	MTime time.Time
}

// Snapshot maps each discovered path to its last modification time. A
// snapshot is built once per poll cycle by running every configured
// explorer against it, then either discarded or carried forward as the
// baseline for the next cycle. Snapshots are single-owner and never shared.
type Snapshot struct {
	paths map[string]time.Time
}

// New returns an empty snapshot sized for about sizeHint paths.
func New(sizeHint int) *Snapshot {
	return &Snapshot{paths: make(map[string]time.Time, sizeHint)}
}

// Found records that path currently exists with the given modification
// time, overwriting any earlier fact for the same path.
func (s *Snapshot) Found(path string, mtime time.Time) {
	s.paths[path] = mtime
}

// Len reports how many distinct paths have been found.
func (s *Snapshot) Len() int {
	return len(s.paths)
}

// Paths returns the discovered paths in sorted order.
func (s *Snapshot) Paths() []string {
	paths := make([]string, 0, len(s.paths))
	for path := range s.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// String renders the snapshot as one path per line, or the empty string
// for an empty snapshot.
func (s *Snapshot) String() string {
	if s.Len() == 0 {
		return ""
	}
	return strings.Join(s.Paths(), "\n") + "\n"
}

// Compare reports the first difference between s and the previous
// snapshot. prev is drained during the scan and must not be reused; the
// caller replaces it with s as the next baseline regardless of the result.
//
// At most one difference is reported per comparison even when several
// paths changed in the same cycle; the remaining changes surface on later
// cycles as the baseline advances. Which of several simultaneous changes
// is reported depends on map iteration order and is deliberately
// unspecified.
func (s *Snapshot) Compare(prev *Snapshot) Difference {
	for path, mtime := range s.paths {
		prevMTime, ok := prev.paths[path]
		if !ok {
			return Difference{Kind: DiffNew, Path: path, MTime: mtime}
		}
		delete(prev.paths, path)
		if !mtime.Equal(prevMTime) {
			return Difference{Kind: DiffModified, Path: path, MTime: mtime}
		}
	}

	// Anything still in prev was not rediscovered this cycle.
	for path := range prev.paths {
		return Difference{Kind: DiffDeleted, Path: path}
	}

	return Difference{Kind: DiffUnchanged}
}
