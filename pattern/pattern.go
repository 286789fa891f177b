// Package pattern converts extended glob patterns into basic glob patterns.
//
// An extended glob pattern is a basic glob pattern augmented with brace
// alternation: "config.{yml,yaml}" expands to "config.yml" and
// "config.yaml". Groups nest to arbitrary depth and every alternation is
// fully distributed, so "{a,b}{1,2}" expands to four patterns. A backslash
// escapes the following character, including '{', '}' and ','.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ParseError reports malformed brace nesting in an extended glob pattern.
type ParseError struct {
	Pattern string
	Msg     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid extended glob pattern %q: %s", e.Pattern, e.Msg)
}

// A token is one element of a tokenized extended glob pattern: a single
// literal rune, or the set of alternatives collected from one top-level
// brace group. alts is nil for literals.
type token struct {
	lit  rune
	alts []string
}

// builder tokenizes an extended glob pattern one rune at a time. Only
// depth-1 groups are split here; the text of nested groups is kept verbatim
// inside the enclosing alternative and handled by a recursive Expand.
type builder struct {
	tokens  []token
	depth   int
	escaped bool
}

// Expand returns the sorted, deduplicated set of basic glob patterns
// denoted by the given extended glob pattern. A pattern without brace
// groups expands to itself. Unbalanced braces yield a *ParseError.
func Expand(pattern string) ([]string, error) {
	b := &builder{}
	for _, c := range pattern {
		if err := b.character(c); err != nil {
			return nil, &ParseError{Pattern: pattern, Msg: err.Error()}
		}
	}
	if b.depth > 0 {
		return nil, &ParseError{Pattern: pattern, Msg: "unclosed '{'"}
	}
	return b.build()
}

func (b *builder) character(c rune) error {
	if b.escaped {
		b.escaped = false
		b.plain(c)
		return nil
	}

	switch c {
	case '\\':
		// The backslash itself is retained so that escapes survive
		// into the basic patterns, where the glob matcher honours them.
		b.escaped = true
		b.plain(c)
	case '{':
		b.depth++
		if b.depth == 1 {
			b.tokens = append(b.tokens, token{alts: []string{""}})
		} else {
			b.sub(c)
		}
	case '}':
		if b.depth == 0 {
			return fmt.Errorf("unmatched '}'")
		}
		b.depth--
		if b.depth == 0 {
			return b.closeGroup()
		}
		b.sub(c)
	case ',':
		switch {
		case b.depth == 0:
			b.plain(c)
		case b.depth == 1:
			// Starts the next alternative of the open group.
			last := &b.tokens[len(b.tokens)-1]
			last.alts = append(last.alts, "")
		default:
			b.sub(c)
		}
	default:
		b.plain(c)
	}
	return nil
}

// plain stores a literal rune at the current depth.
func (b *builder) plain(c rune) {
	if b.depth == 0 {
		b.tokens = append(b.tokens, token{lit: c})
	} else {
		b.sub(c)
	}
}

// sub appends a rune to the current alternative of the open group.
func (b *builder) sub(c rune) {
	last := &b.tokens[len(b.tokens)-1]
	last.alts[len(last.alts)-1] += string(c)
}

// closeGroup resolves the group that just returned to depth 0 by
// recursively expanding each collected alternative, replacing the group
// with the union of the results.
func (b *builder) closeGroup() error {
	last := b.tokens[len(b.tokens)-1]
	var union []string
	for _, alt := range last.alts {
		sub, err := Expand(alt)
		if err != nil {
			return fmt.Errorf("%s", err.(*ParseError).Msg)
		}
		union = append(union, sub...)
	}
	b.tokens[len(b.tokens)-1] = token{alts: union}
	return nil
}

// build assembles the final patterns as the cartesian product of the token
// sequence, in order.
func (b *builder) build() ([]string, error) {
	patterns := []string{""}
	for _, t := range b.tokens {
		if t.alts == nil {
			for i := range patterns {
				patterns[i] += string(t.lit)
			}
			continue
		}
		next := make([]string, 0, len(patterns)*len(t.alts))
		for _, p := range patterns {
			for _, alt := range t.alts {
				next = append(next, p+alt)
			}
		}
		patterns = next
	}

	sort.Strings(patterns)
	deduped := patterns[:0]
	var prev string
	for i, p := range patterns {
		if i == 0 || p != prev {
			deduped = append(deduped, p)
		}
		prev = p
	}
	return deduped, nil
}

// Validate checks a basic glob pattern: '?' matches one character, '*' any
// run within a path component, '**' a whole component spanning arbitrary
// subdirectories, '[...]' and '[!...]' character classes, backslash escapes.
// A '**' adjacent to anything else in its component ("**a", "a**") is
// invalid, as is a run of three or more '*'.
func Validate(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	// doublestar quietly downgrades a misplaced '**' to '*'; the contract
	// here is stricter, so check component shapes ourselves.
	for _, comp := range strings.Split(pattern, "/") {
		if !validComponent(comp) {
			return fmt.Errorf("invalid glob pattern %q: '**' must be a path component of its own", pattern)
		}
	}
	return nil
}

func validComponent(comp string) bool {
	stars := 0
	escaped := false
	inClass := false
	for _, c := range comp {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case inClass:
			// '*' is an ordinary member inside [...].
			inClass = c != ']'
		case c == '[':
			inClass = true
		case c == '*':
			stars++
			if stars > 2 {
				return false
			}
			continue
		}
		if stars == 2 {
			// "**" followed by more text in the same component.
			return false
		}
		stars = 0
	}
	return stars != 2 || comp == "**"
}
