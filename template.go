package jfswatch

import (
	"strings"
	"time"

	"github.com/just1ngray/jfswatch/snapshot"
)

// MTimeFormat is the layout used when substituting $mtime.
const MTimeFormat = time.RFC3339

// Substitute builds the executable command string for a detected change.
// Every occurrence of $diff, $path or $mtime (or the ${...} forms) in the
// template is replaced with the difference's kind, path, or formatted
// modification time. A placeholder immediately preceded by an unescaped
// backslash is left as literal text with the backslash stripped. A deleted
// path has no mtime, so its $mtime placeholders are left verbatim. Any
// other $name passes through untouched for the shell to interpret.
func Substitute(template string, diff snapshot.Difference) string {
	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); {
		switch template[i] {
		case '\\':
			if _, n := placeholder(template[i+1:]); n > 0 {
				// Escaped placeholder: drop the backslash, keep the text.
				out.WriteString(template[i+1 : i+1+n])
				i += 1 + n
				continue
			}
			if i+1 < len(template) && template[i+1] == '\\' {
				// An escaped backslash cannot escape what follows.
				out.WriteString(`\\`)
				i += 2
				continue
			}
		case '$':
			if name, n := placeholder(template[i:]); n > 0 {
				if value, ok := substitution(name, diff); ok {
					out.WriteString(value)
				} else {
					out.WriteString(template[i : i+n])
				}
				i += n
				continue
			}
		}
		out.WriteByte(template[i])
		i++
	}
	return out.String()
}

// placeholder reports whether s starts with a substitution placeholder,
// returning the variable name and the placeholder's length in bytes. The
// bare form must not run into a following identifier character, so
// "$pathology" is not a $path placeholder; the braced form has no such
// restriction.
func placeholder(s string) (name string, n int) {
	if !strings.HasPrefix(s, "$") {
		return "", 0
	}
	for _, name := range []string{"diff", "path", "mtime"} {
		if rest, ok := strings.CutPrefix(s[1:], "{"+name+"}"); ok {
			return name, len(s) - len(rest)
		}
		if rest, ok := strings.CutPrefix(s[1:], name); ok && !identChar(rest) {
			return name, len(s) - len(rest)
		}
	}
	return "", 0
}

func identChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// substitution resolves a placeholder name against the difference. The
// second result is false when no value exists, which only happens for the
// mtime of a deleted path.
func substitution(name string, diff snapshot.Difference) (string, bool) {
	switch name {
	case "diff":
		return diff.Kind.String(), true
	case "path":
		return diff.Path, true
	case "mtime":
		if diff.Kind == snapshot.DiffDeleted {
			return "", false
		}
		return diff.MTime.Format(MTimeFormat), true
	}
	return "", false
}
