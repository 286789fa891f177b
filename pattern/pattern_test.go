package pattern

import (
	"errors"
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"base case", []string{"base case"}},
		{`escaped \{ is OK`, []string{`escaped \{ is OK`}},
		{"commas, are OK", []string{"commas, are OK"}},
		{"{no reason for expansion}", []string{"no reason for expansion"}},
		{`{no reason for \{\} expansion}`, []string{`no reason for \{\} expansion`}},
		{"{a,b}", []string{"a", "b"}},
		{"{apple,banana}", []string{"apple", "banana"}},
		{"{apple,banana,carrot}", []string{"apple", "banana", "carrot"}},
		{"config.{yml,yaml}", []string{"config.yml", "config.yaml"}},
		{"{apple,pumpkin,strawberry} pie", []string{"apple pie", "pumpkin pie", "strawberry pie"}},
		{"{a,b}{1,2}", []string{"a1", "a2", "b1", "b2"}},
		{"{a,b,c}{1,2}", []string{"a1", "a2", "b1", "b2", "c1", "c2"}},
		{"{a,b}{1,2}{!,?}", []string{"a1!", "a2!", "b1!", "b2!", "a1?", "a2?", "b1?", "b2?"}},
		{"a{b,{c,d}}", []string{"ab", "ac", "ad"}},
		{"{aa{bb,cc,dd{e,f}},why even}.", []string{"why even.", "aabb.", "aacc.", "aadde.", "aaddf."}},
		{"{a,a}", []string{"a"}},
		{"", []string{""}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.pattern, func(t *testing.T) {
			c := qt.New(t)
			got, err := Expand(test.pattern)
			c.Assert(err, qt.IsNil)
			want := append([]string(nil), test.want...)
			sort.Strings(want)
			c.Assert(got, qt.DeepEquals, want)
		})
	}
}

func TestExpandUnbalancedBraces(t *testing.T) {
	tests := []string{
		"}",
		"a}b",
		"{a,b}}",
		"{",
		"{a,b",
		"a{b,{c,d}",
	}
	for _, pattern := range tests {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			c := qt.New(t)
			got, err := Expand(pattern)
			c.Assert(got, qt.IsNil)
			var parseErr *ParseError
			c.Assert(errors.As(err, &parseErr), qt.IsTrue)
			c.Assert(parseErr.Pattern, qt.Equals, pattern)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []string{
		"plain.txt",
		"*.txt",
		"???.txt",
		"nested/**/*.txt",
		"**",
		"[ab].txt",
		"[!ab].txt",
		"[0-9]*",
		`escaped \* star`,
		`\**`,
	}
	for _, pattern := range valid {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			qt.Assert(t, Validate(pattern), qt.IsNil)
		})
	}

	invalid := []string{
		"[",
		"**a",
		"a**",
		"***",
		"nested/**a/b",
	}
	for _, pattern := range invalid {
		pattern := pattern
		t.Run(pattern, func(t *testing.T) {
			qt.Assert(t, Validate(pattern), qt.IsNotNil)
		})
	}
}
