// util/util_test.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		line   string
		tokens []string
	}{
		{"", nil},
		{"   ", nil},
		{"circle", []string{"circle"}},
		{"centerlla 25.1 58.2 0.", []string{"centerlla", "25.1", "58.2", "0."}},
		{"\tlinecolor\t  green", []string{"linecolor", "green"}},
		{`starttime "001 2024 00:00:00.00000"`, []string{"starttime", `"001 2024 00:00:00.00000"`}},
		{`annotation "two words" extra`, []string{"annotation", `"two words"`, "extra"}},
		{`fontname "arial black.ttf`, []string{"fontname", `"arial black.ttf`}},
	}
	for _, c := range cases {
		if got := Tokenize(c.line); !slices.Equal(got, c.tokens) {
			t.Errorf("Tokenize(%q) = %q, expected %q", c.line, got, c.tokens)
		}
	}
}

func TestUnquote(t *testing.T) {
	cases := []struct{ in, out string }{
		{`"a b"`, "a b"},
		{`plain`, "plain"},
		{`""`, ""},
		{`"`, `"`},
		{`"open`, `"open`},
	}
	for _, c := range cases {
		if got := Unquote(c.in); got != c.out {
			t.Errorf("Unquote(%q) = %q, expected %q", c.in, got, c.out)
		}
	}
}

func TestRestOfLine(t *testing.T) {
	cases := []struct {
		line string
		n    int
		out  string
	}{
		{"annotation some label text", 1, "some label text"},
		{"3d name North Island", 2, "North Island"},
		{"comment  leading spaces kept off", 1, "leading spaces kept off"},
		{"annotation", 1, ""},
		{`starttime "1 Jun 2024" trailing`, 2, "trailing"},
	}
	for _, c := range cases {
		if got := RestOfLine(c.line, c.n); got != c.out {
			t.Errorf("RestOfLine(%q, %d) = %q, expected %q", c.line, c.n, got, c.out)
		}
	}
}

func TestOptional(t *testing.T) {
	var o Optional[float64]
	if o.IsSet() {
		t.Errorf("zero Optional reported set")
	}
	if v, ok := o.Get(); ok || v != 0 {
		t.Errorf("unset Get returned %v %v", v, ok)
	}
	if got := o.GetOr(1000); got != 1000 {
		t.Errorf("GetOr on unset returned %g", got)
	}

	o.Set(0) // explicitly-set zero differs from unset
	if v, ok := o.Get(); !ok || v != 0 {
		t.Errorf("set Get returned %v %v", v, ok)
	}
	if got := o.GetOr(1000); got != 0 {
		t.Errorf("GetOr on set zero returned %g", got)
	}

	o.Clear()
	if o.IsSet() {
		t.Errorf("Clear did not unset")
	}

	if s := Some("abc"); !s.IsSet() || s.GetOr("") != "abc" {
		t.Errorf("Some round trip failed")
	}
}

func TestSliceHelpers(t *testing.T) {
	evens := FilterSlice([]int{1, 2, 3, 4, 5}, func(v int) bool { return v%2 == 0 })
	if !slices.Equal(evens, []int{2, 4}) {
		t.Errorf("FilterSlice = %v", evens)
	}

	doubled := MapSlice([]int{1, 2, 3}, func(v int) int { return 2 * v })
	if !slices.Equal(doubled, []int{2, 4, 6}) {
		t.Errorf("MapSlice = %v", doubled)
	}

	keys := SortedMapKeys(map[string]int{"b": 1, "a": 2, "c": 3})
	if !slices.Equal(keys, []string{"a", "b", "c"}) {
		t.Errorf("SortedMapKeys = %v", keys)
	}
}
