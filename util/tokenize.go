// util/tokenize.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package util holds small general-purpose helpers: line tokenization,
// optional values, and slice/map utilities.
package util

import "strings"

// Tokenize splits a line into whitespace-separated tokens, keeping
// double-quoted runs together. Quotes are preserved in the returned tokens
// so callers can distinguish `"a b"` from two tokens; use Unquote to strip
// them. An unterminated quote extends to the end of the line.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuote = !inQuote
			current.WriteRune(ch)
		case !inQuote && (ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'):
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()
	return tokens
}

// Unquote strips one pair of surrounding double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// RestOfLine returns the remainder of line after the first n
// whitespace-separated tokens, with leading/trailing space trimmed. It is
// used for keywords whose argument is free text rather than a token list.
func RestOfLine(line string, n int) string {
	s := strings.TrimSpace(line)
	for ; n > 0; n-- {
		if s != "" && s[0] == '"' {
			if close := strings.IndexByte(s[1:], '"'); close >= 0 {
				s = s[close+2:]
			} else {
				s = ""
			}
		} else if idx := strings.IndexAny(s, " \t"); idx >= 0 {
			s = s[idx:]
		} else {
			s = ""
		}
		s = strings.TrimLeft(s, " \t")
	}
	return strings.TrimSpace(s)
}
