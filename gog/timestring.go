// gog/timestring.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"fmt"
	"strings"
	"time"
)

// Accepted starttime/endtime layouts. Every layout carries an explicit
// year; timestamps without one are rejected rather than guessed at.
var timeLayouts = []string{
	"002 2006 15:04:05", // ordinal day-of-year
	"Jan 2 2006 15:04:05",
	"2 Jan 2006 15:04:05",
	"Jan 2 2006",
	"2 Jan 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// parseTimeString parses a reference-year-qualified GOG timestamp.
// Fractional seconds are accepted on any layout with a seconds component.
func parseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("gog: empty time string")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("gog: no usable year in time string %q", s)
}

// formatTimeString renders a timestamp in the ordinal day-of-year form.
func formatTimeString(t time.Time) string {
	return t.UTC().Format("002 2006 15:04:05.000")
}
