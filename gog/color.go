// gog/color.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package gog

import (
	"strconv"
	"strings"
)

// GOG hex colors are AABBGGRR strings. defaultGogColors seeds every
// Parser's named-color table; addOverwriteColor extends or replaces
// entries.
func defaultGogColors() map[string]string {
	return map[string]string{
		"color1": "0xffffff00", // Cyan
		"color2": "0xff0000ff", // Red
		"color3": "0xff00ff00", // Lime
		"color4": "0xffff0000", // Blue
		"color5": "0xff00ffff", // Yellow
		"color6": "0xff00a5ff", // Orange
		"color7": "0xffffffff", // White

		"cyan":    "0xffffff00",
		"red":     "0xff0000ff",
		"green":   "0xff00ff00",
		"blue":    "0xffff0000",
		"yellow":  "0xff00ffff",
		"orange":  "0xff00a5ff",
		"white":   "0xffffffff",
		"black":   "0xff000000",
		"magenta": "0xffc000c0",
	}
}

// resolveColorString maps a color token to an AABBGGRR hex string. Named
// colors go through the table; unknown names fall back to opaque red. Hex
// tokens get a 0x prefix if they lack one but are otherwise passed through
// untouched, so a malformed literal surfaces later as a parse failure.
func (p *Parser) resolveColorString(token string, isHex bool) string {
	if !isHex {
		if hex, ok := p.colors[strings.ToLower(token)]; ok {
			return hex
		}
		return "0xff0000ff"
	}
	if strings.HasPrefix(token, "0x") || strings.HasPrefix(token, "0X") {
		return token
	}
	return "0x" + token
}

// parseColorValue decodes an AABBGGRR hex string into a Color.
func parseColorValue(hex string) (Color, bool) {
	s := strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if s == "" || len(s) > 8 {
		return Color{}, false
	}
	abgr, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return ColorFromABGR(uint32(abgr)), true
}

// formatColorValue renders a Color as the 0xAABBGGRR wire form.
func formatColorValue(c Color) string {
	const digits = "0123456789abcdef"
	b := []byte("0x00000000")
	v := c.ABGR()
	for i := 9; i >= 2; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b)
}
