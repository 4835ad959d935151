package theme

import (
	"fmt"
	"strconv"
)

// RGB holds one 8-bit channel value per component.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a strict 7-character "#rrggbb" color string. Shorthand
// forms and missing '#' are rejected rather than guessed at.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Fractional is a color in the 0-1 component form iTerm2 profiles use.
type Fractional struct {
	R, G, B, A float64
	ColorSpace string
}

// ToFractional converts a hex color to 0-1 component fractions with alpha 1
// and the sRGB color-space tag.
func ToFractional(hex string) (Fractional, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return Fractional{}, err
	}
	return Fractional{
		R:          float64(c.R) / 255,
		G:          float64(c.G) / 255,
		B:          float64(c.B) / 255,
		A:          1,
		ColorSpace: "sRGB",
	}, nil
}

// RGB16 is a color with 16-bit channels, the form AppleScript's Terminal
// dictionary expects.
type RGB16 struct {
	R, G, B uint16
}

// To16Bit scales a hex color's 8-bit channels into the 0-65535 range.
func To16Bit(hex string) (RGB16, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGB16{}, err
	}
	// 255*257 = 65535, so 0xff maps to full scale exactly.
	return RGB16{
		R: uint16(c.R) * 257,
		G: uint16(c.G) * 257,
		B: uint16(c.B) * 257,
	}, nil
}
