// Package color provides the RGB value type used across huegrid, along with
// hex decoding, the integer luminance estimate, and contrasting text color
// selection.
package color

import (
	"fmt"
	"strconv"
)

// RGB is a 24-bit color split into its three 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Black and White are the two possible text colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseHex decodes a 6-hex-digit string ("RRGGBB", case-insensitive, no
// leading '#') into an RGB value.
func ParseHex(s string) (RGB, error) {
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color: hex string %q must be 6 digits", s)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("color: invalid hex string %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is ParseHex for compiled-in color tables. It panics on
// malformed input, which can only be an authoring bug.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex re-encodes the color as a lower-case 6-digit hex string.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Luminance returns the BT.601 luma approximation on a 0-255 scale:
// (r*299 + g*587 + b*114) / 1000, integer division. The weights sum to
// 1000, so pure white maps to exactly 255.
func (c RGB) Luminance() int {
	return (int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000
}

// TextColor picks the foreground to draw on top of c: black for bright
// backgrounds, white otherwise. The comparison is strict, so a luminance of
// exactly 128 gets white text.
func (c RGB) TextColor() RGB {
	if c.Luminance() > 128 {
		return Black
	}
	return White
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return "#" + c.Hex()
}
