package token

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with every channel in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Transparent is fully transparent white, used for color tokens without a fill.
var Transparent = Color{R: 1, G: 1, B: 1, A: 0}

func (c Color) rgb() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// RGB255 returns the channels scaled to 0-255.
func (c Color) RGB255() (r, g, b uint8) {
	return c.rgb().RGB255()
}

// Alpha255 returns the alpha channel scaled to 0-255.
func (c Color) Alpha255() uint8 {
	return uint8(math.Round(clamp01(c.A) * 255))
}

// Opaque reports whether the color has full alpha.
func (c Color) Opaque() bool {
	return c.Alpha255() == 255
}

// Hex returns "#rrggbb".
func (c Color) Hex() string {
	return c.rgb().Hex()
}

// Hex8 returns "#rrggbbaa".
func (c Color) Hex8() string {
	return fmt.Sprintf("%s%02x", c.Hex(), c.Alpha255())
}

// ARGBHex returns "#aarrggbb", the ordering Android color resources use.
func (c Color) ARGBHex() string {
	return fmt.Sprintf("#%02x%s", c.Alpha255(), c.Hex()[1:])
}

// RGBString returns "rgb(r, g, b)" for opaque colors and "rgba(r, g, b, a)"
// otherwise, with alpha rounded to two decimals.
func (c Color) RGBString() string {
	r, g, b := c.RGB255()
	if c.Opaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	a := math.Round(clamp01(c.A)*100) / 100
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatNumber(a))
}

// CSS returns Hex for opaque colors and RGBString otherwise.
func (c Color) CSS() string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.RGBString()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
