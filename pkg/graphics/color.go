package graphics

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a straight-alpha color packed as 0xAARRGGBB. It is what widget
// geometry carries in Vertex.Color.
type Color uint32

// Colors used as widget defaults.
const (
	ColorTransparent Color = 0x00000000
	ColorBlack       Color = 0xFF000000
	ColorWhite       Color = 0xFFFFFFFF
)

var _ color.Color = Color(0)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA returns a color with alpha given in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return RGBA8(r, g, b, unitToByte(a))
}

// RGBA8 returns a color from four 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// NRGBA returns the 8-bit channels.
func (c Color) NRGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.NRGBA()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return float64(c>>24) / 0xFF
}

// WithAlpha replaces the opacity, given in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	return c&0x00FFFFFF | Color(unitToByte(a))<<24
}

// Lerp mixes every channel of c toward other by t, clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	r1, g1, b1, a1 := c.NRGBA()
	r2, g2, b2, a2 := other.NRGBA()
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return RGBA8(mix(r1, r2), mix(g1, g2), mix(b1, b2), mix(a1, a2))
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func unitToByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 0xFF))
}
