package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ANSIReset clears all SGR attributes.
const ANSIReset = "\x1b[0m"

// DefaultGradientAngle is used when a theme leaves the angle at zero.
const DefaultGradientAngle = 30.0

// RGB is a color with float channels in 0-255.
type RGB struct {
	R, G, B float64
}

var fallbackGray = RGB{128, 128, 128}

// HexToRGB parses "#rrggbb" (the hash is optional). Invalid input yields
// mid gray.
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fallbackGray
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallbackGray
	}
	return RGB{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}
}

// RGBToHex formats c as lowercase "#rrggbb", clamping each channel.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// ToANSI returns the 24-bit foreground escape for c.
func (c RGB) ToANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// LerpRGB interpolates between a and b; t is clamped to [0, 1].
func LerpRGB(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// GradientStop is a color at a position in [0, 1].
type GradientStop struct {
	Position float64
	Color    RGB
}

// Gradient is a linear gradient across a box at Angle degrees.
type Gradient struct {
	Stops []GradientStop
	Angle float64
}

// NewGradient spaces colors evenly from 0 to 1.
func NewGradient(colors []string, angle float64) Gradient {
	g := Gradient{Angle: angle}
	switch len(colors) {
	case 0:
		return g
	case 1:
		g.Stops = []GradientStop{{Position: 0, Color: HexToRGB(colors[0])}}
		return g
	}
	last := float64(len(colors) - 1)
	for i, c := range colors {
		g.Stops = append(g.Stops, GradientStop{Position: float64(i) / last, Color: HexToRGB(c)})
	}
	return g
}

// ColorAt returns the color at position t.
func (g Gradient) ColorAt(t float64) RGB {
	switch len(g.Stops) {
	case 0:
		return fallbackGray
	case 1:
		return g.Stops[0].Color
	}
	t = clamp01(t)
	for i := 1; i < len(g.Stops); i++ {
		lo, hi := g.Stops[i-1], g.Stops[i]
		if t <= hi.Position {
			span := hi.Position - lo.Position
			if span <= 0 {
				return hi.Color
			}
			return LerpRGB(lo.Color, hi.Color, (t-lo.Position)/span)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// PositionAt maps cell (x, y) of a width x height box onto the gradient
// axis, returning a value in [0, 1].
func (g Gradient) PositionAt(x, y, width, height int) float64 {
	rad := g.Angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)

	nx := float64(x) / float64(max(width-1, 1))
	ny := float64(y) / float64(max(height-1, 1))

	lo := math.Min(0, dx) + math.Min(0, dy)
	hi := math.Max(0, dx) + math.Max(0, dy)
	if hi-lo == 0 {
		return 0
	}
	return clamp01((nx*dx + ny*dy - lo) / (hi - lo))
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
