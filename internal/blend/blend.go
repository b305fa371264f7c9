// Package blend mixes a brush color into existing 8-bit pixels.
//
// All functions operate on non-premultiplied color.NRGBA values and keep
// every channel within [0,255]. The interpolation factor is clamped to [0,1],
// so out-of-range strengths saturate instead of extrapolating.
package blend

import (
	"image/color"
	"math"

	"github.com/gogpu/paint/internal/srgb"
)

// Func blends src over dst with interpolation factor t.
type Func func(dst, src color.NRGBA, t float64) color.NRGBA

// Lerp linearly interpolates each channel from dst toward src in sRGB space.
// t=0 returns dst, t=1 returns src exactly.
func Lerp(dst, src color.NRGBA, t float64) color.NRGBA {
	t = clampUnit(t)
	switch t {
	case 0:
		return dst
	case 1:
		return src
	}
	return color.NRGBA{
		R: mix(dst.R, src.R, t),
		G: mix(dst.G, src.G, t),
		B: mix(dst.B, src.B, t),
		A: mix(dst.A, src.A, t),
	}
}

// LerpLinear interpolates color channels in linear light and converts the
// result back to sRGB. Alpha is interpolated directly.
func LerpLinear(dst, src color.NRGBA, t float64) color.NRGBA {
	t = clampUnit(t)
	switch t {
	case 0:
		return dst
	case 1:
		return src
	}
	return color.NRGBA{
		R: mixLinear(dst.R, src.R, t),
		G: mixLinear(dst.G, src.G, t),
		B: mixLinear(dst.B, src.B, t),
		A: mix(dst.A, src.A, t),
	}
}

// Select returns the blend function for the requested color space.
func Select(linear bool) Func {
	if linear {
		return LerpLinear
	}
	return Lerp
}

func mix(d, s uint8, t float64) uint8 {
	v := float64(d) + (float64(s)-float64(d))*t
	return clamp255(math.Round(v))
}

func mixLinear(d, s uint8, t float64) uint8 {
	if d == s {
		return d
	}
	ld := srgb.ToLinear(d)
	ls := srgb.ToLinear(s)
	return srgb.FromLinear(ld + (ls-ld)*t)
}

// clampUnit restricts t to [0,1]. NaN maps to 0.
func clampUnit(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
