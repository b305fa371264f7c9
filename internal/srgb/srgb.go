// Package srgb converts 8-bit sRGB channel values to and from linear light.
//
// Blending a brush color into a photograph in linear light avoids the dark
// fringes produced by naive sRGB interpolation. Both directions are backed by
// lookup tables built once at init.
//
// Alpha is never gamma-encoded; only color channels pass through here.
package srgb

import "math"

// toLinear maps an sRGB byte to linear float64 in [0,1].
var toLinear [256]float64

// fromLinear maps a 12-bit quantized linear value to an sRGB byte.
var fromLinear [4096]uint8

func init() {
	for i := range toLinear {
		toLinear[i] = decode(float64(i) / 255)
	}
	for i := range fromLinear {
		fromLinear[i] = quantize(encode(float64(i) / 4095))
	}
}

// ToLinear converts an sRGB byte to linear light using the lookup table.
func ToLinear(s uint8) float64 {
	return toLinear[s]
}

// FromLinear converts linear light to an sRGB byte using the lookup table.
// Input is clamped to [0,1].
func FromLinear(l float64) uint8 {
	if !(l > 0) {
		return fromLinear[0]
	}
	if l >= 1 {
		return fromLinear[4095]
	}
	return fromLinear[int(l*4095+0.5)]
}

// ToLinearExact is the math.Pow reference for ToLinear.
func ToLinearExact(s uint8) float64 {
	return decode(float64(s) / 255)
}

// FromLinearExact is the math.Pow reference for FromLinear.
func FromLinearExact(l float64) uint8 {
	return quantize(encode(math.Max(0, math.Min(1, l))))
}

func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func encode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func quantize(s float64) uint8 {
	v := int(s*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	//nolint:gosec // G115: v is clamped to [0,255]
	return uint8(v)
}
