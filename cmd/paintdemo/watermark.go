package main

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const watermarkMargin = 6

var (
	watermarkInk    = color.NRGBA{R: 255, G: 200, B: 40, A: 255}
	watermarkShadow = color.NRGBA{A: 200}
)

// stampDate draws the date in the bottom-right corner of dst with a one
// pixel drop shadow. Images too small to hold the text are left untouched.
func stampDate(dst draw.Image, t time.Time) {
	text := t.Format("2006-01-02")
	face := basicfont.Face7x13

	d := &font.Drawer{Dst: dst, Face: face}
	w := d.MeasureString(text).Ceil()
	b := dst.Bounds()
	if b.Dx() < w+2*watermarkMargin || b.Dy() < face.Height+2*watermarkMargin {
		return
	}

	x := b.Max.X - w - watermarkMargin
	y := b.Max.Y - watermarkMargin - face.Descent

	d.Src = image.NewUniform(watermarkShadow)
	d.Dot = fixed.P(x+1, y+1)
	d.DrawString(text)

	d.Src = image.NewUniform(watermarkInk)
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}
