package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/jung-kurt/gofpdf"
)

// savePDF writes img centered on a single A4 page, scaled to fit the
// printable area. Orientation follows the image aspect ratio.
func savePDF(path string, img image.Image) error {
	b := img.Bounds()
	orientation := "P"
	if b.Dx() > b.Dy() {
		orientation = "L"
	}

	var raw bytes.Buffer
	if err := png.Encode(&raw, img); err != nil {
		return fmt.Errorf("encode page image: %w", err)
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("painting", opts, &raw)

	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	w, h := fit(float64(b.Dx()), float64(b.Dy()), pageW-left-right, pageH-top-bottom)
	pdf.ImageOptions("painting", (pageW-w)/2, (pageH-h)/2, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// fit scales (w, h) to the largest size inside (maxW, maxH) keeping aspect.
func fit(w, h, maxW, maxH float64) (float64, float64) {
	s := min(maxW/w, maxH/h)
	return w * s, h * s
}
