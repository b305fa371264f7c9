package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/gogpu/paint"
)

// openSource decodes the input image, or creates a blank canvas filled with
// bg when path is empty.
func openSource(path string, width, height int, bg string) (image.Image, error) {
	if path == "" {
		c, ok := paint.ParseHex(bg)
		if !ok {
			return nil, fmt.Errorf("invalid background color %q", bg)
		}
		buf, err := paint.NewBuffer(width, height)
		if err != nil {
			return nil, err
		}
		buf.Fill(c)
		return buf.Image(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return decode(data)
}

// decode decodes an image from memory, auto-detecting the format.
func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// savePNG encodes img as a PNG file.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// scaleToWidth returns img resampled to the given width, preserving aspect.
func scaleToWidth(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// previewPath derives "out.preview.png" from "out.png".
func previewPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".preview" + ext
}
