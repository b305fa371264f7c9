package paint

import (
	"fmt"
	"image"
	"image/color"
	"slices"
)

// Buffer is a mutable width×height grid of 8-bit colors stored row-major.
// A pixel is addressed by (x, y) or by its flat index y*width+x.
//
// A Buffer is owned by one editing session. Snapshots taken from it are
// independent copies, so later mutation never alters a stored snapshot.
type Buffer struct {
	width  int
	height int
	pix    []color.NRGBA
}

// NewBuffer creates a transparent buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]color.NRGBA, width*height),
	}, nil
}

// NewBufferFrom creates a buffer holding a copy of colors, which must be a
// flattened row-major array of exactly width*height entries.
func NewBufferFrom(colors []color.NRGBA, width, height int) (*Buffer, error) {
	b, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if err := b.Restore(colors); err != nil {
		return nil, err
	}
	return b, nil
}

// BufferFromImage creates a buffer from any image, converting pixels to
// non-premultiplied 8-bit color.
func BufferFromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < b.width; x++ {
				i := x * 4
				b.pix[y*b.width+x] = color.NRGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			}
		}
		return b, nil
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			b.pix[y*b.width+x] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
	}
	return b, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels, width*height.
func (b *Buffer) Len() int { return len(b.pix) }

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Index returns the flat index of pixel (x, y).
func (b *Buffer) Index(x, y int) (int, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrIndexOutOfRange, x, y, b.width, b.height)
	}
	return y*b.width + x, nil
}

// At returns the color of pixel (x, y).
func (b *Buffer) At(x, y int) (color.NRGBA, error) {
	i, err := b.Index(x, y)
	if err != nil {
		return color.NRGBA{}, err
	}
	return b.pix[i], nil
}

// Set replaces the color of pixel (x, y).
func (b *Buffer) Set(x, y int, c color.NRGBA) error {
	i, err := b.Index(x, y)
	if err != nil {
		return err
	}
	b.pix[i] = c
	return nil
}

// AtIndex returns the color at flat index i.
func (b *Buffer) AtIndex(i int) (color.NRGBA, error) {
	if i < 0 || i >= len(b.pix) {
		return color.NRGBA{}, fmt.Errorf("%w: index %d outside [0, %d)", ErrIndexOutOfRange, i, len(b.pix))
	}
	return b.pix[i], nil
}

// Pixel returns the color of pixel (x, y) in normalized form.
func (b *Buffer) Pixel(x, y int) (RGBA, error) {
	c, err := b.At(x, y)
	if err != nil {
		return RGBA{}, err
	}
	return FromNRGBA(c), nil
}

// SetPixel sets pixel (x, y) from a normalized color.
func (b *Buffer) SetPixel(x, y int, c RGBA) error {
	return b.Set(x, y, c.NRGBA())
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGBA) {
	v := c.NRGBA()
	for i := range b.pix {
		b.pix[i] = v
	}
}

// Snapshot returns an independent copy of all pixels as a flattened
// row-major array.
func (b *Buffer) Snapshot() []color.NRGBA {
	return slices.Clone(b.pix)
}

// Restore replaces every pixel from a flattened row-major array.
// It returns ErrSizeMismatch and leaves the buffer unchanged if the lengths
// differ.
func (b *Buffer) Restore(colors []color.NRGBA) error {
	if len(colors) != len(b.pix) {
		return fmt.Errorf("%w: snapshot has %d pixels, buffer %dx%d has %d",
			ErrSizeMismatch, len(colors), b.width, b.height, len(b.pix))
	}
	copy(b.pix, colors)
	return nil
}

// Equal reports whether the buffer currently holds exactly colors.
func (b *Buffer) Equal(colors []color.NRGBA) bool {
	return slices.Equal(b.pix, colors)
}

// Image returns a copy of the buffer as an *image.NRGBA.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, c := range b.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = c.A
	}
	return img
}
