// Package damage tracks which parts of a pixel buffer changed since the
// collaborator last uploaded it.
//
// The buffer is divided into square tiles. Each tile owns one bit in a
// packed bitmap (64 tiles per word). Painting marks the tiles its box
// touches; Flush returns the touched tiles as pixel rectangles and clears the
// bitmap. A Tracker is owned by a single editing session and is not safe for
// concurrent use.
package damage

import (
	"image"
	"math/bits"
)

// DefaultTileSize is the tile edge length in pixels.
const DefaultTileSize = 64

// Tracker is a tile bitmap over a width×height pixel area.
type Tracker struct {
	words  []uint64
	tile   int
	width  int
	height int
	tilesX int
	tilesY int
}

// New creates a tracker for a width×height area split into tile×tile tiles.
// A non-positive tile uses DefaultTileSize. Returns nil for an empty area.
func New(width, height, tile int) *Tracker {
	if width <= 0 || height <= 0 {
		return nil
	}
	if tile <= 0 {
		tile = DefaultTileSize
	}
	tilesX := (width + tile - 1) / tile
	tilesY := (height + tile - 1) / tile
	return &Tracker{
		words:  make([]uint64, (tilesX*tilesY+63)/64),
		tile:   tile,
		width:  width,
		height: height,
		tilesX: tilesX,
		tilesY: tilesY,
	}
}

// TileSize returns the tile edge length in pixels.
func (d *Tracker) TileSize() int { return d.tile }

// Tiles returns the tile grid dimensions.
func (d *Tracker) Tiles() (x, y int) { return d.tilesX, d.tilesY }

func (d *Tracker) mark(tx, ty int) {
	idx := ty*d.tilesX + tx
	d.words[idx/64] |= 1 << (idx & 63)
}

// Mark marks every tile intersecting r. Parts of r outside the area are ignored.
func (d *Tracker) Mark(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, d.width, d.height))
	if r.Empty() {
		return
	}
	tx1, ty1 := r.Min.X/d.tile, r.Min.Y/d.tile
	tx2, ty2 := (r.Max.X-1)/d.tile, (r.Max.Y-1)/d.tile
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			d.mark(tx, ty)
		}
	}
}

// MarkAll marks the whole area.
func (d *Tracker) MarkAll() {
	total := d.tilesX * d.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		d.words[i] = ^uint64(0)
	}
	if rem := total % 64; rem > 0 {
		d.words[full] = (uint64(1) << rem) - 1
	}
}

// IsDirty reports whether tile (tx, ty) is marked.
func (d *Tracker) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= d.tilesX || ty < 0 || ty >= d.tilesY {
		return false
	}
	idx := ty*d.tilesX + tx
	return d.words[idx/64]&(1<<(idx&63)) != 0
}

// Count returns the number of marked tiles.
func (d *Tracker) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no tile is marked.
func (d *Tracker) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Flush returns the marked tiles as pixel rectangles and clears the bitmap.
// Horizontally adjacent tiles in the same tile row are merged into one
// rectangle. Rectangles are in row-major order and clipped to the area.
func (d *Tracker) Flush() []image.Rectangle {
	var rects []image.Rectangle
	for ty := 0; ty < d.tilesY; ty++ {
		run := -1
		for tx := 0; tx <= d.tilesX; tx++ {
			dirty := tx < d.tilesX && d.IsDirty(tx, ty)
			switch {
			case dirty && run < 0:
				run = tx
			case !dirty && run >= 0:
				rects = append(rects, d.span(run, tx, ty))
				run = -1
			}
		}
	}
	clear(d.words)
	return rects
}

// span converts tiles [tx1, tx2) of row ty into a clipped pixel rectangle.
func (d *Tracker) span(tx1, tx2, ty int) image.Rectangle {
	r := image.Rect(tx1*d.tile, ty*d.tile, tx2*d.tile, (ty+1)*d.tile)
	return r.Intersect(image.Rect(0, 0, d.width, d.height))
}
