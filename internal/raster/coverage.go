// Package raster turns stroke outlines into anti-aliased coverage masks.
//
// Rasterization is delegated to golang.org/x/image/vector, whose
// accumulation clamps the absolute winding to one. Outlines sharing a
// winding direction therefore merge into their union without seams.
package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/annotate/internal/stroke"
)

// Rasterizer produces coverage masks of a fixed size. The mask returned by
// Fill is owned by the Rasterizer and overwritten by the next call.
type Rasterizer struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

// New creates a Rasterizer for a width x height target.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		z:    vector.NewRasterizer(width, height),
		mask: image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Size returns the target dimensions.
func (r *Rasterizer) Size() (width, height int) {
	b := r.mask.Rect
	return b.Dx(), b.Dy()
}

// Fill rasterizes the union of polys and returns the coverage mask.
// Pixels outside every polygon are zero.
func (r *Rasterizer) Fill(polys []stroke.Polygon) *image.Alpha {
	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.DrawOp = xdraw.Src
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		r.z.MoveTo(float32(p[0].X), float32(p[0].Y))
		for _, q := range p[1:] {
			r.z.LineTo(float32(q.X), float32(q.Y))
		}
		r.z.ClosePath()
	}
	r.z.Draw(r.mask, r.mask.Rect, image.Opaque, image.Point{})
	return r.mask
}
