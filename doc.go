// Package annotate implements a freehand annotation layer over a set of
// raster images.
//
// # Overview
//
// A Session holds an ordered collection of source images, one committed
// mask per image, a color palette and the drawing state. Pointer events
// paint anti-aliased strokes onto a transparent overlay the size of the
// selected image; each finished stroke is committed to the mask store as
// a PNG buffer. Export turns every mask into a label image (a black
// canvas with the strokes on top) and bundles them into one archive.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/annotate"
//	    "github.com/gogpu/annotate/archive"
//	)
//
//	s := annotate.NewSession()
//	_ = s.AddImages(ctx, annotate.Upload{Name: "photo.png", Data: data})
//
//	_ = s.SetColor("#00FF00")
//	_ = s.PointerDown(10, 10)
//	s.PointerMove(40, 25)
//	_ = s.PointerUp(ctx)
//
//	rep, err := s.Export(ctx, archive.NewZip())
//	// rep.Archive holds annotation-layers.zip with photo_labeled.png
//
// # Ordering
//
// Images are kept sorted by name. Adding images re-sorts the collection
// and permutes the masks the same way, so mask i always belongs to image
// i and the selection stays on the image it pointed at.
//
// # Coordinate System
//
// Pointer coordinates are surface pixels:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Compositing
//
// Surfaces are premultiplied RGBA8. Paint strokes use source-over, erase
// strokes use destination-out, and export composites each mask
// source-atop onto its background.
package annotate
