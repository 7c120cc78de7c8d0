package annotate

import (
	"github.com/gogpu/annotate/internal/blend"
	"github.com/gogpu/annotate/internal/codec"
)

// CompositeOp selects how a source raster is combined with a destination.
type CompositeOp uint8

const (
	// CompositeSourceOver paints the source over the destination.
	CompositeSourceOver CompositeOp = iota
	// CompositeCopy replaces the destination with the source.
	CompositeCopy
	// CompositeDestinationOut subtracts source alpha from the destination;
	// the source color is ignored. Erase strokes use it.
	CompositeDestinationOut
	// CompositeSourceAtop paints the source only where the destination has
	// coverage, keeping the destination alpha. Export uses it.
	CompositeSourceAtop
)

func (op CompositeOp) blendOp() blend.Op {
	switch op {
	case CompositeCopy:
		return blend.OpCopy
	case CompositeDestinationOut:
		return blend.OpDestinationOut
	case CompositeSourceAtop:
		return blend.OpSourceAtop
	default:
		return blend.OpSourceOver
	}
}

// String returns the HTML canvas name of the operator.
func (op CompositeOp) String() string {
	return op.blendOp().String()
}

// Format identifies the encoding of an exported raster.
type Format = codec.Format

// Supported encodings.
const (
	FormatPNG  = codec.FormatPNG
	FormatJPEG = codec.FormatJPEG
	FormatGIF  = codec.FormatGIF
	FormatBMP  = codec.FormatBMP
	FormatTIFF = codec.FormatTIFF
)
