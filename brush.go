package annotate

import "github.com/gogpu/annotate/internal/stroke"

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// DefaultBrushWidth is the stroke width of freehand annotation, in pixels.
const DefaultBrushWidth = 5.0

// Brush defines the pen used for freehand strokes. Joins are always round.
type Brush struct {
	// Width is the line width in pixels. Default: 5.0
	Width float64

	// Cap is the shape of stroke endpoints. Default: LineCapRound
	Cap LineCap
}

// DefaultBrush returns the 5 pixel round brush.
func DefaultBrush() Brush {
	return Brush{Width: DefaultBrushWidth, Cap: LineCapRound}
}

// WithWidth returns a copy of the Brush with the given width.
func (b Brush) WithWidth(w float64) Brush {
	b.Width = w
	return b
}

// WithCap returns a copy of the Brush with the given line cap style.
func (b Brush) WithCap(lineCap LineCap) Brush {
	b.Cap = lineCap
	return b
}

func (b Brush) style() stroke.Style {
	var c stroke.LineCap
	switch b.Cap {
	case LineCapRound:
		c = stroke.LineCapRound
	case LineCapSquare:
		c = stroke.LineCapSquare
	default:
		c = stroke.LineCapButt
	}
	return stroke.Style{Width: b.Width, Cap: c}
}
