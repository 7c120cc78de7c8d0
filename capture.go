package annotate

import (
	"context"
	"log/slog"

	"github.com/gogpu/annotate/internal/raster"
	"github.com/gogpu/annotate/internal/stroke"
)

// State is the state of the stroke capture machine.
type State int

const (
	// StateIdle waits for a pointer-down.
	StateIdle State = iota
	// StateDrawing extends the current stroke on every pointer-move.
	StateDrawing
)

func (s State) String() string {
	if s == StateDrawing {
		return "drawing"
	}
	return "idle"
}

// DrawingState is what a stroke reads at pointer-down: the paint color and
// whether the stroke erases.
type DrawingState struct {
	Color RGBA
	Erase bool
}

// op returns the composite operator strokes use in this state.
func (d DrawingState) op() CompositeOp {
	if d.Erase {
		return CompositeDestinationOut
	}
	return CompositeSourceOver
}

// CommitFunc receives the serialized overlay when a stroke ends.
type CommitFunc func(ctx context.Context, mask []byte) error

// Capture is the freehand stroke state machine. It draws on an overlay
// it does not own exclusively: the overlay belongs to the capture only
// while a stroke is in progress.
//
// Each pointer-move re-renders the whole accumulated path over a copy of
// the overlay taken at pointer-down, so a stroke is always composited in
// a single pass no matter how many moves it took.
type Capture struct {
	overlay *Pixmap
	brush   Brush
	commit  CommitFunc

	state State
	paint DrawingState
	path  []stroke.Point
	base  *Pixmap
	rast  *raster.Rasterizer
}

// NewCapture creates an idle capture drawing on overlay with brush. commit
// is called with the encoded overlay whenever a stroke ends.
func NewCapture(overlay *Pixmap, brush Brush, commit CommitFunc) *Capture {
	return &Capture{
		overlay: overlay,
		brush:   brush,
		commit:  commit,
		base:    NewPixmap(0, 0),
	}
}

// State returns the current state.
func (c *Capture) State() State { return c.state }

// Drawing reports whether a stroke is in progress.
func (c *Capture) Drawing() bool { return c.state == StateDrawing }

// Brush returns the brush used for new strokes.
func (c *Capture) Brush() Brush { return c.brush }

// SetBrush changes the brush for the next stroke.
func (c *Capture) SetBrush(b Brush) { c.brush = b }

// PointerDown starts a stroke at (x, y). Color and compositing are fixed
// from paint for the whole stroke. A pointer-down while drawing restarts
// the path without committing.
func (c *Capture) PointerDown(x, y float64, paint DrawingState) {
	if c.state == StateDrawing {
		c.overlay.CopyFrom(c.base)
	}
	c.state = StateDrawing
	c.paint = paint
	c.path = append(c.path[:0], stroke.Point{X: x, Y: y})
	c.base.CopyFrom(c.overlay)

	w, h := c.overlay.Width(), c.overlay.Height()
	if c.rast == nil {
		c.rast = raster.New(w, h)
	} else if rw, rh := c.rast.Size(); rw != w || rh != h {
		c.rast = raster.New(w, h)
	}
	c.render()
}

// PointerMove extends the path to (x, y) and renders it. Ignored while
// idle.
func (c *Capture) PointerMove(x, y float64) {
	if c.state != StateDrawing {
		return
	}
	c.path = append(c.path, stroke.Point{X: x, Y: y})
	c.render()
}

// PointerUp ends the stroke and commits the overlay. Ignored while idle.
func (c *Capture) PointerUp(ctx context.Context) error {
	return c.end(ctx)
}

// PointerLeave ends the stroke exactly like PointerUp, so leaving the
// canvas with the button held cannot leave the machine stuck in drawing.
func (c *Capture) PointerLeave(ctx context.Context) error {
	return c.end(ctx)
}

// Cancel abandons a stroke in progress and restores the overlay to its
// state at pointer-down. Nothing is committed.
func (c *Capture) Cancel() {
	if c.state != StateDrawing {
		return
	}
	c.overlay.CopyFrom(c.base)
	c.reset()
}

func (c *Capture) end(ctx context.Context) error {
	if c.state != StateDrawing {
		return nil
	}
	points := len(c.path)
	c.reset()

	buf, err := c.overlay.EncodePNG()
	if err != nil {
		return err
	}
	Logger().Debug("annotate: stroke committed",
		slog.Int("points", points),
		slog.Int("bytes", len(buf)))
	if c.commit == nil {
		return nil
	}
	return c.commit(ctx, buf)
}

func (c *Capture) reset() {
	c.state = StateIdle
	c.path = c.path[:0]
}

// render composites the whole path over the pointer-down snapshot.
func (c *Capture) render() {
	polys := stroke.Outline(c.path, c.brush.style())
	mask := c.rast.Fill(polys)
	c.overlay.CopyFrom(c.base)
	c.overlay.FillCoverage(mask, c.paint.Color, c.paint.op())
}
