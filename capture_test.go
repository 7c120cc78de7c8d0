package annotate

import (
	"context"
	"testing"

	"github.com/gogpu/annotate/internal/raster"
	"github.com/gogpu/annotate/internal/stroke"
)

type commitRecorder struct {
	bufs [][]byte
}

func (r *commitRecorder) commit(_ context.Context, buf []byte) error {
	r.bufs = append(r.bufs, buf)
	return nil
}

func (r *commitRecorder) last(t *testing.T) *Pixmap {
	t.Helper()
	if len(r.bufs) == 0 {
		t.Fatal("nothing committed")
	}
	pm, err := DecodePixmap(context.Background(), r.bufs[len(r.bufs)-1])
	if err != nil {
		t.Fatalf("decode committed mask: %v", err)
	}
	return pm
}

func newTestCapture(w, h int) (*Capture, *Pixmap, *commitRecorder) {
	overlay := NewPixmap(w, h)
	rec := &commitRecorder{}
	return NewCapture(overlay, DefaultBrush(), rec.commit), overlay, rec
}

func TestCaptureStateMachine(t *testing.T) {
	c, _, rec := newTestCapture(20, 20)
	ctx := context.Background()

	if c.State() != StateIdle {
		t.Fatalf("initial state = %v, want idle", c.State())
	}

	c.PointerMove(5, 5)
	if err := c.PointerUp(ctx); err != nil {
		t.Fatalf("PointerUp while idle: %v", err)
	}
	if err := c.PointerLeave(ctx); err != nil {
		t.Fatalf("PointerLeave while idle: %v", err)
	}
	if len(rec.bufs) != 0 {
		t.Errorf("idle events committed %d buffers, want 0", len(rec.bufs))
	}

	c.PointerDown(2, 2, DrawingState{Color: Red})
	if c.State() != StateDrawing || !c.Drawing() {
		t.Fatalf("state after down = %v, want drawing", c.State())
	}
	c.PointerMove(10, 10)
	if err := c.PointerUp(ctx); err != nil {
		t.Fatalf("PointerUp: %v", err)
	}
	if c.State() != StateIdle {
		t.Errorf("state after up = %v, want idle", c.State())
	}
	if len(rec.bufs) != 1 {
		t.Errorf("commits = %d, want 1", len(rec.bufs))
	}
}

func TestCaptureIncrementalRender(t *testing.T) {
	c, overlay, rec := newTestCapture(30, 10)

	c.PointerDown(3, 5, DrawingState{Color: Red})
	c.PointerMove(25, 5)

	if got := overlay.GetPixel(15, 5); got != Red {
		t.Errorf("mid-stroke pixel = %v, want red before commit", got)
	}
	if len(rec.bufs) != 0 {
		t.Error("moves must not commit")
	}
	if got := overlay.GetPixel(15, 0); got.A != 0 {
		t.Errorf("pixel outside the pen = %v, want transparent", got)
	}
}

func TestCaptureLeaveCommits(t *testing.T) {
	c, _, rec := newTestCapture(20, 20)
	c.PointerDown(5, 5, DrawingState{Color: Blue})
	c.PointerMove(15, 5)
	if err := c.PointerLeave(context.Background()); err != nil {
		t.Fatalf("PointerLeave: %v", err)
	}
	if c.Drawing() {
		t.Error("leave must end the stroke")
	}
	if got := rec.last(t).GetPixel(10, 5); got != Blue {
		t.Errorf("committed pixel = %v, want blue", got)
	}
}

func TestCaptureDotOnClick(t *testing.T) {
	c, _, rec := newTestCapture(10, 10)
	c.PointerDown(5, 5, DrawingState{Color: Red})
	_ = c.PointerUp(context.Background())

	mask := rec.last(t)
	if got := mask.GetPixel(5, 5); got != Red {
		t.Errorf("center of click = %v, want red", got)
	}
	if got := mask.GetPixel(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

// TestCaptureAccumulatesAcrossCommits checks the second commit holds both
// strokes exactly as if rendered in one pass onto a transparent layer.
func TestCaptureAccumulatesAcrossCommits(t *testing.T) {
	ctx := context.Background()
	c, _, rec := newTestCapture(40, 40)

	a := []stroke.Point{{X: 5, Y: 5}, {X: 30, Y: 5}}
	b := []stroke.Point{{X: 5, Y: 30}, {X: 20, Y: 35}, {X: 30, Y: 30}}

	draw := func(path []stroke.Point, col RGBA) {
		c.PointerDown(path[0].X, path[0].Y, DrawingState{Color: col})
		for _, p := range path[1:] {
			c.PointerMove(p.X, p.Y)
		}
		if err := c.PointerUp(ctx); err != nil {
			t.Fatalf("PointerUp: %v", err)
		}
	}
	draw(a, Red)
	draw(b, Blue)

	want := NewPixmap(40, 40)
	r := raster.New(40, 40)
	want.FillCoverage(r.Fill(stroke.Outline(a, DefaultBrush().style())), Red, CompositeSourceOver)
	want.FillCoverage(r.Fill(stroke.Outline(b, DefaultBrush().style())), Blue, CompositeSourceOver)

	if got := rec.last(t); !got.Equal(want) {
		t.Error("second commit does not equal both strokes rendered in one pass")
	}
}

func TestCaptureEraseIsDestructive(t *testing.T) {
	ctx := context.Background()
	c, overlay, rec := newTestCapture(20, 20)

	c.PointerDown(2, 10, DrawingState{Color: Red})
	c.PointerMove(18, 10)
	_ = c.PointerUp(ctx)

	c.PointerDown(10, 2, DrawingState{Color: Blue, Erase: true})
	c.PointerMove(10, 18)
	_ = c.PointerUp(ctx)

	mask := rec.last(t)
	if got := mask.GetPixel(10, 10); got.A != 0 {
		t.Errorf("erased crossing = %v, want alpha 0", got)
	}
	if got := mask.GetPixel(4, 10); got != Red {
		t.Errorf("untouched red = %v, want red", got)
	}
	if got := overlay.GetPixel(10, 15); got.A != 0 {
		t.Errorf("erase stroke painted color %v on transparent area", got)
	}
}

func TestCaptureCancelRestores(t *testing.T) {
	c, overlay, rec := newTestCapture(10, 10)
	overlay.SetPixel(1, 1, Green)
	before := overlay.Clone()

	c.PointerDown(5, 5, DrawingState{Color: Red})
	c.PointerMove(8, 8)
	c.Cancel()

	if c.Drawing() {
		t.Error("Cancel must return to idle")
	}
	if !overlay.Equal(before) {
		t.Error("Cancel must restore the overlay")
	}
	if len(rec.bufs) != 0 {
		t.Error("Cancel must not commit")
	}
}

func TestCaptureRestartedDown(t *testing.T) {
	c, overlay, _ := newTestCapture(20, 20)
	c.PointerDown(2, 2, DrawingState{Color: Red})
	c.PointerMove(18, 2)
	c.PointerDown(2, 15, DrawingState{Color: Red})

	if got := overlay.GetPixel(10, 2); got.A != 0 {
		t.Errorf("abandoned path still visible: %v", got)
	}
	if got := overlay.GetPixel(2, 15); got != Red {
		t.Errorf("new dot = %v, want red", got)
	}
}
