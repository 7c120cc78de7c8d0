package annotate

import (
	"testing"

	"github.com/gogpu/annotate/internal/stroke"
)

func TestDefaultBrush(t *testing.T) {
	b := DefaultBrush()
	if b.Width != DefaultBrushWidth {
		t.Errorf("Width = %v, want %v", b.Width, DefaultBrushWidth)
	}
	if b.Cap != LineCapRound {
		t.Errorf("Cap = %v, want LineCapRound", b.Cap)
	}
}

func TestBrushWith(t *testing.T) {
	base := DefaultBrush()
	b := base.WithWidth(12).WithCap(LineCapSquare)
	if b.Width != 12 || b.Cap != LineCapSquare {
		t.Errorf("got %+v, want width 12 square", b)
	}
	if base != DefaultBrush() {
		t.Error("With* modified the receiver")
	}
}

func TestBrushStyle(t *testing.T) {
	tests := []struct {
		cap  LineCap
		want stroke.LineCap
	}{
		{LineCapButt, stroke.LineCapButt},
		{LineCapRound, stroke.LineCapRound},
		{LineCapSquare, stroke.LineCapSquare},
	}
	for _, tt := range tests {
		got := DefaultBrush().WithCap(tt.cap).style()
		if got.Cap != tt.want {
			t.Errorf("cap %v: style cap = %v, want %v", tt.cap, got.Cap, tt.want)
		}
		if got.Width != DefaultBrushWidth {
			t.Errorf("cap %v: style width = %v", tt.cap, got.Width)
		}
	}
}
