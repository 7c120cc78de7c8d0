package annotate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// pngImage encodes a w x h image filled with c.
func pngImage(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// maskBuffer encodes pm as a mask buffer.
func maskBuffer(t *testing.T, pm *Pixmap) []byte {
	t.Helper()
	buf, err := pm.EncodePNG()
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	return buf
}

var gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
