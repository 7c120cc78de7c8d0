package codec

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	return img
}

func TestFormatForName(t *testing.T) {
	tests := []struct {
		name   string
		want   Format
		wantOK bool
	}{
		{"a.png", FormatPNG, true},
		{"photo.JPG", FormatJPEG, true},
		{"x.jpeg", FormatJPEG, true},
		{"scan.TIFF", FormatTIFF, true},
		{"scan.tif", FormatTIFF, true},
		{"old.bmp", FormatBMP, true},
		{"anim.gif", FormatGIF, true},
		{"modern.webp", FormatPNG, false},
		{"noext", FormatPNG, false},
	}
	for _, tt := range tests {
		got, ok := FormatForName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FormatForName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestEncodeDecode checks every encoder produces something the decoder
// registry recognizes with the right dimensions.
func TestEncodeDecode(t *testing.T) {
	for _, f := range []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, testImage(), f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			cfg, name, err := DecodeConfig(buf.Bytes())
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if cfg.Width != 3 || cfg.Height != 2 {
				t.Errorf("size = %dx%d, want 3x2", cfg.Width, cfg.Height)
			}
			if name != f.String() {
				t.Errorf("format name = %q, want %q", name, f.String())
			}
			img, _, err := Decode(context.Background(), buf.Bytes())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Bounds().Dx() != 3 {
				t.Errorf("decoded width = %d, want 3", img.Bounds().Dx())
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, _, err := Decode(context.Background(), nil); !errors.Is(err, image.ErrFormat) {
		t.Errorf("empty data: got %v, want image.ErrFormat", err)
	}
	if _, _, err := Decode(context.Background(), []byte("not an image")); err == nil {
		t.Error("garbage data: expected error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Decode(ctx, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled context: got %v, want context.Canceled", err)
	}
}
