package annotate

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/annotate/internal/blend"
	"github.com/gogpu/annotate/internal/codec"
)

// Pixmap is the raster surface every layer is drawn on: a fixed-size
// premultiplied RGBA8 buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Resize changes the dimensions and clears every pixel to transparent.
// Content is never scaled.
func (p *Pixmap) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height * 4
	if cap(p.data) >= n {
		p.data = p.data[:n]
		clear(p.data)
	} else {
		p.data = make([]uint8, n)
	}
	p.width, p.height = width, height
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r, g, b, a := c.premul()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// SetPixel sets a single pixel, ignoring out-of-bounds coordinates.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = c.premul()
}

// GetPixel returns the unpremultiplied color of a pixel, or Transparent
// outside the bounds.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return FromColor(p.At(x, y))
}

// DrawPixmap composites src onto p with its origin at (x, y). The
// operation is clipped to both rasters.
func (p *Pixmap) DrawPixmap(src *Pixmap, x, y int, op CompositeOp) {
	r := image.Rect(x, y, x+src.width, y+src.height).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	bop := op.blendOp()
	w := r.Dx() * 4
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		di := (dy*p.width + r.Min.X) * 4
		si := ((dy-y)*src.width + (r.Min.X - x)) * 4
		blend.Span(bop, p.data[di:di+w], src.data[si:si+w])
	}
}

// FillCoverage composites the solid color c through a coverage mask whose
// bounds must start at the origin. Pixels with zero coverage are untouched.
func (p *Pixmap) FillCoverage(mask *image.Alpha, c RGBA, op CompositeOp) {
	r := mask.Rect.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.premul()
	bop := op.blendOp()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		mi := mask.PixOffset(r.Min.X, y)
		di := (y*p.width + r.Min.X) * 4
		blend.SpanCoverage(bop, p.data[di:di+r.Dx()*4], cr, cg, cb, ca, mask.Pix[mi:mi+r.Dx()])
	}
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{width: p.width, height: p.height, data: bytes.Clone(p.data)}
}

// CopyFrom makes p an exact copy of src, reusing p's buffer when possible.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	p.Resize(src.width, src.height)
	copy(p.data, src.data)
}

// Equal reports whether both pixmaps have identical size and pixels.
func (p *Pixmap) Equal(o *Pixmap) bool {
	return p.width == o.width && p.height == o.height && bytes.Equal(p.data, o.data)
}

// IsTransparent reports whether every pixel has zero alpha.
func (p *Pixmap) IsTransparent() bool {
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] != 0 {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to an image.RGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from any image. The result starts at the
// origin regardless of img's bounds.
func FromImage(img image.Image) *Pixmap {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return &Pixmap{width: b.Dx(), height: b.Dy(), data: rgba.Pix}
}

// Encode writes the pixmap to w in format f.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	return codec.Encode(w, p.ToImage(), f)
}

// EncodePNG serializes the pixmap into a PNG buffer, the mask buffer
// format.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.Encode(&buf, FormatPNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePixmap decodes an encoded image buffer. Failures wrap
// ErrDecodeFailure; a canceled context is returned as is.
func DecodePixmap(ctx context.Context, data []byte) (*Pixmap, error) {
	img, _, err := codec.Decode(ctx, data)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, decodeFailure("raster", err)
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
