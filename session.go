package annotate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/annotate/internal/codec"
)

// Upload is one image handed over by an ingestion source.
type Upload struct {
	Name string
	Data []byte
}

// Session owns the image collection, the aligned mask store, the palette,
// the drawing state and the two display surfaces, and routes every event
// through them. After every public method the store holds exactly one
// entry per image, aligned by index.
//
// A Session is driven by a single event thread and is not safe for
// concurrent use.
type Session struct {
	images   ImageSet
	store    Store
	palette  *Palette
	erase    bool
	renderer *Renderer
	capture  *Capture
	exporter *Exporter

	showOverlay bool
	nextID      uint64
}

// NewSession creates an empty session.
func NewSession(opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		palette:     NewPalette(o.palette...),
		renderer:    NewRenderer(),
		exporter:    NewExporter(o.exportOpts...),
		showOverlay: o.showOverlay,
	}
	if o.color != nil {
		s.palette.SetActive(*o.color)
	}
	s.capture = NewCapture(s.renderer.Overlay(), o.brush, s.commit)
	return s
}

// AddImages validates and adds a batch, re-sorting the collection by name
// and permuting the masks identically. Every upload is fully decoded
// first; if any cannot be, the whole batch is rejected and the session is
// unchanged.
func (s *Session) AddImages(ctx context.Context, uploads ...Upload) error {
	if len(uploads) == 0 {
		return nil
	}
	batch := make([]SourceImage, 0, len(uploads))
	for _, u := range uploads {
		img, format, err := codec.Decode(ctx, u.Data)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			return decodeFailure(fmt.Sprintf("image %q", u.Name), err)
		}
		b := img.Bounds()
		batch = append(batch, SourceImage{
			Name:   u.Name,
			Width:  b.Dx(),
			Height: b.Dy(),
			Format: format,
			data:   u.Data,
		})
	}
	for i := range batch {
		s.nextID++
		batch[i].id = s.nextID
	}

	s.capture.Cancel()
	order := s.images.Add(batch...)
	s.store.Reorder(order)
	s.store.EnsureAligned(s.images.Len())
	Logger().Info("annotate: images added",
		slog.Int("added", len(batch)),
		slog.Int("total", s.images.Len()))

	return s.render(ctx)
}

// Select makes image i current and renders it with its mask. A stroke in
// progress is abandoned. On failure the selection and surfaces are
// unchanged.
func (s *Session) Select(ctx context.Context, i int) error {
	img, err := s.images.At(i)
	if err != nil {
		return err
	}
	s.capture.Cancel()
	mask, _ := s.store.Get(i)
	if err := s.renderer.Reload(ctx, img, mask); err != nil {
		return err
	}
	return s.images.Select(i)
}

// SelectName selects the first image called name.
func (s *Session) SelectName(ctx context.Context, name string) error {
	i, ok := s.images.Index(name)
	if !ok {
		return fmt.Errorf("%w: no image named %q", ErrOutOfRange, name)
	}
	return s.Select(ctx, i)
}

// render reloads the active image, if any.
func (s *Session) render(ctx context.Context) error {
	i, ok := s.images.Active()
	if !ok {
		return nil
	}
	img, _ := s.images.At(i)
	mask, _ := s.store.Get(i)
	return s.renderer.Reload(ctx, img, mask)
}

// commit stores a finished stroke at the active index and reloads the
// overlay from the stored buffer.
func (s *Session) commit(ctx context.Context, buf []byte) error {
	i, ok := s.images.Active()
	if !ok {
		return outOfRange(0, 0)
	}
	if err := s.store.Commit(i, buf); err != nil {
		return err
	}
	return s.renderer.ReloadOverlay(ctx, buf)
}

// PointerDown starts a stroke with the active color and erase mode. It
// fails with ErrOutOfRange while no image is loaded.
func (s *Session) PointerDown(x, y float64) error {
	if _, ok := s.images.Active(); !ok {
		return outOfRange(0, 0)
	}
	s.capture.PointerDown(x, y, s.DrawingState())
	return nil
}

// PointerMove extends the current stroke.
func (s *Session) PointerMove(x, y float64) {
	s.capture.PointerMove(x, y)
}

// PointerUp ends the current stroke and commits the mask.
func (s *Session) PointerUp(ctx context.Context) error {
	return s.capture.PointerUp(ctx)
}

// PointerLeave ends the current stroke like PointerUp.
func (s *Session) PointerLeave(ctx context.Context) error {
	return s.capture.PointerLeave(ctx)
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.capture.Drawing() }

// DrawingState returns what the next stroke will use.
func (s *Session) DrawingState() DrawingState {
	return DrawingState{Color: s.palette.Active(), Erase: s.erase}
}

// SetColor parses a hex color from a picker, makes it active and adds it
// to the palette. The stroke in progress keeps its color.
func (s *Session) SetColor(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	s.palette.Select(c)
	return nil
}

// AddPaletteColor adds a hex color to the palette without selecting it.
func (s *Session) AddPaletteColor(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	s.palette.Add(c)
	return nil
}

// RemovePaletteColor removes a hex color from the palette and reports
// whether it was present.
func (s *Session) RemovePaletteColor(hex string) (bool, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return false, err
	}
	return s.palette.Remove(c), nil
}

// Palette returns the session palette.
func (s *Session) Palette() *Palette { return s.palette }

// SetErase switches between painting and erasing for the next stroke.
// Committed masks are not affected.
func (s *Session) SetErase(erase bool) { s.erase = erase }

// ToggleErase flips erase mode and returns the new value.
func (s *Session) ToggleErase() bool {
	s.erase = !s.erase
	return s.erase
}

// Erase reports whether erase mode is on.
func (s *Session) Erase() bool { return s.erase }

// SetShowAnnotation sets whether View includes the overlay.
func (s *Session) SetShowAnnotation(show bool) { s.showOverlay = show }

// ShowAnnotation reports whether View includes the overlay.
func (s *Session) ShowAnnotation() bool { return s.showOverlay }

// Images returns the image collection in display order.
func (s *Session) Images() []SourceImage { return s.images.All() }

// Len returns the number of images.
func (s *Session) Len() int { return s.images.Len() }

// Active returns the selected index; ok is false while no image is loaded.
func (s *Session) Active() (int, bool) { return s.images.Active() }

// Mask returns the committed mask buffer for image i.
func (s *Session) Mask(i int) ([]byte, bool) { return s.store.Get(i) }

// MaskCount returns the number of mask entries, painted or not. It always
// equals Len.
func (s *Session) MaskCount() int { return s.store.Len() }

// Display returns the surface showing the selected image.
func (s *Session) Display() *Pixmap { return s.renderer.Display() }

// Overlay returns the surface showing the selected mask.
func (s *Session) Overlay() *Pixmap { return s.renderer.Overlay() }

// View returns the selected image with the overlay composited on top when
// annotations are shown.
func (s *Session) View() *Pixmap { return s.renderer.View(s.showOverlay) }

// Export writes one label image per loaded image to sink and bundles it.
// The masks are snapshotted when Export is called.
func (s *Session) Export(ctx context.Context, sink ArchiveSink) (*Report, error) {
	return s.exporter.Export(ctx, s.images.All(), s.store.Snapshot(), sink)
}
