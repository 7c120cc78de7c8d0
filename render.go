package annotate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/annotate/internal/codec"
)

// Renderer keeps the display surface (the selected image) and the overlay
// surface (its mask) in sync with the selection. Both surfaces always have
// the native dimensions of the selected image.
//
// Every reload decodes before touching a surface, so a failed decode
// leaves both surfaces as they were.
type Renderer struct {
	display *Pixmap
	overlay *Pixmap
}

// NewRenderer creates a renderer with empty surfaces.
func NewRenderer() *Renderer {
	return &Renderer{
		display: NewPixmap(0, 0),
		overlay: NewPixmap(0, 0),
	}
}

// Display returns the surface holding the selected image.
func (r *Renderer) Display() *Pixmap { return r.display }

// Overlay returns the surface holding the selected mask.
func (r *Renderer) Overlay() *Pixmap { return r.overlay }

// Reload shows img with its mask. A nil mask means the image is
// unpainted and the overlay is cleared to transparent.
func (r *Renderer) Reload(ctx context.Context, img SourceImage, mask []byte) error {
	decoded, _, err := codec.Decode(ctx, img.data)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return decodeFailure(fmt.Sprintf("image %q", img.Name), err)
	}
	var maskPm *Pixmap
	if mask != nil {
		if maskPm, err = DecodePixmap(ctx, mask); err != nil {
			return fmt.Errorf("mask for %q: %w", img.Name, err)
		}
	}

	src := FromImage(decoded)
	r.display.CopyFrom(src)
	r.overlay.Resize(src.Width(), src.Height())
	if maskPm != nil {
		r.overlay.DrawPixmap(maskPm, 0, 0, CompositeSourceOver)
	}
	Logger().Debug("annotate: surfaces reloaded",
		slog.String("image", img.Name),
		slog.Int("width", src.Width()),
		slog.Int("height", src.Height()),
		slog.Bool("mask", maskPm != nil))
	return nil
}

// ReloadOverlay redraws only the overlay from mask, keeping its size. It
// runs after every commit so the stored buffer, not the incremental
// drawing, is what the overlay shows.
func (r *Renderer) ReloadOverlay(ctx context.Context, mask []byte) error {
	var maskPm *Pixmap
	if mask != nil {
		var err error
		if maskPm, err = DecodePixmap(ctx, mask); err != nil {
			return err
		}
	}
	clear(r.overlay.data)
	if maskPm != nil {
		r.overlay.DrawPixmap(maskPm, 0, 0, CompositeSourceOver)
	}
	return nil
}

// View composites the overlay over the display into a new pixmap. With
// showOverlay false it is a copy of the display alone.
func (r *Renderer) View(showOverlay bool) *Pixmap {
	v := r.display.Clone()
	if showOverlay {
		v.DrawPixmap(r.overlay, 0, 0, CompositeSourceOver)
	}
	return v
}
