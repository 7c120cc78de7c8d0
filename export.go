package annotate

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/annotate/internal/codec"
)

// ArchiveName is the file name of the exported bundle.
const ArchiveName = "annotation-layers.zip"

// LabelSuffix is inserted between an image's base name and extension to
// name its label entry.
const LabelSuffix = "_labeled"

// ArchiveSink collects named entries and bundles them into one archive.
type ArchiveSink interface {
	Add(name string, data []byte) error
	Bundle() ([]byte, error)
}

// Report summarizes an export.
type Report struct {
	// Entries lists the names handed to the sink, in image order.
	Entries []string

	// Failed lists the image indices that produced no entry.
	Failed []int

	// Archive is the bundle returned by the sink.
	Archive []byte

	// Empty is set when there was nothing to export; the sink was not used.
	Empty bool
}

// ExportOption configures an Exporter.
type ExportOption func(*exportOptions)

type exportOptions struct {
	matchExtension bool
	background     RGBA
}

func defaultExportOptions() exportOptions {
	return exportOptions{background: Black}
}

// WithMatchExtension makes each label image use the encoder implied by
// its entry's extension (png, jpeg, gif, bmp, tiff). Unknown or
// decode-only extensions fall back to PNG. By default every entry is
// PNG-encoded whatever its extension.
func WithMatchExtension(match bool) ExportOption {
	return func(o *exportOptions) {
		o.matchExtension = match
	}
}

// WithBackground changes the label background. It must be opaque for
// source-atop to show the strokes; the default is black.
func WithBackground(c RGBA) ExportOption {
	return func(o *exportOptions) {
		o.background = c
	}
}

// Exporter converts masks into stand-alone label images.
type Exporter struct {
	opts exportOptions
}

// NewExporter creates an exporter.
func NewExporter(opts ...ExportOption) *Exporter {
	o := defaultExportOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Exporter{opts: o}
}

// LabeledName returns the entry name for an image name: the suffix goes
// before the last extension ("photo.JPG" becomes "photo_labeled.JPG"), or at the
// end when there is none. The result is NFC-normalized and path separators
// are replaced so it is a single archive path element.
func LabeledName(name string) string {
	name = norm.NFC.String(name)
	name = strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return name + LabelSuffix
	}
	return name[:i] + LabelSuffix + name[i:]
}

// Export processes images in order against masks, which must be aligned
// with images, and hands one entry per image to sink before bundling.
// Images are processed one at a time, so only one label raster is alive.
//
// An entry that fails is skipped and reported as an *EntryError in the
// returned error; the remaining entries are still exported and bundled.
// A canceled context stops the export before the next entry and nothing
// is bundled. Exporting zero images is a no-op reported by Report.Empty.
func (e *Exporter) Export(ctx context.Context, images []SourceImage, masks [][]byte, sink ArchiveSink) (*Report, error) {
	rep := &Report{}
	if len(images) == 0 {
		rep.Empty = true
		Logger().Info("annotate: export skipped", slog.String("reason", ErrEmptyExport.Error()))
		return rep, nil
	}

	var errs error
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		var mask []byte
		if i < len(masks) {
			mask = masks[i]
		}

		name := LabeledName(img.Name)
		data, err := e.label(ctx, img, name, mask)
		if err == nil {
			err = sink.Add(name, data)
		}
		if err != nil {
			if ctx.Err() != nil {
				return rep, ctx.Err()
			}
			Logger().Warn("annotate: export entry failed",
				slog.Int("index", i),
				slog.String("name", name),
				slog.Any("error", err))
			rep.Failed = append(rep.Failed, i)
			errs = multierr.Append(errs, &EntryError{Index: i, Name: name, Err: err})
			continue
		}
		rep.Entries = append(rep.Entries, name)
	}

	archive, err := sink.Bundle()
	if err != nil {
		return rep, multierr.Append(errs, fmt.Errorf("annotate: bundle: %w", err))
	}
	rep.Archive = archive

	Logger().Info("annotate: export finished",
		slog.Int("entries", len(rep.Entries)),
		slog.Int("failed", len(rep.Failed)),
		slog.Int("bytes", len(archive)))
	return rep, errs
}

// label renders one label image: the background at the source's size with
// the mask composited source-atop.
func (e *Exporter) label(ctx context.Context, img SourceImage, name string, mask []byte) ([]byte, error) {
	w, h := img.Width, img.Height
	if w == 0 || h == 0 {
		cfg, _, err := codec.DecodeConfig(img.data)
		if err != nil {
			return nil, decodeFailure(fmt.Sprintf("image %q", img.Name), err)
		}
		w, h = cfg.Width, cfg.Height
	}

	out := NewPixmap(w, h)
	out.Clear(e.opts.background)
	if mask != nil {
		m, err := DecodePixmap(ctx, mask)
		if err != nil {
			return nil, err
		}
		out.DrawPixmap(m, 0, 0, CompositeSourceAtop)
	}

	format := FormatPNG
	if e.opts.matchExtension {
		if f, ok := codec.FormatForName(name); ok {
			format = f
		}
	}
	var buf bytes.Buffer
	if err := out.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
