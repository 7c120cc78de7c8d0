package annotate

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := annotate.NewSession(
//	    annotate.WithBrush(annotate.DefaultBrush().WithWidth(8)),
//	    annotate.WithExportOptions(annotate.WithMatchExtension(true)),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	brush       Brush
	palette     []RGBA
	color       *RGBA
	exportOpts  []ExportOption
	showOverlay bool
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		brush:       DefaultBrush(),
		palette:     DefaultPaletteColors,
		showOverlay: true,
	}
}

// WithBrush sets the pen used for every stroke.
func WithBrush(b Brush) SessionOption {
	return func(o *sessionOptions) {
		o.brush = b
	}
}

// WithPalette replaces the initial palette swatches.
func WithPalette(colors ...RGBA) SessionOption {
	return func(o *sessionOptions) {
		o.palette = colors
	}
}

// WithColor sets the initial drawing color. Without it the first palette
// swatch is active.
func WithColor(c RGBA) SessionOption {
	return func(o *sessionOptions) {
		o.color = &c
	}
}

// WithExportOptions configures the session's exporter.
func WithExportOptions(opts ...ExportOption) SessionOption {
	return func(o *sessionOptions) {
		o.exportOpts = append(o.exportOpts, opts...)
	}
}

// WithShowAnnotation sets whether View composites the overlay. Default: true.
func WithShowAnnotation(show bool) SessionOption {
	return func(o *sessionOptions) {
		o.showOverlay = show
	}
}
