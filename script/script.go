// Package script replays recorded strokes through an annotate.Session.
//
// A script maps image names to strokes. Each stroke is a polyline in
// surface pixels with an optional color and an erase flag:
//
//	images:
//	  photo.png:
//	    - color: "#00FF00"
//	      points: [[1, 1], [10, 10]]
//	    - erase: true
//	      points: [[5, 5], [6, 6]]
//
// The same document may be written in TOML:
//
//	[[images."photo.png"]]
//	color = "#00FF00"
//	points = [[1.0, 1.0], [10.0, 10.0]]
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/annotate"
)

var (
	// ErrUnknownImage is returned by Apply for a name no image carries.
	ErrUnknownImage = errors.New("script: unknown image")

	// ErrUnsupportedFormat is returned for a file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("script: unsupported format")

	// ErrInvalidStroke is returned for a stroke without points or with a
	// point that is not an (x, y) pair.
	ErrInvalidStroke = errors.New("script: invalid stroke")
)

// Stroke is one pointer-down, pointer-move..., pointer-up sequence.
type Stroke struct {
	// Color is a hex color. Empty keeps the session's active color.
	Color  string      `yaml:"color,omitempty" toml:"color,omitempty"`
	Erase  bool        `yaml:"erase,omitempty" toml:"erase,omitempty"`
	Points [][]float64 `yaml:"points" toml:"points"`
}

// Script holds strokes keyed by image name.
type Script struct {
	Images map[string][]Stroke `yaml:"images" toml:"images"`
}

// Names returns the image names in sorted order.
func (s *Script) Names() []string {
	names := make([]string, 0, len(s.Images))
	for name := range s.Images {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate checks every stroke for a usable point list and color.
func (s *Script) Validate() error {
	for _, name := range s.Names() {
		for i, st := range s.Images[name] {
			if len(st.Points) == 0 {
				return fmt.Errorf("%w: %s stroke %d has no points", ErrInvalidStroke, name, i)
			}
			for j, p := range st.Points {
				if len(p) != 2 {
					return fmt.Errorf("%w: %s stroke %d point %d has %d coordinates", ErrInvalidStroke, name, i, j, len(p))
				}
			}
			if st.Color != "" {
				if _, err := annotate.ParseHex(st.Color); err != nil {
					return fmt.Errorf("%s stroke %d: %w", name, i, err)
				}
			}
		}
	}
	return nil
}

// Load reads and validates a script file, choosing the decoder by
// extension.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. ext is a file extension such as
// ".yaml" or ".toml".
func Parse(data []byte, ext string) (*Script, error) {
	var s Script
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Apply replays the script on s. Images are visited in name order and
// every name must match a loaded image. The session's color and erase
// mode are restored afterwards; colors used by strokes join the palette.
// The image selected before Apply is selected again on success.
func Apply(ctx context.Context, s *annotate.Session, sc *Script) error {
	names := sc.Names()
	images := s.Images()
	for _, name := range names {
		if !slices.ContainsFunc(images, func(img annotate.SourceImage) bool { return img.Name == name }) {
			return fmt.Errorf("%w: %q", ErrUnknownImage, name)
		}
	}

	prev := s.DrawingState()
	defer func() {
		s.Palette().SetActive(prev.Color)
		s.SetErase(prev.Erase)
	}()
	active, hasActive := s.Active()

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.SelectName(ctx, name); err != nil {
			return err
		}
		for _, st := range sc.Images[name] {
			if err := replay(ctx, s, st, prev.Color); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	if hasActive {
		return s.Select(ctx, active)
	}
	return nil
}

func replay(ctx context.Context, s *annotate.Session, st Stroke, fallback annotate.RGBA) error {
	if st.Color != "" {
		if err := s.SetColor(st.Color); err != nil {
			return err
		}
	} else {
		s.Palette().SetActive(fallback)
	}
	s.SetErase(st.Erase)

	if err := s.PointerDown(st.Points[0][0], st.Points[0][1]); err != nil {
		return err
	}
	for _, p := range st.Points[1:] {
		s.PointerMove(p[0], p[1])
	}
	return s.PointerUp(ctx)
}
