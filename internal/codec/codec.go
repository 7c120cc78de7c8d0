// Package codec decodes source images and mask buffers and encodes label
// images.
//
// Decoding accepts every format registered with the image package: png,
// jpeg and gif from the standard library, and bmp, tiff and webp from
// golang.org/x/image.
package codec

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register decoder
)

// Format identifies an encoder.
type Format int

const (
	// FormatPNG is lossless and keeps the alpha channel. It is the default.
	FormatPNG Format = iota
	// FormatJPEG is lossy; label colors may shift.
	FormatJPEG
	// FormatGIF palettes the image.
	FormatGIF
	// FormatBMP is uncompressed.
	FormatBMP
	// FormatTIFF uses deflate compression.
	FormatTIFF
)

// String returns the canonical file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "png"
	}
}

// FormatForName picks the encoder implied by the extension of name.
// Unknown and decode-only extensions (such as .webp) report false.
func FormatForName(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return FormatPNG, true
	case ".jpg", ".jpeg", ".jpe":
		return FormatJPEG, true
	case ".gif":
		return FormatGIF, true
	case ".bmp":
		return FormatBMP, true
	case ".tif", ".tiff":
		return FormatTIFF, true
	default:
		return FormatPNG, false
	}
}

// JPEGQuality is the quality used for FormatJPEG.
const JPEGQuality = 95

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		return gif.Encode(w, img, nil)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("codec: unknown format %d", int(f))
	}
}

// Decode decodes data. The context is checked before the work starts;
// decoding itself is not interruptible.
func Decode(ctx context.Context, data []byte) (image.Image, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", image.ErrFormat
	}
	return image.Decode(bytes.NewReader(data))
}

// DecodeConfig reads only the header of data.
func DecodeConfig(data []byte) (image.Config, string, error) {
	if len(data) == 0 {
		return image.Config{}, "", image.ErrFormat
	}
	return image.DecodeConfig(bytes.NewReader(data))
}
