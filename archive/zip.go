// Package archive provides archive sinks for annotate exports.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"time"
)

// ErrClosed is returned by Add after Bundle.
var ErrClosed = errors.New("archive: sink already bundled")

// Zip collects entries into an in-memory zip archive. It implements
// annotate.ArchiveSink.
type Zip struct {
	buf      bytes.Buffer
	w        *zip.Writer
	modified time.Time
	closed   bool
}

// NewZip creates an empty zip sink. Entries are stamped with the creation
// time.
func NewZip() *Zip {
	z := &Zip{modified: time.Now()}
	z.w = zip.NewWriter(&z.buf)
	return z
}

// Add writes a deflated entry. Duplicate names are written as is; zip
// readers typically resolve them to the last entry.
func (z *Zip) Add(name string, data []byte) error {
	if z.closed {
		return ErrClosed
	}
	w, err := z.w.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: z.modified,
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Bundle finishes the archive and returns its bytes. Later calls return
// the same bytes.
func (z *Zip) Bundle() ([]byte, error) {
	if !z.closed {
		if err := z.w.Close(); err != nil {
			return nil, err
		}
		z.closed = true
	}
	return z.buf.Bytes(), nil
}
