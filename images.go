package annotate

import (
	"slices"
	"strings"
)

// SourceImage is one loaded image. It is immutable once added.
type SourceImage struct {
	// Name is the display name, normally the original file name.
	Name string

	// Width and Height are the native pixel dimensions.
	Width, Height int

	// Format is the decoder name reported by the image package ("png", ...).
	Format string

	data []byte
	id   uint64
}

// Data returns the encoded image bytes. Callers must not modify them.
func (img SourceImage) Data() []byte { return img.data }

// ID returns the identity assigned when the image was added to a Session.
// Equal names do not imply equal IDs.
func (img SourceImage) ID() uint64 { return img.id }

// ImageSet is the ordered image collection with its active selection.
// It is always sorted by Name in byte-wise order; equal names keep their
// insertion order.
type ImageSet struct {
	images []SourceImage
	active int
}

// Add appends images and re-sorts the whole collection. It returns the
// applied permutation: order[newIndex] is the index the image had before
// the call, or -1 for a newly added image. Collections aligned with the
// set must be permuted the same way. Adding nothing is a no-op that
// returns nil.
//
// The active selection follows the image it pointed at.
func (s *ImageSet) Add(images ...SourceImage) []int {
	if len(images) == 0 {
		return nil
	}

	type entry struct {
		img SourceImage
		old int
	}
	entries := make([]entry, 0, len(s.images)+len(images))
	for i, img := range s.images {
		entries = append(entries, entry{img: img, old: i})
	}
	for _, img := range images {
		entries = append(entries, entry{img: img, old: -1})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return strings.Compare(a.img.Name, b.img.Name)
	})

	prev, hadActive := s.Active()
	order := make([]int, len(entries))
	s.images = s.images[:0:0]
	for i, e := range entries {
		order[i] = e.old
		s.images = append(s.images, e.img)
		if hadActive && e.old == prev {
			s.active = i
		}
	}
	if !hadActive {
		s.active = 0
	}
	return order
}

// Len returns the number of images.
func (s *ImageSet) Len() int { return len(s.images) }

// At returns the image at index i.
func (s *ImageSet) At(i int) (SourceImage, error) {
	if i < 0 || i >= len(s.images) {
		return SourceImage{}, outOfRange(i, len(s.images))
	}
	return s.images[i], nil
}

// All returns a copy of the collection in order.
func (s *ImageSet) All() []SourceImage {
	return slices.Clone(s.images)
}

// Names returns the image names in order.
func (s *ImageSet) Names() []string {
	names := make([]string, len(s.images))
	for i, img := range s.images {
		names[i] = img.Name
	}
	return names
}

// Index returns the position of the first image called name.
func (s *ImageSet) Index(name string) (int, bool) {
	i := slices.IndexFunc(s.images, func(img SourceImage) bool { return img.Name == name })
	return i, i >= 0
}

// Select makes index i active.
func (s *ImageSet) Select(i int) error {
	if i < 0 || i >= len(s.images) {
		return outOfRange(i, len(s.images))
	}
	s.active = i
	return nil
}

// Active returns the active index; ok is false while the set is empty.
func (s *ImageSet) Active() (index int, ok bool) {
	if len(s.images) == 0 {
		return 0, false
	}
	return min(max(s.active, 0), len(s.images)-1), true
}
