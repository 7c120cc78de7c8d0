package annotate

import "slices"

// DefaultPaletteColors are the swatches a new Palette starts with.
var DefaultPaletteColors = []RGBA{Red, Blue}

// Palette is an insertion-ordered, duplicate-free list of user colors plus
// the active drawing color. The active color need not be in the list.
type Palette struct {
	colors []RGBA
	active RGBA
}

// NewPalette creates a palette holding colors (duplicates dropped) with
// the first color active, or red when colors is empty.
func NewPalette(colors ...RGBA) *Palette {
	p := &Palette{active: Red}
	for _, c := range colors {
		p.Add(c)
	}
	if len(p.colors) > 0 {
		p.active = p.colors[0]
	}
	return p
}

// Add appends c unless it is already present and reports whether it was
// added.
func (p *Palette) Add(c RGBA) bool {
	if p.Contains(c) {
		return false
	}
	p.colors = append(p.colors, c)
	return true
}

// Remove deletes c by exact value and reports whether it was present.
// Removing the active color leaves it active.
func (p *Palette) Remove(c RGBA) bool {
	i := slices.Index(p.colors, c)
	if i < 0 {
		return false
	}
	p.colors = slices.Delete(p.colors, i, i+1)
	return true
}

// Contains reports whether c is in the list.
func (p *Palette) Contains(c RGBA) bool {
	return slices.Contains(p.colors, c)
}

// Colors returns a copy of the list in insertion order.
func (p *Palette) Colors() []RGBA {
	return slices.Clone(p.colors)
}

// Len returns the number of listed colors.
func (p *Palette) Len() int { return len(p.colors) }

// Active returns the current drawing color.
func (p *Palette) Active() RGBA { return p.active }

// SetActive changes the drawing color without touching the list.
func (p *Palette) SetActive(c RGBA) { p.active = c }

// Select makes c active and adds it to the list if missing, the way a
// color picker selection behaves.
func (p *Palette) Select(c RGBA) {
	p.active = c
	p.Add(c)
}
