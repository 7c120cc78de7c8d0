package annotate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPaletteDefaults(t *testing.T) {
	p := NewPalette(DefaultPaletteColors...)
	if diff := cmp.Diff([]RGBA{Red, Blue}, p.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
	if p.Active() != Red {
		t.Errorf("Active() = %v, want red", p.Active())
	}
	if got := NewPalette().Active(); got != Red {
		t.Errorf("empty palette active = %v, want red", got)
	}
}

func TestPaletteAddRemove(t *testing.T) {
	p := NewPalette(Red, Red, Blue)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (duplicates dropped)", p.Len())
	}
	if p.Add(Blue) {
		t.Error("Add(existing) = true, want false")
	}
	if !p.Add(Green) {
		t.Error("Add(new) = false, want true")
	}
	if !p.Remove(Red) {
		t.Error("Remove(present) = false, want true")
	}
	if p.Remove(Red) {
		t.Error("Remove(absent) = true, want false")
	}
	if diff := cmp.Diff([]RGBA{Blue, Green}, p.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
	if p.Active() != Red {
		t.Errorf("removing the active color changed it to %v", p.Active())
	}
}

func TestPaletteSelect(t *testing.T) {
	p := NewPalette(Red)
	yellow := Hex("#FFFF00")

	p.SetActive(yellow)
	if p.Contains(yellow) {
		t.Error("SetActive must not add to the list")
	}
	p.Select(yellow)
	p.Select(yellow)
	if diff := cmp.Diff([]RGBA{Red, yellow}, p.Colors()); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
	if p.Active() != yellow {
		t.Errorf("Active() = %v, want %v", p.Active(), yellow)
	}

	colors := p.Colors()
	colors[0] = Green
	if p.Colors()[0] != Red {
		t.Error("Colors() must return a copy")
	}
}
