// Package blend implements the Porter-Duff operators used by annotation
// surfaces.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// laid out as RGBA8 (4 bytes per pixel).
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Op represents a Porter-Duff compositing operation.
type Op uint8

const (
	OpSourceOver     Op = iota // Result: S + D*(1-Sa) [default]
	OpCopy                     // Result: S
	OpDestinationOut           // Result: D*(1-Sa)
	OpSourceAtop               // Result: S*Da + D*(1-Sa)
)

// String returns the canvas name of the operator.
func (op Op) String() string {
	switch op {
	case OpSourceOver:
		return "source-over"
	case OpCopy:
		return "copy"
	case OpDestinationOut:
		return "destination-out"
	case OpSourceAtop:
		return "source-atop"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given operator.
// Returns source-over for unknown operators.
func GetFunc(op Op) Func {
	switch op {
	case OpCopy:
		return copySource
	case OpDestinationOut:
		return destinationOut
	case OpSourceAtop:
		return sourceAtop
	default:
		return sourceOver
	}
}

// sourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(sr, mulDiv255(dr, invSa)),
		addDiv255(sg, mulDiv255(dg, invSa)),
		addDiv255(sb, mulDiv255(db, invSa)),
		addDiv255(sa, mulDiv255(da, invSa))
}

func copySource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// destinationOut keeps destination where source is transparent. The source
// color is irrelevant; only its alpha erases.
// Formula: D * (1 - Sa)
func destinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// sourceAtop composites source over destination, preserving destination alpha.
// Formula: S * Da + D * (1 - Sa)
func sourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addDiv255(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addDiv255(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addDiv255(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two byte values with clamping to 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
