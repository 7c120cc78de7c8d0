package blend

// Span composites src onto dst pixel by pixel. Both slices hold
// premultiplied RGBA8 data; the shorter one bounds the operation.
func Span(op Op, dst, src []byte) {
	fn := GetFunc(op)
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	n -= n % 4
	for i := 0; i < n; i += 4 {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i], src[i+1], src[i+2], src[i+3],
			dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

// SpanCoverage composites the premultiplied solid color (r, g, b, a) onto
// dst, scaled per pixel by the matching coverage byte. Pixels with zero
// coverage are left untouched regardless of the operator.
func SpanCoverage(op Op, dst []byte, r, g, b, a byte, coverage []byte) {
	fn := GetFunc(op)
	for j, c := range coverage {
		i := j * 4
		if c == 0 || i+3 >= len(dst) {
			continue
		}
		sr, sg, sb, sa := r, g, b, a
		if c != 255 {
			sr, sg, sb, sa = mulDiv255(r, c), mulDiv255(g, c), mulDiv255(b, c), mulDiv255(a, c)
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}
