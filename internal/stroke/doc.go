// Package stroke converts freehand polylines into filled outlines.
//
// A stroke is expanded segment by segment: every segment becomes a closed
// quad between its two offset lines, interior vertices receive a disc
// (round join), and the two path ends receive the requested cap. All
// outlines are emitted with the same winding so a non-zero rasterizer
// produces their union, which is exactly the area swept by a round pen.
package stroke
