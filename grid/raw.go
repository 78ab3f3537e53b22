package grid

import "fmt"

// RawGrid is the fallback decoder for a grid definition template number this
// package does not implement. It preserves the section bytes and point count
// so the message can still be walked and framed correctly, but carries no
// projection: Coordinates returns a slice of zeros rather than failing.
type RawGrid struct {
	TemplateNum int
	NumDataPts  int
	Data        []byte
}

// NewRawGrid wraps an unrecognized grid definition template.
func NewRawGrid(templateNumber int, numDataPoints int, data []byte) *RawGrid {
	raw := make([]byte, len(data))
	copy(raw, data)
	return &RawGrid{TemplateNum: templateNumber, NumDataPts: numDataPoints, Data: raw}
}

// TemplateNumber returns the unrecognized template number.
func (g *RawGrid) TemplateNumber() int {
	return g.TemplateNum
}

// NumPoints returns the grid point count carried in Section 3's header,
// which is known regardless of template support.
func (g *RawGrid) NumPoints() int {
	return g.NumDataPts
}

// Dims reports the full point count as a single row; callers that need a
// real grid shape must recognize the template.
func (g *RawGrid) Dims() (rows, cols int) {
	return 1, g.NumDataPts
}

// Coordinates cannot be computed for an unrecognized template; it returns
// zero-valued slices of the correct length.
func (g *RawGrid) Coordinates() ([]float64, []float64) {
	return make([]float64, g.NumDataPts), make([]float64, g.NumDataPts)
}

// ProjString returns an empty string: no projection is known.
func (g *RawGrid) ProjString() string {
	return ""
}

// CRS returns an empty string: no coordinate reference system is known.
func (g *RawGrid) CRS() string {
	return ""
}

// String returns a human-readable description.
func (g *RawGrid) String() string {
	return fmt.Sprintf("unrecognized grid definition template %d (%d bytes)", g.TemplateNum, len(g.Data))
}
