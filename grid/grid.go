// Package grid provides grid definition types and parsers for GRIB2.
package grid

import "math"

// Grid represents a GRIB2 grid definition.
// Different grid templates implement this interface.
type Grid interface {
	// TemplateNumber returns the grid definition template number (Table 3.1).
	TemplateNumber() int

	// NumPoints returns the total number of grid points.
	NumPoints() int

	// Dims returns the grid's row and column counts (j-direction count,
	// i-direction count), matching the row-major order data values are
	// packed in.
	Dims() (rows, cols int)

	// Coordinates returns the latitude and longitude, in degrees, of every
	// grid point in row-major (j then i) order, matching the order in which
	// Section 7 data values are packed.
	Coordinates() ([]float64, []float64)

	// ProjString returns a PROJ-syntax description of this grid's cartographic
	// projection, suitable for PROJ-compatible tooling.
	ProjString() string

	// CRS returns a short identifier for this grid's coordinate reference system.
	CRS() string

	// String returns a human-readable description of the grid.
	String() string
}

// BoundingBox returns the minimum and maximum latitude and longitude across
// every point of g, derived from its Coordinates.
func BoundingBox(g Grid) (minLat, minLon, maxLat, maxLon float64) {
	lats, lons := g.Coordinates()
	if len(lats) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat = lats[0], lats[0]
	minLon, maxLon = lons[0], lons[0]
	for i := 1; i < len(lats); i++ {
		if lats[i] < minLat {
			minLat = lats[i]
		}
		if lats[i] > maxLat {
			maxLat = lats[i]
		}
		if lons[i] < minLon {
			minLon = lons[i]
		}
		if lons[i] > maxLon {
			maxLon = lons[i]
		}
	}
	return minLat, minLon, maxLat, maxLon
}

// Resolution returns the average grid spacing in latitude and longitude
// degrees, derived from g's bounding box and dimensions.
func Resolution(g Grid) (dLat, dLon float64) {
	rows, cols := g.Dims()
	minLat, minLon, maxLat, maxLon := BoundingBox(g)

	if rows > 1 {
		dLat = math.Abs(maxLat-minLat) / float64(rows-1)
	}
	if cols > 1 {
		dLon = math.Abs(maxLon-minLon) / float64(cols-1)
	}
	return dLat, dLon
}
