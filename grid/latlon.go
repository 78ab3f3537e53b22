package grid

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// LatLonGrid represents a GRIB2 Latitude/Longitude grid (Template 3.0).
//
// This is the most common grid type, consisting of a regular grid with
// constant spacing in latitude and longitude.
type LatLonGrid struct {
	Ni           uint32  // Number of points along a parallel (longitude)
	Nj           uint32  // Number of points along a meridian (latitude)
	La1          int32   // Latitude of first grid point (micro-degrees)
	Lo1          int32   // Longitude of first grid point (micro-degrees)
	ResFlags     uint8   // Resolution and component flags
	La2          int32   // Latitude of last grid point (micro-degrees)
	Lo2          int32   // Longitude of last grid point (micro-degrees)
	Di           uint32  // i direction increment (micro-degrees)
	Dj           uint32  // j direction increment (micro-degrees)
	ScanningMode uint8   // Scanning mode (Table 3.4)
}

// ParseLatLonGrid parses a Lat/Lon grid from template data (Template 3.0).
//
// The template data should be 72 bytes for Template 3.0.
func ParseLatLonGrid(data []byte) (*LatLonGrid, error) {
	if len(data) < 72 {
		return nil, fmt.Errorf("template 3.0 requires at least 72 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	// Skip shape of earth (1 byte) and related parameters (15 bytes)
	// We'll implement proper earth shape handling in a future phase
	r.Skip(16)

	// Read grid dimensions
	ni, _ := r.Uint32()
	nj, _ := r.Uint32()

	// Skip basic angle and subdivisions (8 bytes)
	r.Skip(8)

	// Read grid points
	la1, _ := r.Int32()
	lo1, _ := r.Int32()
	resFlags, _ := r.Uint8()
	la2, _ := r.Int32()
	lo2, _ := r.Int32()
	di, _ := r.Uint32()
	dj, _ := r.Uint32()
	scanningMode, _ := r.Uint8()

	return &LatLonGrid{
		Ni:           ni,
		Nj:           nj,
		La1:          la1,
		Lo1:          lo1,
		ResFlags:     resFlags,
		La2:          la2,
		Lo2:          lo2,
		Di:           di,
		Dj:           dj,
		ScanningMode: scanningMode,
	}, nil
}

// TemplateNumber returns 0 for Lat/Lon grids.
func (g *LatLonGrid) TemplateNumber() int {
	return 0
}

// NumPoints returns the total number of grid points.
func (g *LatLonGrid) NumPoints() int {
	return int(g.Ni * g.Nj)
}

// Dims returns (Nj, Ni): the number of rows (meridians) and columns (parallels).
func (g *LatLonGrid) Dims() (rows, cols int) {
	return int(g.Nj), int(g.Ni)
}

// String returns a human-readable description of the grid.
func (g *LatLonGrid) String() string {
	return fmt.Sprintf("Lat/Lon grid: %d x %d points (%.3f°, %.3f°) to (%.3f°, %.3f°)",
		g.Ni, g.Nj,
		float64(g.La1)/1e6, float64(g.Lo1)/1e6,
		float64(g.La2)/1e6, float64(g.Lo2)/1e6)
}

// FirstGridPoint returns the latitude and longitude of the first grid point in degrees.
func (g *LatLonGrid) FirstGridPoint() (lat, lon float64) {
	return float64(g.La1) / 1e6, float64(g.Lo1) / 1e6
}

// LastGridPoint returns the latitude and longitude of the last grid point in degrees.
func (g *LatLonGrid) LastGridPoint() (lat, lon float64) {
	return float64(g.La2) / 1e6, float64(g.Lo2) / 1e6
}

// Increment returns the i and j direction increments in degrees.
func (g *LatLonGrid) Increment() (di, dj float64) {
	return float64(g.Di) / 1e6, float64(g.Dj) / 1e6
}

// Coordinates generates latitude and longitude arrays for all grid points.
//
// Since this grid is regularly spaced in latitude and longitude, no inverse
// projection is needed: each point is simply the first point offset by the
// scanning-direction-adjusted increment. All four Table 3.4 scanning flags
// are honored: i/j direction, which index varies fastest, and alternating
// row direction.
func (g *LatLonGrid) Coordinates() ([]float64, []float64) {
	nPoints := int(g.Ni * g.Nj)
	lats := make([]float64, nPoints)
	lons := make([]float64, nPoints)

	la1 := float64(g.La1) / 1e6
	lo1 := float64(g.Lo1) / 1e6
	di, dj := g.Increment()

	iNegative, jPositive, consecutiveI := g.ScanningFlags()
	alternating := g.ScanningMode&0x10 != 0

	latAt := func(j int) float64 {
		if jPositive {
			return la1 + float64(j)*dj
		}
		return la1 - float64(j)*dj
	}
	lonAt := func(i int) float64 {
		lon := lo1 + float64(i)*di
		if iNegative {
			lon = lo1 - float64(i)*di
		}
		for lon < 0 {
			lon += 360
		}
		for lon >= 360 {
			lon -= 360
		}
		return lon
	}

	idx := 0
	if consecutiveI {
		for j := 0; j < int(g.Nj); j++ {
			lat := latAt(j)
			for i := 0; i < int(g.Ni); i++ {
				col := i
				if alternating && j%2 == 1 {
					col = int(g.Ni) - 1 - i
				}
				lats[idx] = lat
				lons[idx] = lonAt(col)
				idx++
			}
		}
	} else {
		for i := 0; i < int(g.Ni); i++ {
			lon := lonAt(i)
			for j := 0; j < int(g.Nj); j++ {
				row := j
				if alternating && i%2 == 1 {
					row = int(g.Nj) - 1 - j
				}
				lats[idx] = latAt(row)
				lons[idx] = lon
				idx++
			}
		}
	}

	return lats, lons
}

// ScanningFlags returns the scanning mode flags as individual booleans.
//
// Returns:
//   - iNegative: true if points scan in -i direction (east to west)
//   - jPositive: true if points scan in +j direction (south to north)
//   - consecutive: true if adjacent points in i direction are consecutive
func (g *LatLonGrid) ScanningFlags() (iNegative, jPositive, consecutive bool) {
	iNegative = (g.ScanningMode & 0x80) != 0  // Bit 0
	jPositive = (g.ScanningMode & 0x40) != 0  // Bit 1
	consecutive = (g.ScanningMode & 0x20) == 0 // Bit 2 (0 = consecutive)
	return
}

// ProjString returns the PROJ-syntax description of an equirectangular grid.
func (g *LatLonGrid) ProjString() string {
	return "+proj=longlat +datum=WGS84 +no_defs"
}

// CRS returns the coordinate reference system identifier for this grid.
func (g *LatLonGrid) CRS() string {
	return "EPSG:4326"
}

// RotatedLatLonGrid represents a GRIB2 Rotated Latitude/Longitude grid
// (Template 3.1): a Lat/Lon grid whose pole has been rotated so the
// equator of the rotated system passes through the area of interest,
// giving more uniform cell area over regional domains.
// Coordinates on the embedded LatLonGrid returns points in rotated-pole
// space, not true geographic coordinates; callers needing geographic
// coordinates must apply the inverse rotation described by ProjString.
type RotatedLatLonGrid struct {
	LatLonGrid
	LatSouthPole  int32 // Latitude of the southern pole of projection (micro-degrees)
	LonSouthPole  int32 // Longitude of the southern pole of projection (micro-degrees)
	AngleRotation int32 // Angle of rotation, as a signed integer (no scale applied)
}

// ParseRotatedLatLonGrid parses Grid Definition Template 3.1.
//
// Template 3.1 repeats the entire Template 3.0 layout (72 bytes) and
// appends the rotated-pole location and rotation angle (12 more bytes).
func ParseRotatedLatLonGrid(data []byte) (*RotatedLatLonGrid, error) {
	base, err := ParseLatLonGrid(data)
	if err != nil {
		return nil, fmt.Errorf("template 3.1: %w", err)
	}
	if len(data) < 84 {
		return nil, fmt.Errorf("template 3.1 requires at least 84 bytes, got %d", len(data))
	}

	r := internal.NewReader(data[72:])
	latSP, _ := r.Int32()
	lonSP, _ := r.Int32()
	angle, _ := r.Int32()

	return &RotatedLatLonGrid{
		LatLonGrid:    *base,
		LatSouthPole:  latSP,
		LonSouthPole:  lonSP,
		AngleRotation: angle,
	}, nil
}

// TemplateNumber returns 1 for rotated Lat/Lon grids.
func (g *RotatedLatLonGrid) TemplateNumber() int {
	return 1
}

// SouthPole returns the latitude and longitude of the grid's rotated
// southern pole, in degrees.
func (g *RotatedLatLonGrid) SouthPole() (lat, lon float64) {
	return float64(g.LatSouthPole) / 1e6, float64(g.LonSouthPole) / 1e6
}

// ProjString returns the PROJ-syntax description of a rotated-pole grid.
func (g *RotatedLatLonGrid) ProjString() string {
	lat, lon := g.SouthPole()
	return fmt.Sprintf("+proj=ob_tran +o_proj=longlat +o_lat_p=%.6f +o_lon_p=%.6f +lon_0=180 +datum=WGS84",
		-lat, lon)
}

// CRS returns the coordinate reference system identifier for this grid.
// Rotated-pole grids have no fixed EPSG code; callers should use ProjString.
func (g *RotatedLatLonGrid) CRS() string {
	return "OGC:rotated-latlon"
}

// String returns a human-readable description of the grid.
func (g *RotatedLatLonGrid) String() string {
	lat, lon := g.SouthPole()
	return fmt.Sprintf("Rotated Lat/Lon grid: %d x %d points, south pole (%.3f°, %.3f°)",
		g.Ni, g.Nj, lat, lon)
}
