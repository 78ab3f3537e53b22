package grib

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/grid"
	"github.com/mpiannucci/gribberish-sub001/internal"
)

// parseGRIB1GridDescription parses a GRIB1 Grid Description Section (GDS)
// for data representation type 0 (latitude/longitude, equidistant
// cylindrical), the only GRIB1 grid this decoder normalizes onto
// grid.LatLonGrid. Other representation types are reported as unsupported
// rather than silently misread.
//
// GDS structure (minimum 28 bytes, type 0):
//
//	Octets 1-3:   Length of GDS
//	Octet 4:      NV, number of vertical coordinate parameters
//	Octet 5:      PV/PL, location of list (not used for type 0)
//	Octet 6:      Data representation type (Table 6)
//	Octets 7-8:   Ni, number of points along a parallel
//	Octets 9-10:  Nj, number of points along a meridian
//	Octets 11-13: La1, latitude of first grid point (milli-degrees)
//	Octets 14-16: Lo1, longitude of first grid point (milli-degrees)
//	Octet 17:     Resolution and component flags
//	Octets 18-20: La2, latitude of last grid point (milli-degrees)
//	Octets 21-23: Lo2, longitude of last grid point (milli-degrees)
//	Octets 24-25: Di, i direction increment (milli-degrees)
//	Octets 26-27: Dj, j direction increment (milli-degrees)
//	Octet 28:     Scanning mode flags
//
// GRIB1 encodes lat/lon in milli-degrees; grid.LatLonGrid's fields are
// micro-degrees, so every coordinate is scaled by 1000 on the way in.
func parseGRIB1GridDescription(raw []byte) (*grid.LatLonGrid, int, error) {
	if len(raw) < 28 {
		return nil, 0, fmt.Errorf("GRIB1 GDS requires at least 28 bytes, got %d", len(raw))
	}

	r := internal.NewBitReader(raw)

	length, err := r.ReadBytes(3)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read GDS length: %w", err)
	}

	_, _ = r.ReadBytes(1) // NV, number of vertical coordinate parameters
	_, _ = r.ReadBytes(1) // PV/PL location

	dataRepresentationType, _ := r.ReadBytes(1)
	if dataRepresentationType != 0 {
		return nil, 0, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("GRIB1 grid representation type %d (only lat/lon grids are supported)", dataRepresentationType),
		}
	}

	ni, _ := r.ReadBytes(2)
	nj, _ := r.ReadBytes(2)

	la1, err := r.ReadSignedBytesSignMagnitude(3)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read GDS La1: %w", err)
	}
	lo1, _ := r.ReadSignedBytesSignMagnitude(3)

	resFlags, _ := r.ReadBytes(1)

	la2, _ := r.ReadSignedBytesSignMagnitude(3)
	lo2, _ := r.ReadSignedBytesSignMagnitude(3)

	di, _ := r.ReadBytes(2)
	dj, _ := r.ReadBytes(2)

	scanningMode, _ := r.ReadBytes(1)

	const milliToMicro = 1000

	g := &grid.LatLonGrid{
		Ni:           uint32(ni),
		Nj:           uint32(nj),
		La1:          int32(la1) * milliToMicro,
		Lo1:          int32(lo1) * milliToMicro,
		ResFlags:     uint8(resFlags),
		La2:          int32(la2) * milliToMicro,
		Lo2:          int32(lo2) * milliToMicro,
		Di:           uint32(di) * milliToMicro,
		Dj:           uint32(dj) * milliToMicro,
		ScanningMode: uint8(scanningMode),
	}

	return g, int(length), nil
}
