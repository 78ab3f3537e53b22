package grib

import (
	"encoding/binary"
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
	"github.com/mpiannucci/gribberish-sub001/section"
)

// parseGRIB1Bitmap parses a GRIB1 Bit Map Section (BMS) and reuses
// section.ParseSection6's bit-unpacking by repackaging the BMS's bitmap
// bytes into the GRIB2 Section 6 wire shape (length, section number,
// indicator, bitmap), rather than duplicating the unexported bit-unpacking
// it already implements.
//
// BMS structure (minimum 6 bytes):
//
//	Octets 1-3: Length of BMS
//	Octet 4:    Number of unused bits at the end of the bitmap
//	Octets 5-6: Table reference (0 = bitmap follows in this section)
//	Octets 7-n: Bitmap, one bit per grid point, most significant bit first
func parseGRIB1Bitmap(raw []byte, numGridPoints uint32) (*section.Section6, int, error) {
	if len(raw) < 6 {
		return nil, 0, fmt.Errorf("GRIB1 BMS requires at least 6 bytes, got %d", len(raw))
	}

	r := internal.NewBitReader(raw)

	length, err := r.ReadBytes(3)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read BMS length: %w", err)
	}

	_, _ = r.ReadBytes(1) // number of unused bits at the end of the bitmap

	tableReference, _ := r.ReadBytes(2)
	if tableReference != 0 {
		return nil, 0, &UnsupportedFeatureError{
			Feature: fmt.Sprintf("GRIB1 predefined bitmap (table reference %d)", tableReference),
		}
	}

	if int(length) > len(raw) {
		return nil, 0, fmt.Errorf("BMS length %d exceeds available %d bytes", length, len(raw))
	}
	bitmapData := raw[6:length]

	synthesized := make([]byte, 6+len(bitmapData))
	binary.BigEndian.PutUint32(synthesized[0:4], uint32(len(synthesized)))
	synthesized[4] = 6 // section number
	synthesized[5] = 0 // bitmap indicator: bitmap specified in this section
	copy(synthesized[6:], bitmapData)

	sec6, err := section.ParseSection6(synthesized, numGridPoints)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse bitmap: %w", err)
	}

	return sec6, int(length), nil
}
