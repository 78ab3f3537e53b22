// Package section provides parsers for GRIB2 message sections.
package section

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Section0 represents the GRIB Indicator Section (Section 0), normalized
// across editions 1 and 2.
//
// It identifies:
//   - Magic number "GRIB" to identify the file format
//   - Discipline code indicating the type of data (meteorological, hydrological, etc.); always 0 for edition 1
//   - Edition number (1 or 2)
//   - Total message length in bytes
//
// Section 0 is 16 bytes for edition 2, and 8 bytes for edition 1.
type Section0 struct {
	Discipline    uint8  // Discipline (Table 0.0: 0=Meteorological, 1=Hydrological, etc.); always 0 for edition 1
	Edition       uint8  // GRIB edition number (1 or 2)
	MessageLength uint64 // Total length of GRIB message in bytes (including this section)
}

// ParseSection0 parses the GRIB Indicator Section (Section 0), editions 1
// and 2. The edition byte sits at the same offset (byte 8) in both, so both
// can be recognized from the same 16-byte prefix before dispatching to the
// edition-specific section parsers.
//
// GRIB2 Section 0 structure (16 bytes total):
//
//	Bytes 1-4:   "GRIB" magic number
//	Bytes 5-6:   Reserved (must be 0x0000)
//	Byte 7:      Discipline (Table 0.0)
//	Byte 8:      GRIB edition number (must be 2)
//	Bytes 9-16:  Total message length (uint64)
//
// GRIB1's indicator section is only 8 bytes long:
//
//	Bytes 1-4: "GRIB" magic number
//	Bytes 5-7: Total message length (3-byte uint)
//	Byte 8:    GRIB edition number (must be 1)
//
// For edition 1, only the first 8 bytes are consumed; MessageLength is
// taken from the 3-byte length field and Discipline is left 0 (GRIB1 has no
// discipline concept).
//
// Returns an error if:
//   - The data is shorter than the edition's indicator section
//   - The magic number is not "GRIB"
//   - The edition number is neither 1 nor 2
//
// Non-zero reserved bytes are accepted and not reported.
func ParseSection0(data []byte) (*Section0, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("section 0 must be at least 8 bytes, got %d", len(data))
	}

	// Check magic number "GRIB"
	if data[0] != 'G' || data[1] != 'R' || data[2] != 'I' || data[3] != 'B' {
		return nil, fmt.Errorf("invalid GRIB magic number: got %q, expected \"GRIB\"",
			string(data[0:4]))
	}

	edition := data[7]

	switch edition {
	case 1:
		messageLength := uint64(data[4])<<16 | uint64(data[5])<<8 | uint64(data[6])
		if messageLength < 8 {
			return nil, fmt.Errorf("invalid message length %d (must be at least 8 bytes)", messageLength)
		}
		return &Section0{
			Discipline:    0,
			Edition:       1,
			MessageLength: messageLength,
		}, nil

	case 2:
		if len(data) < 16 {
			return nil, fmt.Errorf("section 0 must be at least 16 bytes for edition 2, got %d", len(data))
		}

		r := internal.NewReader(data)

		// Skip "GRIB" magic (already validated)
		r.Skip(4)

		// Read and validate reserved bytes
		reserved, _ := r.Uint16()
		if reserved != 0 {
			// WMO spec says this should be 0, but we'll just warn
			// Some implementations might use this for other purposes
			// Don't fail, but could log if we had logging
		}

		// Read discipline
		discipline, _ := r.Uint8()

		// Read edition (already known to be 2)
		r.Skip(1)

		// Read message length
		messageLength, _ := r.Uint64()

		// Validate message length is reasonable
		if messageLength < 16 {
			return nil, fmt.Errorf("invalid message length %d (must be at least 16 bytes)", messageLength)
		}

		return &Section0{
			Discipline:    discipline,
			Edition:       edition,
			MessageLength: messageLength,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported GRIB edition: got %d, expected 1 or 2", edition)
	}
}

// DisciplineName returns the human-readable name for the discipline code.
// Returns "Unknown discipline (N)" if the discipline code is not recognized.
func (s *Section0) DisciplineName() string {
	return GetDisciplineName(s.Discipline)
}

// GetDisciplineName returns the human-readable name for a discipline code.
// This is based on WMO Table 0.0 and uses the same short names as
// tables.GetDisciplineName.
func GetDisciplineName(discipline uint8) string {
	// WMO Code Table 0.0: Discipline of processed data
	switch discipline {
	case 0:
		return "Meteorological"
	case 1:
		return "Hydrological"
	case 2:
		return "Land Surface"
	case 3:
		return "Space"
	case 4:
		return "Space Weather"
	case 10:
		return "Oceanographic"
	case 20:
		return "Health"
	default:
		if discipline == 255 {
			return "Missing"
		}
		if discipline >= 192 {
			return "Local"
		}
		return fmt.Sprintf("Unknown discipline (%d)", discipline)
	}
}
