package grib

import (
	"fmt"
	"time"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// parseGRIB1ProductDefinition parses a GRIB1 Product Definition Section
// (PDS), the edition-1 analogue of Sections 1 and 4 combined: it names the
// originating center, the reference time, the parameter/level identity, and
// whether a Grid Description Section and Bitmap Section follow.
//
// PDS structure (minimum 28 bytes):
//
//	Octets 1-3:   Length of PDS
//	Octet 4:      Parameter table version number
//	Octet 5:      Identification of originating/generating center
//	Octet 6:      Generating process identification number
//	Octet 7:      Grid identification (catalogued grid number)
//	Octet 8:      Flags (bit 1: GDS present, bit 2: BMS present)
//	Octet 9:      Indicator of parameter (Table 2)
//	Octet 10:     Indicator of type of level
//	Octets 11-12: Height, pressure, etc. of level
//	Octet 13:     Year of century
//	Octet 14:     Month
//	Octet 15:     Day
//	Octet 16:     Hour
//	Octet 17:     Minute
//	Octet 18:     Indicator of unit of time range
//	Octet 19:     P1, period of time
//	Octet 20:     P2, period of time
//	Octet 21:     Time range indicator
//	Octets 22-23: Number included in average (discarded, not needed for single-field decode)
//	Octet 24:     Number missing from averages/accumulations (discarded)
//	Octet 25:     Century of reference time of data
//	Octet 26:     Sub-center identification
//	Octets 27-28: Decimal scale factor (sign-magnitude)
func parseGRIB1ProductDefinition(raw []byte) (*grib1ProductDefinition, int, error) {
	if len(raw) < 28 {
		return nil, 0, fmt.Errorf("GRIB1 PDS requires at least 28 bytes, got %d", len(raw))
	}

	r := internal.NewBitReader(raw)

	length, err := r.ReadBytes(3)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read PDS length: %w", err)
	}

	table2Version, _ := r.ReadBytes(1)
	center, _ := r.ReadBytes(1)
	generatingProcess, _ := r.ReadBytes(1)
	_, _ = r.ReadBytes(1) // catalogued grid identification, not used: GDS presence flag governs grid parsing

	flags, _ := r.ReadBytes(1)
	hasGridDescription := flags&0x80 != 0
	hasBitmap := flags&0x40 != 0

	indicatorOfParameter, _ := r.ReadBytes(1)
	indicatorOfTypeOfLevel, _ := r.ReadBytes(1)
	levelValue, _ := r.ReadBytes(2)

	yearOfCentury, _ := r.ReadBytes(1)
	month, err := r.ReadBytes(1)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read PDS reference time: %w", err)
	}
	day, _ := r.ReadBytes(1)
	hour, _ := r.ReadBytes(1)
	minute, _ := r.ReadBytes(1)

	unitOfTimeRange, _ := r.ReadBytes(1)
	p1, _ := r.ReadBytes(1)
	p2, _ := r.ReadBytes(1)
	timeRangeIndicator, _ := r.ReadBytes(1)

	_, _ = r.ReadBytes(2) // number included in average
	_, _ = r.ReadBytes(1) // number missing from averages/accumulations

	century, _ := r.ReadBytes(1)
	subCenter, _ := r.ReadBytes(1)

	decimalScaleFactor, err := r.ReadSignedBytesSignMagnitude(2)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read PDS decimal scale factor: %w", err)
	}

	if month < 1 || month > 12 {
		return nil, 0, fmt.Errorf("invalid PDS month: %d (must be 1-12)", month)
	}
	if day < 1 || day > 31 {
		return nil, 0, fmt.Errorf("invalid PDS day: %d (must be 1-31)", day)
	}
	if hour > 23 {
		return nil, 0, fmt.Errorf("invalid PDS hour: %d (must be 0-23)", hour)
	}

	year := grib1Year(uint8(century), uint8(yearOfCentury))
	refTime := time.Date(year, time.Month(month), int(day), int(hour), int(minute), 0, 0, time.UTC)

	return &grib1ProductDefinition{
		table2Version:               uint8(table2Version),
		center:                      uint8(center),
		subCenter:                   uint8(subCenter),
		generatingProcessIdentifier: uint8(generatingProcess),
		hasGridDescription:          hasGridDescription,
		hasBitmap:                   hasBitmap,
		indicatorOfParameter:        uint8(indicatorOfParameter),
		indicatorOfTypeOfLevel:      uint8(indicatorOfTypeOfLevel),
		levelValue:                  uint16(levelValue),
		referenceTime:               refTime,
		unitOfTimeRange:             uint8(unitOfTimeRange),
		p1:                          uint8(p1),
		p2:                          uint8(p2),
		timeRangeIndicator:          uint8(timeRangeIndicator),
		decimalScaleFactor:          int16(decimalScaleFactor),
	}, int(length), nil
}
