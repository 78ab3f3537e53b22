package grib

import (
	"math"
	"strings"
	"testing"
	"time"
)

// putUint24 encodes v into a 3-byte big-endian field, the width GRIB1 uses
// for section lengths and several coordinate fields.
func putUint24(v uint32) [3]byte {
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// putSignMagnitude16/24 encode a signed value into a sign-magnitude field
// of the given width, the convention GRIB1 uses for scale factors and
// signed coordinates (see grib1_pds.go, grib1_grid.go).
func putSignMagnitude16(v int32) [2]byte {
	mag := uint32(v)
	if v < 0 {
		mag = uint32(-v) | 0x8000
	}
	return [2]byte{byte(mag >> 8), byte(mag)}
}

func putSignMagnitude24(v int32) [3]byte {
	mag := uint32(v)
	if v < 0 {
		mag = uint32(-v) | 0x800000
	}
	return [3]byte{byte(mag >> 16), byte(mag >> 8), byte(mag)}
}

// makeGRIB1PDS builds a 28-byte GRIB1 Product Definition Section: NCEP
// center, 2m temperature (table2Version 2, indicatorOfParameter 11) at
// "height above ground" (indicatorOfTypeOfLevel 105), 2023-01-15 12Z, with
// a Grid Description Section but no Bit Map Section.
func makeGRIB1PDS() []byte {
	pds := make([]byte, 28)
	l := putUint24(28)
	copy(pds[0:3], l[:])
	pds[3] = 2  // table2Version
	pds[4] = 7  // center: NCEP
	pds[5] = 2  // generating process
	pds[6] = 0  // catalogued grid id, unused
	pds[7] = 0x80 // flags: GDS present, no BMS
	pds[8] = 11   // indicator of parameter: temperature (TMP)
	pds[9] = 105  // indicator of type of level: height above ground
	sm := putSignMagnitude16(2)
	copy(pds[10:12], sm[:]) // level value: 2 (m)
	pds[12] = 23            // year of century
	pds[13] = 1             // month
	pds[14] = 15            // day
	pds[15] = 12            // hour
	pds[16] = 0             // minute
	pds[17] = 1             // unit of time range: hour
	pds[18] = 0             // P1
	pds[19] = 0             // P2
	pds[20] = 0             // time range indicator
	pds[21] = 0             // number included in average (hi)
	pds[22] = 0             // number included in average (lo)
	pds[23] = 0             // number missing
	pds[24] = 21            // century of reference time
	pds[25] = 0             // sub-center
	sm2 := putSignMagnitude16(0)
	copy(pds[26:28], sm2[:]) // decimal scale factor
	return pds
}

// makeGRIB1GDS builds a 28-byte GRIB1 Grid Description Section for a 2x2
// latitude/longitude grid spanning 90N-88N, 0E-2E.
func makeGRIB1GDS() []byte {
	gds := make([]byte, 28)
	l := putUint24(28)
	copy(gds[0:3], l[:])
	gds[3] = 0 // NV
	gds[4] = 0 // PV/PL location
	gds[5] = 0 // data representation type: lat/lon
	gds[6], gds[7] = 0, 2 // Ni
	gds[8], gds[9] = 0, 2 // Nj
	la1 := putSignMagnitude24(90000)
	copy(gds[10:13], la1[:])
	lo1 := putSignMagnitude24(0)
	copy(gds[13:16], lo1[:])
	gds[16] = 0 // resolution and component flags
	la2 := putSignMagnitude24(88000)
	copy(gds[17:20], la2[:])
	lo2 := putSignMagnitude24(2000)
	copy(gds[20:23], lo2[:])
	gds[23], gds[24] = 0x07, 0xD0 // Di: 2000 millidegrees
	gds[25], gds[26] = 0x07, 0xD0 // Dj: 2000 millidegrees
	gds[27] = 0                   // scanning mode
	return gds
}

// makeGRIB1BDS builds a GRIB1 Binary Data Section using simple packing: a
// zero reference value and zero binary/decimal scale factors, so each
// packed 8-bit value decodes to its own integer, with no bitmap.
func makeGRIB1BDS(values []byte) []byte {
	bds := make([]byte, 11+len(values))
	l := putUint24(uint32(len(bds)))
	copy(bds[0:3], l[:])
	bds[3] = 0x00 // flags: grid point data, simple packing, integer field
	sm := putSignMagnitude16(0)
	copy(bds[4:6], sm[:]) // binary scale factor
	copy(bds[6:10], []byte{0x00, 0x00, 0x00, 0x00}) // IBM float reference value: 0.0
	bds[10] = 8 // bits per value
	copy(bds[11:], values)
	return bds
}

// makeGRIB1Message assembles a complete minimal GRIB1 message: indicator,
// PDS, GDS, BDS (4 packed values over a 2x2 grid), and the "7777" end
// marker.
func makeGRIB1Message() []byte {
	pds := makeGRIB1PDS()
	gds := makeGRIB1GDS()
	bds := makeGRIB1BDS([]byte{10, 20, 30, 40})

	total := 8 + len(pds) + len(gds) + len(bds) + 4

	msg := make([]byte, 0, total)
	sec0 := make([]byte, 8)
	copy(sec0[0:4], "GRIB")
	l := putUint24(uint32(total))
	copy(sec0[4:7], l[:])
	sec0[7] = 1 // edition 1

	msg = append(msg, sec0...)
	msg = append(msg, pds...)
	msg = append(msg, gds...)
	msg = append(msg, bds...)
	msg = append(msg, "7777"...)

	return msg
}

func TestParseGRIB1MessageRoundTrip(t *testing.T) {
	buf := makeGRIB1Message()

	msg, err := ParseMessage(buf)
	if err != nil {
		t.Fatalf("ParseMessage: unexpected error: %v", err)
	}

	if msg.Section0.Edition != 1 {
		t.Errorf("Edition = %d, want 1", msg.Section0.Edition)
	}
	if msg.Section0.MessageLength != uint64(len(buf)) {
		t.Errorf("MessageLength = %d, want %d", msg.Section0.MessageLength, len(buf))
	}

	wantTime := time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC)
	if !msg.Section1.ReferenceTime.Equal(wantTime) {
		t.Errorf("ReferenceTime = %v, want %v", msg.Section1.ReferenceTime, wantTime)
	}
	if msg.Section1.OriginatingCenter != 7 {
		t.Errorf("OriginatingCenter = %d, want 7", msg.Section1.OriginatingCenter)
	}

	if msg.Section3.NumDataPoints != 4 {
		t.Errorf("NumDataPoints = %d, want 4", msg.Section3.NumDataPoints)
	}

	levelType, levelValue := msg.surfaceLevel()
	if levelType != 105 {
		t.Errorf("surfaceLevel type = %d, want 105", levelType)
	}
	if levelValue != 2 {
		t.Errorf("surfaceLevel value = %v, want 2", levelValue)
	}

	if name := msg.levelName(levelType); name != "Height AGL" {
		t.Errorf("levelName(105) = %q, want %q (GRIB1 Table 3, not GRIB2 Table 4.5's \"Hybrid\")", name, "Height AGL")
	}
	if unit := msg.levelUnit(levelType); unit != "m" {
		t.Errorf("levelUnit(105) = %q, want %q", unit, "m")
	}

	if abbrev := msg.variableAbbreviation(); abbrev != "TMP" {
		t.Errorf("variableAbbreviation() = %q, want %q", abbrev, "TMP")
	}

	values, err := msg.Data()
	if err != nil {
		t.Fatalf("Data: unexpected error: %v", err)
	}
	want := []float64{10, 20, 30, 40}
	if len(values) != len(want) {
		t.Fatalf("Data: got %d values, want %d", len(values), len(want))
	}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("Data[%d] = %v, want %v", i, values[i], w)
		}
	}

	lats, lons, err := msg.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates: unexpected error: %v", err)
	}
	if len(lats) != len(values) || len(lons) != len(values) {
		t.Errorf("Coordinates: got %d lats, %d lons, want %d each", len(lats), len(lons), len(values))
	}

	idx := msg.AsIdx(1, 0)
	if !containsAll(idx, "TMP", "2 m") {
		t.Errorf("AsIdx() = %q, want it to mention TMP and the GRIB1 level unit \"2 m\"", idx)
	}

	key := msg.Key()
	if !containsAll(key, "TMP", "Height AGL") {
		t.Errorf("Key() = %q, want it to mention TMP and the GRIB1 level name \"Height AGL\"", key)
	}
}

func containsAll(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func TestParseGRIB1MessageBitmap(t *testing.T) {
	pds := makeGRIB1PDS()
	pds[7] = 0xC0 // GDS present, BMS present
	gds := makeGRIB1GDS()

	// Bitmap: 4 grid points, points 2 and 4 (1-indexed) missing.
	bms := make([]byte, 7)
	l := putUint24(7)
	copy(bms[0:3], l[:])
	bms[3] = 4         // 4 unused bits at the end of the bitmap byte
	bms[4], bms[5] = 0, 0 // table reference: bitmap follows
	bms[6] = 0b10100000  // points 1 and 3 present, 2 and 4 missing

	bds := makeGRIB1BDS([]byte{10, 30}) // only the 2 present points are packed

	total := 8 + len(pds) + len(gds) + len(bms) + len(bds) + 4
	msg := make([]byte, 0, total)
	sec0 := make([]byte, 8)
	copy(sec0[0:4], "GRIB")
	tl := putUint24(uint32(total))
	copy(sec0[4:7], tl[:])
	sec0[7] = 1

	msg = append(msg, sec0...)
	msg = append(msg, pds...)
	msg = append(msg, gds...)
	msg = append(msg, bms...)
	msg = append(msg, bds...)
	msg = append(msg, "7777"...)

	parsed, err := ParseMessage(msg)
	if err != nil {
		t.Fatalf("ParseMessage: unexpected error: %v", err)
	}

	if parsed.Section6 == nil || !parsed.Section6.HasBitmap() {
		t.Fatal("expected a bitmap section to be present")
	}

	values, err := parsed.Data()
	if err != nil {
		t.Fatalf("Data: unexpected error: %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("Data: got %d values, want 4", len(values))
	}
	if values[0] != 10 || values[2] != 30 {
		t.Errorf("Data = %v, want present points 0 and 2 to be 10 and 30", values)
	}
	if !math.IsNaN(values[1]) || !math.IsNaN(values[3]) {
		t.Errorf("Data = %v, want absent points 1 and 3 to be NaN", values)
	}
}

func TestGrib1Year(t *testing.T) {
	tests := []struct {
		name          string
		century       uint8
		yearOfCentury uint8
		want          int
	}{
		{"2023 in the 21st century", 21, 23, 2023},
		{"first year of the 21st century", 21, 1, 2001},
		{"yearOfCentury 100 names the century's own final year", 20, 100, 2000},
		{"near the end of the century", 20, 99, 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grib1Year(tt.century, tt.yearOfCentury); got != tt.want {
				t.Errorf("grib1Year(%d, %d) = %d, want %d", tt.century, tt.yearOfCentury, got, tt.want)
			}
		})
	}
}
