package grib

import (
	"fmt"
	"time"

	"github.com/mpiannucci/gribberish-sub001/data"
	"github.com/mpiannucci/gribberish-sub001/product"
	"github.com/mpiannucci/gribberish-sub001/section"
)

// grib1ProductDefinition holds the fields read from a GRIB1 Product
// Definition Section (PDS) that the rest of the decode path needs. It has no
// GRIB2 analogue; it exists only to carry PDS octets from
// parseGRIB1ProductDefinition to parseGRIB1Message.
type grib1ProductDefinition struct {
	table2Version               uint8
	center                      uint8
	subCenter                   uint8
	generatingProcessIdentifier uint8
	hasGridDescription          bool
	hasBitmap                   bool
	indicatorOfParameter        uint8
	indicatorOfTypeOfLevel      uint8
	levelValue                  uint16
	referenceTime               time.Time
	unitOfTimeRange             uint8
	p1                          uint8
	p2                          uint8
	timeRangeIndicator          uint8
	decimalScaleFactor          int16
}

// parseGRIB1Message parses a legacy GRIB edition 1 message and normalizes it
// onto the same *Message façade ParseMessage builds for edition 2: Section1,
// Section3, Section4, Section5, Section6 and Section7 are constructed
// directly from GRIB1's Product Definition Section (PDS), Grid Description
// Section (GDS), Bitmap Section (BMS) and Binary Data Section (BDS), reusing
// the edition-2 section/template/grid types rather than a parallel object
// model. Section2 has no GRIB1 analogue and is left nil.
//
// Grounded on the GRIB1 section layout (WMO Manual 306, edition 1); see
// grib1_grid.go, grib1_bitmap.go and grib1_data.go for the individual
// sections.
func parseGRIB1Message(buf []byte) (*Message, error) {
	if len(buf) < 8 {
		return nil, &ParseError{Section: 0, Offset: 0, Message: "GRIB1 indicator section requires at least 8 bytes"}
	}

	messageLength := uint64(buf[4])<<16 | uint64(buf[5])<<8 | uint64(buf[6])

	sec0 := &section.Section0{
		Discipline:    0,
		Edition:       1,
		MessageLength: messageLength,
	}

	offset := 8

	pds, pdsLen, err := parseGRIB1ProductDefinition(buf[offset:])
	if err != nil {
		return nil, &ParseError{Section: 1, Offset: offset, Message: "failed to parse GRIB1 product definition section", Underlying: err}
	}
	if pdsLen < 28 || offset+pdsLen > len(buf) {
		return nil, &MessageMalformedError{Offset: offset, Message: fmt.Sprintf("GRIB1 PDS length %d exceeds message", pdsLen)}
	}
	offset += pdsLen

	sec1 := &section.Section1{
		Length:                uint32(pdsLen),
		OriginatingCenter:     uint16(pds.center),
		OriginatingSubcenter:  uint16(pds.subCenter),
		MasterTablesVersion:   pds.table2Version,
		SignificanceOfRefTime: 0,
		ReferenceTime:         pds.referenceTime,
	}

	if !pds.hasGridDescription {
		return nil, &UnsupportedFeatureError{Feature: "GRIB1 message with no grid description section (catalogued grid reuse)"}
	}

	gridDef, gdsLen, err := parseGRIB1GridDescription(buf[offset:])
	if err != nil {
		if ufe, ok := err.(*UnsupportedFeatureError); ok {
			return nil, ufe
		}
		return nil, &ParseError{Section: 3, Offset: offset, Message: "failed to parse GRIB1 grid description section", Underlying: err}
	}
	if gdsLen < 28 || offset+gdsLen > len(buf) {
		return nil, &MessageMalformedError{Offset: offset, Message: fmt.Sprintf("GRIB1 GDS length %d exceeds message", gdsLen)}
	}
	offset += gdsLen
	numGridPoints := uint32(gridDef.NumPoints())

	sec3 := &section.Section3{
		NumDataPoints:  numGridPoints,
		TemplateNumber: uint16(gridDef.TemplateNumber()),
		Grid:           gridDef,
	}

	productTemplate := &product.Template40{
		ParameterCategory:       pds.table2Version,
		ParameterNumber:         pds.indicatorOfParameter,
		GeneratingProcess:       pds.generatingProcessIdentifier,
		FirstSurfaceType:        pds.indicatorOfTypeOfLevel,
		FirstSurfaceScaleFactor: 0,
		FirstSurfaceValue:       uint32(pds.levelValue),
		TimeRangeUnit:           pds.unitOfTimeRange,
		ForecastTime:            uint32(pds.p1),
	}

	sec4 := &section.Section4{
		ProductDefinitionTemplate: 0,
		Product:                   productTemplate,
	}

	var sec6 *section.Section6
	if pds.hasBitmap {
		b, bmLen, err := parseGRIB1Bitmap(buf[offset:], numGridPoints)
		if err != nil {
			if ufe, ok := err.(*UnsupportedFeatureError); ok {
				return nil, ufe
			}
			return nil, &ParseError{Section: 6, Offset: offset, Message: "failed to parse GRIB1 bitmap section", Underlying: err}
		}
		if bmLen < 6 || offset+bmLen > len(buf) {
			return nil, &MessageMalformedError{Offset: offset, Message: fmt.Sprintf("GRIB1 BMS length %d exceeds message", bmLen)}
		}
		offset += bmLen
		sec6 = b
	}

	numPackedValues := numGridPoints
	if sec6 != nil && sec6.HasBitmap() {
		numPackedValues = sec6.CountValidPoints()
	}

	template50, packedData, bdsLen, err := parseGRIB1BinaryData(buf[offset:], numPackedValues, pds.decimalScaleFactor)
	if err != nil {
		if ufe, ok := err.(*UnsupportedFeatureError); ok {
			return nil, ufe
		}
		return nil, &ParseError{Section: 5, Offset: offset, Message: "failed to parse GRIB1 binary data section", Underlying: err}
	}
	if bdsLen < 11 || offset+bdsLen > len(buf) {
		return nil, &MessageMalformedError{Offset: offset, Message: fmt.Sprintf("GRIB1 BDS length %d exceeds message", bdsLen)}
	}
	offset += bdsLen

	sec5 := &section.Section5{
		Length:                     uint32(bdsLen),
		NumDataValues:              numPackedValues,
		DataRepresentationTemplate: 0,
		Representation:             data.Representation(template50),
	}

	sec7 := &section.Section7{
		Length: uint32(5 + len(packedData)),
		Data:   packedData,
	}

	if offset+4 > len(buf) || string(buf[offset:offset+4]) != "7777" {
		return nil, &MessageMalformedError{Offset: offset, Message: "expected end marker \"7777\""}
	}

	return &Message{
		Section0: sec0,
		Section1: sec1,
		Section3: sec3,
		Section4: sec4,
		Section5: sec5,
		Section6: sec6,
		Section7: sec7,
		RawData:  buf,
	}, nil
}

// grib1Year resolves GRIB1's century/year-of-century reference time fields
// into a calendar year. yearOfCentury 1-100 counts years within the century
// named by centuryOfReferenceTimeOfData (20 for 1901-2000, 21 for 2001-2100, ...);
// 100 names the century's own final year rather than spilling into the next
// century.
func grib1Year(century, yearOfCentury uint8) int {
	if yearOfCentury == 100 {
		return int(century) * 100
	}
	return (int(century)-1)*100 + int(yearOfCentury)
}
