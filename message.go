package grib

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mpiannucci/gribberish-sub001/product"
	"github.com/mpiannucci/gribberish-sub001/section"
	"github.com/mpiannucci/gribberish-sub001/tables"
)

// Message represents a complete parsed GRIB2 message.
//
// A GRIB2 message contains all the information needed to describe and
// decode a single meteorological field, including metadata, grid definition,
// product description, and the packed data values.
type Message struct {
	// Section0 contains the indicator section with discipline and message length
	Section0 *section.Section0

	// Section1 contains identification information (center, time, etc.)
	Section1 *section.Section1

	// Section2 contains local use data (optional, may be nil)
	Section2 *section.Section2

	// Section3 contains the grid definition
	Section3 *section.Section3

	// Section4 contains the product definition
	Section4 *section.Section4

	// Section5 contains the data representation template
	Section5 *section.Section5

	// Section6 contains the bitmap (optional, may be nil if all points valid)
	Section6 *section.Section6

	// Section7 contains the packed data
	Section7 *section.Section7

	// RawData is the original message bytes (for debugging/analysis)
	RawData []byte
}

// ParseMessage parses a complete GRIB2 message from raw bytes.
//
// The input data should contain a single complete GRIB2 message starting
// with "GRIB" and ending with "7777".
//
// This function parses all 8 sections of the message:
//   - Section 0: Indicator (discipline, message length)
//   - Section 1: Identification (center, reference time, etc.)
//   - Section 2: Local use (optional)
//   - Section 3: Grid definition
//   - Section 4: Product definition
//   - Section 5: Data representation
//   - Section 6: Bitmap
//   - Section 7: Data
//   - Section 8: End marker "7777"
//
// Note: Currently assumes one field per message. Multi-field messages
// (where sections 3-7 repeat) are not yet supported.
func ParseMessage(data []byte) (*Message, error) {
	if err := ValidateMessageStructure(data); err != nil {
		return nil, err
	}

	if len(data) >= 8 && data[7] == 1 {
		return parseGRIB1Message(data)
	}

	msg := &Message{
		RawData: data,
	}

	offset := 0

	// Parse Section 0 (always 16 bytes)
	sec0, err := section.ParseSection0(data[offset : offset+16])
	if err != nil {
		return nil, &ParseError{
			Section:    0,
			Offset:     offset,
			Message:    "failed to parse Section 0",
			Underlying: err,
		}
	}
	msg.Section0 = sec0
	offset += 16

	// Parse Section 1 (variable length)
	sec1, err := parseSectionAt(data, offset, 1)
	if err != nil {
		return nil, err
	}
	msg.Section1 = sec1.(*section.Section1)
	offset += int(sec1.(*section.Section1).Length)

	// Check for optional Section 2
	if offset < len(data)-4 && data[offset+4] == 2 {
		sec2, err := parseSectionAt(data, offset, 2)
		if err != nil {
			return nil, err
		}
		msg.Section2 = sec2.(*section.Section2)
		offset += int(sec2.(*section.Section2).Length)
	}

	// Parse Section 3 (Grid Definition)
	sec3, err := parseSectionAt(data, offset, 3)
	if err != nil {
		return nil, err
	}
	msg.Section3 = sec3.(*section.Section3)
	offset += int(sec3.(*section.Section3).Length)

	// Parse Section 4 (Product Definition)
	sec4, err := parseSectionAt(data, offset, 4)
	if err != nil {
		return nil, err
	}
	msg.Section4 = sec4.(*section.Section4)
	offset += int(sec4.(*section.Section4).Length)

	// Parse Section 5 (Data Representation)
	sec5, err := parseSectionAt(data, offset, 5)
	if err != nil {
		return nil, err
	}
	msg.Section5 = sec5.(*section.Section5)
	offset += int(sec5.(*section.Section5).Length)

	// Parse Section 6 (Bitmap)
	// Section 6 needs the number of grid points from Section 3
	numGridPoints := uint32(msg.Section3.NumDataPoints)
	sec6Data := extractSectionData(data, offset, 6)
	if sec6Data == nil {
		return nil, &ParseError{
			Section: 6,
			Offset:  offset,
			Message: "failed to extract section 6 data",
		}
	}
	sec6, err := section.ParseSection6(sec6Data, numGridPoints)
	if err != nil {
		if stderrors.Is(err, section.ErrPredefinedBitmap) {
			return nil, &UnsupportedFeatureError{Feature: "predefined bitmap (indicator 254)"}
		}
		return nil, &ParseError{
			Section:    6,
			Offset:     offset,
			Message:    "failed to parse Section 6",
			Underlying: err,
		}
	}
	msg.Section6 = sec6
	offset += int(sec6.Length)

	// Parse Section 7 (Data)
	sec7, err := parseSectionAt(data, offset, 7)
	if err != nil {
		return nil, err
	}
	msg.Section7 = sec7.(*section.Section7)
	offset += int(sec7.(*section.Section7).Length)

	// The remaining 4 bytes should be the end marker "7777"
	// (already validated by ValidateMessageStructure)

	return msg, nil
}

// extractSectionData reads a section's length and extracts its data.
func extractSectionData(data []byte, offset int, expectedSection uint8) []byte {
	if offset+5 > len(data) {
		return nil
	}

	// Read section length (first 4 bytes)
	sectionLength := uint32(data[offset])<<24 | uint32(data[offset+1])<<16 |
		uint32(data[offset+2])<<8 | uint32(data[offset+3])

	// Validate we have enough data
	if offset+int(sectionLength) > len(data) {
		return nil
	}

	return data[offset : offset+int(sectionLength)]
}

// parseSectionAt reads a section length and parses the appropriate section type.
func parseSectionAt(data []byte, offset int, expectedSection uint8) (interface{}, error) {
	sectionData := extractSectionData(data, offset, expectedSection)
	if sectionData == nil {
		return nil, &ParseError{
			Section: int(expectedSection),
			Offset:  offset,
			Message: fmt.Sprintf("failed to extract section %d data", expectedSection),
		}
	}

	// Parse based on section type
	var result interface{}
	var err error

	switch expectedSection {
	case 1:
		result, err = section.ParseSection1(sectionData)
	case 2:
		result, err = section.ParseSection2(sectionData)
	case 3:
		result, err = section.ParseSection3(sectionData)
	case 4:
		result, err = section.ParseSection4(sectionData)
	case 5:
		result, err = section.ParseSection5(sectionData)
	case 7:
		result, err = section.ParseSection7(sectionData)
	default:
		return nil, &ParseError{
			Section: int(expectedSection),
			Offset:  offset,
			Message: fmt.Sprintf("unsupported section number: %d", expectedSection),
		}
	}

	if err != nil {
		if templateNumber, ok := unsupportedTemplateNumber(err); ok {
			return nil, &UnknownTemplateError{Section: int(expectedSection), TemplateNumber: templateNumber}
		}
		return nil, &ParseError{
			Section:    int(expectedSection),
			Offset:     offset,
			Message:    fmt.Sprintf("failed to parse section %d", expectedSection),
			Underlying: err,
		}
	}

	return result, nil
}

// unsupportedTemplateNumber recovers the template number from a section
// parser's "unsupported ... template: N" error text, so the façade can
// surface the closed UnknownTemplateError type instead of an opaque wrap.
func unsupportedTemplateNumber(err error) (int, bool) {
	msg := err.Error()
	idx := strings.LastIndex(msg, ": ")
	if idx < 0 || !strings.Contains(msg, "template") {
		return 0, false
	}
	var n int
	if _, scanErr := fmt.Sscanf(msg[idx+2:], "%d", &n); scanErr != nil {
		return 0, false
	}
	return n, true
}

// DecodeData decodes the data values from this message.
//
// Returns a slice of float64 values in grid scan order.
// Missing/undefined values are represented as NaN.
//
// This method combines the data representation (Section 5), bitmap (Section 6),
// and packed data (Section 7) to produce the final decoded values.
func (m *Message) DecodeData() ([]float64, error) {
	if m.Section5 == nil || m.Section5.Representation == nil {
		return nil, fmt.Errorf("message has no data representation (Section 5)")
	}

	if m.Section7 == nil {
		return nil, fmt.Errorf("message has no data section (Section 7)")
	}

	// Get bitmap if present
	var bitmap []bool
	if m.Section6 != nil && m.Section6.HasBitmap() {
		bitmap = m.Section6.Bitmap
	}

	// Decode using the representation template
	values, err := m.Section5.Representation.Decode(m.Section7.Data, bitmap)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode data")
	}

	return values, nil
}

// Coordinates returns the lat/lon coordinates for this message's grid.
//
// Returns two slices (latitudes and longitudes) in grid scan order,
// matching the order of values returned by Data().
func (m *Message) Coordinates() (latitudes, longitudes []float64, err error) {
	if m.Section3 == nil || m.Section3.Grid == nil {
		return nil, nil, fmt.Errorf("message has no grid definition (Section 3)")
	}

	lats, lons := m.Section3.Grid.Coordinates()
	return lats, lons, nil
}

// forecastOffset extracts the (Table 4.4 unit, offset) pair from whichever
// product template this message carries. ok is false for product templates
// that don't carry a forecast time.
func (m *Message) forecastOffset() (unit int, offset int, ok bool) {
	if m.Section4 == nil || m.Section4.Product == nil {
		return 0, 0, false
	}
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	case *product.Template41:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	case *product.Template42:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	case *product.Template48:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	case *product.Template411:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	case *product.Template412:
		return int(p.TimeRangeUnit), int(p.ForecastTime), true
	default:
		return 0, 0, false
	}
}

// ForecastTime returns the valid time of this message's field: the
// reference time advanced by the product definition's forecast offset.
// Asking for a forecast time on an unrecognized product template is an
// UnknownTemplateError; metadata walks that never touch the template do
// not fail.
func (m *Message) ForecastTime() (time.Time, error) {
	if m.Section1 == nil {
		return time.Time{}, &MessageMalformedError{Offset: 0, Message: "message has no identification section"}
	}

	unit, offset, ok := m.forecastOffset()
	if !ok {
		templateNumber := -1
		if m.Section4 != nil {
			templateNumber = int(m.Section4.ProductDefinitionTemplate)
		}
		return time.Time{}, &UnknownTemplateError{Section: 4, TemplateNumber: templateNumber}
	}

	t, known := tables.AddForecastTime(m.Section1.ReferenceTime, unit, offset)
	if !known {
		return time.Time{}, &UnsupportedFeatureError{Feature: fmt.Sprintf("forecast time range unit %d", unit)}
	}
	return t, nil
}

// Data returns the flat, rescaled grid values in row-major scan order.
// Positions the bitmap marks absent are NaN. It is an alias for DecodeData,
// named to match the rest of the façade.
func (m *Message) Data() ([]float64, error) {
	return m.DecodeData()
}

// DataGrid returns the message's values reshaped into rows-by-columns,
// respecting the grid's scanning order.
func (m *Message) DataGrid() ([][]float64, error) {
	if m.Section3 == nil || m.Section3.Grid == nil {
		return nil, fmt.Errorf("message has no grid definition (Section 3)")
	}

	flat, err := m.Data()
	if err != nil {
		return nil, err
	}

	rows, cols := m.Section3.Grid.Dims()
	if rows*cols != len(flat) {
		return nil, fmt.Errorf("grid dimensions %dx%d do not match %d decoded values", rows, cols, len(flat))
	}

	grid := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		grid[r] = flat[r*cols : (r+1)*cols]
	}
	return grid, nil
}

// DataAtLocation returns the decoded value nearest to the given latitude and
// longitude, using the grid's inverse-projected coordinate arrays to find
// the closest grid point by great-circle-agnostic Euclidean distance in
// degree space.
func (m *Message) DataAtLocation(lat, lon float64) (float64, error) {
	values, err := m.Data()
	if err != nil {
		return 0, err
	}

	lats, lons, err := m.Coordinates()
	if err != nil {
		return 0, err
	}

	if len(lats) != len(values) {
		return 0, fmt.Errorf("coordinate count %d does not match value count %d", len(lats), len(values))
	}

	for lon < 0 {
		lon += 360
	}
	for lon >= 360 {
		lon -= 360
	}

	best := -1
	bestDist := math.Inf(1)
	for i := range lats {
		dLat := lats[i] - lat
		dLon := lons[i] - lon
		dist := dLat*dLat + dLon*dLon
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("grid has no points")
	}
	return values[best], nil
}

// Key returns a stable identifier for this message's variable, level, and
// generating process, suitable as a map key for grouping same-field
// messages across forecast times in a multi-message file.
func (m *Message) Key() string {
	if m.Section0 == nil || m.Section4 == nil || m.Section4.Product == nil {
		return "unknown"
	}

	variable := m.variableAbbreviation()

	levelType, levelValue := m.surfaceLevel()
	levelName := m.levelName(levelType)

	generatingProcess := 0
	statistic := ""
	ensemble := ""
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		generatingProcess = int(p.GeneratingProcess)
	case *product.Template41:
		generatingProcess = int(p.GeneratingProcess)
		ensemble = fmt.Sprintf("/perturb%d", p.PerturbationNumber)
	case *product.Template42:
		generatingProcess = int(p.GeneratingProcess)
		ensemble = fmt.Sprintf("/derived%d", p.DerivedForecastType)
	case *product.Template48:
		generatingProcess = int(p.GeneratingProcess)
		statistic = "/stat"
	case *product.Template411:
		generatingProcess = int(p.GeneratingProcess)
		statistic = "/stat"
		ensemble = fmt.Sprintf("/perturb%d", p.PerturbationNumber)
	case *product.Template412:
		generatingProcess = int(p.GeneratingProcess)
		statistic = "/stat"
		ensemble = fmt.Sprintf("/derived%d", p.DerivedForecastType)
	}

	key := fmt.Sprintf("%s/%s=%.3f/gp%d", variable, levelName, levelValue, generatingProcess)
	if statistic != "" {
		key += statistic
	}
	if ensemble != "" {
		key += ensemble
	}
	return key
}

// variableAbbreviation returns the wgrib2-style short name for this
// message's parameter, falling back to the full WMO table name for
// parameters with no standard abbreviation.
func (m *Message) variableAbbreviation() string {
	if m.Section0.Edition == 1 {
		center := int(m.Section1.OriginatingCenter)
		table2Version := int(m.Section4.Product.GetParameterCategory())
		indicatorOfParameter := int(m.Section4.Product.GetParameterNumber())
		if abbrev := tables.GetGRIB1ParameterAbbreviation(center, table2Version, indicatorOfParameter); abbrev != "" {
			return abbrev
		}
		return tables.GetGRIB1ParameterName(center, table2Version, indicatorOfParameter)
	}

	id := ParameterID{
		Discipline: m.Section0.Discipline,
		Category:   m.Section4.Product.GetParameterCategory(),
		Number:     m.Section4.Product.GetParameterNumber(),
	}
	if short := id.ShortName(); short != "" {
		return short
	}
	return id.String()
}

// surfaceLevel extracts the first fixed surface's type and scaled value
// from whichever product template this message carries.
func (m *Message) surfaceLevel() (levelType int, levelValue float64) {
	if m.Section4 == nil || m.Section4.Product == nil {
		return 0, 0
	}
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template41:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template42:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template48:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template411:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template412:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	default:
		return 0, 0
	}
}

// levelName resolves a fixed-surface type code to its display name,
// selecting GRIB1 Table 3 or GRIB2 Table 4.5 by message edition: the two
// tables assign different meanings to the same numeric codes (e.g. GRIB1
// 102 is "Mean sea level" while GRIB2's 102 is "Specific altitude above
// mean sea level"), so the edition must be checked rather than always
// consulting the GRIB2 table.
func (m *Message) levelName(levelType int) string {
	if m.Section0 != nil && m.Section0.Edition == 1 {
		return tables.GetGRIB1LevelName(levelType)
	}
	return tables.GetLevelName(levelType)
}

// levelUnit resolves a fixed-surface type code to its unit, selecting
// GRIB1 Table 3 or GRIB2 Table 4.5 by message edition (see levelName).
func (m *Message) levelUnit(levelType int) string {
	if m.Section0 != nil && m.Section0.Edition == 1 {
		return tables.GetGRIB1LevelUnit(levelType)
	}
	return tables.GetLevelUnit(levelType)
}

// AsIdx emits a one-line textual index entry for this message, in the
// field/offset/reference-time/variable/level format used by NCEP's
// "wgrib2 -s" inventories.
func (m *Message) AsIdx(index int, byteOffset int) string {
	if m.Section0 == nil || m.Section1 == nil || m.Section4 == nil || m.Section4.Product == nil {
		return fmt.Sprintf("%d:%d:unknown", index, byteOffset)
	}

	refDate := m.Section1.ReferenceTime.Format("2006010215")

	variable := m.variableAbbreviation()

	levelType, levelValue := m.surfaceLevel()
	levelDesc := fmt.Sprintf("%.0f %s", levelValue, m.levelUnit(levelType))

	timeDesc := "anl"
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	case *product.Template41:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	case *product.Template42:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	case *product.Template48:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	case *product.Template411:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	case *product.Template412:
		if p.ForecastTime > 0 {
			timeDesc = fmt.Sprintf("%d hour fcst", p.ForecastTime)
		}
	}

	return fmt.Sprintf("%d:%d:d=%s:%s:%s:%s:",
		index, byteOffset, refDate, variable, levelDesc, timeDesc)
}

// String returns a human-readable summary of the message.
func (m *Message) String() string {
	if m.Section0 == nil {
		return "Invalid GRIB2 message"
	}

	discipline := "Unknown"
	if m.Section0 != nil {
		discipline = m.Section0.DisciplineName()
	}

	grid := "Unknown"
	if m.Section3 != nil && m.Section3.Grid != nil {
		grid = m.Section3.Grid.String()
	}

	product := "Unknown"
	if m.Section4 != nil && m.Section4.Product != nil {
		product = m.Section4.Product.String()
	}

	return fmt.Sprintf("GRIB2 Message: Discipline=%s, Grid=%s, Product=%s",
		discipline, grid, product)
}
