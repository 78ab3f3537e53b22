package data

import (
	"fmt"
	"math"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template52 represents Data Representation Template 5.2: Complex Packing.
//
// This template is the group-splitting complex packing algorithm of
// Template 5.3, without the spatial differencing pass: values are grouped
// and each group is packed with only the bits needed for its range, but
// no first-order or second-order differencing is applied beforehand.
type Template52 struct {
	ReferenceValue         float32 // Reference value (R) - base value for all data
	BinaryScaleFactor      int16   // Binary scale factor (E)
	DecimalScaleFactor     int16   // Decimal scale factor (D)
	NumBitsPerValue        uint8   // Number of bits for each value (before grouping)
	OriginalFieldType      uint8   // Type of original field values (Table 5.1)
	GroupSplittingMethod   uint8   // Method used to split data into groups (Table 5.4)
	MissingValueManagement uint8   // Missing value management (Table 5.5)
	PrimaryMissingValue    float32 // Primary missing value substitute
	SecondaryMissingValue  float32 // Secondary missing value substitute
	NumberOfGroups         uint32  // Number of groups
	ReferenceGroupWidth    uint8   // Reference for group widths
	NumBitsGroupWidth      uint8   // Number of bits for group widths
	ReferenceGroupLength   uint32  // Reference for group lengths
	GroupLengthIncrement   uint8   // Increment for group lengths
	TrueLengthLastGroup    uint32  // True length of last group
	NumBitsGroupLength     uint8   // Number of bits for scaled group lengths
	NumberOfDataValues     uint32  // Total number of data values to unpack
}

// ParseTemplate52 parses Data Representation Template 5.2.
//
// The template data should be at least 36 bytes for Template 5.2.
func ParseTemplate52(numDataValues uint32, data []byte) (*Template52, error) {
	if len(data) < 36 {
		return nil, fmt.Errorf("template 5.2 requires at least 36 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()
	groupSplittingMethod, _ := r.Uint8()
	missingValueManagement, _ := r.Uint8()
	primaryMissingValue, _ := r.Float32()
	secondaryMissingValue, _ := r.Float32()
	numberOfGroups, _ := r.Uint32()
	referenceGroupWidth, _ := r.Uint8()
	numBitsGroupWidth, _ := r.Uint8()
	referenceGroupLength, _ := r.Uint32()
	groupLengthIncrement, _ := r.Uint8()
	trueLengthLastGroup, _ := r.Uint32()
	numBitsGroupLength, _ := r.Uint8()

	return &Template52{
		ReferenceValue:         referenceValue,
		BinaryScaleFactor:      binaryScaleFactor,
		DecimalScaleFactor:     decimalScaleFactor,
		NumBitsPerValue:        bitsPerValue,
		OriginalFieldType:      originalFieldType,
		GroupSplittingMethod:   groupSplittingMethod,
		MissingValueManagement: missingValueManagement,
		PrimaryMissingValue:    primaryMissingValue,
		SecondaryMissingValue:  secondaryMissingValue,
		NumberOfGroups:         numberOfGroups,
		ReferenceGroupWidth:    referenceGroupWidth,
		NumBitsGroupWidth:      numBitsGroupWidth,
		ReferenceGroupLength:   referenceGroupLength,
		GroupLengthIncrement:   groupLengthIncrement,
		TrueLengthLastGroup:    trueLengthLastGroup,
		NumBitsGroupLength:     numBitsGroupLength,
		NumberOfDataValues:     numDataValues,
	}, nil
}

// TemplateNumber returns 2 for Template 5.2.
func (t *Template52) TemplateNumber() int {
	return 2
}

// NumDataValues returns the number of data values.
func (t *Template52) NumDataValues() uint32 {
	return t.NumberOfDataValues
}

// BitsPerValue returns the number of bits per value.
func (t *Template52) BitsPerValue() uint8 {
	return t.NumBitsPerValue
}

// Decode unpacks data using complex packing (group splitting, no spatial
// differencing).
//
// Algorithm:
// 1. Read minimum values for each group
// 2. Unpack group widths and lengths
// 3. Unpack data values for each group
// 4. Apply scaling
//
// If bitmap is provided, it must have length equal to the number of grid
// points. The output will have the same length as the bitmap, with
// undefined values set to NaN where bitmap is false.
//
// MissingValueManagement, PrimaryMissingValue and SecondaryMissingValue are
// parsed but not consulted here: this decoder relies on Section 6's bitmap
// to mark absent points and does not additionally scan groups for the
// reserved all-ones-bits sentinel that primary/secondary missing value
// management defines.
func (t *Template52) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	if len(packedData) == 0 {
		return nil, fmt.Errorf("no packed data to decode")
	}

	bitReader := internal.NewBitReader(packedData)

	// Section 5's value count is the number of encoded values: with a
	// bitmap present it counts only the present points, and the bitmap
	// interleave below re-inflates to the full grid.
	ndata := t.NumberOfDataValues

	groupMinVals := make([]int32, t.NumberOfGroups)
	for i := uint32(0); i < t.NumberOfGroups; i++ {
		val, err := bitReader.ReadBits(int(t.NumBitsPerValue))
		if err != nil {
			return nil, fmt.Errorf("failed to read group min value %d: %w", i, err)
		}
		groupMinVals[i] = int32(val)
	}

	// Each phase of the group header starts on a byte boundary.
	bitReader.Align()

	groupWidths := make([]uint8, t.NumberOfGroups)
	if t.NumBitsGroupWidth > 0 {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			val, err := bitReader.ReadBits(int(t.NumBitsGroupWidth))
			if err != nil {
				return nil, fmt.Errorf("failed to read group width %d: %w", i, err)
			}
			groupWidths[i] = uint8(val) + t.ReferenceGroupWidth
		}
	} else {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			groupWidths[i] = t.ReferenceGroupWidth
		}
	}

	bitReader.Align()

	groupLengths := make([]uint32, t.NumberOfGroups)
	if t.NumBitsGroupLength > 0 {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			val, err := bitReader.ReadBits(int(t.NumBitsGroupLength))
			if err != nil {
				return nil, fmt.Errorf("failed to read group length %d: %w", i, err)
			}
			groupLengths[i] = t.ReferenceGroupLength + uint32(val)*uint32(t.GroupLengthIncrement)
		}
		if t.NumberOfGroups > 0 {
			groupLengths[t.NumberOfGroups-1] = t.TrueLengthLastGroup
		}
	} else {
		for i := uint32(0); i < t.NumberOfGroups; i++ {
			groupLengths[i] = t.ReferenceGroupLength
		}
		if t.NumberOfGroups > 0 {
			groupLengths[t.NumberOfGroups-1] = t.TrueLengthLastGroup
		}
	}

	bitReader.Align()

	numUnpackedVals := int(ndata)
	unpackedVals := make([]int32, numUnpackedVals)

	idx := 0
	for i := uint32(0); i < t.NumberOfGroups; i++ {
		groupWidth := groupWidths[i]
		groupLength := groupLengths[i]
		groupMin := groupMinVals[i]

		for j := uint32(0); j < groupLength; j++ {
			if idx >= numUnpackedVals {
				break
			}

			if groupWidth == 0 {
				unpackedVals[idx] = groupMin
			} else {
				val, err := bitReader.ReadBits(int(groupWidth))
				if err != nil {
					return nil, fmt.Errorf("failed to read value in group %d: %w", i, err)
				}
				unpackedVals[idx] = groupMin + int32(val)
			}
			idx++
		}
	}

	if bitmap != nil {
		return t.applyScalingWithBitmap(unpackedVals, bitmap)
	}
	return t.applyScalingWithoutBitmap(unpackedVals), nil
}

// applyScalingWithoutBitmap applies scaling when all values are valid.
func (t *Template52) applyScalingWithoutBitmap(packedValues []int32) []float64 {
	values := make([]float64, len(packedValues))
	for i, packed := range packedValues {
		values[i] = t.applyScaling(packed)
	}
	return values
}

// applyScalingWithBitmap applies scaling and bitmap.
func (t *Template52) applyScalingWithBitmap(packedValues []int32, bitmap []bool) ([]float64, error) {
	if len(packedValues) > len(bitmap) {
		return nil, fmt.Errorf("more packed values (%d) than bitmap entries (%d)",
			len(packedValues), len(bitmap))
	}

	values := make([]float64, len(bitmap))
	packedIdx := 0

	for i := range bitmap {
		if bitmap[i] {
			if packedIdx >= len(packedValues) {
				return nil, fmt.Errorf("bitmap indicates more valid points than packed values available")
			}
			values[i] = t.applyScaling(packedValues[packedIdx])
			packedIdx++
		} else {
			values[i] = math.NaN() // Missing value
		}
	}

	if packedIdx != len(packedValues) {
		return nil, fmt.Errorf("bitmap mismatch: used %d packed values, have %d",
			packedIdx, len(packedValues))
	}

	return values, nil
}

// applyScaling applies the scaling formula to a packed value.
//
// Formula: value = (R + X * 2^E) / 10^D
func (t *Template52) applyScaling(packedValue int32) float64 {
	value := float64(t.ReferenceValue)

	if packedValue != 0 {
		binaryScale := math.Pow(2.0, float64(t.BinaryScaleFactor))
		value += float64(packedValue) * binaryScale
	}

	if t.DecimalScaleFactor != 0 {
		decimalScale := math.Pow(10.0, float64(t.DecimalScaleFactor))
		value /= decimalScale
	}

	return value
}

// String returns a human-readable description.
func (t *Template52) String() string {
	return fmt.Sprintf("Template 5.2: Complex Packing, %d values, %d groups, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.NumberOfGroups, t.ReferenceValue,
		t.BinaryScaleFactor, t.DecimalScaleFactor)
}
