package data

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template541 represents Data Representation Template 5.41: PNG Image
// Format.
//
// Values are packed as an n-bit grayscale image and compressed losslessly
// with PNG before the same (R + X*2^E)/10^D scaling applied by simple
// packing. PNG decoding uses the standard library's image/png: it is a
// lossless, well-specified codec with no domain-specific behavior worth
// pulling a third-party decoder in for.
type Template541 struct {
	ReferenceValue     float32 // Reference value (R)
	BinaryScaleFactor  int16   // Binary scale factor (E)
	DecimalScaleFactor int16   // Decimal scale factor (D)
	NumBitsPerValue    uint8   // Number of bits per packed value (n)
	OriginalFieldType  uint8   // Type of original field values (Table 5.1)
	NumberOfDataValues uint32  // Number of data values to unpack
}

// ParseTemplate541 parses Data Representation Template 5.41.
//
// The template data should be at least 10 bytes for Template 5.41.
func ParseTemplate541(numDataValues uint32, data []byte) (*Template541, error) {
	if len(data) < 10 {
		return nil, fmt.Errorf("template 5.41 requires at least 10 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()

	return &Template541{
		ReferenceValue:     referenceValue,
		BinaryScaleFactor:  binaryScaleFactor,
		DecimalScaleFactor: decimalScaleFactor,
		NumBitsPerValue:    bitsPerValue,
		OriginalFieldType:  originalFieldType,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 41 for Template 5.41.
func (t *Template541) TemplateNumber() int {
	return 41
}

// NumDataValues returns the number of data values.
func (t *Template541) NumDataValues() uint32 {
	return t.NumberOfDataValues
}

// BitsPerValue returns the number of bits per value.
func (t *Template541) BitsPerValue() uint8 {
	return t.NumBitsPerValue
}

// Decode decompresses the PNG image and applies scaling.
//
// If bitmap is provided, it must have length equal to the number of grid
// points. The output will have the same length as the bitmap, with
// undefined values set to NaN where bitmap is false.
func (t *Template541) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	if len(packedData) == 0 {
		count := t.NumberOfDataValues
		if bitmap != nil {
			count = uint32(len(bitmap))
		}
		values := make([]float64, count)
		refValue := t.applyScaling(0)
		for i := range values {
			values[i] = refValue
		}
		return values, nil
	}

	img, err := png.Decode(bytes.NewReader(packedData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG image: %w", err)
	}

	packedValues, err := grayscalePixels(img)
	if err != nil {
		return nil, fmt.Errorf("template 5.41: %w", err)
	}

	if bitmap != nil {
		return t.applyScalingWithBitmap(packedValues, bitmap)
	}
	return t.applyScalingWithoutBitmap(packedValues), nil
}

// applyScalingWithoutBitmap applies scaling when all values are valid.
func (t *Template541) applyScalingWithoutBitmap(packedValues []uint32) []float64 {
	values := make([]float64, len(packedValues))
	for i, packed := range packedValues {
		values[i] = t.applyScaling(packed)
	}
	return values
}

// applyScalingWithBitmap applies scaling and bitmap.
func (t *Template541) applyScalingWithBitmap(packedValues []uint32, bitmap []bool) ([]float64, error) {
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
func (t *Template541) applyScaling(packedValue uint32) float64 {
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
func (t *Template541) String() string {
	return fmt.Sprintf("Template 5.41: PNG, %d values, R=%g, E=%d, D=%d",
		t.NumberOfDataValues, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
