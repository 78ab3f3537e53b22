package data

import (
	"bytes"
	"fmt"
	"image"
	"math"

	jpeg2000 "github.com/mrjoshuak/go-jpeg2000"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template540 represents Data Representation Template 5.40: JPEG 2000 Code
// Stream Format.
//
// Values are packed as an n-bit grayscale image and compressed with the
// JPEG 2000 codestream format before the same (R + X*2^E)/10^D scaling
// applied by simple packing. The compression may be lossless or lossy
// depending on CompressionType.
type Template540 struct {
	ReferenceValue      float32 // Reference value (R)
	BinaryScaleFactor   int16   // Binary scale factor (E)
	DecimalScaleFactor  int16   // Decimal scale factor (D)
	NumBitsPerValue     uint8   // Number of bits per packed value (n)
	OriginalFieldType   uint8   // Type of original field values (Table 5.1)
	CompressionType     uint8   // 0: lossless, 1: lossy
	CompressionRatio    uint8   // Target compression ratio (255 if not applicable)
	NumberOfDataValues  uint32  // Number of data values to unpack
}

// ParseTemplate540 parses Data Representation Template 5.40.
//
// The template data should be at least 12 bytes for Template 5.40.
func ParseTemplate540(numDataValues uint32, data []byte) (*Template540, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("template 5.40 requires at least 12 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	referenceValue, _ := r.Float32()
	binaryScaleFactor, _ := r.Int16()
	decimalScaleFactor, _ := r.Int16()
	bitsPerValue, _ := r.Uint8()
	originalFieldType, _ := r.Uint8()
	compressionType, _ := r.Uint8()
	compressionRatio, _ := r.Uint8()

	return &Template540{
		ReferenceValue:     referenceValue,
		BinaryScaleFactor:  binaryScaleFactor,
		DecimalScaleFactor: decimalScaleFactor,
		NumBitsPerValue:    bitsPerValue,
		OriginalFieldType:  originalFieldType,
		CompressionType:    compressionType,
		CompressionRatio:   compressionRatio,
		NumberOfDataValues: numDataValues,
	}, nil
}

// TemplateNumber returns 40 for Template 5.40.
func (t *Template540) TemplateNumber() int {
	return 40
}

// NumDataValues returns the number of data values.
func (t *Template540) NumDataValues() uint32 {
	return t.NumberOfDataValues
}

// BitsPerValue returns the number of bits per value.
func (t *Template540) BitsPerValue() uint8 {
	return t.NumBitsPerValue
}

// Decode decompresses the JPEG 2000 codestream and applies scaling.
//
// If bitmap is provided, it must have length equal to the number of grid
// points. The output will have the same length as the bitmap, with
// undefined values set to NaN where bitmap is false.
func (t *Template540) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
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

	img, err := jpeg2000.Decode(bytes.NewReader(packedData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode JPEG 2000 codestream: %w", err)
	}

	packedValues, err := grayscalePixels(img)
	if err != nil {
		return nil, fmt.Errorf("template 5.40: %w", err)
	}

	if bitmap != nil {
		return t.applyScalingWithBitmap(packedValues, bitmap)
	}
	return t.applyScalingWithoutBitmap(packedValues), nil
}

// grayscalePixels extracts row-major pixel intensities from a decoded
// single-component image, the shape JPEG 2000 packing always produces for
// GRIB2 data.
func grayscalePixels(img image.Image) ([]uint32, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	values := make([]uint32, 0, width*height)

	switch pix := img.(type) {
	case *image.Gray16:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				values = append(values, uint32(pix.Gray16At(x, y).Y))
			}
		}
	case *image.Gray:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				values = append(values, uint32(pix.GrayAt(x, y).Y))
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, _, _, _ := img.At(x, y).RGBA()
				values = append(values, r)
			}
		}
	}

	return values, nil
}

// applyScalingWithoutBitmap applies scaling when all values are valid.
func (t *Template540) applyScalingWithoutBitmap(packedValues []uint32) []float64 {
	values := make([]float64, len(packedValues))
	for i, packed := range packedValues {
		values[i] = t.applyScaling(packed)
	}
	return values
}

// applyScalingWithBitmap applies scaling and bitmap.
func (t *Template540) applyScalingWithBitmap(packedValues []uint32, bitmap []bool) ([]float64, error) {
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
func (t *Template540) applyScaling(packedValue uint32) float64 {
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
func (t *Template540) String() string {
	kind := "lossless"
	if t.CompressionType != 0 {
		kind = "lossy"
	}
	return fmt.Sprintf("Template 5.40: JPEG 2000 (%s), %d values, R=%g, E=%d, D=%d",
		kind, t.NumberOfDataValues, t.ReferenceValue, t.BinaryScaleFactor, t.DecimalScaleFactor)
}
