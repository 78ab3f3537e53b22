package grib

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/data"
	"github.com/mpiannucci/gribberish-sub001/internal"
)

// parseGRIB1BinaryData parses a GRIB1 Binary Data Section (BDS) and builds
// the data.Template50 (simple packing) that decodes it. GRIB1's simple
// packing formula is identical in shape to GRIB2 Template 5.0 (value = (R +
// X*2^E) / 10^D), but the decimal scale factor D lives in the Product
// Definition Section rather than the BDS, so the caller threads it in from
// parseGRIB1ProductDefinition.
//
// BDS structure (minimum 11 bytes):
//
//	Octets 1-3:   Length of BDS
//	Octet 4:      Flags: bit 1 spherical harmonic coefficients, bit 2
//	              complex/second-order packing, bit 3 original data were
//	              floating point, bits 4-8 number of unused bits at the end
//	Octets 5-6:   Binary scale factor (E), sign-magnitude
//	Octets 7-10:  Reference value (R), IBM System/360 floating point
//	Octet 11:     Number of bits per packed value (N)
//	Octets 12-n:  Packed data values
//
// Only grid-point data with simple packing is supported; spherical harmonic
// and complex/second-order packed sections are reported as unsupported
// rather than misdecoded.
func parseGRIB1BinaryData(raw []byte, numPackedValues uint32, decimalScaleFactor int16) (*data.Template50, []byte, int, error) {
	if len(raw) < 11 {
		return nil, nil, 0, fmt.Errorf("GRIB1 BDS requires at least 11 bytes, got %d", len(raw))
	}

	r := internal.NewBitReader(raw)

	length, err := r.ReadBytes(3)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to read BDS length: %w", err)
	}

	flags, _ := r.ReadBytes(1)
	if flags&0x80 != 0 {
		return nil, nil, 0, &UnsupportedFeatureError{Feature: "GRIB1 spherical harmonic coefficient binary data"}
	}
	if flags&0x40 != 0 {
		return nil, nil, 0, &UnsupportedFeatureError{Feature: "GRIB1 complex/second-order packed binary data"}
	}
	var originalFieldType uint8
	if flags&0x20 != 0 {
		originalFieldType = 1
	}

	binaryScaleFactor, err := r.ReadSignedBytesSignMagnitude(2)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to read BDS binary scale factor: %w", err)
	}

	refBytes, err := r.ReadBytes(4)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to read BDS reference value: %w", err)
	}
	referenceValue := internal.IBMFloat32([]byte{
		byte(refBytes >> 24), byte(refBytes >> 16), byte(refBytes >> 8), byte(refBytes),
	})

	bitsPerValue, err := r.ReadBytes(1)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to read BDS bits per value: %w", err)
	}

	const headerLen = 11
	if int(length) > len(raw) {
		return nil, nil, 0, fmt.Errorf("BDS length %d exceeds available %d bytes", length, len(raw))
	}
	packedData := raw[headerLen:length]

	template := &data.Template50{
		ReferenceValue:     float32(referenceValue),
		BinaryScaleFactor:  int16(binaryScaleFactor),
		DecimalScaleFactor: decimalScaleFactor,
		NumBitsPerValue:    uint8(bitsPerValue),
		OriginalFieldType:  originalFieldType,
		NumberOfDataValues: numPackedValues,
	}

	return template, packedData, int(length), nil
}
