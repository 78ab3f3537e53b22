package data

import "fmt"

// RawRepresentation is the fallback decoder for a data representation
// template number this package does not implement. It preserves the
// section bytes and declared value count so the message can still be
// walked and framed correctly, but Decode always fails: there is no way
// to recover numeric values without knowing the packing scheme.
type RawRepresentation struct {
	TemplateNum        int
	NumberOfDataValues uint32
	Data               []byte
}

// NewRawRepresentation wraps an unrecognized data representation template.
func NewRawRepresentation(templateNumber int, numDataValues uint32, data []byte) *RawRepresentation {
	raw := make([]byte, len(data))
	copy(raw, data)
	return &RawRepresentation{TemplateNum: templateNumber, NumberOfDataValues: numDataValues, Data: raw}
}

// TemplateNumber returns the unrecognized template number.
func (r *RawRepresentation) TemplateNumber() int {
	return r.TemplateNum
}

// NumDataValues returns the declared number of data values.
func (r *RawRepresentation) NumDataValues() uint32 {
	return r.NumberOfDataValues
}

// BitsPerValue returns 0: the packing width is unknown for an
// unrecognized template.
func (r *RawRepresentation) BitsPerValue() uint8 {
	return 0
}

// Decode always fails: an unrecognized packing scheme cannot be unpacked.
func (r *RawRepresentation) Decode(packedData []byte, bitmap []bool) ([]float64, error) {
	return nil, fmt.Errorf("cannot decode data: unsupported data representation template %d", r.TemplateNum)
}

// String returns a human-readable description.
func (r *RawRepresentation) String() string {
	return fmt.Sprintf("unrecognized data representation template %d (%d values, %d bytes)",
		r.TemplateNum, r.NumberOfDataValues, len(r.Data))
}
