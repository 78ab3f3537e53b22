package product

import "fmt"

// RawProduct is the fallback decoder for a product definition template
// number this package does not implement. It preserves the section bytes
// so the message can still be walked and framed correctly, but cannot
// expose template-specific fields like forecast time or surface type.
type RawProduct struct {
	TemplateNum int
	Data        []byte
}

// NewRawProduct wraps an unrecognized product definition template. The
// parameter category and number are always the first two octets of any
// product definition template, so they remain available even when the
// rest of the template is opaque.
func NewRawProduct(templateNumber int, data []byte) *RawProduct {
	raw := make([]byte, len(data))
	copy(raw, data)
	return &RawProduct{TemplateNum: templateNumber, Data: raw}
}

// TemplateNumber returns the unrecognized template number.
func (p *RawProduct) TemplateNumber() int {
	return p.TemplateNum
}

// GetParameterCategory returns the parameter category octet, which is
// fixed at octet 10 across every product definition template.
func (p *RawProduct) GetParameterCategory() uint8 {
	if len(p.Data) < 1 {
		return 0
	}
	return p.Data[0]
}

// GetParameterNumber returns the parameter number octet, which is fixed
// at octet 11 across every product definition template.
func (p *RawProduct) GetParameterNumber() uint8 {
	if len(p.Data) < 2 {
		return 0
	}
	return p.Data[1]
}

// String returns a human-readable description.
func (p *RawProduct) String() string {
	return fmt.Sprintf("unrecognized product definition template %d (%d bytes)", p.TemplateNum, len(p.Data))
}
