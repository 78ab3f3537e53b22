// Package grib provides a clean, idiomatic Go library for reading GRIB
// (GRIdded Binary) meteorological messages, editions 1 and 2.
//
// Basic usage:
//
//	data, err := os.ReadFile("forecast.grib2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	messages, err := grib.ParseMessages(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range messages {
//	    values, err := m.Data()
//	    if err != nil {
//	        continue
//	    }
//	    fmt.Printf("%s: %d values\n", m.Key(), len(values))
//	}
//
// Performance:
//
// This library decodes concatenated messages in parallel using a bounded
// worker pool, which pays off on multi-message files. Use
// ParseMessagesWithContext for cancellation support between messages:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	messages, err := grib.ParseMessagesWithContext(ctx, data, 0)
package grib

import "fmt"

// ParseError wraps a lower-level failure with the section and byte offset at
// which it occurred. It implements Unwrap so errors.Is/errors.As reach the
// underlying cause.
type ParseError struct {
	Section    int    // Which section (0-7), or -1 if message-level
	Offset     int    // Byte offset in the buffer where the error occurred
	Message    string // Description of the error
	Underlying error  // Wrapped error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Section == -1 {
		if e.Underlying != nil {
			return fmt.Sprintf("at offset %d: %s: %v", e.Offset, e.Message, e.Underlying)
		}
		return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
	}

	if e.Underlying != nil {
		return fmt.Sprintf("section %d at offset %d: %s: %v",
			e.Section, e.Offset, e.Message, e.Underlying)
	}
	return fmt.Sprintf("section %d at offset %d: %s",
		e.Section, e.Offset, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// MessageMalformedError indicates that envelope checks failed: a missing
// "GRIB"/"7777" marker, a section-length mismatch, or an unsupported
// edition number.
type MessageMalformedError struct {
	Offset  int
	Message string
}

// Error implements the error interface.
func (e *MessageMalformedError) Error() string {
	return fmt.Sprintf("malformed message at offset %d: %s", e.Offset, e.Message)
}

// UnknownTemplateError indicates that a section parsed successfully but its
// template number is not one this decoder implements, so metadata that
// depends on the template's layout cannot be produced.
type UnknownTemplateError struct {
	Section        int // Which section (3=grid, 4=product, 5=data representation)
	TemplateNumber int
}

// Error implements the error interface.
func (e *UnknownTemplateError) Error() string {
	sectionName := "unknown"
	switch e.Section {
	case 3:
		sectionName = "grid definition"
	case 4:
		sectionName = "product definition"
	case 5:
		sectionName = "data representation"
	}

	return fmt.Sprintf("unknown %s template %d in section %d",
		sectionName, e.TemplateNumber, e.Section)
}

// UnsupportedFeatureError indicates a recognized but intentionally
// unimplemented feature: a predefined bitmap, spatial-differencing order
// above 2, or a matrix-coordinate/spherical-harmonic product.
type UnsupportedFeatureError struct {
	Feature string
}

// Error implements the error interface.
func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("unsupported feature: %s", e.Feature)
}

// DecodeError indicates a packing-codec-internal failure, such as a corrupt
// JPEG2000 or PNG codestream in Section 7.
type DecodeError struct {
	Codec      string
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s codec: %s: %v", e.Codec, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s codec: %s", e.Codec, e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Underlying
}

// InvalidFieldError indicates a field byte-range falls outside its section.
type InvalidFieldError struct {
	Path string
}

// Error implements the error interface.
func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s: out of bounds", e.Path)
}

// ParseParameterError indicates an abbreviation string not recognized by a
// parameter lookup.
type ParseParameterError struct {
	Text string
}

// Error implements the error interface.
func (e *ParseParameterError) Error() string {
	return fmt.Sprintf("unrecognized parameter: %q", e.Text)
}
