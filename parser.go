package grib

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/section"
)

// MessageBoundary records the location and size of a message within a buffer
// that may hold several concatenated GRIB messages.
type MessageBoundary struct {
	Start  int    // Byte offset where the message starts
	Length uint64 // Length of the message in bytes
	Index  int    // Sequential index of this message in the buffer (0-based)
}

// minEnvelopeBytes is the number of bytes that must remain at a candidate
// "GRIB" marker for its 16-byte edition 2 indicator section to be read.
const minEnvelopeBytes = 16

// scanAttempt performs one envelope-validation attempt starting at offset.
// On success it returns the boundary of the message found there. On failure
// it returns the error that made the attempt fail; the caller advances a
// fixed number of bytes and tries again, per the iterator's recovery policy.
func scanAttempt(data []byte, offset, index int) (MessageBoundary, error) {
	if offset+4 > len(data) {
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  offset,
			Message: "not enough data remaining for a GRIB magic number",
		}
	}

	if data[offset] != 'G' || data[offset+1] != 'R' || data[offset+2] != 'I' || data[offset+3] != 'B' {
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  offset,
			Message: fmt.Sprintf("expected GRIB magic number, found %q", string(data[offset:offset+4])),
		}
	}

	if offset+minEnvelopeBytes > len(data) {
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  offset,
			Message: fmt.Sprintf("incomplete data at end of buffer: %d bytes remaining, need at least %d", len(data)-offset, minEnvelopeBytes),
		}
	}

	edition := data[offset+7]

	var messageLength uint64
	switch edition {
	case 2:
		sec0, err := section.ParseSection0(data[offset : offset+16])
		if err != nil {
			return MessageBoundary{}, &ParseError{
				Section:    0,
				Offset:     offset,
				Message:    "failed to parse Section 0",
				Underlying: err,
			}
		}
		messageLength = sec0.MessageLength
	case 1:
		if offset+8 > len(data) {
			return MessageBoundary{}, &MessageMalformedError{Offset: offset, Message: "incomplete GRIB1 indicator section"}
		}
		messageLength = uint64(data[offset+4])<<16 | uint64(data[offset+5])<<8 | uint64(data[offset+6])
	default:
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  offset,
			Message: fmt.Sprintf("unsupported GRIB edition %d", edition),
		}
	}

	messageEnd := offset + int(messageLength)
	if messageLength == 0 || messageEnd > len(data) {
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  offset,
			Message: fmt.Sprintf("message length %d exceeds available data (have %d bytes from offset %d)", messageLength, len(data)-offset, offset),
		}
	}

	endMarker := data[messageEnd-4 : messageEnd]
	if string(endMarker) != "7777" {
		return MessageBoundary{}, &MessageMalformedError{
			Offset:  messageEnd - 4,
			Message: fmt.Sprintf("expected end marker \"7777\", found %q", string(endMarker)),
		}
	}

	return MessageBoundary{Start: offset, Length: messageLength, Index: index}, nil
}

// recoveryStep is the number of bytes the iterator advances past a failed
// "GRIB" marker before retrying, so that junk between messages cannot stall
// iteration indefinitely.
const recoveryStep = 4

// FindMessagesWithErrors scans data for message boundaries, recovering from
// malformed entries instead of aborting: each envelope-validation failure is
// recorded and the scan resumes 4 bytes past the offset it was attempted at.
//
// The set of boundaries returned is exactly the set of offsets at which a
// complete, envelope-valid message was found; it does not depend on whatever
// garbage separates them.
func FindMessagesWithErrors(data []byte) ([]MessageBoundary, []error) {
	var boundaries []MessageBoundary
	var errs []error

	offset := 0
	index := 0
	for offset < len(data) {
		remaining := data[offset:]
		gribAt := indexOfGRIB(remaining)
		if gribAt < 0 {
			break
		}
		offset += gribAt

		boundary, err := scanAttempt(data, offset, index)
		if err != nil {
			errs = append(errs, err)
			offset += recoveryStep
			continue
		}

		boundaries = append(boundaries, boundary)
		offset += int(boundary.Length)
		index++
	}

	return boundaries, errs
}

// FindMessages scans data for message boundaries, silently skipping any
// region that does not validate as a well-formed message. Use
// FindMessagesWithErrors to also observe what was skipped and why.
func FindMessages(data []byte) ([]MessageBoundary, error) {
	boundaries, _ := FindMessagesWithErrors(data)
	return boundaries, nil
}

func indexOfGRIB(data []byte) int {
	for i := 0; i+4 <= len(data); i++ {
		if data[i] == 'G' && data[i+1] == 'R' && data[i+2] == 'I' && data[i+3] == 'B' {
			return i
		}
	}
	return -1
}

// SplitMessages splits data into individual message byte slices using
// FindMessages.
func SplitMessages(data []byte) ([][]byte, error) {
	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, err
	}

	messages := make([][]byte, len(boundaries))
	for i, boundary := range boundaries {
		messages[i] = data[boundary.Start : boundary.Start+int(boundary.Length)]
	}

	return messages, nil
}

// ValidateMessageStructure performs a basic envelope validation of a single
// GRIB message: magic number, Section 0, end marker, and overall length.
// It does not parse the full message content or validate every section.
func ValidateMessageStructure(data []byte) error {
	if len(data) < 16 {
		return &MessageMalformedError{
			Offset:  0,
			Message: fmt.Sprintf("message too short: %d bytes, minimum is 16", len(data)),
		}
	}

	sec0, err := section.ParseSection0(data[0:16])
	if err != nil {
		return &ParseError{
			Section:    0,
			Offset:     0,
			Message:    "invalid Section 0",
			Underlying: err,
		}
	}

	if uint64(len(data)) != sec0.MessageLength {
		return &MessageMalformedError{
			Offset: 0,
			Message: fmt.Sprintf("message length mismatch: Section 0 says %d bytes, but have %d bytes",
				sec0.MessageLength, len(data)),
		}
	}

	endMarker := data[len(data)-4:]
	if string(endMarker) != "7777" {
		return &MessageMalformedError{
			Offset:  len(data) - 4,
			Message: fmt.Sprintf("expected end marker \"7777\", found %q", string(endMarker)),
		}
	}

	return nil
}
