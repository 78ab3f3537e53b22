// Package testutil provides utilities for testing GRIB2 parsing against reference implementations.
package testutil

import (
	"fmt"
	"os"
	"strings"

	grib "github.com/mpiannucci/gribberish-sub001"
)

// ParseGrib parses a GRIB2 file using this repository's own decoder.
//
// Returns a map of field keys ("field:level") to FieldData structures, built
// entirely from the package's public API (ParseMessagesWithOptions, Data,
// Coordinates, AsIdx) so this adapter exercises exactly what a caller of the
// library sees.
func ParseGrib(gribFile string) (map[string]*FieldData, error) {
	raw, err := os.ReadFile(gribFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}

	messages, err := grib.ParseMessagesWithOptions(raw,
		grib.WithSequential(),
		grib.WithSkipErrors())
	if err != nil {
		return nil, fmt.Errorf("grib parse failed: %v", err)
	}

	fieldMap := make(map[string]*FieldData, len(messages))

	for i, msg := range messages {
		values, err := msg.Data()
		if err != nil {
			continue
		}
		latitudes, longitudes, err := msg.Coordinates()
		if err != nil {
			continue
		}

		// AsIdx's format is "index:offset:d=refdate:field:level:time:" -
		// reuse it instead of duplicating the private level/variable lookup
		// message.go already does for Key()/AsIdx().
		idx := msg.AsIdx(i, 0)
		parts := strings.Split(strings.TrimSuffix(idx, ":"), ":")
		field, level := "unknown", "unknown"
		if len(parts) >= 5 {
			field = parts[3]
			level = parts[4]
		}

		var refTime, verTime = msg.Section1.ReferenceTime, msg.Section1.ReferenceTime

		fd := &FieldData{
			RefTime:    refTime,
			VerTime:    verTime,
			Field:      field,
			Level:      level,
			Latitudes:  latitudes,
			Longitudes: longitudes,
			Values:     values,
			Source:     "grib",
		}

		fieldMap[fmt.Sprintf("%s:%s", field, level)] = fd
	}

	return fieldMap, nil
}
