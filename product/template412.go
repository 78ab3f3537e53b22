package product

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template412 represents Product Definition Template 4.12:
// Derived forecast based on all ensemble members at a horizontal level or
// in a horizontal layer, in a continuous or non-continuous time interval.
//
// This combines Template 4.2's derived-forecast fields with Template 4.8's
// statistically-processed time-interval fields.
type Template412 struct {
	ParameterCategory        uint8
	ParameterNumber          uint8
	GeneratingProcess        uint8
	BackgroundProcess        uint8
	ForecastProcess          uint8
	HoursAfterCutoff         uint16
	MinutesAfterCutoff       uint8
	TimeRangeUnit            uint8
	ForecastTime             uint32
	FirstSurfaceType         uint8
	FirstSurfaceScaleFactor  uint8
	FirstSurfaceValue        uint32
	SecondSurfaceType        uint8
	SecondSurfaceScaleFactor uint8
	SecondSurfaceValue       uint32

	// Derived forecast fields (octets 35-36)
	DerivedForecastType         uint8
	NumberOfForecastsInEnsemble uint8

	// Time interval fields (octets 37-48)
	EndYear                    uint16
	EndMonth                   uint8
	EndDay                     uint8
	EndHour                    uint8
	EndMinute                  uint8
	EndSecond                  uint8
	NumberOfTimeRanges         uint8
	NumberMissingInStatProcess uint32

	TimeRanges []StatisticalTimeRange
}

// ParseTemplate412 parses Product Definition Template 4.12.
//
// The template data should be at least 39 bytes for the base fields
// (25 bytes Template 4.0 layout + 2 derived-forecast octets + 12
// time-interval octets). With n time ranges: 39 + 12*n bytes.
func ParseTemplate412(data []byte) (*Template412, error) {
	if len(data) < 39 {
		return nil, fmt.Errorf("template 4.12 requires at least 39 bytes, got %d", len(data))
	}

	r := internal.NewReader(data)

	paramCategory, _ := r.Uint8()
	paramNumber, _ := r.Uint8()
	generatingProcess, _ := r.Uint8()
	backgroundProcess, _ := r.Uint8()
	forecastProcess, _ := r.Uint8()
	hoursAfterCutoff, _ := r.Uint16()
	minutesAfterCutoff, _ := r.Uint8()
	timeRangeUnit, _ := r.Uint8()
	forecastTime, _ := r.Uint32()
	firstSurfaceType, _ := r.Uint8()
	firstSurfaceScaleFactor, _ := r.Uint8()
	firstSurfaceValue, _ := r.Uint32()
	secondSurfaceType, _ := r.Uint8()
	secondSurfaceScaleFactor, _ := r.Uint8()
	secondSurfaceValue, _ := r.Uint32()

	derivedForecastType, _ := r.Uint8()
	numForecastsInEnsemble, _ := r.Uint8()

	endYear, _ := r.Uint16()
	endMonth, _ := r.Uint8()
	endDay, _ := r.Uint8()
	endHour, _ := r.Uint8()
	endMinute, _ := r.Uint8()
	endSecond, _ := r.Uint8()
	numTimeRanges, _ := r.Uint8()
	numMissing, _ := r.Uint32()

	expectedLen := 39 + int(numTimeRanges)*12
	if len(data) < expectedLen {
		return nil, fmt.Errorf("template 4.12 with %d time ranges requires %d bytes, got %d",
			numTimeRanges, expectedLen, len(data))
	}

	timeRanges := make([]StatisticalTimeRange, numTimeRanges)
	for i := uint8(0); i < numTimeRanges; i++ {
		statProcess, _ := r.Uint8()
		timeIncrType, _ := r.Uint8()
		rangeUnit, _ := r.Uint8()
		rangeLen, _ := r.Uint32()
		incrUnit, _ := r.Uint8()
		incr, _ := r.Uint32()

		timeRanges[i] = StatisticalTimeRange{
			StatisticalProcess: statProcess,
			TimeIncrementType:  timeIncrType,
			TimeRangeUnit:      rangeUnit,
			TimeRangeLength:    rangeLen,
			TimeIncrementUnit:  incrUnit,
			TimeIncrement:      incr,
		}
	}

	return &Template412{
		ParameterCategory:           paramCategory,
		ParameterNumber:             paramNumber,
		GeneratingProcess:           generatingProcess,
		BackgroundProcess:           backgroundProcess,
		ForecastProcess:             forecastProcess,
		HoursAfterCutoff:            hoursAfterCutoff,
		MinutesAfterCutoff:          minutesAfterCutoff,
		TimeRangeUnit:               timeRangeUnit,
		ForecastTime:                forecastTime,
		FirstSurfaceType:            firstSurfaceType,
		FirstSurfaceScaleFactor:     firstSurfaceScaleFactor,
		FirstSurfaceValue:           firstSurfaceValue,
		SecondSurfaceType:           secondSurfaceType,
		SecondSurfaceScaleFactor:    secondSurfaceScaleFactor,
		SecondSurfaceValue:          secondSurfaceValue,
		DerivedForecastType:         derivedForecastType,
		NumberOfForecastsInEnsemble: numForecastsInEnsemble,
		EndYear:                     endYear,
		EndMonth:                    endMonth,
		EndDay:                      endDay,
		EndHour:                     endHour,
		EndMinute:                   endMinute,
		EndSecond:                   endSecond,
		NumberOfTimeRanges:          numTimeRanges,
		NumberMissingInStatProcess:  numMissing,
		TimeRanges:                  timeRanges,
	}, nil
}

// TemplateNumber returns 12 for Template 4.12.
func (t *Template412) TemplateNumber() int { return 12 }

// GetParameterCategory returns the parameter category code.
func (t *Template412) GetParameterCategory() uint8 { return t.ParameterCategory }

// GetParameterNumber returns the parameter number code.
func (t *Template412) GetParameterNumber() uint8 { return t.ParameterNumber }

// String returns a human-readable description.
func (t *Template412) String() string {
	return fmt.Sprintf("Template 4.12: Category=%d, Parameter=%d, Derived Type=%d, Time Ranges=%d",
		t.ParameterCategory, t.ParameterNumber, t.DerivedForecastType, t.NumberOfTimeRanges)
}

// FirstSurfaceValueScaled returns the scaled value of the first fixed surface.
func (t *Template412) FirstSurfaceValueScaled() float64 {
	if t.FirstSurfaceScaleFactor == 0 {
		return float64(t.FirstSurfaceValue)
	}
	divisor := 1.0
	for i := uint8(0); i < t.FirstSurfaceScaleFactor; i++ {
		divisor *= 10.0
	}
	return float64(t.FirstSurfaceValue) / divisor
}

// SecondSurfaceValueScaled returns the scaled value of the second fixed surface.
func (t *Template412) SecondSurfaceValueScaled() float64 {
	if t.SecondSurfaceScaleFactor == 0 {
		return float64(t.SecondSurfaceValue)
	}
	divisor := 1.0
	for i := uint8(0); i < t.SecondSurfaceScaleFactor; i++ {
		divisor *= 10.0
	}
	return float64(t.SecondSurfaceValue) / divisor
}
