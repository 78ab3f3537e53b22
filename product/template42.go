package product

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template42 represents Product Definition Template 4.2:
// Derived forecast based on all ensemble members at a horizontal level or
// in a horizontal layer at a point in time.
type Template42 struct {
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

	// Template 4.2 specific fields (octets 35-36)
	DerivedForecastType         uint8 // Table 4.7: unweighted mean, weighted mean, std dev, spread, ...
	NumberOfForecastsInEnsemble uint8 // Number of forecasts in ensemble
}

// ParseTemplate42 parses Product Definition Template 4.2.
//
// The template data should be at least 27 bytes (25 from Template 4.0's
// layout plus 2 derived-forecast-specific octets).
func ParseTemplate42(data []byte) (*Template42, error) {
	if len(data) < 27 {
		return nil, fmt.Errorf("template 4.2 requires at least 27 bytes, got %d", len(data))
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
	numForecasts, _ := r.Uint8()

	return &Template42{
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
		NumberOfForecastsInEnsemble: numForecasts,
	}, nil
}

// TemplateNumber returns 2 for Template 4.2.
func (t *Template42) TemplateNumber() int { return 2 }

// GetParameterCategory returns the parameter category code.
func (t *Template42) GetParameterCategory() uint8 { return t.ParameterCategory }

// GetParameterNumber returns the parameter number code.
func (t *Template42) GetParameterNumber() uint8 { return t.ParameterNumber }

// String returns a human-readable description.
func (t *Template42) String() string {
	return fmt.Sprintf("Template 4.2: Category=%d, Parameter=%d, Derived Type=%d, Ensemble Size=%d",
		t.ParameterCategory, t.ParameterNumber, t.DerivedForecastType, t.NumberOfForecastsInEnsemble)
}

// FirstSurfaceValueScaled returns the scaled value of the first fixed surface.
func (t *Template42) FirstSurfaceValueScaled() float64 {
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
func (t *Template42) SecondSurfaceValueScaled() float64 {
	if t.SecondSurfaceScaleFactor == 0 {
		return float64(t.SecondSurfaceValue)
	}
	divisor := 1.0
	for i := uint8(0); i < t.SecondSurfaceScaleFactor; i++ {
		divisor *= 10.0
	}
	return float64(t.SecondSurfaceValue) / divisor
}
