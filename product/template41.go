package product

import (
	"fmt"

	"github.com/mpiannucci/gribberish-sub001/internal"
)

// Template41 represents Product Definition Template 4.1:
// Individual ensemble forecast, control, and perturbed, at a horizontal
// level or in a horizontal layer at a point in time.
type Template41 struct {
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

	// Template 4.1 specific fields (octets 35-37)
	TypeOfEnsembleForecast      uint8 // Table 4.6: unperturbed high/low resolution control, negative/positive perturbation
	PerturbationNumber          uint8 // Perturbation number
	NumberOfForecastsInEnsemble uint8 // Number of forecasts in ensemble
}

// ParseTemplate41 parses Product Definition Template 4.1.
//
// The template data should be at least 28 bytes (25 from Template 4.0's
// layout plus 3 ensemble-specific octets).
func ParseTemplate41(data []byte) (*Template41, error) {
	if len(data) < 28 {
		return nil, fmt.Errorf("template 4.1 requires at least 28 bytes, got %d", len(data))
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

	typeOfEnsemble, _ := r.Uint8()
	perturbationNumber, _ := r.Uint8()
	numForecasts, _ := r.Uint8()

	return &Template41{
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
		TypeOfEnsembleForecast:      typeOfEnsemble,
		PerturbationNumber:          perturbationNumber,
		NumberOfForecastsInEnsemble: numForecasts,
	}, nil
}

// TemplateNumber returns 1 for Template 4.1.
func (t *Template41) TemplateNumber() int { return 1 }

// GetParameterCategory returns the parameter category code.
func (t *Template41) GetParameterCategory() uint8 { return t.ParameterCategory }

// GetParameterNumber returns the parameter number code.
func (t *Template41) GetParameterNumber() uint8 { return t.ParameterNumber }

// String returns a human-readable description.
func (t *Template41) String() string {
	return fmt.Sprintf("Template 4.1: Category=%d, Parameter=%d, Ensemble Type=%d, Perturbation=%d",
		t.ParameterCategory, t.ParameterNumber, t.TypeOfEnsembleForecast, t.PerturbationNumber)
}

// FirstSurfaceValueScaled returns the scaled value of the first fixed surface.
func (t *Template41) FirstSurfaceValueScaled() float64 {
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
func (t *Template41) SecondSurfaceValueScaled() float64 {
	if t.SecondSurfaceScaleFactor == 0 {
		return float64(t.SecondSurfaceValue)
	}
	divisor := 1.0
	for i := uint8(0); i < t.SecondSurfaceScaleFactor; i++ {
		divisor *= 10.0
	}
	return float64(t.SecondSurfaceValue) / divisor
}

// IsControl reports whether this member is an unperturbed control run
// (Table 4.6 codes 0 and 1), rather than a perturbed member.
func (t *Template41) IsControl() bool {
	return t.TypeOfEnsembleForecast == 0 || t.TypeOfEnsembleForecast == 1
}
