package grib

import (
	"fmt"
	"time"

	"github.com/mpiannucci/gribberish-sub001/grid"
	"github.com/mpiannucci/gribberish-sub001/product"
	"github.com/mpiannucci/gribberish-sub001/tables"
)

// Metadata is a self-contained description of one message's variable, grid
// geometry, time and provenance. Unlike *Message it holds no references
// into the source buffer, so it can outlive the bytes it was decoded from.
type Metadata struct {
	// Variable identity
	Key        string // Stable variable key (see Message.Key)
	Name       string // Full WMO table name, e.g. "Temperature"
	Unit       string
	Discipline string // Table 0.0 label
	Category   string // Table 4.1 label

	// Vertical coordinate
	FirstSurfaceType   int
	FirstSurfaceValue  float64
	SecondSurfaceType  int
	SecondSurfaceValue float64
	LevelName          string

	// Time
	ReferenceTime time.Time
	ForecastTime  time.Time

	// Provenance
	GeneratingProcess  string
	StatisticalProcess string // Derived-forecast name for template 4.2; empty for other point-in-time products
	PerturbationNumber int    // -1 for non-ensemble products
	EnsembleSize       int    // 0 when not an ensemble product

	// Grid geometry
	ProjString    string
	CRS           string
	MinLat        float64
	MinLon        float64
	MaxLat        float64
	MaxLon        float64
	LatResolution float64
	LonResolution float64
	Rows          int
	Cols          int
	Latitudes     []float64
	Longitudes    []float64

	// Encoding
	Compression   string
	HasBitmap     bool
	MessageLength uint64
}

// secondSurface extracts the second fixed surface's type and scaled value
// from whichever product template the message carries.
func (m *Message) secondSurface() (surfaceType int, surfaceValue float64) {
	if m.Section4 == nil || m.Section4.Product == nil {
		return 0, 0
	}
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	case *product.Template41:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	case *product.Template42:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	case *product.Template48:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	case *product.Template411:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	case *product.Template412:
		return int(p.SecondSurfaceType), p.SecondSurfaceValueScaled()
	default:
		return 0, 0
	}
}

// compressionLabel names the Section 5 packing scheme.
func (m *Message) compressionLabel() string {
	if m.Section5 == nil {
		return "none"
	}
	switch m.Section5.DataRepresentationTemplate {
	case 0:
		return "simple"
	case 2:
		return "complex"
	case 3:
		return "complex-spatial"
	case 40:
		return "jpeg2000"
	case 41:
		return "png"
	case 42:
		return "ccsds"
	default:
		return fmt.Sprintf("template-%d", m.Section5.DataRepresentationTemplate)
	}
}

// Metadata assembles the message's full metadata record. The record is
// independent of the data decode: messages whose packing template is
// unrecognized still produce metadata, while messages with no grid or
// product definition fail.
func (m *Message) Metadata() (*Metadata, error) {
	if m.Section0 == nil || m.Section1 == nil {
		return nil, &MessageMalformedError{Offset: 0, Message: "message has no indicator or identification section"}
	}
	if m.Section3 == nil || m.Section3.Grid == nil {
		return nil, &MessageMalformedError{Offset: 0, Message: "message has no grid definition section"}
	}
	if m.Section4 == nil || m.Section4.Product == nil {
		return nil, &MessageMalformedError{Offset: 0, Message: "message has no product definition section"}
	}

	g := m.Section3.Grid
	rows, cols := g.Dims()
	lats, lons := g.Coordinates()
	minLat, minLon, maxLat, maxLon := grid.BoundingBox(g)
	dLat, dLon := grid.Resolution(g)

	id := ParameterID{
		Discipline: m.Section0.Discipline,
		Category:   m.Section4.Product.GetParameterCategory(),
		Number:     m.Section4.Product.GetParameterNumber(),
	}

	levelType, levelValue := m.surfaceLevel()
	secondType, secondValue := m.secondSurface()

	md := &Metadata{
		Key:        m.Key(),
		Name:       id.String(),
		Unit:       tables.GetParameterUnit(int(id.Discipline), int(id.Category), int(id.Number)),
		Discipline: tables.GetDisciplineDescription(int(m.Section0.Discipline)),
		Category:   id.CategoryName(),

		FirstSurfaceType:   levelType,
		FirstSurfaceValue:  levelValue,
		SecondSurfaceType:  secondType,
		SecondSurfaceValue: secondValue,
		LevelName:          m.levelName(levelType),

		ReferenceTime: m.Section1.ReferenceTime,

		PerturbationNumber: -1,

		ProjString:    g.ProjString(),
		CRS:           g.CRS(),
		MinLat:        minLat,
		MinLon:        minLon,
		MaxLat:        maxLat,
		MaxLon:        maxLon,
		LatResolution: dLat,
		LonResolution: dLon,
		Rows:          rows,
		Cols:          cols,
		Latitudes:     lats,
		Longitudes:    lons,

		Compression:   m.compressionLabel(),
		HasBitmap:     m.Section6 != nil && m.Section6.HasBitmap(),
		MessageLength: m.Section0.MessageLength,
	}

	if forecast, err := m.ForecastTime(); err == nil {
		md.ForecastTime = forecast
	} else {
		md.ForecastTime = m.Section1.ReferenceTime
	}

	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
	case *product.Template41:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
		md.PerturbationNumber = int(p.PerturbationNumber)
		md.EnsembleSize = int(p.NumberOfForecastsInEnsemble)
	case *product.Template42:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
		md.StatisticalProcess = tables.GetDerivedForecastName(int(p.DerivedForecastType))
		md.EnsembleSize = int(p.NumberOfForecastsInEnsemble)
	case *product.Template48:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
		if len(p.TimeRanges) > 0 {
			md.StatisticalProcess = tables.GetStatisticalProcessName(int(p.TimeRanges[0].StatisticalProcess))
		}
	case *product.Template411:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
		md.PerturbationNumber = int(p.PerturbationNumber)
		md.EnsembleSize = int(p.NumberOfForecastsInEnsemble)
		if len(p.TimeRanges) > 0 {
			md.StatisticalProcess = tables.GetStatisticalProcessName(int(p.TimeRanges[0].StatisticalProcess))
		}
	case *product.Template412:
		md.GeneratingProcess = tables.GetGeneratingProcessName(int(p.GeneratingProcess))
		md.EnsembleSize = int(p.NumberOfForecastsInEnsemble)
		if len(p.TimeRanges) > 0 {
			md.StatisticalProcess = tables.GetStatisticalProcessName(int(p.TimeRanges[0].StatisticalProcess))
		}
	}

	return md, nil
}
