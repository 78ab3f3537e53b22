package grib

import (
	"math"
	"testing"
	"time"

	"github.com/mpiannucci/gribberish-sub001/product"
)

func TestMessageMetadata(t *testing.T) {
	data := makeCompleteGRIB2Message()

	msg, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	md, err := msg.Metadata()
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}

	if md.Name != "Temperature" {
		t.Errorf("Name = %q, want %q", md.Name, "Temperature")
	}
	if md.Unit != "K" {
		t.Errorf("Unit = %q, want %q", md.Unit, "K")
	}
	if md.Discipline != "Meteorological products" {
		t.Errorf("Discipline = %q, want %q", md.Discipline, "Meteorological products")
	}
	if md.Category != "Temperature" {
		t.Errorf("Category = %q, want %q", md.Category, "Temperature")
	}

	if md.FirstSurfaceType != 100 {
		t.Errorf("FirstSurfaceType = %d, want 100 (isobaric)", md.FirstSurfaceType)
	}
	if md.FirstSurfaceValue != 50000 {
		t.Errorf("FirstSurfaceValue = %v, want 50000", md.FirstSurfaceValue)
	}

	wantRef := time.Date(2023, time.January, 15, 12, 0, 0, 0, time.UTC)
	if !md.ReferenceTime.Equal(wantRef) {
		t.Errorf("ReferenceTime = %v, want %v", md.ReferenceTime, wantRef)
	}
	// Forecast time offset is zero, so the valid time equals the reference.
	if !md.ForecastTime.Equal(wantRef) {
		t.Errorf("ForecastTime = %v, want %v", md.ForecastTime, wantRef)
	}

	if md.Rows != 3 || md.Cols != 3 {
		t.Errorf("shape = (%d, %d), want (3, 3)", md.Rows, md.Cols)
	}
	if len(md.Latitudes) != 9 || len(md.Longitudes) != 9 {
		t.Errorf("coordinate lengths = (%d, %d), want (9, 9)", len(md.Latitudes), len(md.Longitudes))
	}
	if math.Abs(md.MaxLat-90) > 0.001 || math.Abs(md.MinLat-88) > 0.001 {
		t.Errorf("latitude range = (%v, %v), want (88, 90)", md.MinLat, md.MaxLat)
	}
	if math.Abs(md.MinLon-0) > 0.001 || math.Abs(md.MaxLon-2) > 0.001 {
		t.Errorf("longitude range = (%v, %v), want (0, 2)", md.MinLon, md.MaxLon)
	}
	if math.Abs(md.LatResolution-1) > 0.001 || math.Abs(md.LonResolution-1) > 0.001 {
		t.Errorf("resolution = (%v, %v), want (1, 1)", md.LatResolution, md.LonResolution)
	}

	if md.ProjString == "" || md.CRS != "EPSG:4326" {
		t.Errorf("projection = (%q, %q), want a proj string and EPSG:4326", md.ProjString, md.CRS)
	}

	if md.Compression != "simple" {
		t.Errorf("Compression = %q, want %q", md.Compression, "simple")
	}
	if md.HasBitmap {
		t.Error("HasBitmap = true, want false (indicator 255)")
	}
	if md.PerturbationNumber != -1 {
		t.Errorf("PerturbationNumber = %d, want -1 for a non-ensemble product", md.PerturbationNumber)
	}
	if md.MessageLength != uint64(len(data)) {
		t.Errorf("MessageLength = %d, want %d", md.MessageLength, len(data))
	}
}

func TestMessageForecastTime(t *testing.T) {
	data := makeCompleteGRIB2Message()

	msg, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	// The fixture's forecast offset is 0 hours.
	got, err := msg.ForecastTime()
	if err != nil {
		t.Fatalf("ForecastTime failed: %v", err)
	}
	if !got.Equal(msg.Section1.ReferenceTime) {
		t.Errorf("ForecastTime = %v, want reference time %v", got, msg.Section1.ReferenceTime)
	}
}

func TestAddForecastTimeUnits(t *testing.T) {
	// Exercised through the façade's own dependency to keep unit semantics
	// (calendar vs fixed-duration arithmetic) pinned down in one place.
	data := makeCompleteGRIB2Message()
	msg, err := ParseMessage(data)
	if err != nil {
		t.Fatalf("ParseMessage failed: %v", err)
	}

	// Rewrite the product's forecast offset to 6 and re-check per unit.
	tests := []struct {
		unit uint8
		want time.Time
	}{
		{0, time.Date(2023, 1, 15, 12, 6, 0, 0, time.UTC)},  // minutes
		{1, time.Date(2023, 1, 15, 18, 0, 0, 0, time.UTC)},  // hours
		{2, time.Date(2023, 1, 21, 12, 0, 0, 0, time.UTC)},  // days
		{3, time.Date(2023, 7, 15, 12, 0, 0, 0, time.UTC)},  // months
		{10, time.Date(2023, 1, 16, 6, 0, 0, 0, time.UTC)},  // 3-hour units
		{12, time.Date(2023, 1, 18, 12, 0, 0, 0, time.UTC)}, // 12-hour units
	}

	t40, ok := msg.Section4.Product.(*product.Template40)
	if !ok {
		t.Fatalf("fixture product is %T, want *product.Template40", msg.Section4.Product)
	}

	for _, tt := range tests {
		t40.TimeRangeUnit = tt.unit
		t40.ForecastTime = 6

		got, err := msg.ForecastTime()
		if err != nil {
			t.Fatalf("unit %d: ForecastTime failed: %v", tt.unit, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("unit %d: ForecastTime = %v, want %v", tt.unit, got, tt.want)
		}
	}
}
