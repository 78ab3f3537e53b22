package grib_test

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	grib "github.com/mpiannucci/gribberish-sub001"
)

// Example_basic demonstrates basic usage of the GRIB2 library.
func Example_basic() {
	// Read GRIB2 data from bytes (typically from a file)
	// data, _ := os.ReadFile("forecast.grib2")
	data := []byte{} // placeholder for example

	// Parse all messages
	messages, err := grib.ParseMessages(data)
	if err != nil {
		log.Fatal(err)
	}

	// Process each message
	for _, msg := range messages {
		values, err := msg.Data()
		if err != nil {
			continue
		}
		fmt.Printf("Message: %s\n", msg.String())
		fmt.Printf("Time: %s\n", msg.Section1.ReferenceTime)
		fmt.Printf("Grid points: %d\n", msg.Section3.Grid.NumPoints())
		fmt.Printf("Data range: %.2f to %.2f\n", grib.MinValue(values), grib.MaxValue(values))
		fmt.Println()
	}
}

// Example_parallel demonstrates parallel parsing with custom worker count.
func Example_parallel() {
	data := []byte{} // placeholder

	// Use 4 workers for parallel parsing
	messages, err := grib.ParseMessagesWithOptions(data,
		grib.WithWorkers(4),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Parsed %d messages with 4 workers\n", len(messages))
}

// Example_filtering demonstrates filtering messages by parameter.
func Example_filtering() {
	data := []byte{} // placeholder

	// Only read temperature fields (category 0)
	messages, err := grib.ParseMessagesWithOptions(data,
		grib.WithParameterCategory(0),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, msg := range messages {
		fmt.Printf("Temperature message: %s\n", msg.Key())
	}
}

// Example_context demonstrates using context for timeout/cancellation.
func Example_context() {
	data := []byte{} // placeholder

	// Set a timeout for parsing
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messages, err := grib.ParseMessagesWithOptions(data,
		grib.WithContext(ctx),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Parsed %d messages within timeout\n", len(messages))
}

// Example_coordinates demonstrates accessing lat/lon coordinates.
func Example_coordinates() {
	data := []byte{} // placeholder

	messages, err := grib.ParseMessages(data)
	if err != nil {
		log.Fatal(err)
	}

	if len(messages) == 0 {
		return
	}

	msg := messages[0]

	values, err := msg.Data()
	if err != nil {
		log.Fatal(err)
	}
	latitudes, longitudes, err := msg.Coordinates()
	if err != nil {
		log.Fatal(err)
	}

	// Access coordinates for each grid point
	for i := 0; i < len(values); i++ {
		lat := latitudes[i]
		lon := longitudes[i]
		value := values[i]

		// Skip missing values
		if math.IsNaN(value) {
			continue
		}

		fmt.Printf("Point %d: %.2f°N, %.2f°E = %.2f\n", i, lat, lon, value)

		// Only show first few points
		if i >= 5 {
			break
		}
	}
}

// Example_customFilter demonstrates using a custom filter function.
func Example_customFilter() {
	data := []byte{} // placeholder

	// Custom filter: only operational forecasts from NCEP
	filter := func(msg *grib.Message) bool {
		if msg.Section1 == nil {
			return false
		}
		// Center 7 = NCEP
		if msg.Section1.OriginatingCenter != 7 {
			return false
		}
		// Production status 0 = Operational
		if msg.Section1.ProductionStatus != 0 {
			return false
		}
		return true
	}

	messages, err := grib.ParseMessagesWithOptions(data,
		grib.WithFilter(filter),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d operational NCEP messages\n", len(messages))
}

// Example_multipleOptions demonstrates combining multiple options.
func Example_multipleOptions() {
	data := []byte{} // placeholder

	// Combine parallelism, filtering, and context
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messages, err := grib.ParseMessagesWithOptions(data,
		grib.WithWorkers(8),
		grib.WithContext(ctx),
		grib.WithParameterCategory(0), // Temperature
		grib.WithDiscipline(0),        // Meteorological
		grib.WithCenter(7),            // NCEP
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d temperature messages from NCEP\n", len(messages))
}
