// Package main provides a command-line tool for examining GRIB2 files.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	grib "github.com/mpiannucci/gribberish-sub001"
	"github.com/mpiannucci/gribberish-sub001/grid"
	"github.com/mpiannucci/gribberish-sub001/product"
	"github.com/mpiannucci/gribberish-sub001/tables"
)

var (
	listFlag    = flag.Bool("list", false, "List all records with basic info")
	detailFlag  = flag.Bool("detail", false, "Show detailed information for all records")
	recordFlag  = flag.Int("record", -1, "Show detailed information for specific record (0-based)")
	valuesFlag  = flag.Bool("values", false, "Print data values for the record(s)")
	statsFlag   = flag.Bool("stats", false, "Show statistics (min/max/count) for each record")
	bboxFlag    = flag.Bool("bbox", false, "Show bounding box and grid information")
	summaryFlag = flag.Bool("summary", true, "Show file summary (default)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib2-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examine GRIB2 files and display information about their contents.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s file.grib2              # Show summary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -list file.grib2        # List all records\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s file.grib2 -list        # Flags can appear anywhere\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -detail file.grib2      # Show details for all records\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -record 0 file.grib2    # Show details for first record\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -stats file.grib2       # Show statistics for all records\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bbox file.grib2        # Show bounding box information\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -record 0 -values file.grib2  # Show data values for record 0\n", os.Args[0])
	}

	filename := parseCommandLineArgs()
	messages := readGRIBFile(filename)

	if len(messages) == 0 {
		fmt.Println("No GRIB2 messages found in file")
		return
	}

	displayOutput(filename, messages)
}

// parseCommandLineArgs parses command-line arguments and returns the filename
func parseCommandLineArgs() string {
	// Manually parse to allow flags anywhere and find non-flag argument as filename
	filename := ""
	args := []string{}

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if strings.HasPrefix(arg, "-") {
			args = append(args, arg)
			// Check if this flag takes a value (only -record does)
			if arg == "-record" && i+1 < len(os.Args) && !strings.HasPrefix(os.Args[i+1], "-") {
				i++
				args = append(args, os.Args[i])
			}
		} else {
			if filename != "" {
				fmt.Fprintf(os.Stderr, "Error: multiple filenames specified: %s and %s\n", filename, arg)
				os.Exit(1)
			}
			filename = arg
		}
	}

	// Parse the collected flags
	if err := flag.CommandLine.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if filename == "" {
		flag.Usage()
		os.Exit(1)
	}

	return filename
}

// readGRIBFile opens and reads a GRIB2 file
func readGRIBFile(filename string) []*grib.Message {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}

	messages, err := grib.ParseMessagesWithOptions(data, grib.WithSequential(), grib.WithSkipErrors())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading GRIB2 file: %v\n", err)
		os.Exit(1)
	}

	return messages
}

// displayOutput determines what to display based on flags
func displayOutput(filename string, messages []*grib.Message) {
	if *recordFlag >= 0 {
		if *recordFlag >= len(messages) {
			fmt.Fprintf(os.Stderr, "Record %d does not exist (file has %d records, numbered 0-%d)\n",
				*recordFlag, len(messages), len(messages)-1)
			os.Exit(1)
		}
		showRecordDetail(messages[*recordFlag], *recordFlag, *valuesFlag)
		return
	}

	if *listFlag {
		showList(messages)
		return
	}

	if *detailFlag {
		showAllDetails(messages, *valuesFlag)
		return
	}

	if *statsFlag {
		showStats(messages)
		return
	}

	if *bboxFlag {
		showBoundingBoxes(messages)
		return
	}

	if *summaryFlag {
		showSummary(filename, messages)
	}
}

// parameterID builds the (discipline, category, number) identifier a message's
// product definition carries, for name/abbreviation lookups.
func parameterID(m *grib.Message) grib.ParameterID {
	return grib.ParameterID{
		Discipline: m.Section0.Discipline,
		Category:   m.Section4.Product.GetParameterCategory(),
		Number:     m.Section4.Product.GetParameterNumber(),
	}
}

// surfaceLevel extracts the first fixed surface's type and scaled value from
// whichever product template the message carries.
func surfaceLevel(m *grib.Message) (levelType int, levelValue float64) {
	if m.Section4 == nil || m.Section4.Product == nil {
		return 0, 0
	}
	switch p := m.Section4.Product.(type) {
	case *product.Template40:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template41:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template42:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template48:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template411:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	case *product.Template412:
		return int(p.FirstSurfaceType), p.FirstSurfaceValueScaled()
	default:
		return 0, 0
	}
}

func gridTypeName(m *grib.Message) string {
	if m.Section3 == nil || m.Section3.Grid == nil {
		return "unknown"
	}
	return m.Section3.Grid.String()
}

func gridDims(m *grib.Message) (rows, cols int) {
	if m.Section3 == nil || m.Section3.Grid == nil {
		return 0, 0
	}
	return m.Section3.Grid.Dims()
}

func numPoints(m *grib.Message) int {
	if m.Section3 == nil || m.Section3.Grid == nil {
		return 0
	}
	return m.Section3.Grid.NumPoints()
}

func showSummary(filename string, messages []*grib.Message) {
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Total records: %d\n\n", len(messages))

	// Get file info
	if info, err := os.Stat(filename); err == nil {
		fmt.Printf("File size: %s\n\n", formatBytes(uint64(info.Size())))
	}

	// Collect unique attributes
	disciplines := make(map[string]bool)
	centers := make(map[string]bool)
	paramTypes := make(map[string]bool)
	levels := make(map[string]bool)
	gridTypes := make(map[string]bool)
	refTimes := make(map[string]bool)

	for _, m := range messages {
		id := parameterID(m)
		levelType, levelValue := surfaceLevel(m)
		levelName := tables.GetLevelName(levelType)
		if levelValue != 0 {
			levelName = fmt.Sprintf("%s (%.1f)", levelName, levelValue)
		}

		disciplines[m.Section0.DisciplineName()] = true
		centers[m.Section1.CenterName()] = true
		paramTypes[fmt.Sprintf("%s / %s", id.CategoryName(), id.String())] = true
		levels[levelName] = true
		gridTypes[gridTypeName(m)] = true
		refTimes[m.Section1.ReferenceTime.Format("2006-01-02 15:04 MST")] = true
	}

	fmt.Printf("Disciplines: %s\n", strings.Join(keys(disciplines), ", "))
	fmt.Printf("Centers: %s\n", strings.Join(keys(centers), ", "))
	fmt.Printf("Reference times: %s\n", strings.Join(keys(refTimes), ", "))
	fmt.Printf("Grid types: %s\n", strings.Join(keys(gridTypes), ", "))
	fmt.Printf("\nParameter types present:\n")
	for _, p := range keys(paramTypes) {
		count := 0
		for _, m := range messages {
			id := parameterID(m)
			if fmt.Sprintf("%s / %s", id.CategoryName(), id.String()) == p {
				count++
			}
		}
		fmt.Printf("  %s (%d records)\n", p, count)
	}

	fmt.Printf("\nLevels present:\n")
	for _, l := range keys(levels) {
		count := 0
		for _, m := range messages {
			levelType, levelValue := surfaceLevel(m)
			levelName := tables.GetLevelName(levelType)
			if levelValue != 0 {
				levelName = fmt.Sprintf("%s (%.1f)", levelName, levelValue)
			}
			if levelName == l {
				count++
			}
		}
		fmt.Printf("  %s (%d records)\n", l, count)
	}

	// Show grid info for first record
	if len(messages) > 0 {
		fmt.Printf("\nGrid information (from first record):\n")
		showGridInfo(messages[0])
	}

	fmt.Printf("\nUse -list to see all records, -detail for full information\n")
}

func showList(messages []*grib.Message) {
	fmt.Printf("%-5s %-40s %-25s %-15s %s\n", "Rec#", "Parameter", "Level", "Grid", "Ref Time")
	fmt.Println(strings.Repeat("-", 120))

	for i, m := range messages {
		id := parameterID(m)
		paramName := id.String()
		if len(paramName) > 40 {
			paramName = paramName[:37] + "..."
		}

		levelType, levelValue := surfaceLevel(m)
		levelStr := tables.GetLevelName(levelType)
		if levelValue != 0 {
			levelStr = fmt.Sprintf("%s (%.1f)", levelStr, levelValue)
		}
		if len(levelStr) > 25 {
			levelStr = levelStr[:22] + "..."
		}

		rows, cols := gridDims(m)
		gridStr := fmt.Sprintf("%s %dx%d", gridTypeName(m), cols, rows)
		if len(gridStr) > 15 {
			gridStr = gridStr[:12] + "..."
		}

		fmt.Printf("%-5d %-40s %-25s %-15s %s\n",
			i,
			paramName,
			levelStr,
			gridStr,
			m.Section1.ReferenceTime.Format("2006-01-02 15:04"))
	}
}

func showAllDetails(messages []*grib.Message, showValues bool) {
	for i, m := range messages {
		showRecordDetail(m, i, showValues)
		if i < len(messages)-1 {
			fmt.Println(strings.Repeat("=", 80))
		}
	}
}

func showRecordDetail(m *grib.Message, recordNum int, showValues bool) {
	fmt.Printf("Record #%d\n", recordNum)
	fmt.Println(strings.Repeat("-", 80))

	// Basic identification
	fmt.Printf("Discipline:         %s\n", m.Section0.DisciplineName())
	fmt.Printf("Center:             %s\n", m.Section1.CenterName())
	fmt.Printf("Production Status:  %s\n", m.Section1.ProductionStatusName())
	fmt.Printf("Data Type:          %s\n", m.Section1.DataTypeName())
	fmt.Printf("Reference Time:     %s\n", m.Section1.ReferenceTime.Format("2006-01-02 15:04:05 MST"))

	// Parameter information
	id := parameterID(m)
	fmt.Printf("\nParameter:\n")
	fmt.Printf("  Category:         %s\n", id.CategoryName())
	fmt.Printf("  Number:           %d\n", id.Number)
	fmt.Printf("  Name:             %s\n", id.String())

	// Level information
	levelType, levelValue := surfaceLevel(m)
	fmt.Printf("\nLevel:\n")
	fmt.Printf("  Type:             %s\n", tables.GetLevelName(levelType))
	if levelValue != 0 {
		fmt.Printf("  Value:            %.2f\n", levelValue)
	}

	// Grid information
	fmt.Printf("\nGrid:\n")
	showGridInfo(m)

	// Data statistics
	values, err := m.Data()
	if err != nil {
		fmt.Printf("\nData:\n  Error decoding: %v\n", err)
		return
	}

	fmt.Printf("\nData:\n")
	fmt.Printf("  Total points:     %d\n", len(values))

	minVal, maxVal := getMinMax(values)
	validCount := grib.CountValid(values)

	fmt.Printf("  Valid points:     %d\n", validCount)
	fmt.Printf("  Missing points:   %d\n", len(values)-validCount)

	if validCount > 0 {
		fmt.Printf("  Min value:        %.6f\n", minVal)
		fmt.Printf("  Max value:        %.6f\n", maxVal)
		fmt.Printf("  Range:            %.6f\n", maxVal-minVal)
	}

	// Show values if requested
	if showValues {
		_, cols := gridDims(m)
		fmt.Printf("\nData Values:\n")
		printDataValues(values, cols)
	}
}

func showStats(messages []*grib.Message) {
	fmt.Printf("%-5s %-40s %-15s %12s %12s %12s\n",
		"Rec#", "Parameter", "Level", "Min", "Max", "Valid/Total")
	fmt.Println(strings.Repeat("-", 100))

	for i, m := range messages {
		id := parameterID(m)
		paramName := id.String()
		if len(paramName) > 40 {
			paramName = paramName[:37] + "..."
		}

		levelType, levelValue := surfaceLevel(m)
		levelStr := tables.GetLevelName(levelType)
		if levelValue != 0 {
			levelStr = fmt.Sprintf("%s %.0f", levelStr, levelValue)
		}
		if len(levelStr) > 15 {
			levelStr = levelStr[:12] + "..."
		}

		values, err := m.Data()
		if err != nil {
			fmt.Printf("%-5d %-40s %-15s %12s %12s %12s\n", i, paramName, levelStr, "-", "-", "-")
			continue
		}

		minVal, maxVal := getMinMax(values)
		validCount := grib.CountValid(values)

		fmt.Printf("%-5d %-40s %-15s %12.4f %12.4f %6d/%-6d\n",
			i,
			paramName,
			levelStr,
			minVal,
			maxVal,
			validCount,
			len(values))
	}
}

func showBoundingBoxes(messages []*grib.Message) {
	// Group by unique grids
	type gridKey struct {
		gridType string
		rows     int
		cols     int
	}

	grids := make(map[gridKey]*grib.Message)
	for _, m := range messages {
		rows, cols := gridDims(m)
		key := gridKey{gridTypeName(m), rows, cols}
		if _, exists := grids[key]; !exists {
			grids[key] = m
		}
	}

	fmt.Printf("Found %d unique grid(s) in file:\n\n", len(grids))

	i := 1
	for key, m := range grids {
		fmt.Printf("Grid #%d: %s (%d x %d = %d points)\n", i, key.gridType, key.cols, key.rows, numPoints(m))
		showGridInfo(m)
		fmt.Println()
		i++
	}
}

func showGridInfo(m *grib.Message) {
	rows, cols := gridDims(m)
	fmt.Printf("  Type:             %s\n", gridTypeName(m))
	fmt.Printf("  Dimensions:       %d x %d\n", cols, rows)
	fmt.Printf("  Total points:     %d\n", numPoints(m))

	latitudes, longitudes, err := m.Coordinates()
	if err != nil || len(latitudes) == 0 {
		return
	}

	minLat, maxLat := getMinMax(latitudes)
	minLon, maxLon := getMinMax(longitudes)

	fmt.Printf("  Latitude range:   %.4f to %.4f\n", minLat, maxLat)
	fmt.Printf("  Longitude range:  %.4f to %.4f\n", minLon, maxLon)

	if m.Section3 == nil || m.Section3.Grid == nil {
		return
	}

	switch g := m.Section3.Grid.(type) {
	case *grid.LatLonGrid:
		lat1, lon1 := g.FirstGridPoint()
		lat2, lon2 := g.LastGridPoint()
		di, dj := g.Increment()
		fmt.Printf("  First point:      %.4f N, %.4f E\n", lat1, lon1)
		fmt.Printf("  Last point:       %.4f N, %.4f E\n", lat2, lon2)
		fmt.Printf("  Grid spacing:     %.4f x %.4f degrees\n", di, dj)

	case *grid.LambertConformalGrid:
		fmt.Printf("  First point:      %.4f N, %.4f E\n",
			float64(g.La1)/1e6, float64(g.Lo1)/1e6)
		fmt.Printf("  Grid spacing:     %.3f x %.3f meters\n", float64(g.Dx)/1000, float64(g.Dy)/1000)
		fmt.Printf("  Ref latitude:     %.4f N\n", float64(g.LaD)/1e6)
		fmt.Printf("  Ref longitude:    %.4f E\n", float64(g.LoV)/1e6)
		fmt.Printf("  Std parallels:    %.4f N, %.4f N\n",
			float64(g.Latin1)/1e6, float64(g.Latin2)/1e6)
	}
}

func printDataValues(data []float64, ni int) {
	const maxRowsToPrint = 20
	const maxColsToPrint = 10

	if ni == 0 {
		ni = len(data)
	}
	nj := len(data) / ni

	rowsToPrint := nj
	if rowsToPrint > maxRowsToPrint {
		rowsToPrint = maxRowsToPrint
	}

	colsToPrint := ni
	if colsToPrint > maxColsToPrint {
		colsToPrint = maxColsToPrint
	}

	for j := 0; j < rowsToPrint; j++ {
		fmt.Printf("  Row %3d: ", j)
		for i := 0; i < colsToPrint; i++ {
			idx := j*ni + i
			if idx < len(data) {
				val := data[idx]
				if math.IsNaN(val) || val > 9e20 {
					fmt.Printf("    MISS")
				} else {
					fmt.Printf(" %8.2f", val)
				}
			}
		}
		if ni > colsToPrint {
			fmt.Printf(" ... (%d more columns)", ni-colsToPrint)
		}
		fmt.Println()
	}

	if nj > rowsToPrint {
		fmt.Printf("  ... (%d more rows)\n", nj-rowsToPrint)
	}
	fmt.Printf("\n  Total: %d rows x %d columns = %d values\n", nj, ni, len(data))
}

func getMinMax(data []float64) (minVal, maxVal float64) {
	minVal = math.MaxFloat64
	maxVal = -math.MaxFloat64

	for _, v := range data {
		if v <= 9e20 {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	if minVal == math.MaxFloat64 {
		minVal = 0
		maxVal = 0
	}

	return
}

func keys(m map[string]bool) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
