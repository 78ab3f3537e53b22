// Package main provides a command-line tool for validating GRIB2 files.
//
// This tool parses GRIB2 files message-by-message and reports which messages
// succeed or fail, making it useful for debugging GRIB2 parsing issues.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	grib "github.com/mpiannucci/gribberish-sub001"
	"github.com/mpiannucci/gribberish-sub001/product"
	"github.com/mpiannucci/gribberish-sub001/tables"
)

var (
	verboseFlag = flag.Bool("v", false, "Verbose output (show details for successful messages)")
	quietFlag   = flag.Bool("q", false, "Quiet output (only show summary)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <grib2-file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validate GRIB2 files by parsing each message individually.\n\n")
		fmt.Fprintf(os.Stderr, "This tool is useful for debugging GRIB2 parsing issues. It parses each\n")
		fmt.Fprintf(os.Stderr, "message in the file separately and reports successes and failures with\n")
		fmt.Fprintf(os.Stderr, "detailed error information.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s file.grib2           # Validate file, show failures\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -v file.grib2        # Show details for all messages\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q file.grib2        # Only show summary\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	gribPath := flag.Arg(0)

	if err := validateGRIBFile(gribPath); err != nil {
		log.Fatalf("Validation failed: %v", err)
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

// validateGRIBFile analyzes a GRIB2 file message-by-message to identify parsing failures
func validateGRIBFile(gribPath string) error {
	data, err := os.ReadFile(gribPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Find all message boundaries, keeping track of the ones that failed to
	// even delimit so they show up in the failure count alongside parse errors.
	boundaries, boundaryErrs := grib.FindMessagesWithErrors(data)

	if !*quietFlag {
		fmt.Println("=== GRIB2 File Validation ===")
		fmt.Printf("File: %s\n", gribPath)
		fmt.Printf("Total messages found: %d\n", len(boundaries))
		fmt.Println()
	}

	successCount := 0
	failCount := 0

	for _, scanErr := range boundaryErrs {
		fmt.Fprintf(os.Stderr, "ERROR: boundary scan: %v\n", scanErr)
		failCount++
	}

	for _, boundary := range boundaries {
		msgData := data[boundary.Start : boundary.Start+int(boundary.Length)]

		msg, err := grib.ParseMessage(msgData)

		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Message %d FAILED:\n", boundary.Index)
			fmt.Fprintf(os.Stderr, "  Offset: %d\n", boundary.Start)
			fmt.Fprintf(os.Stderr, "  Length: %d bytes\n", boundary.Length)
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
			fmt.Fprintln(os.Stderr)
			failCount++
			continue
		}

		if *verboseFlag {
			fmt.Printf("Message %d SUCCESS:\n", boundary.Index)

			if msg.Section4 != nil && msg.Section4.Product != nil {
				id := grib.ParameterID{
					Discipline: msg.Section0.Discipline,
					Category:   msg.Section4.Product.GetParameterCategory(),
					Number:     msg.Section4.Product.GetParameterNumber(),
				}
				fmt.Printf("  Parameter: %s\n", id.ShortName())
			}

			levelType, levelValue := surfaceLevel(msg)
			fmt.Printf("  Level: %s", tables.GetLevelName(levelType))
			if levelValue != 0 {
				fmt.Printf(" (%.1f)", levelValue)
			}
			fmt.Println()

			if msg.Section3 != nil && msg.Section3.Grid != nil {
				rows, cols := msg.Section3.Grid.Dims()
				fmt.Printf("  Points: %d\n", msg.Section3.Grid.NumPoints())
				fmt.Printf("  Grid: %dx%d\n", cols, rows)
			}
			fmt.Println()
		}
		successCount++
	}

	if !*quietFlag {
		fmt.Println("=== Summary ===")
	}
	fmt.Printf("Success: %d messages\n", successCount)
	fmt.Printf("Failed: %d messages\n", failCount)

	if failCount > 0 {
		return fmt.Errorf("%d messages failed to parse", failCount)
	}

	if !*quietFlag {
		fmt.Println("\nAll messages validated successfully")
	}

	return nil
}
