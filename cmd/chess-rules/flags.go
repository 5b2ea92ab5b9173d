// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Board geometry
	squareSize = flag.Int("size", config.DefaultSquarePixelSize, "Square size in pointer pixels")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already output")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same number of moves")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Game feature filters
	repetitionFilter     = flag.Bool("repetition", false, "Games with 3-fold repetition")
	underpromotionFilter = flag.Bool("underpromotion", false, "Games with underpromotion")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("verbosity", config.Results, "Log level: 0=nothing, 1=game results, 2=running commentary")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// File input options
	fileListFile = flag.String("f", "", "File containing list of script files to process (one per line)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Board.SquarePixelSize = *squareSize
	cfg.Verbosity = *verbosity

	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// gameFilter selects which finished games are output.
type gameFilter struct {
	checkmate      bool
	stalemate      bool
	repetition     bool
	underpromotion bool
}

// filterFromFlags builds the game filter from command-line flags.
func filterFromFlags() gameFilter {
	return gameFilter{
		checkmate:      *checkmateFilter,
		stalemate:      *stalemateFilter,
		repetition:     *repetitionFilter,
		underpromotion: *underpromotionFilter,
	}
}
