// chess-rules plays scripted chess games through the interactive rules
// engine and reports how each game ended.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	out := setupOutputFile()

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > 1 {
		cfg.LogFile = &lockedWriter{w: cfg.LogFile}
	}

	items, err := loadScripts(scriptNames(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := &ProcessingContext{
		cfg:                cfg,
		detector:           setupDuplicateDetector(),
		filter:             filterFromFlags(),
		writer:             newSnapshotWriter(out),
		suppressDuplicates: *suppressDuplicates,
	}

	stats := processAllScripts(items, ctx, numWorkers)
	if err := ctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 && !*quiet {
		reportStatistics(ctx.detector != nil, stats)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// scriptNames returns the script files named on the command line and in
// the -f file list.
func scriptNames() []string {
	names := flag.Args()
	if *fileListFile == "" {
		return names
	}

	file, err := os.Open(*fileListFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file list %s: %v\n", *fileListFile, err)
		os.Exit(1)
	}
	defer file.Close()

	listed, err := readFileList(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file list %s: %v\n", *fileListFile, err)
		os.Exit(1)
	}
	return append(names, listed...)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile opens the output file named by the flags, or stdout.
func setupOutputFile() io.Writer {
	if *outputFile == "" {
		return os.Stdout
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	return file
}

// setupDuplicateDetector creates the duplicate detector when duplicates
// are suppressed.
func setupDuplicateDetector() *hashing.ThreadSafeDuplicateDetector {
	if !*suppressDuplicates {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(*exactDuplicates)
}

// newSnapshotWriter picks the writer for the output format.
func newSnapshotWriter(w io.Writer) output.SnapshotWriter {
	if *jsonOutput {
		return output.NewJSONWriter(w)
	}
	return output.NewTextWriter(w)
}

// reportStatistics prints the final statistics to stderr.
func reportStatistics(trackDuplicates bool, stats Stats) {
	switch {
	case trackDuplicates:
		fmt.Fprintf(os.Stderr, "%d game(s) output, %d duplicate(s) out of %d.\n", stats.Output, stats.Duplicates, stats.Total)
	default:
		fmt.Fprintf(os.Stderr, "%d game(s) output out of %d.\n", stats.Output, stats.Total)
	}
	if stats.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d script(s) stopped on an error.\n", stats.Failed)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games from command scripts and reports their outcome.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript commands (one per line, # starts a comment):\n")
	fmt.Fprintf(os.Stderr, "  play <col> <row> <col> <row>   Move a piece square to square\n")
	fmt.Fprintf(os.Stderr, "  select <col> <row>             Pick up the piece on a square\n")
	fmt.Fprintf(os.Stderr, "  move <col> <row>               Drop the held piece on a square\n")
	fmt.Fprintf(os.Stderr, "  down|drag|up <x> <y>           Pointer events in pixels\n")
	fmt.Fprintf(os.Stderr, "  promote <0-3|Q|R|B|N>          Choose the promotion piece\n")
	fmt.Fprintf(os.Stderr, "  load <white|black>             Load the 8 layout rows that follow\n")
	fmt.Fprintf(os.Stderr, "  moves <col> <row>              Print the legal destinations of a piece\n")
	fmt.Fprintf(os.Stderr, "  board | history | status       Print the game\n")
	fmt.Fprintf(os.Stderr, "  reset                          Start again from the opening position\n")
	fmt.Fprintf(os.Stderr, "\nRow 0 is Black's back rank; column 0 is the a-file.\n")
}
