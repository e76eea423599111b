// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/ryanjbharat/janggi-go/internal/config"
)

var (
	// Game setup
	startPosition = flag.String("position", "", "Start from this position string (default: standard opening)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	noBoard      = flag.Bool("noboard", false, "Don't print the board after each move")
	showPosition = flag.Bool("P", false, "Print the position string after each move")
	showMoves    = flag.Bool("m", false, "List the legal moves after each move")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", config.Events, "Log level: 0=nothing, 1=check and game over, 2=every move")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")

	// Batch mode
	batch    = flag.Bool("batch", false, "Play each input file as its own game and print a summary line per file")
	workers  = flag.Int("j", runtime.NumCPU(), "Number of games played in parallel in batch mode")
	failFast = flag.Bool("x", false, "In batch mode, stop after the first file with a rejected line")
	jsonOut  = flag.Bool("J", false, "In batch mode, print the summary as JSON")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyDisplayFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyGameFlags configures the starting position.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartPosition = *startPosition
}

// applyDisplayFlags configures what is printed after each move.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.ShowBoard = !*noBoard
	cfg.Display.ShowPosition = *showPosition
	cfg.Display.ShowLegalMoves = *showMoves
}
