// janggi plays a game of Janggi (Korean chess) from moves read as text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ryanjbharat/janggi-go/internal/config"
	"github.com/ryanjbharat/janggi-go/internal/game"
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
		fmt.Printf("janggi version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *batch {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		results := runBatch(flag.Args(), cfg, *workers, *failFast)
		failed := 0
		if *jsonOut {
			var err error
			if failed, err = reportBatchJSON(cfg.OutputFile, results); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
				os.Exit(1)
			}
		} else {
			failed = reportBatch(cfg.OutputFile, results)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	if cfg.Display.ShowBoard {
		fmt.Fprint(cfg.OutputFile, g.String())
	}

	stats := playAllInputs(g, cfg)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d moves accepted, %d rejected, %s\n",
			stats.accepted, stats.rejected, g.State())
	}
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

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
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
	cfg.SetOutput(file)
}

// playAllInputs plays the moves in each input file, or stdin if none are given.
func playAllInputs(g *game.Game, cfg *config.Config) sessionStats {
	if flag.NArg() == 0 {
		return play(os.Stdin, g, cfg)
	}

	var total sessionStats
	for _, filename := range flag.Args() {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", filename, err)
			continue
		}
		stats := play(file, g, cfg)
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", filename, err)
		}
		total.add(stats)
		if stats.quit {
			break
		}
	}
	return total
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: janggi [options] [move-files...]\n")
	fmt.Fprintf(os.Stderr, "       janggi -batch [-j N] [-x] [-J] move-files...\n\n")
	fmt.Fprintf(os.Stderr, "Plays a game of Janggi from moves read one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines:\n")
	fmt.Fprintf(os.Stderr, "  c10 d8     move the piece on c10 to d8 (c10-d8 also works)\n")
	fmt.Fprintf(os.Stderr, "  a7 a7      pass with the piece on a7\n")
	fmt.Fprintf(os.Stderr, "  moves [sq] list legal moves, optionally of one piece\n")
	fmt.Fprintf(os.Stderr, "  board      print the board\n")
	fmt.Fprintf(os.Stderr, "  position   print the position string\n")
	fmt.Fprintf(os.Stderr, "  quit       stop reading input\n")
	fmt.Fprintf(os.Stderr, "\nColumns are a-i, rows 1-10; row 1 is Red's back rank. Blue moves first.\n")
}
