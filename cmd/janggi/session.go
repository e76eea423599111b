package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ryanjbharat/janggi-go/internal/config"
	"github.com/ryanjbharat/janggi-go/internal/game"
	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// sessionStats counts what happened while reading one input.
type sessionStats struct {
	accepted int
	rejected int
	quit     bool
}

func (s *sessionStats) add(other sessionStats) {
	s.accepted += other.accepted
	s.rejected += other.rejected
	s.quit = s.quit || other.quit
}

// command is one parsed input line.
type command struct {
	name string // "move", "moves", "board", "position", "quit" or "" for nothing
	args []string
}

// parseLine splits an input line into a command. Blank lines and lines
// starting with '#' are empty commands.
func parseLine(line string) (command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return command{}, nil
	}

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "moves":
		if len(fields) > 2 {
			return command{}, fmt.Errorf("moves takes at most one square, got %d", len(fields)-1)
		}
		return command{name: "moves", args: fields[1:]}, nil
	case "board", "position", "quit":
		if len(fields) != 1 {
			return command{}, fmt.Errorf("%s takes no arguments", fields[0])
		}
		return command{name: strings.ToLower(fields[0])}, nil
	}

	if len(fields) == 1 {
		if src, dst, ok := strings.Cut(fields[0], "-"); ok {
			fields = []string{src, dst}
		}
	}
	if len(fields) != 2 {
		return command{}, fmt.Errorf("expected a move like \"c10 d8\", got %q", line)
	}
	return command{name: "move", args: fields}, nil
}

// play reads commands from r and applies them to g, writing feedback to
// cfg.OutputFile. It stops at end of input or on "quit".
func play(r io.Reader, g *game.Game, cfg *config.Config) sessionStats {
	var stats sessionStats
	out := cfg.OutputFile

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		cmd, err := parseLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "line %d: %v\n", lineNumber, err)
			stats.rejected++
			continue
		}

		switch cmd.name {
		case "":
		case "quit":
			stats.quit = true
			return stats
		case "board":
			fmt.Fprint(out, g.String())
		case "position":
			fmt.Fprintln(out, g.Position())
		case "moves":
			if err := printMoves(out, g, cmd.args); err != nil {
				fmt.Fprintf(out, "line %d: %v\n", lineNumber, err)
			}
		case "move":
			if err := g.Move(cmd.args[0], cmd.args[1]); err != nil {
				fmt.Fprintf(out, "line %d: rejected: %v\n", lineNumber, err)
				stats.rejected++
				continue
			}
			stats.accepted++
			reportMove(out, g, cfg)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
	}
	return stats
}

// reportMove prints the state after an accepted move.
func reportMove(out io.Writer, g *game.Game, cfg *config.Config) {
	if cfg.Display.ShowBoard {
		fmt.Fprint(out, g.String())
	}
	if cfg.Display.ShowPosition {
		fmt.Fprintln(out, g.Position())
	}

	if g.State() != janggi.Unfinished {
		fmt.Fprintf(out, "%s\n", g.State())
		return
	}
	if g.IsInCheck(g.Turn()) {
		fmt.Fprintf(out, "%s is in check\n", g.Turn())
	}
	if cfg.Display.ShowLegalMoves {
		writeMoves(out, g.LegalMoves())
	}
}

// printMoves lists the legal moves of the side to move, or of one piece.
func printMoves(out io.Writer, g *game.Game, args []string) error {
	if len(args) == 0 {
		writeMoves(out, g.LegalMoves())
		return nil
	}
	moves, err := g.LegalMovesFrom(args[0])
	if err != nil {
		return err
	}
	writeMoves(out, moves)
	return nil
}

// writeMoves writes moves on one line separated by spaces.
func writeMoves(out io.Writer, moves []janggi.Move) {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintln(out, strings.Join(names, " "))
}
