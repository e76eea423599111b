package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ryanjbharat/janggi-go/internal/config"
	"github.com/ryanjbharat/janggi-go/internal/game"
	"github.com/ryanjbharat/janggi-go/internal/worker"
)

// lockedWriter serializes writes from concurrent games to one log.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// loadScripts reads each file into a work item. Unreadable files become
// items with an empty script and are reported as errors by playScript.
func loadScripts(filenames []string) ([]worker.WorkItem, map[int]error) {
	items := make([]worker.WorkItem, len(filenames))
	loadErrs := make(map[int]error)
	for i, name := range filenames {
		items[i] = worker.WorkItem{Index: i, Name: name}
		data, err := os.ReadFile(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			loadErrs[i] = err
			continue
		}
		items[i].Script = string(data)
	}
	return items, loadErrs
}

// scriptProcessor returns a worker.ProcessFunc that plays each script as a
// new game from cfg's start position. Board output is discarded; logs go to
// cfg.LogFile one line at a time.
func scriptProcessor(cfg *config.Config, loadErrs map[int]error) worker.ProcessFunc {
	log := lockedWriter{mu: &sync.Mutex{}, w: cfg.LogFile}
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Index: item.Index, Name: item.Name}
		if err := loadErrs[item.Index]; err != nil {
			result.Error = err
			return result
		}

		gameCfg := config.NewConfigBuilder().
			WithVerbosity(cfg.Verbosity).
			WithLogFile(log).
			WithOutput(io.Discard).
			WithStartPosition(cfg.Game.StartPosition).
			WithBoardDisplay(false).
			Build()
		g, err := game.NewGame(gameCfg)
		if err != nil {
			result.Error = err
			return result
		}

		stats := play(strings.NewReader(item.Script), g, gameCfg)
		result.Accepted = stats.accepted
		result.Rejected = stats.rejected
		result.State = g.State()
		result.Position = g.Position()
		return result
	}
}

// runBatch plays every file as an independent game on a worker pool and
// returns the results in file order.
func runBatch(filenames []string, cfg *config.Config, workers int, failFast bool) []worker.ProcessResult {
	items, loadErrs := loadScripts(filenames)
	pool := worker.NewPool(scriptProcessor(cfg, loadErrs),
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(items)),
	)
	return pool.Run(items, failFast)
}

// reportBatch writes one summary line per result and returns the number of
// failed scripts.
func reportBatch(out io.Writer, results []worker.ProcessResult) int {
	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
		if r.Error != nil {
			fmt.Fprintf(out, "%s: error: %v\n", r.Name, r.Error)
			continue
		}
		fmt.Fprintf(out, "%s: %d moves, %d rejected, %s, %s\n",
			r.Name, r.Accepted, r.Rejected, r.State, r.Position)
	}
	return failed
}

// JSONResult is the JSON form of one batch result.
type JSONResult struct {
	File     string `json:"file"`
	Moves    int    `json:"moves"`
	Rejected int    `json:"rejected"`
	State    string `json:"state,omitempty"`
	Position string `json:"position,omitempty"`
	Error    string `json:"error,omitempty"`
}

// reportBatchJSON writes the results as a JSON array and returns the number
// of failed scripts.
func reportBatchJSON(out io.Writer, results []worker.ProcessResult) (int, error) {
	failed := 0
	jsonResults := make([]JSONResult, 0, len(results))
	for _, r := range results {
		if r.Failed() {
			failed++
		}
		jr := JSONResult{File: r.Name, Moves: r.Accepted, Rejected: r.Rejected}
		if r.Error != nil {
			jr.Error = r.Error.Error()
		} else {
			jr.State = r.State.String()
			jr.Position = r.Position
		}
		jsonResults = append(jsonResults, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return failed, encoder.Encode(jsonResults)
}
