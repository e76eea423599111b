// Package worker provides a worker pool for playing independent move
// scripts in parallel, one game per script.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// WorkItem is a move script to be played as its own game.
type WorkItem struct {
	Index  int    // Original index for tracking
	Name   string // Where the script came from, e.g. a file name
	Script string // Move lines
}

// ProcessResult is the outcome of playing one script.
type ProcessResult struct {
	Index    int
	Name     string
	Accepted int              // Moves played
	Rejected int              // Lines rejected
	State    janggi.GameState // Final game state
	Position string           // Final position string
	Error    error            // Set if the game could not be played at all
}

// Failed reports whether the script could not be played cleanly.
func (r ProcessResult) Failed() bool {
	return r.Error != nil || r.Rejected > 0
}

// ProcessFunc plays one script and reports how it went. It is called from
// several goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool plays scripts on a fixed set of goroutines. Items go in through
// Submit, results come out of Results in completion order.
type Pool struct {
	workers int
	backlog int
	play    ProcessFunc

	queue   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets how many scripts are played at once. Values below one
// are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBufferSize sets how many items and results may wait in the pool's
// channels. Values below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.backlog = size
		}
	}
}

// NewPool returns a pool that plays items with play. It has one worker and
// a backlog of ten unless options say otherwise.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, backlog: 10, play: play}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan WorkItem, p.backlog)
	p.results = make(chan ProcessResult, p.backlog)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.queue {
		// After Stop the queue is still drained so Submit never blocks forever.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.play(item)
	}
}

// Submit queues an item, blocking while the backlog is full.
func (p *Pool) Submit(item WorkItem) {
	p.queue <- item
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission and waits for the workers. Results is closed once
// the last worker exits.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished scripts.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run starts the pool, plays every item and returns the results in item
// order. When failFast is set the pool stops after the first failed
// result; items that were never played are missing from the returned slice.
// Item indexes must be distinct.
func (p *Pool) Run(items []WorkItem, failFast bool) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	played := make(map[int]ProcessResult, len(items))
	for r := range p.results {
		played[r.Index] = r
		if failFast && r.Failed() {
			p.Stop()
		}
	}

	ordered := make([]ProcessResult, 0, len(played))
	for _, item := range items {
		if r, ok := played[item.Index]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered
}
