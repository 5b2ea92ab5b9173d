// Package worker provides a worker pool for playing game scripts in parallel.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// WorkItem is one game script waiting for a worker.
type WorkItem struct {
	Index  int    // Position of the script in the input
	Name   string // Source of the script, such as a file name
	Script string // Command lines, as read by processing.Runner
}

// ProcessResult is the finished game of one script.
type ProcessResult struct {
	Index     int
	Name      string
	Snapshot  *output.Snapshot      // Final state of the game (may be nil)
	Signature hashing.GameSignature // Final position, for duplicate detection
	Matched   bool                  // Whether the game passed the output filter
	Error     error
}

// ProcessFunc plays one script to the end. It runs on a worker goroutine,
// so anything it shares with other games must be safe for concurrent use.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool plays scripts on a fixed set of goroutines. Each game gets its own
// controller, so games never share board state.
type Pool struct {
	numWorkers int
	bufferSize int
	scripts    chan WorkItem
	games      chan ProcessResult
	play       ProcessFunc
	wg         sync.WaitGroup
	stopped    int32 // set once by Stop
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets how many games are played at once. Values below one
// are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets how many scripts and finished games may queue
// between the submitter and the workers.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that plays scripts with play. It defaults to one
// worker, which keeps games in input order, and a queue of ten.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		play:       play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.scripts = make(chan WorkItem, p.bufferSize)
	p.games = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays queued scripts until the queue is closed. After Stop the
// remaining scripts are discarded unplayed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.scripts {
		if p.IsStopped() {
			continue
		}
		p.games <- p.play(item)
	}
}

// Submit queues a script, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.scripts <- item
}

// TrySubmit queues a script if there is room. It reports false when the
// queue is full or the pool has been stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.scripts <- item:
		return true
	default:
		return false
	}
}

// Stop makes the workers skip every script not yet started. Games already
// being played still finish.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

// Close ends the script queue and waits for the workers. The channel from
// Results is closed once the last game is delivered.
func (p *Pool) Close() {
	close(p.scripts)
	p.wg.Wait()
	close(p.games)
}

// Results delivers finished games in completion order, which is not input
// order when more than one worker runs.
func (p *Pool) Results() <-chan ProcessResult {
	return p.games
}

// NumWorkers returns how many games the pool plays at once.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run plays every script and returns the games ordered by item index.
// The pool cannot be reused afterwards.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
