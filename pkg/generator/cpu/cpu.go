package cpu

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common/mclock"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/generator"
)

// DefaultReportInterval is how often worker 0 reports throughput.
const DefaultReportInterval = 5 * time.Second

// CPUGenerator implements the Searcher interface using CPU-bound goroutines.
// Every episode spawns a fixed pool of workers that race to find the first
// keypair satisfying the target.
type CPUGenerator struct {
	attempts atomic.Uint64 // Total attempts since batch start
	workers  int           // Number of concurrent workers
	source   generator.KeypairSource

	clock      mclock.Clock
	startTime  mclock.AbsTime // When the batch started
	interval   time.Duration
	onProgress ProgressFunc
}

// NewCPUGenerator creates a new CPU-based generator.
// If workers is 0, it defaults to the number of CPU cores.
func NewCPUGenerator(workers int, source generator.KeypairSource) *CPUGenerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g := &CPUGenerator{
		workers:    workers,
		source:     source,
		clock:      mclock.System{},
		interval:   DefaultReportInterval,
		onProgress: logProgress,
	}
	g.startTime = g.clock.Now()
	return g
}

// SetClock replaces the clock used for progress and statistics.
// It must be called before Reset.
func (g *CPUGenerator) SetClock(clock mclock.Clock) {
	g.clock = clock
	g.startTime = clock.Now()
}

// SetReportInterval sets how often worker 0 reports progress.
// A non-positive interval disables progress reports.
func (g *CPUGenerator) SetReportInterval(d time.Duration) {
	g.interval = d
}

// OnProgress sets the callback receiving progress reports.
func (g *CPUGenerator) OnProgress(fn ProgressFunc) {
	if fn == nil {
		fn = func(Progress) {}
	}
	g.onProgress = fn
}

// Name returns the implementation name.
func (g *CPUGenerator) Name() string {
	return "CPU"
}

// Workers returns the number of workers per episode.
func (g *CPUGenerator) Workers() int {
	return g.workers
}

// Reset zeroes the attempt counter and marks the start of a batch.
// The counter is not reset between episodes of the same batch.
func (g *CPUGenerator) Reset() {
	g.attempts.Store(0)
	g.startTime = g.clock.Now()
}

// Stats returns the current performance statistics.
func (g *CPUGenerator) Stats() generator.Stats {
	attempts := g.attempts.Load()
	elapsed := g.clock.Now().Sub(g.startTime).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return generator.Stats{
		Attempts:    attempts,
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}

// FindMatch runs one search episode. It returns the first keypair whose
// address satisfies target and does not return before every worker of
// the episode has stopped.
func (g *CPUGenerator) FindMatch(ctx context.Context, target generator.Target) (generator.Outcome, error) {
	if err := target.Validate(); err != nil {
		return generator.Outcome{}, err
	}

	resultChan := make(chan generator.Outcome, 1)
	var found atomic.Bool
	var wg sync.WaitGroup

	for i := 0; i < g.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			g.worker(ctx, id, target, &found, resultChan)
		}(i)
	}

	// Close the channel once every worker is gone so an episode where
	// nobody sent a result does not block forever.
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	result, ok := <-resultChan

	found.Store(true)
	wg.Wait()

	if !ok {
		if err := ctx.Err(); err != nil {
			return generator.Outcome{}, fmt.Errorf("%w: %w", generator.ErrExhaustedSearch, err)
		}
		return generator.Outcome{}, generator.ErrExhaustedSearch
	}
	return result, nil
}

// worker generates keypairs until it finds a match, another worker does,
// or the context is cancelled.
func (g *CPUGenerator) worker(ctx context.Context, id int, target generator.Target, found *atomic.Bool, resultChan chan<- generator.Outcome) {
	var localAttempts uint64

	reporting := id == 0 && g.interval > 0
	var nextReport mclock.AbsTime
	if reporting {
		nextReport = g.clock.Now().Add(g.interval)
	}

	for {
		if found.Load() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		kp, err := g.source.Generate()
		if err != nil {
			log.Error("keypair generation failed, stopping worker", "worker", id, "err", err)
			return
		}
		address := g.source.Address(kp)

		localAttempts++
		g.attempts.Add(1)

		if reporting {
			if now := g.clock.Now(); now >= nextReport {
				g.report(target)
				nextReport = now.Add(g.interval)
			}
		}

		match := target.Match(address)
		if match == generator.NoMatch {
			continue
		}

		// Only the worker flipping the flag hands off its keypair.
		if !found.CompareAndSwap(false, true) {
			return
		}
		log.Debug("found matching address", "worker", id, "local_attempts", localAttempts, "address", address)

		select {
		case resultChan <- generator.Outcome{
			Keypair:       kp,
			Address:       address,
			Match:         match,
			WorkerID:      id,
			LocalAttempts: localAttempts,
		}:
		default:
		}
		return
	}
}
