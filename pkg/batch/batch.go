// Package batch drives repeated search episodes until a requested number
// of vanity addresses has been found, then hands the results to a
// persister.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/output"
)

// ErrInvalidCount is returned for a job asking for fewer than one address.
var ErrInvalidCount = errors.New("count must be at least 1")

// ErrSameSuffix is returned for a dual job whose two suffixes are equal.
// Both lists would be saved under the same name.
var ErrSameSuffix = errors.New("dual mode needs two different suffixes")

// Persister stores a finished list of outcomes under a label.
// output.Writer satisfies it.
type Persister interface {
	Save(outcomes []generator.Outcome, label string, format output.Format, path string) (string, error)
}

// LabelCount is the number of addresses found for one suffix.
type LabelCount struct {
	Label string
	Count int
}

// Summary describes a finished batch.
type Summary struct {
	ElapsedSecs   float64
	Attempts      uint64
	Addresses     int
	AvgPerAddress float64
	Rate          float64
	Counts        []LabelCount
	Files         []string
}

// Job is a single-suffix batch.
type Job struct {
	Suffix string
	Count  int
	Format output.Format
	Output string // Empty selects a default file name
}

// DualJob fills two quotas of Count addresses, one per suffix, from a
// single stream of episodes.
type DualJob struct {
	SuffixA string
	SuffixB string
	Count   int
	Format  output.Format
	Output  string // Files become <Output>_<SuffixA> and <Output>_<SuffixB>
}

// Runner executes batches against a Searcher.
type Runner struct {
	searcher  generator.Searcher
	persister Persister
	reporter  Reporter
}

// NewRunner creates a Runner. A nil reporter discards all events.
func NewRunner(searcher generator.Searcher, persister Persister, reporter Reporter) *Runner {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Runner{
		searcher:  searcher,
		persister: persister,
		reporter:  reporter,
	}
}

// Single finds job.Count addresses ending with job.Suffix, persists them
// and returns them in discovery order.
func (r *Runner) Single(ctx context.Context, job Job) ([]generator.Outcome, Summary, error) {
	if job.Count < 1 {
		return nil, Summary{}, ErrInvalidCount
	}
	target := generator.Suffix(job.Suffix)
	if err := target.Validate(); err != nil {
		return nil, Summary{}, err
	}

	r.searcher.Reset()
	r.reporter.Started(target, job.Count, r.searcher.Workers())

	results := make([]generator.Outcome, 0, job.Count)
	for i := 0; i < job.Count; i++ {
		outcome, err := r.searcher.FindMatch(ctx, target)
		if err != nil {
			return results, Summary{}, fmt.Errorf("search %d/%d: %w", i+1, job.Count, err)
		}
		results = append(results, outcome)
		r.reporter.Found(job.Suffix, len(results), job.Count, outcome)
	}

	path, err := r.save(results, job.Suffix, job.Format, job.Output)
	if err != nil {
		return results, Summary{}, err
	}

	summary := r.summarize(job.Count, []LabelCount{{job.Suffix, len(results)}}, path)
	r.reporter.Finished(summary)
	return results, summary, nil
}

// Both fills a quota of job.Count addresses for each suffix. Every episode
// searches for either suffix; a match is routed to the first list it
// satisfies that still has room and is discarded when neither does.
func (r *Runner) Both(ctx context.Context, job DualJob) (a, b []generator.Outcome, summary Summary, err error) {
	if job.Count < 1 {
		return nil, nil, Summary{}, ErrInvalidCount
	}
	target := generator.AnyOfSuffixes(job.SuffixA, job.SuffixB)
	if err := target.Validate(); err != nil {
		return nil, nil, Summary{}, err
	}
	if job.SuffixA == job.SuffixB {
		return nil, nil, Summary{}, fmt.Errorf("%w: '%s'", ErrSameSuffix, job.SuffixA)
	}

	goal := job.Count * 2
	r.searcher.Reset()
	r.reporter.Started(target, goal, r.searcher.Workers())

	a = make([]generator.Outcome, 0, job.Count)
	b = make([]generator.Outcome, 0, job.Count)
	for len(a) < job.Count || len(b) < job.Count {
		outcome, err := r.searcher.FindMatch(ctx, target)
		if err != nil {
			return a, b, Summary{}, fmt.Errorf("search %d/%d: %w", len(a)+len(b)+1, goal, err)
		}

		switch {
		case outcome.Match.Has(generator.MatchA) && len(a) < job.Count:
			a = append(a, outcome)
			r.reporter.Found(job.SuffixA, len(a), job.Count, outcome)
		case outcome.Match.Has(generator.MatchB) && len(b) < job.Count:
			b = append(b, outcome)
			r.reporter.Found(job.SuffixB, len(b), job.Count, outcome)
		default:
			log.Debug("discarding match for a full quota", "address", outcome.Address)
			continue
		}

		if total := len(a) + len(b); total%10 == 0 || total == goal {
			r.reporter.Milestone(total, goal, []LabelCount{{job.SuffixA, len(a)}, {job.SuffixB, len(b)}})
		}
	}

	pathA, err := r.save(a, job.SuffixA, job.Format, dualPath(job.Output, job.SuffixA))
	if err != nil {
		return a, b, Summary{}, err
	}
	pathB, err := r.save(b, job.SuffixB, job.Format, dualPath(job.Output, job.SuffixB))
	if err != nil {
		return a, b, Summary{}, err
	}

	summary = r.summarize(goal, []LabelCount{{job.SuffixA, len(a)}, {job.SuffixB, len(b)}}, pathA, pathB)
	r.reporter.Finished(summary)
	return a, b, summary, nil
}

func (r *Runner) save(results []generator.Outcome, label string, format output.Format, path string) (string, error) {
	written, err := r.persister.Save(results, label, format, path)
	if err != nil {
		return "", fmt.Errorf("save %s addresses: %w", label, err)
	}
	r.reporter.Saved(label, written, len(results))
	return written, nil
}

func (r *Runner) summarize(requested int, counts []LabelCount, files ...string) Summary {
	stats := r.searcher.Stats()

	var addresses int
	for _, c := range counts {
		addresses += c.Count
	}

	return Summary{
		ElapsedSecs:   stats.ElapsedSecs,
		Attempts:      stats.Attempts,
		Addresses:     addresses,
		AvgPerAddress: float64(stats.Attempts) / float64(requested),
		Rate:          stats.HashRate,
		Counts:        counts,
		Files:         files,
	}
}

func dualPath(base, suffix string) string {
	if base == "" {
		return ""
	}
	return base + "_" + suffix
}
