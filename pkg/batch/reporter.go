package batch

import "github.com/Amr-9/MintHunter/pkg/generator"

// Reporter receives batch events for display.
type Reporter interface {
	// Started is called once, before the first episode. goal is the total
	// number of addresses the batch will collect.
	Started(target generator.Target, goal, workers int)

	// Found is called each time the list for label grows to n of count.
	Found(label string, n, count int, outcome generator.Outcome)

	// Milestone is called in dual mode when the total reaches a multiple
	// of ten or the goal.
	Milestone(total, goal int, counts []LabelCount)

	// Saved is called after a list has been persisted.
	Saved(label, path string, n int)

	// Finished is called once with the batch summary.
	Finished(Summary)
}

// NopReporter ignores every event.
type NopReporter struct{}

func (NopReporter) Started(generator.Target, int, int) {}
func (NopReporter) Found(string, int, int, generator.Outcome) {}
func (NopReporter) Milestone(int, int, []LabelCount) {}
func (NopReporter) Saved(string, string, int) {}
func (NopReporter) Finished(Summary) {}
