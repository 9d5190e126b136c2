package cpu

import (
	"github.com/Amr-9/MintHunter/internal/log"
	"github.com/Amr-9/MintHunter/pkg/generator"
)

// Progress is a throughput report emitted by worker 0.
type Progress struct {
	generator.Stats
	Target  generator.Target
	Workers int
}

// ProgressFunc receives progress reports. It runs on worker 0's goroutine
// and must not block.
type ProgressFunc func(Progress)

func (g *CPUGenerator) report(target generator.Target) {
	g.onProgress(Progress{
		Stats:   g.Stats(),
		Target:  target,
		Workers: g.workers,
	})
}

func logProgress(p Progress) {
	log.Info("searching",
		"attempts", p.Attempts,
		"keys_per_sec", int64(p.HashRate),
		"target", p.Target.String(),
		"workers", p.Workers)
}
