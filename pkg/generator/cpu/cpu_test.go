package cpu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/mclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/MintHunter/pkg/generator"
	"github.com/Amr-9/MintHunter/pkg/generator/solana"
)

var errScriptDone = errors.New("script exhausted")

// scriptedSource hands out keypairs whose address is the keypair itself,
// in the order given, and fails once the script runs out.
type scriptedSource struct {
	mu    sync.Mutex
	addrs []string
	next  int

	clock *mclock.Simulated
	step  time.Duration
}

func (s *scriptedSource) Generate() (generator.Keypair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.addrs) {
		return nil, errScriptDone
	}
	kp := generator.Keypair(s.addrs[s.next])
	s.next++
	if s.clock != nil {
		s.clock.Run(s.step)
	}
	return kp, nil
}

func (s *scriptedSource) Address(kp generator.Keypair) string {
	return string(kp)
}

// countingSource produces an endless stream where every nth address ends
// with "xyz".
type countingSource struct {
	n     uint64
	calls atomic.Uint64
}

func (s *countingSource) Generate() (generator.Keypair, error) {
	i := s.calls.Add(1)
	if i%s.n == 0 {
		return generator.Keypair(fmt.Sprintf("k%dxyz", i)), nil
	}
	return generator.Keypair(fmt.Sprintf("k%d", i)), nil
}

func (s *countingSource) Address(kp generator.Keypair) string {
	return string(kp)
}

func quiet(g *CPUGenerator) *CPUGenerator {
	g.OnProgress(nil)
	return g
}

func TestNewCPUGeneratorDefaults(t *testing.T) {
	g := NewCPUGenerator(0, &countingSource{n: 1})
	assert.Greater(t, g.Workers(), 0)
	assert.Equal(t, "CPU", g.Name())

	g = NewCPUGenerator(3, &countingSource{n: 1})
	assert.Equal(t, 3, g.Workers())
}

func TestFindMatchSingleWorkerScript(t *testing.T) {
	src := &scriptedSource{addrs: []string{"abc", "defxyz"}}
	g := quiet(NewCPUGenerator(1, src))
	g.Reset()

	outcome, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
	require.NoError(t, err)

	assert.Equal(t, "defxyz", outcome.Address)
	assert.Equal(t, generator.Keypair("defxyz"), outcome.Keypair)
	assert.Equal(t, generator.MatchA, outcome.Match)
	assert.Equal(t, 0, outcome.WorkerID)
	assert.EqualValues(t, 2, outcome.LocalAttempts)
	assert.EqualValues(t, 2, g.Stats().Attempts)
}

func TestFindMatchReportsAlternative(t *testing.T) {
	src := &scriptedSource{addrs: []string{"aaa", "cccbonk"}}
	g := quiet(NewCPUGenerator(1, src))

	outcome, err := g.FindMatch(context.Background(), generator.AnyOfSuffixes("pump", "bonk"))
	require.NoError(t, err)
	assert.Equal(t, "cccbonk", outcome.Address)
	assert.Equal(t, generator.MatchB, outcome.Match)
}

func TestFindMatchExactlyOnceManyWorkers(t *testing.T) {
	src := &countingSource{n: 25}
	g := quiet(NewCPUGenerator(8, src))
	g.Reset()
	target := generator.Suffix("xyz")

	var last uint64
	for i := 0; i < 20; i++ {
		outcome, err := g.FindMatch(context.Background(), target)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(outcome.Address, "xyz"), outcome.Address)

		attempts := g.Stats().Attempts
		assert.GreaterOrEqual(t, attempts, last+1, "counter must grow every episode")
		last = attempts
	}
}

func TestFindMatchStopsAllWorkers(t *testing.T) {
	src := &countingSource{n: 1000}
	g := quiet(NewCPUGenerator(4, src))
	g.Reset()

	_, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
	require.NoError(t, err)

	// Every attempt counted by the generator came from a finished Generate
	// call, and no worker keeps generating after FindMatch returns.
	calls := src.calls.Load()
	assert.Equal(t, calls, g.Stats().Attempts)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, src.calls.Load())
}

func TestFindMatchExhausted(t *testing.T) {
	src := &scriptedSource{addrs: []string{"aaa", "bbb", "ccc"}}
	g := quiet(NewCPUGenerator(2, src))
	g.Reset()

	_, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrExhaustedSearch)
	assert.EqualValues(t, 3, g.Stats().Attempts)
}

func TestFindMatchContextCancelled(t *testing.T) {
	src := &countingSource{n: 1 << 62}
	g := quiet(NewCPUGenerator(4, src))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := g.FindMatch(ctx, generator.Suffix("xyz"))
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrExhaustedSearch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFindMatchRejectsEmptySuffix(t *testing.T) {
	g := quiet(NewCPUGenerator(1, &countingSource{n: 1}))
	_, err := g.FindMatch(context.Background(), generator.AnyOfSuffixes("pump", ""))
	assert.ErrorIs(t, err, generator.ErrEmptySuffix)
}

func TestProgressReportsFromWorkerZero(t *testing.T) {
	sim := new(mclock.Simulated)
	src := &scriptedSource{
		addrs: []string{"a", "b", "c", "d", "e", "f", "gxyz"},
		clock: sim,
		step:  2 * time.Second,
	}

	g := NewCPUGenerator(1, src)
	g.SetClock(sim)
	g.SetReportInterval(5 * time.Second)

	var reports []Progress
	g.OnProgress(func(p Progress) { reports = append(reports, p) })
	g.Reset()

	_, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
	require.NoError(t, err)

	// Reports fire on the first attempt at or after 5s and 11s.
	require.Len(t, reports, 2)
	assert.EqualValues(t, 3, reports[0].Attempts)
	assert.InDelta(t, 6.0, reports[0].ElapsedSecs, 1e-9)
	assert.InDelta(t, 0.5, reports[0].HashRate, 1e-9)
	assert.EqualValues(t, 6, reports[1].Attempts)
	assert.Equal(t, 1, reports[1].Workers)
	assert.Equal(t, generator.Suffix("xyz"), reports[1].Target)
}

func TestProgressDisabled(t *testing.T) {
	sim := new(mclock.Simulated)
	src := &scriptedSource{addrs: []string{"a", "b", "cxyz"}, clock: sim, step: time.Minute}

	g := NewCPUGenerator(1, src)
	g.SetClock(sim)
	g.SetReportInterval(0)
	called := false
	g.OnProgress(func(Progress) { called = true })

	_, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
	require.NoError(t, err)
	assert.False(t, called)
}

func TestStatsRateSinceBatchStart(t *testing.T) {
	sim := new(mclock.Simulated)
	src := &scriptedSource{addrs: []string{"a", "bxyz", "c", "dxyz"}, clock: sim, step: time.Second}

	g := quiet(NewCPUGenerator(1, src))
	g.SetClock(sim)
	g.Reset()

	for i := 0; i < 2; i++ {
		_, err := g.FindMatch(context.Background(), generator.Suffix("xyz"))
		require.NoError(t, err)
	}

	stats := g.Stats()
	assert.EqualValues(t, 4, stats.Attempts)
	assert.InDelta(t, 4.0, stats.ElapsedSecs, 1e-9)
	assert.InDelta(t, 1.0, stats.HashRate, 1e-9)

	g.Reset()
	assert.Zero(t, g.Stats().Attempts)
}

func TestFindMatchSolanaSource(t *testing.T) {
	g := quiet(NewCPUGenerator(2, solana.NewSource()))
	g.Reset()

	outcome, err := g.FindMatch(context.Background(), generator.Suffix("a"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(outcome.Address, "a"))
	assert.Len(t, outcome.Keypair, solana.KeypairSize)
	assert.NoError(t, solana.VerifyKeypair(outcome.Address, solana.EncodePrivateKey(outcome.Keypair)))
}
