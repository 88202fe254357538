package bench

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oslab-cc/collex/internal/affinity"
	"github.com/oslab-cc/collex/internal/config"
	"github.com/oslab-cc/collex/internal/report"
)

// randSeed is the fixed multiplier used to derive each worker's
// deterministic per-thread random seed, the same role the original's
// constant kSeed played.
const randSeed = 117

// ChunkParams describes one worker's slice of the synthetic key space:
// [Start, StartNext) is the range of keys it may ever insert, Chunk is the
// number of operations it must perform, and Preload is how many of those
// keys are inserted before timing starts.
type ChunkParams struct {
	Start, StartNext, Chunk, Preload uint64
}

// Runner drives the partition/preload/measure benchmark described for
// every list and map synchronization strategy.
type Runner struct {
	Params  config.Params
	Numbers []uint64
	Log     *zap.Logger
}

// New builds a Runner and materializes its synthetic key space. Under
// Memory scaling every thread gets its own N keys, so the key space grows
// with MaxThreads; under Problem scaling the key space size is fixed at N
// and split across however many threads a given trial uses.
func New(p config.Params, log *zap.Logger) *Runner {
	total := p.N
	if p.Scaling == config.Memory {
		total = p.N * uint64(p.MaxThreads)
	}
	numbers := make([]uint64, total)
	for i := range numbers {
		numbers[i] = uint64(i)
	}
	return &Runner{Params: p, Numbers: numbers, Log: log}
}

// chunkParams computes worker threadID's slice out of nThreads total
// workers. Memory scaling gives every thread an equal, disjoint [i*n,
// (i+1)*n) slice; Problem scaling splits len(Numbers) as evenly as
// possible, handing the first (len % nThreads) threads one extra key.
func (r *Runner) chunkParams(threadID, nThreads uint64) ChunkParams {
	var start, startNext uint64
	if r.Params.Scaling == config.Memory {
		start = threadID * r.Params.N
		startNext = start + r.Params.N
	} else {
		total := uint64(len(r.Numbers))
		base := total / nThreads
		extra := total % nThreads
		at := func(i uint64) uint64 {
			if i < extra {
				return i * (base + 1)
			}
			return i*base + extra
		}
		start = at(threadID)
		startNext = at(threadID + 1)
	}
	chunk := startNext - start
	preload := uint64(r.Params.Preload * float64(chunk))
	return ChunkParams{Start: start, StartNext: startNext, Chunk: chunk, Preload: preload}
}

// runOnce builds one fresh target via newTarget, preloads it single
// threaded, then runs nThreads workers concurrently and returns the
// wall-clock duration of the measured phase alone.
func (r *Runner) runOnce(nThreads uint64, newTarget func() target) float64 {
	tgt := newTarget()
	buffers := make([][]uint64, nThreads)
	nCounts := make([]uint64, nThreads)

	for t := uint64(0); t < nThreads; t++ {
		cp := r.chunkParams(t, nThreads)
		buf := make([]uint64, cp.Chunk)
		last := cp.Start + cp.Preload
		if last > cp.StartNext {
			last = cp.StartNext
		}
		k := uint64(0)
		for j := cp.Start; j < last; j++ {
			num := r.Numbers[j]
			tgt.insert(num)
			buf[k] = num
			k++
		}
		buffers[t] = buf
		nCounts[t] = k
	}

	start := time.Now()
	var g errgroup.Group
	for t := uint64(1); t < nThreads; t++ {
		t := t
		cp := r.chunkParams(t, nThreads)
		g.Go(func() error {
			r.runWorker(t, cp, tgt, buffers[t], nCounts[t])
			return nil
		})
	}
	cp0 := r.chunkParams(0, nThreads)
	r.runWorker(0, cp0, tgt, buffers[0], nCounts[0])
	_ = g.Wait()
	return time.Since(start).Seconds()
}

// runWorker performs cp.Chunk randomized operations against tgt, picking
// insert/remove/lookup by the configured mix and tracking live keys in buf
// so removals and lookups always target a key that plausibly exists.
func (r *Runner) runWorker(threadID uint64, cp ChunkParams, tgt target, buf []uint64, nCount uint64) {
	if r.Params.Affinity {
		if err := affinity.PinCurrentThreadToCore(int(threadID), r.Log); err != nil && r.Log != nil {
			r.Log.Debug("affinity pin returned an error", zap.Error(err))
		}
	}
	rng := rand.New(rand.NewSource(int64(randSeed * (threadID + 1))))
	removeThreshold := r.Params.Inserts + r.Params.Removals
	next := cp.Start + cp.Preload

	for ops := uint64(0); ops < cp.Chunk; {
		roll := rng.Float64()
		switch {
		case roll < r.Params.Inserts && next < cp.StartNext:
			num := r.Numbers[next]
			next++
			if rng.Float64() < 0.5 {
				tgt.insert(num)
			} else {
				tgt.insertUnique(num)
			}
			buf[nCount] = num
			nCount++
			ops++
		case roll < removeThreshold:
			if nCount == 0 {
				break
			}
			idx := uint64(rng.Float64() * float64(nCount))
			if idx >= nCount {
				idx = nCount - 1
			}
			tgt.remove(buf[idx])
			nCount--
			buf[idx] = buf[nCount]
			ops++
		default:
			if nCount == 0 {
				break
			}
			idx := uint64(rng.Float64() * float64(nCount))
			if idx >= nCount {
				idx = nCount - 1
			}
			tgt.contains(buf[idx])
			ops++
		}

		if next >= cp.StartNext && nCount == 0 && ops < cp.Chunk {
			break // exhausted: no keys left to insert and none live to touch
		}
	}
}

// Run sweeps Params.MinThreads..Params.MaxThreads, rebuilding a fresh
// target for each thread count via newTarget.
func (r *Runner) Run(name string, newTarget func() target) report.Result {
	res := report.Result{Name: name}
	for c := uint64(r.Params.MinThreads); c <= uint64(r.Params.MaxThreads); c++ {
		res.RunTimes = append(res.RunTimes, r.runOnce(c, newTarget))
	}
	return res
}

// RunSingle measures name at a single thread regardless of
// Params.MinThreads/MaxThreads, for unsynchronized baselines that are only
// safe to drive from one goroutine.
func (r *Runner) RunSingle(name string, newTarget func() target) report.Result {
	return report.Result{Name: name, RunTimes: []float64{r.runOnce(1, newTarget)}}
}
