package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oslab-cc/collex/internal/config"
	"github.com/oslab-cc/collex/pkg/collist"
)

func testParams(n uint64, scaling config.ScalingMode, minT, maxT int) config.Params {
	return config.Params{
		N: n, Inserts: 0.34, Removals: 0.33, Lookups: 0.33, Preload: 0.5,
		Scaling: scaling, MinThreads: minT, MaxThreads: maxT, MapLoadFactor: 4,
	}
}

func TestChunkParamsProblemScalingCoversWholeRangeExactly(t *testing.T) {
	r := New(testParams(100, config.Problem, 1, 8), nil)
	const nThreads = 7
	var covered uint64
	var prevEnd uint64
	for i := uint64(0); i < nThreads; i++ {
		cp := r.chunkParams(i, nThreads)
		assert.Equal(t, prevEnd, cp.Start, "slice %d must start where the previous one ended", i)
		covered += cp.Chunk
		prevEnd = cp.StartNext
	}
	assert.Equal(t, uint64(len(r.Numbers)), covered)
	assert.Equal(t, uint64(len(r.Numbers)), prevEnd)
}

func TestChunkParamsMemoryScalingGivesEveryThreadNKeys(t *testing.T) {
	r := New(testParams(50, config.Memory, 1, 4), nil)
	for i := uint64(0); i < 4; i++ {
		cp := r.chunkParams(i, 4)
		assert.Equal(t, uint64(50), cp.Chunk)
		assert.Equal(t, i*50, cp.Start)
	}
}

func TestRunOneThreadAgainstCoarseListDoesNotPanic(t *testing.T) {
	r := New(testParams(200, config.Problem, 1, 1), nil)
	res := r.Run("list/coarsegrain", ListFactory(func() collist.Set[uint64] {
		return collist.NewCoarse(collist.EqualValues[uint64]())
	}))
	require.Len(t, res.RunTimes, 1)
	assert.GreaterOrEqual(t, res.RunTimes[0], 0.0)
}

func TestRunMultipleThreadsAgainstLockFreeListDoesNotPanic(t *testing.T) {
	r := New(testParams(500, config.Problem, 1, 4), nil)
	res := r.Run("list/lockfree", ListFactory(func() collist.Set[uint64] {
		return collist.NewLockFree(collist.EqualValues[uint64]())
	}))
	require.Len(t, res.RunTimes, 4)
	for _, rt := range res.RunTimes {
		assert.GreaterOrEqual(t, rt, 0.0)
	}
}
