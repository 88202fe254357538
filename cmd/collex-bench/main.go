// Command collex-bench benchmarks every concurrent collection strategy in
// this module under a partition/preload/measure workload and reports
// wall-clock runtime per thread count, as CSV or a human-readable summary.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/oslab-cc/collex/internal/bench"
	"github.com/oslab-cc/collex/internal/config"
	"github.com/oslab-cc/collex/internal/obslog"
	"github.com/oslab-cc/collex/internal/report"
	"github.com/oslab-cc/collex/pkg/adapters"
	"github.com/oslab-cc/collex/pkg/collist"
	"github.com/oslab-cc/collex/pkg/colmap"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "collex-bench:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	params, err := config.Parse(args)
	if err != nil {
		return err
	}

	log := obslog.New(params.Pretty)
	defer log.Sync() //nolint:errcheck

	log.Info("starting run",
		zap.Uint64("n", params.N),
		zap.String("scaling", params.Scaling.String()),
		zap.String("datastruct", params.Datastruct.String()),
		zap.Strings("types", params.Types),
		zap.Int("minThreads", params.MinThreads),
		zap.Int("maxThreads", params.MaxThreads),
	)

	runner := bench.New(params, log)

	var results []report.Result
	if params.Datastruct == config.DSList || params.Datastruct == config.DSBoth {
		results = append(results, runListVariants(runner, params)...)
	}
	if params.Datastruct == config.DSMap || params.Datastruct == config.DSBoth {
		results = append(results, runMapVariants(runner, params)...)
	}

	bundle := report.NewBundle(params, results)

	if params.OutDir != "" {
		if err := report.WriteToDir(params.OutDir, bundle, params.Pretty); err != nil {
			return err
		}
		log.Info("wrote results", zap.String("dir", params.OutDir), zap.String("runID", bundle.RunID.String()))
	}

	if params.Pretty {
		return report.WritePretty(os.Stdout, bundle)
	}
	return report.WriteCSV(os.Stdout, bundle)
}

func intEq() collist.Eq[uint64] { return collist.EqualValues[uint64]() }

// runListVariants benchmarks one collist.Set[uint64] per requested --type.
func runListVariants(r *bench.Runner, p config.Params) []report.Result {
	var out []report.Result
	for _, t := range p.Types {
		switch t {
		case "single":
			out = append(out, r.RunSingle("list/single", bench.ListFactory(func() collist.Set[uint64] {
				return collist.NewSequential(intEq())
			})))
		case "coarsegrain":
			out = append(out, r.Run("list/coarsegrain", bench.ListFactory(func() collist.Set[uint64] {
				return collist.NewCoarse(intEq())
			})))
		case "finegrain":
			out = append(out, r.Run("list/finegrain", bench.ListFactory(func() collist.Set[uint64] {
				return collist.NewFineGrained(intEq())
			})))
		case "spinning":
			out = append(out, r.Run("list/spinning", bench.ListFactory(func() collist.Set[uint64] {
				return collist.NewRWSpin(intEq())
			})))
		case "lockfree":
			out = append(out, r.Run("list/lockfree", bench.ListFactory(func() collist.Set[uint64] {
				return collist.NewLockFree(intEq())
			})))
		case "cuckoo", "tbb":
			// cuckoo and TBB-style adapters are hash map concerns, not
			// lists; silently skipped when --datastruct includes "list".
		}
	}
	return out
}

// runMapVariants benchmarks one colmap.Map[uint64, uint64] per requested
// --type, choosing the bucket count from Params.MapLoadFactor.
func runMapVariants(r *bench.Runner, p config.Params) []report.Result {
	nBuckets := int(p.N) / p.MapLoadFactor
	if nBuckets < 1 {
		nBuckets = 1
	}
	elemEq := colmap.ElemEq[uint64, uint64]()
	newBucketMap := func(factory colmap.BucketFactory[uint64, uint64]) colmap.Map[uint64, uint64] {
		return colmap.New(nBuckets, colmap.IdentityHash(), factory)
	}

	var out []report.Result
	for _, t := range p.Types {
		switch t {
		case "single":
			out = append(out, r.RunSingle("map/single", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return newBucketMap(func() collist.Set[colmap.Elem[uint64, uint64]] { return collist.NewSequential(elemEq) })
			})))
		case "coarsegrain":
			out = append(out, r.Run("map/coarsegrain", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return newBucketMap(func() collist.Set[colmap.Elem[uint64, uint64]] { return collist.NewCoarse(elemEq) })
			})))
		case "finegrain":
			out = append(out, r.Run("map/finegrain", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return newBucketMap(func() collist.Set[colmap.Elem[uint64, uint64]] { return collist.NewFineGrained(elemEq) })
			})))
		case "spinning":
			out = append(out, r.Run("map/spinning", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return newBucketMap(func() collist.Set[colmap.Elem[uint64, uint64]] { return collist.NewRWSpin(elemEq) })
			})))
		case "lockfree":
			out = append(out, r.Run("map/lockfree", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return newBucketMap(func() collist.Set[colmap.Elem[uint64, uint64]] { return collist.NewLockFree(elemEq) })
			})))
		case "cuckoo":
			out = append(out, r.Run("map/cuckoo", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return adapters.NewCuckooMap[uint64, uint64](nBuckets, func(k, seed uint64) uint64 { return k ^ seed })
			})))
		case "tbb":
			out = append(out, r.Run("map/tbb", bench.MapFactory(func() colmap.Map[uint64, uint64] {
				return adapters.NewXsyncMap[uint64, uint64](nBuckets)
			})))
		}
	}
	return out
}
