package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/pflag"
)

// Parse builds a FlagSet mirroring the original's getopt_long table,
// parses args against it, and returns validated Params.
func Parse(args []string) (Params, error) {
	fs := pflag.NewFlagSet("collex-bench", pflag.ContinueOnError)

	n := fs.Uint64("n", 1_000_000, "size of the synthetic key space")
	inserts := fs.Float64("inserts", 0.34, "fraction of operations that are inserts")
	removals := fs.Float64("removals", 0.33, "fraction of operations that are removals")
	lookups := fs.Float64("lookups", 0.33, "fraction of operations that are lookups")
	preload := fs.Float64("preload", 0, "fraction of each thread's key-space slice to preload before timing")
	scaling := fs.String("scaling", "problem", `key-space scaling mode: "problem" or "memory"`)
	datastruct := fs.String("datastruct", "both", `structure family to benchmark: "list", "map" or "both"`)
	affinity := fs.Bool("affinity", false, "pin each worker goroutine's OS thread to a CPU core")
	minThreads := fs.Int("min-threads", 1, "smallest thread count to measure")
	maxThreads := fs.Int("max-threads", runtime.NumCPU(), "largest thread count to measure")
	mapLoadFactor := fs.Int("map-load-factor", 4, "target average bucket occupancy for map variants")
	types := fs.StringSlice("type", AllTypes, fmt.Sprintf("comma-separated list of synchronization strategies, any of %v", AllTypes))
	outDir := fs.String("out-dir", "", "directory to write result files into; empty means stdout only")
	pretty := fs.Bool("pretty", false, "print a human-readable summary instead of CSV")

	if err := fs.Parse(args); err != nil {
		return Params{}, fmt.Errorf("parsing flags: %w", err)
	}
	for _, name := range []string{"n", "inserts", "removals", "lookups"} {
		if !fs.Changed(name) {
			return Params{}, fmt.Errorf("--%s is required", name)
		}
	}

	scalingMode, err := ParseScalingMode(*scaling)
	if err != nil {
		return Params{}, err
	}
	ds, err := ParseDatastruct(*datastruct)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		N:             *n,
		Inserts:       *inserts,
		Removals:      *removals,
		Lookups:       *lookups,
		Preload:       *preload,
		Scaling:       scalingMode,
		Datastruct:    ds,
		Affinity:      *affinity,
		MinThreads:    *minThreads,
		MaxThreads:    *maxThreads,
		MapLoadFactor: *mapLoadFactor,
		Types:         *types,
		OutDir:        *outDir,
		Pretty:        *pretty,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
