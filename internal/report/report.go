// Package report renders benchmark results as CSV or a human-readable
// summary and writes them to an output directory, the same two output
// shapes the original's printResults produced.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/oslab-cc/collex/internal/config"
)

// Result is one named structure's measured runtimes, one entry per thread
// count from Params.MinThreads to Params.MaxThreads (or a single entry for
// the unsynchronized baseline, which only ever runs at one thread).
type Result struct {
	Name     string
	RunTimes []float64
}

// Bundle is everything a single invocation measured, stamped with a run
// identity so two CSV files from the same machine are never confused.
type Bundle struct {
	RunID   uuid.UUID
	Params  config.Params
	NCores  int
	Results []Result
}

// NewBundle stamps params and results with a fresh run identity.
func NewBundle(params config.Params, results []Result) Bundle {
	return Bundle{
		RunID:   uuid.New(),
		Params:  params,
		NCores:  runtime.NumCPU(),
		Results: results,
	}
}

// WriteCSV renders b in the column order:
// name,cores,minThreads,maxThreads,n,inserts,removals,lookups,scalingMode,withAffinity,preload,runtimes...
func WriteCSV(w io.Writer, b Bundle) error {
	if _, err := fmt.Fprintf(w, "# run=%s cores=%d gomaxprocs=%d\n", b.RunID, b.NCores, runtime.GOMAXPROCS(0)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "name,cores,minThreads,maxThreads,n,inserts,removals,lookups,scalingMode,withAffinity,preload,runtimes..."); err != nil {
		return err
	}
	for _, r := range b.Results {
		_, err := fmt.Fprintf(w, "%s,%d,%d,%d,%d,%.4f,%.4f,%.4f,%s,%t,%.4f",
			r.Name, b.NCores, b.Params.MinThreads, b.Params.MaxThreads, b.Params.N,
			b.Params.Inserts, b.Params.Removals, b.Params.Lookups,
			b.Params.Scaling, b.Params.Affinity, b.Params.Preload)
		if err != nil {
			return err
		}
		for _, rt := range r.RunTimes {
			if _, err := fmt.Fprintf(w, ",%.6f", rt); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// WritePretty renders a human-readable block per structure, the same
// shape as the original's console summary.
func WritePretty(w io.Writer, b Bundle) error {
	fmt.Fprintf(w, "run id:      %s\n", b.RunID)
	fmt.Fprintf(w, "cores:       %d\n", b.NCores)
	fmt.Fprintf(w, "n:           %d\n", b.Params.N)
	fmt.Fprintf(w, "mix:         inserts=%.2f removals=%.2f lookups=%.2f\n", b.Params.Inserts, b.Params.Removals, b.Params.Lookups)
	fmt.Fprintf(w, "scaling:     %s\n", b.Params.Scaling)
	fmt.Fprintf(w, "affinity:    %t\n", b.Params.Affinity)
	fmt.Fprintln(w)
	for _, r := range b.Results {
		fmt.Fprintf(w, "%s\n", r.Name)
		threads := b.Params.MinThreads
		for _, rt := range r.RunTimes {
			fmt.Fprintf(w, "\t%d threads - %.5f seconds\n", threads, rt)
			threads++
		}
	}
	return nil
}

// Filename builds the result file name from the run's parameters, the
// same n<...>_i<...>_r<...>_l<...>_u<...>_<datastruct> scheme the original
// used so result files self-describe their configuration.
func Filename(p config.Params) string {
	return fmt.Sprintf("n%d_i%.2f_r%.2f_l%.2f_u%.2f_%s",
		p.N, p.Inserts, p.Removals, p.Lookups, p.Preload, p.Datastruct)
}

// WriteToDir creates dir if missing (tolerating "already exists") and
// writes one result file inside it, CSV or pretty depending on pretty.
func WriteToDir(dir string, b Bundle, pretty bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("creating output directory %q: %w", dir, err)
	}
	f, err := os.Create(filepath.Join(dir, Filename(b.Params)))
	if err != nil {
		return fmt.Errorf("creating result file: %w", err)
	}
	defer f.Close()
	if pretty {
		return WritePretty(f, b)
	}
	return WriteCSV(f, b)
}
