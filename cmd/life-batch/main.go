// Command life-batch advances saved grids without a window and reports how
// each one evolves.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifepaint/internal/core"
	"lifepaint/internal/gridio"
	"lifepaint/internal/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type job struct {
	name string
	grid *core.Grid
}

type result struct {
	name        string
	rows, cols  int
	initialPop  int
	finalPop    int
	peakPop     int
	generations int
	// stableAt is the generation at which the grid stopped changing, or -1.
	stableAt int
	grid     *core.Grid
}

type options struct {
	gens    int
	workers int
	rule    core.Rule
	outDir  string
}

func main() {
	gens := flag.Int("gens", 100, "generations to advance each grid")
	workers := flag.Int("workers", runtime.NumCPU(), "grids advanced in parallel")
	ruleName := flag.String("rule", "conway", "rule name or B/S notation")
	random := flag.Int("random", 0, "number of random grids to generate in addition to files")
	rows := flag.Int("rows", 64, "rows of generated grids")
	cols := flag.Int("cols", 64, "columns of generated grids")
	seed := flag.Int64("seed", 1337, "seed of the first generated grid")
	density := flag.Float64("density", 0.3, "live density of generated grids")
	outDir := flag.String("out-dir", "", "write each final grid here when set")
	var files kvList
	flag.Var(&files, "file", "grid file to advance (repeatable; positional args also accepted)")
	flag.Parse()

	rule, err := core.LookupRule(*ruleName)
	if err != nil {
		log.Fatalf("rule: %v", err)
	}

	var jobs []job
	for _, path := range append(files, flag.Args()...) {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open %s: %v", path, err)
		}
		g, err := gridio.Decode(f, core.DefaultCellSize)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		jobs = append(jobs, job{name: path, grid: g})
	}
	for i := 0; i < *random; i++ {
		g := core.NewGrid(*rows, *cols, core.DefaultCellSize)
		s := *seed + int64(i)
		core.FillRandom(g, s, *density)
		jobs = append(jobs, job{name: fmt.Sprintf("random-%d", s), grid: g})
	}
	if len(jobs) == 0 {
		fmt.Fprintln(os.Stderr, "error: no grids given; pass -file, positional paths or -random N")
		os.Exit(2)
	}

	results, err := runAll(context.Background(), jobs, options{gens: *gens, workers: *workers, rule: rule, outDir: *outDir})
	if err != nil {
		log.Fatal(err)
	}
	printResults(results, rule)
}

// runAll advances every job concurrently. Each grid is owned by exactly one
// goroutine; results come back in job order.
func runAll(ctx context.Context, jobs []job, opts options) ([]result, error) {
	results := make([]result, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		eg.SetLimit(opts.workers)
	}
	for i, j := range jobs {
		eg.Go(func() error {
			r, err := run(ctx, j, opts)
			if err != nil {
				return errors.Wrapf(err, "grid %s", j.name)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func run(ctx context.Context, j job, opts options) (result, error) {
	g := j.grid
	r := result{
		name:       j.name,
		rows:       g.Rows,
		cols:       g.Cols,
		initialPop: g.Population(),
		stableAt:   -1,
		grid:       g,
	}
	r.peakPop = r.initialPop
	sim := life.New(g, opts.rule)
	prev := make([]bool, len(g.Cells()))
	for gen := 1; gen <= opts.gens; gen++ {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		copy(prev, g.Cells())
		sim.Step()
		r.generations = gen
		if pop := g.Population(); pop > r.peakPop {
			r.peakPop = pop
		}
		if slices.Equal(prev, g.Cells()) {
			r.stableAt = gen - 1
			break
		}
	}
	r.finalPop = g.Population()
	if opts.outDir != "" {
		path := filepath.Join(opts.outDir, outName(j.name))
		if err := gridio.ExportFile(path, g); err != nil {
			return r, err
		}
	}
	return r, nil
}

func outName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" {
		ext = ".txt"
	}
	return strings.TrimSuffix(base, ext) + ".final" + ext
}

func printResults(results []result, rule core.Rule) {
	fmt.Printf("rule %s\n", rule)
	for _, r := range results {
		stable := "no"
		if r.stableAt >= 0 {
			stable = fmt.Sprintf("gen %d", r.stableAt)
		}
		fmt.Printf("%-24s %4dx%-4d gens %5d  pop %6d -> %6d (peak %6d)  still: %s\n",
			r.name, r.rows, r.cols, r.generations, r.initialPop, r.finalPop, r.peakPop, stable)
	}
}
