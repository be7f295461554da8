package suite

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/search"
	"github.com/lgbarn/dokchess-go/internal/worker"
)

// SelectorFactory builds the selector used for one case.
type SelectorFactory func() (search.Selector, error)

// Result is the engine's answer to one case.
type Result struct {
	Case   Case
	Move   chess.Move
	Score  int
	Nodes  uint64
	Found  bool // false when the position had no legal move
	Passed bool
}

// Summary totals a suite run.
type Summary struct {
	Total  int
	Passed int
	Failed int
	NoMove int
	Nodes  uint64
}

// String formats the summary for the console.
func (s Summary) String() string {
	return fmt.Sprintf("Solved: %d, Failed: %d, No move: %d, Total: %d, Nodes: %d",
		s.Passed, s.Failed, s.NoMove, s.Total, s.Nodes)
}

// Summarize totals results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		s.Nodes += r.Nodes
		switch {
		case !r.Found:
			s.NoMove++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// Runner searches suite cases on a worker pool.
type Runner struct {
	Workers    int
	BufferSize int
	Logger     zerolog.Logger
}

// Run searches cases with the given number of workers and no logging.
func Run(ctx context.Context, cases []Case, newSelector SelectorFactory, workers int) ([]Result, Summary, error) {
	r := &Runner{Workers: workers, Logger: zerolog.Nop()}
	return r.Run(ctx, cases, newSelector)
}

// Run searches every case and returns the results in input order. The
// first selector error or a cancelled context aborts the run.
func (r *Runner) Run(ctx context.Context, cases []Case, newSelector SelectorFactory) ([]Result, Summary, error) {
	pool := worker.NewPool(r.Workers, r.BufferSize, worker.SearchFunc(newSelector))
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)
	loaded := make(chan struct{})
	results := make([]Result, len(cases))

	g.Go(func() error {
		defer close(loaded)
		for i, c := range cases {
			if err := ctx.Err(); err != nil {
				pool.Stop()
				return err
			}
			pool.Submit(worker.WorkItem{Position: c.Position, Name: c.Name, Index: i})
		}
		return nil
	})

	g.Go(func() error {
		<-loaded
		pool.Close()
		return nil
	})

	g.Go(func() error {
		var firstErr error
		// Drain everything so that no worker blocks on a full result queue.
		for pr := range pool.Results() {
			if pr.Error != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("case %s: %w", pr.Name, pr.Error)
					pool.Stop()
				}
				continue
			}
			res := newResult(cases[pr.Index], pr.Result)
			results[pr.Index] = res
			r.Logger.Debug().
				Str("case", pr.Name).
				Stringer("move", res.Move).
				Bool("passed", res.Passed).
				Uint64("nodes", res.Nodes).
				Msg("case searched")
		}
		return firstErr
	})

	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summarize(results)
	r.Logger.Info().
		Int("total", summary.Total).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Int("no_move", summary.NoMove).
		Msg("suite finished")
	return results, summary, nil
}

func newResult(c Case, sr search.Result) Result {
	return Result{
		Case:   c,
		Move:   sr.Move,
		Score:  sr.Score,
		Nodes:  sr.Nodes,
		Found:  sr.Found,
		Passed: sr.Found && c.Accepts(sr.Move),
	}
}
