package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/fwojciec/tourpkg"
	"golang.org/x/sync/errgroup"
)

// DefaultProgressInterval is the number of completed products between
// progress reports.
const DefaultProgressInterval = 500

// Runner assembles a batch of products in parallel.
type Runner struct {
	Assembler tourpkg.Assembler
	Logger    *slog.Logger

	// Concurrency bounds the number of products assembled at once.
	// Defaults to GOMAXPROCS.
	Concurrency int

	// ProgressInterval defaults to DefaultProgressInterval.
	ProgressInterval int
}

// Progress reports how many products of a batch have completed.
type Progress struct {
	Completed int
	Total     int
	ID        tourpkg.ProductID
}

// ProgressFunc is called every ProgressInterval completed products.
// Calls are serialized.
type ProgressFunc func(Progress)

// assembled holds the outcome of one product.
type assembled struct {
	position  int
	id        tourpkg.ProductID
	pkg       *tourpkg.Package
	completed int64
}

// Run assembles every product and returns the packages in input order with
// rejected products left out. The first assembly error cancels the
// remaining work and is returned; no partial result is returned with it.
func (r *Runner) Run(ctx context.Context, ids []tourpkg.ProductID, progress ProgressFunc) ([]*tourpkg.Package, error) {
	begin := time.Now()

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	interval := r.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resultCh := make(chan assembled, len(ids))
	var completed atomic.Int64
	var runErr error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, id := range ids {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				pkg, err := r.Assembler.Assemble(gctx, id)
				if err != nil {
					return err
				}
				resultCh <- assembled{
					position:  i,
					id:        id,
					pkg:       pkg,
					completed: completed.Add(1),
				}
				return nil
			})
		}
		runErr = g.Wait()
		if runErr == nil {
			runErr = ctx.Err()
		}
		close(resultCh)
	}()

	// Collect results by position
	results := make([]*tourpkg.Package, len(ids))
	for res := range resultCh {
		results[res.position] = res.pkg
		if res.completed%int64(interval) != 0 {
			continue
		}
		logger.Info("progress",
			"completed", res.completed,
			"total", len(ids),
			"product", res.id.String(),
		)
		if progress != nil {
			progress(Progress{Completed: int(res.completed), Total: len(ids), ID: res.id})
		}
	}
	if runErr != nil {
		return nil, runErr
	}

	pkgs := make([]*tourpkg.Package, 0, len(ids))
	for _, pkg := range results {
		if pkg != nil {
			pkgs = append(pkgs, pkg)
		}
	}

	logger.Info("batch finished",
		"total", len(ids),
		"parsed", len(pkgs),
		"rejected", len(ids)-len(pkgs),
		"duration", time.Since(begin),
	)
	return pkgs, nil
}
