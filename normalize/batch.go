package normalize

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/fieldnorm/foundation/logger"
)

// BatchResult is the outcome for the record at Index in the input slice.
type BatchResult struct {
	Index  int
	Output Record
	Err    error
}

type ctxLogger interface {
	WarnwCtx(ctx context.Context, msg string, kv ...any)
}

// ProcessBatch runs proc over records with at most workers records in flight
// (workers <= 1 means sequential). Results keep input order. A failing record
// only fails itself; the returned error is set when ctx is done before all
// records were processed.
func ProcessBatch(ctx context.Context, proc Processor, records []Record, workers int, opts ...Option) ([]BatchResult, error) {
	if proc == nil {
		return nil, errors.New("process batch: nil processor")
	}
	if workers < 1 {
		workers = 1
	}
	o := buildOptions(opts)

	results := make([]BatchResult, len(records))
	for i := range results {
		results[i].Index = i
	}
	var processed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range records {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := proc.Process(records[i])
			results[i] = BatchResult{Index: i, Output: out, Err: err}
			processed.Add(1)
			if err != nil {
				logRecordFailure(logger.ContextWithRecordIndex(ctx, i), o.log, proc.Domain(), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("process batch: %w", err)
	}
	if err := ctx.Err(); err != nil && processed.Load() < int64(len(records)) {
		return results, fmt.Errorf("process batch: %w", err)
	}
	return results, nil
}

func logRecordFailure(ctx context.Context, l logger.LoggerInterface, domain string, err error) {
	if cl, ok := l.(ctxLogger); ok {
		cl.WarnwCtx(ctx, "record failed", "domain", domain, "error", err)
		return
	}
	l.Warnw("record failed", "domain", domain, "error", err)
}
