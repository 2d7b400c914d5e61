package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ils-data/marc852-audit/internal/entity"
)

// Batch fans holdings records out to a fixed pool of analyzer workers.
// Results come back in input order.
type Batch struct {
	analyzer *Analyzer
	logger   *slog.Logger
	workers  int
}

type Option func(*Batch)

func WithWorkers(n int) Option {
	return func(b *Batch) {
		if n > 0 {
			b.workers = n
		}
	}
}

func NewBatch(logger *slog.Logger, opts ...Option) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Batch{
		analyzer: NewAnalyzer(),
		logger:   logger,
		workers:  4,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run analyzes all records and returns the results in input order. On
// cancellation it stops feeding workers and returns the context error
// alongside the partially filled slice.
func (b *Batch) Run(ctx context.Context, records []entity.HoldingRecord) ([]entity.AnalyzedRecord, error) {
	results := make([]entity.AnalyzedRecord, len(records))
	if len(records) == 0 {
		return results, nil
	}

	b.logger.Info("analyze.batch.start", "records", len(records), "workers", b.workers)

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < b.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				results[idx] = b.analyzer.Analyze(records[idx])
			}
		}()
	}

feed:
	for i := range records {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		b.logger.Warn("analyze.batch.cancelled", "err", err)
		return results, err
	}

	b.logger.Info("analyze.batch.ok", "records", len(records))
	return results, nil
}
