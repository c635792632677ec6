package feed

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/feedgate/pkg/validator"
)

// Result is the verdict for one record of a batch. Index mirrors the
// record's position in the input so callers can correlate results with
// sources regardless of completion order.
type Result struct {
	Index      int                  `json:"index"`
	Item       *Item                `json:"item,omitempty"`
	Violations validator.Violations `json:"violations,omitempty"`
}

// Valid reports whether the record passed validation.
func (r Result) Valid() bool {
	return r.Item != nil && r.Violations.IsEmpty()
}

// ValidateBatch validates records concurrently. Each record is
// independent, so the work is embarrassingly parallel; every result is
// written into the slot matching its input position, which makes the
// output deterministic under any worker count. Context cancellation
// stops scheduling further records; records already started finish.
func ValidateBatch(ctx context.Context, records []map[string]any, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

scheduling:
	for i, rec := range records {
		i, rec := i, rec
		select {
		case <-ctx.Done():
			break scheduling
		default:
		}

		g.Go(func() error {
			item, vs := ValidateItem(rec)
			results[i] = Result{Index: i, Item: item, Violations: vs}
			return nil
		})
	}

	// Wait even when cancelled: the results slice must not be handed
	// back while in-flight records are still writing into it.
	if err := g.Wait(); err != nil {
		return results, err
	}
	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
