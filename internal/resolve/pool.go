package resolve

import (
	"context"
	"sync"

	"screenwave/internal/media"
)

// Outcome is the result of resolving one URL in a batch.
type Outcome struct {
	URL    string
	Result *media.VideoResult
	Err    error
}

// ResolveAll resolves urls with at most workers running at once. Outcomes
// are returned in input order.
func (r *Resolver) ResolveAll(ctx context.Context, urls []string, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}

	out := make([]Outcome, len(urls))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers && w < len(urls); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := r.Resolve(ctx, urls[i])
				out[i] = Outcome{URL: urls[i], Result: res, Err: err}
			}
		}()
	}

	for i := range urls {
		if ctx.Err() != nil {
			out[i] = Outcome{URL: urls[i], Err: ctx.Err()}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
