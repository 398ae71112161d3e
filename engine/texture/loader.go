package texture

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// DecodeAll decodes a batch of image files concurrently through a bounded
// worker pool. Decoding is pure CPU work with no GL dependency, so it can run
// off the context thread; the returned slices line up with paths so the
// caller can upload them in order afterward. On any failure the first error
// for each failing path is joined into the returned error and the
// corresponding slot is nil.
//
// Parameters:
//   - paths: image file paths to decode
//   - workers: worker goroutine count (values < 1 default to NumCPU-1, minimum 1)
//
// Returns:
//   - []*ImageData: decoded images, index-aligned with paths
//   - error: joined decode errors, or nil if every path decoded
func DecodeAll(paths []string, workers int) ([]*ImageData, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	if workers < 1 {
		workers = max(runtime.NumCPU()-1, 1)
	}

	// Queue sized to the batch so SubmitTask never blocks; the pool reaps
	// idle workers shortly after the batch drains.
	pool := worker.NewDynamicWorkerPool(workers, len(paths), 1*time.Second)

	results := make([]*ImageData, len(paths))
	errs := make([]error, len(paths))

	// A WaitGroup provides the batch barrier since pool.Wait() blocks until
	// workers idle-exit, which is unsuitable here.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		idx, p := i, path
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				data, err := DecodeFile(p)
				if err != nil {
					errs[idx] = fmt.Errorf("decode %s: %w", p, err)
					return nil, err
				}
				results[idx] = data
				return nil, nil
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return results, err
	}
	return results, nil
}
