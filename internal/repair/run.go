package repair

import (
	"context"
	"runtime"
	"sync"
)

// Run repairs files as an unordered parallel map with at most workers
// concurrent file units. workers <= 0 means one per CPU. Results are
// returned in the order of files; no cross-file ordering is guaranteed
// during processing and none is needed, since each file is repaired from
// its own content plus the shared read-only identifier set.
func (r *Repairer) Run(ctx context.Context, files []string, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(files))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, path := range files {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = r.ProcessFile(ctx, path)
		}(i, path)
	}
	wg.Wait()

	return results
}
