package bench

import (
	"time"

	"github.com/Borislavv/char-counter/internal/count"
)

// Result is one sweep point: the averaged timing at a fixed thread count and
// the counts produced by its last rerun.
type Result struct {
	Threads int
	Reruns  int
	Total   time.Duration
	Mean    time.Duration
	Counts  count.Counts
}

// Run calls count.Parallel reruns times in sequence and averages the elapsed
// time. Only the last rerun's counts are kept; all reruns produce the same ones.
func Run(lines []string, threads, reruns int) Result {
	if threads < 1 {
		threads = 1
	}
	if reruns < 1 {
		reruns = 1
	}

	var counts count.Counts
	from := time.Now()
	for i := 0; i < reruns; i++ {
		counts = count.Parallel(lines, threads)
	}
	total := time.Since(from)

	return Result{
		Threads: threads,
		Reruns:  reruns,
		Total:   total,
		Mean:    total / time.Duration(reruns),
		Counts:  counts,
	}
}

// Sweep runs the benchmark for every thread count from 1 to maxThreads in order,
// handing each result to each before the next one starts. It returns the
// counts of the last point.
func Sweep(lines []string, maxThreads, reruns int, each func(Result)) count.Counts {
	if maxThreads < 1 {
		maxThreads = 1
	}

	var last count.Counts
	for threads := 1; threads <= maxThreads; threads++ {
		res := Run(lines, threads, reruns)
		if each != nil {
			each(res)
		}
		last = res.Counts
	}
	return last
}
