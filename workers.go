package sheet2html

import "runtime"

// Worker limits for concurrent builds.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// ResolveWorkers determines how many sources build concurrently.
// Explicit values win; 0 uses GOMAXPROCS (adjusted by automaxprocs in
// containers). The result is clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(max(n, MinWorkers), MaxWorkers)
}
