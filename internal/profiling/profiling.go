package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU buckets keyed by "subsystem.Operation".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("level.Draw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name.
func Add(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopNCurrentFrame formats the n largest buckets of the current frame.
// Example: "renderer.Render:4.2ms, level.Draw:3.9ms"
func TopNCurrentFrame(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] != ss[names[j]] {
			return ss[names[i]] > ss[names[j]]
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}

	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

// formatMs prints d in milliseconds with one decimal, dropping a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
