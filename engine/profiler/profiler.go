package profiler

import (
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"time"
)

// Profiler tracks the tick rate, input event throughput and heap usage.
// Outputs stats to the log at a configurable interval.
// It is not safe for concurrent use; the engine drives it from its tick goroutine.
type Profiler struct {
	tickCount      int
	events         map[string]int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		events:         make(map[string]int),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes how often stats are logged. Non-positive intervals are ignored.
//
// Parameters:
//   - interval: the logging interval
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// RecordEvent counts one input event of the given kind, e.g. "key" or "joy_axis".
//
// Parameters:
//   - kind: the event kind
func (p *Profiler) RecordEvent(kind string) {
	p.events[kind]++
}

// Tick should be called once per engine tick.
// Logs tick rate, per-kind event rates, heap usage and allocation rate when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	return p.tick(time.Now())
}

func (p *Profiler) tick(now time.Time) bool {
	p.tickCount++
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	seconds := elapsed.Seconds()
	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / seconds

	log.Printf("[Profiler] TPS: %.2f | Events/s: %s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		float64(p.tickCount)/seconds, p.eventRates(seconds), heapMB, allocRateMB, p.memStats.NumGC)

	p.tickCount = 0
	clear(p.events)
	p.lastTime = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// eventRates renders the per-kind event rates sorted by kind, or "none".
func (p *Profiler) eventRates(seconds float64) string {
	if len(p.events) == 0 {
		return "none"
	}
	kinds := make([]string, 0, len(p.events))
	for kind := range p.events {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, kind := range kinds {
		parts[i] = fmt.Sprintf("%s=%.1f", kind, float64(p.events[kind])/seconds)
	}
	return strings.Join(parts, " ")
}
