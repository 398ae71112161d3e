package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
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
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// SetInterval changes how often Tick logs statistics.
//
// Parameters:
//   - interval: minimum duration between log lines (values <= 0 are ignored)
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, frame time, heap usage, allocation rate, GC count.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	frameMs := elapsed.Seconds() * 1000 / float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of live heap objects. TotalAlloc: cumulative heap
	// allocation, used to derive the churn rate between ticks.
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[profiler] FPS: %.2f | Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, frameMs, allocMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
