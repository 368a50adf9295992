package system

import (
	"log"
	"math"
	"time"

	"github.com/milk9111/hookshift/ecs"
)

// PerfSystem samples wall time between its own updates. Scheduled
// first, the gap between two updates is one whole tick. Stats are
// logged and reset every reportInterval.
type PerfSystem struct {
	last           time.Time
	reportInterval time.Duration
	reportAt       time.Time

	samples int
	min     float64
	max     float64
	total   float64
}

func NewPerfSystem(reportInterval time.Duration) *PerfSystem {
	return &PerfSystem{reportInterval: reportInterval}
}

func (p *PerfSystem) Update(w *ecs.World) {
	if p == nil {
		return
	}
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
		p.reportAt = now.Add(p.reportInterval)
		p.min = math.Inf(1)
		return
	}

	ms := float64(now.Sub(p.last).Microseconds()) / 1000.0
	p.last = now
	p.samples++
	p.total += ms
	p.min = math.Min(p.min, ms)
	p.max = math.Max(p.max, ms)

	if p.reportInterval <= 0 || now.Before(p.reportAt) {
		return
	}
	log.Printf("perf: tick %.2f/%.2f/%.2f ms (min/avg/max over %d ticks)", p.min, p.total/float64(p.samples), p.max, p.samples)
	p.samples = 0
	p.total = 0
	p.min = math.Inf(1)
	p.max = 0
	p.reportAt = now.Add(p.reportInterval)
}
