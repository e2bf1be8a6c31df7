package main

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/quartz"
)

const progressDots = 40

// dotProgress prints a row of dots as trials finish, then a throughput line.
// It is safe for concurrent use by the runner's workers.
type dotProgress struct {
	mu          sync.Mutex
	out         io.Writer
	clock       quartz.Clock
	start       time.Time
	dotsPrinted int
	finished    bool
}

func newDotProgress(out io.Writer, clock quartz.Clock, prefix string) *dotProgress {
	if prefix != "" {
		fmt.Fprintf(out, "%s: ", prefix)
	}
	return &dotProgress{
		out:   out,
		clock: clock,
		start: clock.Now(),
	}
}

// Update matches equity.ProgressFunc.
func (p *dotProgress) Update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished || total <= 0 {
		return
	}

	target := min(done, total) * progressDots / total
	for ; p.dotsPrinted < target; p.dotsPrinted++ {
		fmt.Fprint(p.out, ".")
	}

	if done >= total {
		p.finish(total)
	}
}

// Stop ends the line for a run that finished short of its total.
func (p *dotProgress) Stop(done int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.finished {
		p.finish(done)
	}
}

func (p *dotProgress) finish(done int) {
	p.finished = true
	elapsed := p.clock.Since(p.start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(done) / elapsed.Seconds()
	}
	fmt.Fprintf(p.out, " ✓ %d trials in %.1fs (%.0f/sec)\n", done, elapsed.Seconds(), rate)
}
