package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller re-invokes a function on a fixed interval, for timer-driven
// recomputation such as the live attendance status refresh. Each tick is
// independent; the function must not rely on state surviving between ticks.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(name string, interval time.Duration, fn func(ctx context.Context) error) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		name:     name,
		interval: interval,
		fn:       fn,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the tick loop. The function runs once immediately, then on
// every interval until Stop is called.
func (p *Poller) Start() {
	p.wg.Add(1)
	go p.run()
	slog.Info("Poller started", "name", p.name, "interval", p.interval)
}

// Stop cancels the loop and waits for an in-flight tick to finish.
func (p *Poller) Stop() {
	p.cancel()
	p.wg.Wait()
	slog.Info("Poller stopped", "name", p.name)
}

func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	start := time.Now()
	if err := p.fn(p.ctx); err != nil {
		slog.Error("Poller tick failed", "name", p.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Poller tick completed", "name", p.name, "duration", time.Since(start))
}

// RunOnce runs the function a single time outside the tick loop.
func (p *Poller) RunOnce(ctx context.Context) error {
	return p.fn(ctx)
}
