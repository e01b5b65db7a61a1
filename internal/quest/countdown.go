package quest

import "time"

// Scheduler runs fn once after d unless the returned cancel func is called
// first. Implementations must deliver fn on the engine's event loop.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// nopScheduler never fires; the engine is then driven by explicit Tick calls.
type nopScheduler struct{}

func (nopScheduler) After(time.Duration, func()) func() { return func() {} }

// Countdown is a cancellable one-shot task re-armed by its owner after every
// tick. Each Arm or Stop bumps a generation so a callback belonging to an
// earlier arm does nothing, even if the scheduler already queued it.
type Countdown struct {
	sched  Scheduler
	period time.Duration
	cancel func()
	gen    uint64
	armed  bool
}

// NewCountdown creates a countdown firing every period on sched.
func NewCountdown(sched Scheduler, period time.Duration) *Countdown {
	if sched == nil {
		sched = nopScheduler{}
	}
	return &Countdown{sched: sched, period: period}
}

// Arm schedules onTick one period from now, replacing any pending tick.
func (c *Countdown) Arm(onTick func()) {
	c.Stop()
	gen := c.gen
	c.armed = true
	c.cancel = c.sched.After(c.period, func() {
		if !c.armed || gen != c.gen {
			return
		}
		c.armed = false
		c.cancel = nil
		onTick()
	})
}

// Stop cancels the pending tick, if any.
func (c *Countdown) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.armed = false
	c.gen++
}

// Armed reports whether a tick is pending.
func (c *Countdown) Armed() bool {
	return c.armed
}

// Period returns the tick interval.
func (c *Countdown) Period() time.Duration {
	return c.period
}
