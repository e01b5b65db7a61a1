package quest

import (
	"testing"
	"time"
)

func TestCountdownFires(t *testing.T) {
	s := &manualScheduler{}
	c := NewCountdown(s, time.Second)

	ticks := 0
	c.Arm(func() { ticks++ })
	if !c.Armed() {
		t.Fatal("Arm should leave the countdown armed")
	}
	if s.last().d != time.Second {
		t.Errorf("scheduled after %v, expected 1s", s.last().d)
	}

	s.fire()
	if ticks != 1 {
		t.Errorf("ticks = %d, expected 1", ticks)
	}
	if c.Armed() {
		t.Error("a fired countdown is disarmed until re-armed")
	}
}

func TestCountdownStop(t *testing.T) {
	s := &manualScheduler{}
	c := NewCountdown(s, time.Second)

	ticks := 0
	c.Arm(func() { ticks++ })
	task := s.last()
	c.Stop()

	if !task.cancelled {
		t.Error("Stop should cancel the scheduled task")
	}
	// A callback already queued before Stop must still be a no-op
	task.fn()
	if ticks != 0 {
		t.Errorf("stopped countdown ticked %d times", ticks)
	}
}

func TestCountdownRearmDropsStale(t *testing.T) {
	s := &manualScheduler{}
	c := NewCountdown(s, time.Second)

	var got []string
	c.Arm(func() { got = append(got, "first") })
	first := s.last()
	c.Arm(func() { got = append(got, "second") })

	first.fn()
	s.fire()

	if len(got) != 1 || got[0] != "second" {
		t.Errorf("ticks = %v, expected only the latest arm", got)
	}
}

func TestCountdownNilScheduler(t *testing.T) {
	c := NewCountdown(nil, time.Second)
	c.Arm(func() { t.Error("nop scheduler must never fire") })
	c.Stop()
}
