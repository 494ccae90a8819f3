package ecs

import (
	"container/heap"
	"time"
)

// Timeline is a virtual clock with a queue of delayed actions. It only moves
// when Advance is called, once per frame by World.Update or directly by tests.
type Timeline struct {
	now    time.Duration
	seq    uint64
	timers timerHeap
}

type timer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

func NewTimeline() *Timeline {
	return &Timeline{}
}

// Now returns the virtual time elapsed since the timeline was created.
func (t *Timeline) Now() time.Duration {
	return t.now
}

// After schedules fn to run once the clock has moved d past the current time.
// Negative delays are treated as zero.
func (t *Timeline) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	t.seq++
	heap.Push(&t.timers, &timer{at: t.now + d, seq: t.seq, fn: fn})
}

// Advance moves the clock forward by dt and runs every action whose deadline
// falls inside the window, ordered by deadline and then by scheduling order.
// While an action runs, Now reports that action's deadline, so actions that
// schedule follow-ups are measured from when they fired. Follow-ups that land
// inside the same window run in the same call. It returns how many actions ran.
func (t *Timeline) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	fired := 0
	for len(t.timers) > 0 && t.timers[0].at <= target {
		next := heap.Pop(&t.timers).(*timer)
		if next.at > t.now {
			t.now = next.at
		}
		next.fn()
		fired++
	}
	t.now = target
	return fired
}

// Pending returns the number of actions not yet run.
func (t *Timeline) Pending() int {
	return len(t.timers)
}

// Clear drops every pending action without running it.
func (t *Timeline) Clear() {
	t.timers = nil
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
