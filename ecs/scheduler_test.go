package ecs

import "testing"

type recordingSystem struct {
	name string
	log  *[]string
	dt   float64
}

func (s *recordingSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	s.dt = w.DeltaTime()
}

func TestSchedulerRunsSystemsInOrder(t *testing.T) {
	var order []string
	a := &recordingSystem{name: "a", log: &order}
	b := &recordingSystem{name: "b", log: &order}

	sched := NewScheduler(a)
	sched.Add(b)

	w := NewWorld()
	sched.Update(w, 1.0/60.0)
	sched.Update(w, 1.0/60.0)

	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("update order %v, want %v", order, want)
		}
	}
	if a.dt != 1.0/60.0 {
		t.Fatalf("delta time not plumbed to systems, got %f", a.dt)
	}
}

func TestSchedulerFlushesUndrainedEvents(t *testing.T) {
	sched := NewScheduler()
	w := NewWorld()

	w.Events().Push(Event{Type: EventRoomCreated})
	sched.Update(w, 1.0/60.0)

	if got := w.Events().Drain(); len(got) != 0 {
		t.Fatalf("events must not leak across ticks, got %d", len(got))
	}
}
