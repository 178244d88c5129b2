package timecurve

import "testing"

func TestOn_RegistrationOrder(t *testing.T) {
	ed := New(WithTotalDuration(100))
	var order []int
	ed.On(EventPlayheadTimeChange, func(Event) { order = append(order, 1) })
	ed.On(EventPlayheadTimeChange, func(Event) { order = append(order, 2) })
	ed.On(EventPlayheadTimeChange, func(Event) { order = append(order, 3) })

	ed.Seek(5)

	if len(order) != 3 {
		t.Fatalf("got %d calls, want 3", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Fatalf("dispatch order = %v, want registration order", order)
		}
	}
}

func TestOff_RemovesListener(t *testing.T) {
	ed := New(WithTotalDuration(100))
	var a, b int
	ha := ed.On(EventPlayheadTimeChange, func(Event) { a++ })
	ed.On(EventPlayheadTimeChange, func(Event) { b++ })

	ed.Seek(5)
	ed.Off(EventPlayheadTimeChange, ha)
	ed.Seek(10)

	if a != 1 {
		t.Errorf("removed listener called %d times, want 1", a)
	}
	if b != 2 {
		t.Errorf("remaining listener called %d times, want 2", b)
	}
}

func TestOff_UnknownHandleIgnored(t *testing.T) {
	ed := New(WithTotalDuration(100))
	var calls int
	ed.On(EventPlayheadTimeChange, func(Event) { calls++ })

	ed.Off(EventPlayheadTimeChange, "no-such-handle")
	ed.Off("no-such-event", "no-such-handle")
	ed.Seek(5)

	if calls != 1 {
		t.Errorf("listener called %d times, want 1", calls)
	}
}

func TestOn_NilListenerIgnored(t *testing.T) {
	ed := New(WithTotalDuration(100))
	if h := ed.On(EventPlayheadTimeChange, nil); h != "" {
		t.Errorf("On(nil) handle = %q, want empty", h)
	}
	ed.Seek(5) // must not panic
}

func TestListeners_MayReenterEditor(t *testing.T) {
	ed := New(WithTotalDuration(100))
	var seen []float64
	ed.On(EventPlayheadTimeChange, func(ev Event) {
		seen = append(seen, ev.Time)
		// Re-entering from the callback must not deadlock.
		_ = ed.PlayheadTime()
	})

	ed.Seek(5)

	if len(seen) != 1 || !approx(seen[0], 5, epsilon) {
		t.Errorf("seen = %v, want [5]", seen)
	}
}
