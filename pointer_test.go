package timecurve

import (
	"testing"
	"time"
)

// fixedClock pins the editor clock so successive pointer-downs land
// inside (or outside) the double-click window deterministically.
func fixedClock(ed *Editor, step time.Duration) {
	base := time.Unix(1000, 0)
	n := 0
	ed.now = func() time.Time {
		t := base.Add(time.Duration(n) * step)
		n++
		return t
	}
}

func TestPointerDown_DoubleClickDeletesPoint(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, 100*time.Millisecond)

	ed.mu.Lock()
	ed.addPointOnCurve(15, 50)
	ed.mu.Unlock()
	x, y := canvasPos(ed, 15, 50)

	ed.PointerDown(x, y)
	ed.PointerUp()
	ed.PointerDown(x, y)
	ed.PointerUp()

	if got := len(ed.Points()); got != 2 {
		t.Errorf("point count = %d, want 2 after double-click delete", got)
	}
}

func TestPointerDown_SlowClicksDoNotDelete(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, DoubleClickWindow+50*time.Millisecond)

	ed.mu.Lock()
	ed.addPointOnCurve(15, 50)
	ed.mu.Unlock()
	x, y := canvasPos(ed, 15, 50)

	ed.PointerDown(x, y)
	ed.PointerUp()
	ed.PointerDown(x, y)
	ed.PointerUp()

	if got := len(ed.Points()); got != 3 {
		t.Errorf("point count = %d, want 3 after slow clicks", got)
	}
}

func TestPointerDown_DoubleClickRemovesMarker(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, 100*time.Millisecond)
	ed.AddMarker(15)
	x, y := canvasPos(ed, 15, 90)

	ed.PointerDown(x, y)
	ed.PointerUp()
	ed.PointerDown(x, y)
	ed.PointerUp()

	if got := ed.Markers(); len(got) != 0 {
		t.Errorf("Markers() = %v, want empty after double-click", got)
	}
}

func TestPointerDown_DoubleClickEmptySeeks(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, 100*time.Millisecond)
	x, y := canvasPos(ed, 15, 90)

	var events []Event
	ed.On(EventPlayheadTimeChange, func(ev Event) {
		events = append(events, ev)
	})

	ed.PointerDown(x, y)
	ed.PointerUp()
	ed.PointerDown(x, y)
	ed.PointerUp()

	if got := ed.PlayheadTime(); !approx(got, 15, epsilon) {
		t.Errorf("PlayheadTime() = %v, want 15", got)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if !approx(events[0].Time, 15, epsilon) {
		t.Errorf("event time = %v, want 15", events[0].Time)
	}
}

func TestPointerDown_TripleClickNeedsFreshPair(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, 100*time.Millisecond)
	x, y := canvasPos(ed, 15, 90)

	ed.PointerDown(x, y) // arm
	ed.PointerUp()
	ed.PointerDown(x, y) // double: seek
	ed.PointerUp()
	ed.PointerDown(x, y) // must arm again, not seek
	ed.PointerUp()

	ed.Seek(0)
	ed.PointerDown(x, y) // pairs with the third press: seek again
	ed.PointerUp()

	if got := ed.PlayheadTime(); !approx(got, 15, epsilon) {
		t.Errorf("PlayheadTime() = %v, want 15", got)
	}
}

func TestPointerDrag_MovesPointAndCommitsOnce(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, time.Second)

	ed.mu.Lock()
	ed.addPointOnCurve(15, 50)
	ed.mu.Unlock()

	before := ed.HistoryLen()
	x0, y0 := canvasPos(ed, 15, 50)
	x1, y1 := canvasPos(ed, 20, 80)

	ed.PointerDown(x0, y0)
	ed.PointerMove(x1, y1)
	ed.PointerMove(x1, y1)
	ed.PointerUp()

	p := ed.Points()[1]
	if !approx(p.Time, 20, epsilon) || !approx(p.Value, 80, epsilon) {
		t.Errorf("dragged point = %+v, want time 20 value 80", p)
	}
	if got := ed.HistoryLen(); got != before+1 {
		t.Errorf("HistoryLen() = %d, want %d (one commit per drag)", got, before+1)
	}
}

func TestPointerDown_CurveInsertsAndGrabs(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, time.Second)

	x0, y0 := canvasPos(ed, 15, 50) // on the flat default curve
	x1, y1 := canvasPos(ed, 15, 20)

	ed.PointerDown(x0, y0)
	ed.PointerMove(x1, y1)
	ed.PointerUp()

	pts := ed.Points()
	if len(pts) != 3 {
		t.Fatalf("point count = %d, want 3", len(pts))
	}
	if !approx(pts[1].Time, 15, epsilon) || !approx(pts[1].Value, 20, epsilon) {
		t.Errorf("inserted point = %+v, want time 15 value 20", pts[1])
	}
}

func TestPointerDrag_PansViewport(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, time.Second)

	x, y := canvasPos(ed, 15, 90) // empty plot background
	ed.PointerDown(x, y)
	ed.PointerMove(x-100, y) // drag content left: window moves later
	ed.PointerUp()

	vp := ed.Viewport()
	if vp.Start <= 0 {
		t.Errorf("viewport start = %v, want > 0 after leftward drag", vp.Start)
	}
	if got := len(ed.Points()); got != 2 {
		t.Errorf("background drag changed points: count = %d, want 2", got)
	}
}

func TestPointerDrag_ScrubsPlayhead(t *testing.T) {
	ed := New(WithTotalDuration(100))
	fixedClock(ed, time.Second)
	ed.Seek(5)

	ed.mu.Lock()
	top := ed.plot().top
	ed.mu.Unlock()
	x0, _ := canvasPos(ed, 5, 0)
	x1, _ := canvasPos(ed, 22, 0)

	ed.PointerDown(x0, top-PlayheadHandleSize/2)
	ed.PointerMove(x1, top-PlayheadHandleSize/2)
	ed.PointerUp()

	if got := ed.PlayheadTime(); !approx(got, 22, epsilon) {
		t.Errorf("PlayheadTime() after scrub = %v, want 22", got)
	}
}

func TestPointerMove_NoOpWithoutDrag(t *testing.T) {
	ed := New(WithTotalDuration(100))
	want := ed.Viewport()

	ed.PointerMove(200, 200)
	ed.PointerUp()

	if got := ed.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, want unchanged %+v", got, want)
	}
	if got := ed.HistoryLen(); got != 1 {
		t.Errorf("HistoryLen() = %d, want 1 (no commit without a point drag)", got)
	}
}
