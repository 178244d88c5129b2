package timecurve

import (
	"math"
	"time"
)

// Play starts the playback timer at the configured frame rate. Each tick
// advances the playhead by one frame step. Playback pauses automatically
// when the playhead reaches the total duration or the time of the last
// control point; it never wraps. Play is a no-op while already playing.
func (e *Editor) Play() {
	e.mu.Lock()
	ev, ok := e.setPlaying(true)
	if !ok {
		e.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	e.stopTick = stop
	fps := e.opts.frameRate
	e.mu.Unlock()

	Logger().Debug("playback started", "fps", fps)
	e.emit(ev)
	go e.tickLoop(stop, time.Duration(float64(time.Second)/fps))
}

// Pause cancels the playback timer. It is idempotent: pausing while
// stopped emits nothing.
func (e *Editor) Pause() {
	e.mu.Lock()
	ev, ok := e.setPlaying(false)
	e.mu.Unlock()
	if ok {
		Logger().Debug("playback paused")
		e.emit(ev)
	}
}

// Stop pauses playback and seeks to the start of the timeline.
func (e *Editor) Stop() {
	e.Pause()
	e.Seek(0)
}

// Seek moves the playhead to t, clamped to [0, total duration]. It works
// whether playing or paused and emits only when the time actually changes.
func (e *Editor) Seek(t float64) {
	e.mu.Lock()
	ev, ok := e.setPlayheadTime(t)
	e.mu.Unlock()
	if ok {
		e.emit(ev)
	}
}

// PlayheadTime returns the current playhead position in seconds.
func (e *Editor) PlayheadTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playheadTime
}

// IsPlaying reports whether the playback timer is running.
func (e *Editor) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// tickLoop drives playback until the stop channel closes.
func (e *Editor) tickLoop(stop chan struct{}, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			e.advanceFrame()
		}
	}
}

// advanceFrame advances the playhead by one frame step and applies the
// auto-stop rule. The ticker goroutine calls it once per tick; tests call
// it directly to simulate time.
func (e *Editor) advanceFrame() {
	e.mu.Lock()
	if !e.playing {
		e.mu.Unlock()
		return
	}
	var events []Event
	step := 1.0 / e.opts.frameRate
	if ev, ok := e.setPlayheadTime(e.playheadTime + step); ok {
		events = append(events, ev)
	}
	limit := math.Min(e.opts.totalDuration, e.points[len(e.points)-1].Time)
	if e.playheadTime >= limit {
		if ev, ok := e.setPlaying(false); ok {
			events = append(events, ev)
		}
	}
	e.mu.Unlock()
	e.emitAll(events)
}

// setPlayheadTime writes the playhead time, clamped to the timeline.
// It returns the change event and whether the write was effective.
// Caller holds e.mu.
func (e *Editor) setPlayheadTime(t float64) (Event, bool) {
	t = clamp(t, 0, e.opts.totalDuration)
	if t == e.playheadTime {
		return Event{}, false
	}
	e.playheadTime = t
	return e.playheadEvent(), true
}

// setPlaying writes the playing flag and manages the ticker lifecycle.
// It returns the change event and whether the write was effective.
// Caller holds e.mu.
func (e *Editor) setPlaying(playing bool) (Event, bool) {
	if e.playing == playing {
		return Event{}, false
	}
	e.playing = playing
	if !playing && e.stopTick != nil {
		close(e.stopTick)
		e.stopTick = nil
	}
	return e.playheadEvent(), true
}

// playheadEvent builds the payload for the current playhead state.
// Caller holds e.mu.
func (e *Editor) playheadEvent() Event {
	return Event{
		Name:      EventPlayheadTimeChange,
		Time:      e.playheadTime,
		Value:     valueAt(e.points, e.playheadTime),
		IsPlaying: e.playing,
	}
}
