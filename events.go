package timecurve

import (
	"slices"

	"github.com/google/uuid"
)

// EventPlayheadTimeChange is emitted whenever the playhead time or the
// playing flag effectively changes. It is the engine's sole notification
// channel: one event per effective change, never for no-op writes.
const EventPlayheadTimeChange = "playheadTimeChange"

// Event is the payload delivered to listeners.
type Event struct {
	Name      string
	Time      float64 // playhead time, seconds
	Value     float64 // curve value at Time
	IsPlaying bool
}

// Listener receives events synchronously, in registration order, within
// the same call that performed the mutation. Listeners may call back into
// the editor.
type Listener func(Event)

// ListenerHandle identifies a registered listener for removal.
// Function values are not comparable in Go, so registration returns a
// handle instead of the callback being its own key.
type ListenerHandle string

type listenerEntry struct {
	handle ListenerHandle
	fn     Listener
}

// On registers a listener for the named event and returns its handle.
// A nil listener is ignored and yields an empty handle.
func (e *Editor) On(name string, fn Listener) ListenerHandle {
	if fn == nil {
		return ""
	}
	h := ListenerHandle(uuid.NewString())
	e.mu.Lock()
	e.listeners[name] = append(e.listeners[name], listenerEntry{handle: h, fn: fn})
	e.mu.Unlock()
	return h
}

// Off removes the listener registered under the given handle.
// Unknown handles are ignored.
func (e *Editor) Off(name string, h ListenerHandle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entries := e.listeners[name]
	for i, ent := range entries {
		if ent.handle == h {
			e.listeners[name] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// emit dispatches one event outside the editor lock so listeners can
// re-enter the editor.
func (e *Editor) emit(ev Event) {
	e.mu.Lock()
	entries := slices.Clone(e.listeners[ev.Name])
	e.mu.Unlock()
	for _, ent := range entries {
		ent.fn(ev)
	}
}

// emitAll dispatches events in order.
func (e *Editor) emitAll(events []Event) {
	for _, ev := range events {
		e.emit(ev)
	}
}
