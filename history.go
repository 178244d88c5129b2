package timecurve

// saveToHistory pushes a deep-copy snapshot of the current point
// sequence, evicting the oldest snapshot past HistoryCapacity. Caller
// holds e.mu.
func (e *Editor) saveToHistory() {
	e.history = append(e.history, clonePoints(e.points))
	if len(e.history) > HistoryCapacity {
		e.history = append(e.history[:0], e.history[1:]...)
		Logger().Debug("history full, dropped oldest snapshot", "capacity", HistoryCapacity)
	}
}

// Undo discards the most recent snapshot and restores the point sequence
// to the one before it. With one snapshot left (the baseline) Undo is a
// no-op, so repeated Undo at the floor leaves the curve unchanged.
func (e *Editor) Undo() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.history) <= 1 {
		return
	}
	e.history = e.history[:len(e.history)-1]
	e.points = clonePoints(e.history[len(e.history)-1])
}

// ResetHistory drops all snapshots and re-baselines the history on the
// current point sequence.
func (e *Editor) ResetHistory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = [][]ControlPoint{clonePoints(e.points)}
}

// HistoryLen returns the number of stored snapshots, baseline included.
func (e *Editor) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.history)
}
