package search

// stepper is the incremental core of an engine: each call advances the
// search by one unit of work and returns the events it produced. done
// becomes true once no further events will ever be produced.
type stepper interface {
	step() (events []Event, done bool)
	summary() Summary
}

// Trace is the lazy event sequence of a single run. It is finite and
// non-restartable: once drained (or canceled) it stays exhausted, and the
// terminal Summary becomes available exactly when Next has returned false
// without a cancellation.
type Trace struct {
	src      stepper
	pending  []Event
	done     bool
	canceled bool
}

func newTrace(src stepper) *Trace {
	return &Trace{src: src}
}

// Next returns the next render event. ok is false once the sequence is
// exhausted or the trace was canceled.
func (t *Trace) Next() (ev Event, ok bool) {
	if t.canceled {
		return Event{}, false
	}
	for len(t.pending) == 0 && !t.done {
		t.pending, t.done = t.src.step()
	}
	if len(t.pending) == 0 {
		return Event{}, false
	}
	ev = t.pending[0]
	t.pending = t.pending[1:]
	return ev, true
}

// Cancel discards all pending events. No further events are emitted and
// Summary reports no result for this run.
func (t *Trace) Cancel() {
	t.canceled = true
	t.pending = nil
}

// Canceled reports whether the trace was canceled.
func (t *Trace) Canceled() bool {
	return t.canceled
}

// Summary returns the terminal run summary. ok is false while events are
// still pending or after a cancellation.
func (t *Trace) Summary() (Summary, bool) {
	if t.canceled {
		return Summary{}, false
	}
	if !t.done || len(t.pending) > 0 {
		return Summary{}, false
	}
	return t.src.summary(), true
}

// Drain consumes all remaining events and returns them together with the
// terminal summary. Used by the headless solver and tests; the interactive
// layer consumes events one by one instead.
func (t *Trace) Drain() ([]Event, Summary) {
	var events []Event
	for {
		ev, ok := t.Next()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	sum, _ := t.Summary()
	return events, sum
}
