package progress

import "fmt"

// Recorder keeps every event it receives.
type Recorder struct {
	Events []Event
}

// Func returns a callback that appends to r.
func (r *Recorder) Func() Func {
	return func(e Event) { r.Events = append(r.Events, e) }
}

// Phases returns the distinct phases seen, in first-seen order.
func (r *Recorder) Phases() []Phase {
	var out []Phase
	seen := make(map[Phase]bool)
	for _, e := range r.Events {
		if !seen[e.Phase] {
			seen[e.Phase] = true
			out = append(out, e.Phase)
		}
	}
	return out
}

// Last returns the most recent event of a phase.
func (r *Recorder) Last(p Phase) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Phase == p {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Check verifies the recorded stream against a plan: phases appear in plan
// order without interleaving, percentages stay within 0–100 and never go
// backwards inside a phase.
func (r *Recorder) Check(plan []Phase) error {
	idx := -1
	last := -1
	for i, e := range r.Events {
		if e.Percent < 0 || e.Percent > 100 {
			return fmt.Errorf("event %d: percent %d out of range", i, e.Percent)
		}
		if idx >= 0 && e.Phase == plan[idx] {
			if e.Percent < last {
				return fmt.Errorf("event %d: %s went from %d%% to %d%%", i, e.Phase, last, e.Percent)
			}
			last = e.Percent
			continue
		}
		next := -1
		for j := idx + 1; j < len(plan); j++ {
			if plan[j] == e.Phase {
				next = j
				break
			}
		}
		if next < 0 {
			return fmt.Errorf("event %d: unexpected phase %q", i, e.Phase)
		}
		idx, last = next, e.Percent
	}
	return nil
}
