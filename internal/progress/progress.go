// Package progress defines the events a scaffold run emits. The engine only
// emits; rendering and bookkeeping belong to whoever holds the callback.
package progress

// Phase is one stage of a run.
type Phase string

const (
	PhaseScaffolding  Phase = "scaffolding"
	PhaseDependencies Phase = "dependencies"
	PhaseGitInit      Phase = "git init"
)

// Event is a single progress notification.
type Event struct {
	Phase   Phase
	Percent int // 0–100, non-decreasing within a phase
	Detail  string
}

// Done reports whether the event completes its phase.
func (e Event) Done() bool { return e.Percent >= 100 }

// Func receives progress events. A nil Func discards them.
type Func func(Event)

// Emit calls f when it is non-nil.
func (f Func) Emit(phase Phase, percent int, detail string) {
	if f == nil {
		return
	}
	f(Event{Phase: phase, Percent: percent, Detail: detail})
}

// ScaffoldPlan returns the phases of a full scaffold in emission order.
func ScaffoldPlan(install, versionControl bool) []Phase {
	phases := []Phase{PhaseScaffolding}
	if install {
		phases = append(phases, PhaseDependencies)
	}
	if versionControl {
		phases = append(phases, PhaseGitInit)
	}
	return phases
}

// MergePlan returns the phases of a merge into an existing project.
func MergePlan() []Phase {
	return []Phase{PhaseScaffolding}
}
