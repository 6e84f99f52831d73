package domain

// Workload policy. The score is a one-way ledger: assignment actions add to
// it, leaving a group or deleting a task never subtracts.
const (
	// WorkloadFactor converts estimated task hours into score points.
	WorkloadFactor = 2.0

	// OverloadedThreshold is the score above which an employee reads as
	// OVERLOADED.
	OverloadedThreshold = 80.0

	// MaxWorkloadScore is the saturation ceiling. Work added past this point
	// is invisible to the score, so everyone pinned at 100 reads the same no
	// matter how far past capacity they are.
	MaxWorkloadScore = 100.0
)

// ApplyWorkloadDelta returns a copy of the employee with hours of work folded
// into the workload score. The score is clamped to [0, MaxWorkloadScore] and
// the status re-derived: OVERLOADED above the threshold, OPTIMAL otherwise.
// UNDERUTILIZED is never derived here.
//
// CEO exception: the numeric score still moves, but the status field is left
// at whatever it currently is. This keeps the display override while the real
// load keeps being tracked underneath.
func ApplyWorkloadDelta(e Employee, hours float64) Employee {
	e.WorkloadScore = ClampScore(e.WorkloadScore + hours*WorkloadFactor)

	if e.AccessLevel == AccessCEO {
		return e
	}

	if e.WorkloadScore > OverloadedThreshold {
		e.Status = StatusOverloaded
	} else {
		e.Status = StatusOptimal
	}
	return e
}

// ClampScore bounds a workload score to [0, MaxWorkloadScore].
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > MaxWorkloadScore {
		return MaxWorkloadScore
	}
	return score
}
