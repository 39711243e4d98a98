package viewmodel

import "github.com/Gabriel-Jesus3761/zops-funnel/internal/crm"

// StepState is the render state of one loading step.
type StepState int

const (
	// StepPending means the step has not started.
	StepPending StepState = iota
	// StepActive means the step is the latest reported one.
	StepActive
	// StepDone means a later step has been reported.
	StepDone
)

// LoadProgressView mirrors the loader's latest report for the multi-step
// indicator.
type LoadProgressView struct {
	Step    int
	Percent int
	Label   string
	Loading bool
}

// StepStates returns the render state of each of the four steps.
func (lp LoadProgressView) StepStates() [4]StepState {
	var states [4]StepState
	if !lp.Loading {
		return states
	}
	for i := range states {
		switch {
		case i < lp.Step:
			states[i] = StepDone
		case i == lp.Step:
			states[i] = StepActive
		default:
			states[i] = StepPending
		}
	}
	return states
}

// StepLabel returns the display label of step i.
func (lp LoadProgressView) StepLabel(i int) string {
	if i < 0 || i >= len(crm.StepLabels) {
		return ""
	}
	return crm.StepLabels[i]
}
