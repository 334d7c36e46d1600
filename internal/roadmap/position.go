package roadmap

import "github.com/abhisek/pathwise/internal/store"

// Step positions are always derived from the stage and step arrays.
// A step's global position is its index when all steps are flattened in
// stage order, then step order. Nothing below reads or writes stored
// position fields because there are none.

// globalPosition returns ref's flattened index, or -1 if ref does not
// address a step in stages.
func globalPosition(stages []store.Stage, ref store.StepRef) int {
	if ref.Stage < 0 || ref.Stage >= len(stages) {
		return -1
	}
	if ref.Step < 0 || ref.Step >= len(stages[ref.Stage].Steps) {
		return -1
	}
	pos := 0
	for i := 0; i < ref.Stage; i++ {
		pos += len(stages[i].Steps)
	}
	return pos + ref.Step
}

// nextRef returns the step immediately after ref in flattened order, or
// nil if ref is the last step.
func nextRef(stages []store.Stage, ref store.StepRef) *store.StepRef {
	if ref.Step+1 < len(stages[ref.Stage].Steps) {
		return &store.StepRef{Stage: ref.Stage, Step: ref.Step + 1}
	}
	for s := ref.Stage + 1; s < len(stages); s++ {
		if len(stages[s].Steps) > 0 {
			return &store.StepRef{Stage: s, Step: 0}
		}
	}
	return nil
}

// stepCount returns the total number of steps across all stages.
func stepCount(stages []store.Stage) int {
	n := 0
	for _, st := range stages {
		n += len(st.Steps)
	}
	return n
}

// Frontier returns the first step that is unlocked but not completed,
// or nil when every step is completed.
func Frontier(stages []store.Stage) *store.StepRef {
	for si, stage := range stages {
		for pi, step := range stage.Steps {
			if step.Unlocked && !step.Completed {
				return &store.StepRef{Stage: si, Step: pi}
			}
		}
	}
	return nil
}

// Progress returns the number of completed steps and the total step
// count.
func Progress(stages []store.Stage) (completed, total int) {
	for _, stage := range stages {
		for _, step := range stage.Steps {
			total++
			if step.Completed {
				completed++
			}
		}
	}
	return completed, total
}
