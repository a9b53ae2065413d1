package order

// StepState is how a timeline step is rendered.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
	StepCancelled StepState = "cancelled"
)

// TimelineStep is one node of the progress timeline.
type TimelineStep struct {
	Status Status
	State  StepState
}

// HappyPath returns the canonical delivery sequence shown by the timeline.
// waiting_approval, cancelled and rejected are not part of it.
func HappyPath() []Status {
	return []Status{Pending, Confirmed, RiderAssigned, InTransit, QualityVerification, Delivered}
}

// Timeline projects current onto the happy path. Steps before the current
// status are completed; cancelled and rejected orders mark every step
// cancelled; a status off the path (waiting_approval) leaves every step pending.
func Timeline(current Status) []TimelineStep {
	path := HappyPath()
	steps := make([]TimelineStep, len(path))

	currentIndex := -1
	for i, s := range path {
		if s == current {
			currentIndex = i
		}
	}

	for i, s := range path {
		state := StepPending
		switch {
		case current == Cancelled || current == Rejected:
			state = StepCancelled
		case currentIndex >= 0 && i < currentIndex:
			state = StepCompleted
		case i == currentIndex:
			state = StepCurrent
		}
		steps[i] = TimelineStep{Status: s, State: state}
	}
	return steps
}
