package model

// Outcome represents the terminal state of a conversion request
type Outcome string

const (
	// OutcomeSuccess means the tool exited with status zero
	OutcomeSuccess Outcome = "Success"

	// OutcomeToolFailure means the tool ran and exited with a nonzero status
	OutcomeToolFailure Outcome = "ToolFailure"

	// OutcomeLaunchFailure means the tool could not be started
	OutcomeLaunchFailure Outcome = "LaunchFailure"

	// OutcomeRejected means the request failed local validation and no process was started
	OutcomeRejected Outcome = "Rejected"
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	return string(o)
}

// IsFailure returns true for every outcome except success
func (o Outcome) IsFailure() bool {
	return o != OutcomeSuccess
}

// StartedProcess returns true if the outcome implies the tool was executed
func (o Outcome) StartedProcess() bool {
	return o == OutcomeSuccess || o == OutcomeToolFailure
}
