package domain

// State is a step of the comparison workflow. Transitions only move forward.
type State string

const (
	StateAwaitingExpected State = "AWAITING_EXPECTED" // Waiting for the expected checksum.
	StateAwaitingPath     State = "AWAITING_PATH"     // Waiting for the file path.
	StateAwaitingSelector State = "AWAITING_SELECTOR" // Waiting for the algorithm choice.
	StateComputing        State = "COMPUTING"         // Engine is reading the file.
	StateComparing        State = "COMPARING"         // Comparing expected and computed values.
	StateReported         State = "REPORTED"          // Verdict has been written.
	StateInvalidSelection State = "INVALID_SELECTION" // Selector was rejected.
)
