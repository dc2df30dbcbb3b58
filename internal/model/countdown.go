package model

// CountdownState represents the state of the countdown of one ability
type CountdownState string

const (
	// CountdownIdle means no countdown is running for the ability
	CountdownIdle CountdownState = "Idle"

	// CountdownRunning means a countdown overlay is visible
	CountdownRunning CountdownState = "Running"
)

// String returns the string representation of CountdownState
func (cs CountdownState) String() string {
	return string(cs)
}

// IsRunning returns true if a countdown is in progress
func (cs CountdownState) IsRunning() bool {
	return cs == CountdownRunning
}
