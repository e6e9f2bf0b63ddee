// ABOUTME: Operation status tracking for entity stores.
// ABOUTME: Each operation family exposes a discrete Status plus message.
package store

// Status is the lifecycle state of an operation family on a store.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Op is the observable state of one operation family: its Status and,
// when Status is StatusFailed, a human-readable message. Err is cleared
// at the start of every new call in the family.
type Op struct {
	Status Status
	Err    string
}

// Loading reports whether a call in this family is in flight.
func (o Op) Loading() bool { return o.Status == StatusLoading }

// Failed reports whether the most recent call in this family failed.
func (o Op) Failed() bool { return o.Status == StatusFailed }
