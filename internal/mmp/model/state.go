// Package model defines the marketplace domain: job contracts, their lifecycle
// and the participants taking part in them.
package model

import "fmt"

// JobState is the lifecycle stage of a job contract.
type JobState uint8

const (
	// JobCreated is a contract built locally but not yet seen on chain.
	JobCreated JobState = iota
	// JobOpen is posted and accepts worker applications.
	JobOpen
	// JobAssigned has a selected worker.
	JobAssigned
	// JobInProgress is being worked on.
	JobInProgress
	// JobCompleted was marked done by the worker.
	JobCompleted
	// JobDisputed awaits middleman resolution.
	JobDisputed
	// JobResolved released the escrow.
	JobResolved
	// JobCancelled was aborted before resolution.
	JobCancelled
	// JobExpired ran out of its timeout.
	JobExpired
)

var jobStateNames = map[JobState]string{
	JobCreated:    "Created",
	JobOpen:       "Open",
	JobAssigned:   "Assigned",
	JobInProgress: "In Progress",
	JobCompleted:  "Completed",
	JobDisputed:   "Disputed",
	JobResolved:   "Resolved",
	JobCancelled:  "Cancelled",
	JobExpired:    "Expired",
}

var transitions = map[JobState][]JobState{
	JobCreated:    {JobOpen, JobCancelled, JobExpired},
	JobOpen:       {JobAssigned, JobCancelled, JobExpired},
	JobAssigned:   {JobInProgress, JobCompleted, JobDisputed, JobCancelled, JobExpired},
	JobInProgress: {JobCompleted, JobDisputed, JobCancelled, JobExpired},
	JobCompleted:  {JobResolved, JobDisputed, JobExpired},
	JobDisputed:   {JobResolved, JobExpired},
}

func (s JobState) String() string {
	if name, ok := jobStateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText renders the state by name.
func (s JobState) MarshalText() ([]byte, error) {
	if !s.IsKnown() {
		return nil, fmt.Errorf("unknown job state %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name produced by MarshalText.
func (s *JobState) UnmarshalText(text []byte) error {
	parsed, err := ParseJobState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseJobState resolves a state by its display name.
func ParseJobState(name string) (JobState, error) {
	for state, stateName := range jobStateNames {
		if stateName == name {
			return state, nil
		}
	}
	return 0, fmt.Errorf("unknown job state %q", name)
}

// IsKnown reports whether s is one of the defined states.
func (s JobState) IsKnown() bool {
	_, ok := jobStateNames[s]
	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s JobState) IsTerminal() bool {
	return s == JobResolved || s == JobCancelled || s == JobExpired
}

// CanTransitionTo reports whether moving from s to next is a legal lifecycle step.
func (s JobState) CanTransitionTo(next JobState) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
