package sewing

import "time"

type Status string

const (
	StatusPending      Status = "Pending"
	StatusInProgress   Status = "In Progress"
	StatusQualityCheck Status = "Quality Check"
	StatusDone         Status = "Done"
	StatusFailed       Status = "Failed"
)

var Statuses = []string{
	string(StatusPending),
	string(StatusInProgress),
	string(StatusQualityCheck),
	string(StatusDone),
	string(StatusFailed),
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}

// Instruction is one sewing job moving through the quality workflow.
type Instruction struct {
	ID        string
	Bag       string
	Person    string
	Deadline  *time.Time
	Priority  Priority
	Status    Status
	QCDate    *time.Time
	QCNote    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions is the allowed status graph: work moves forward through QC and
// ends at Done or Failed; a failed QC can be reworked.
var transitions = map[Status][]Status{
	StatusPending:      {StatusInProgress},
	StatusInProgress:   {StatusQualityCheck},
	StatusQualityCheck: {StatusDone, StatusFailed},
	StatusFailed:       {StatusInProgress},
	StatusDone:         {},
}

// CanTransition reports whether moving from current to next is allowed.
func CanTransition(current, next Status) bool {
	for _, allowed := range transitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}
