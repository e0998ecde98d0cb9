package events

import "time"

const LeaveChangedTopic = "hr.leave.changed.v1"

// LeaveChangedEvent tells dashboard listeners the leave set changed so they
// can refresh. Best-effort only; consumers must tolerate missed events.
type LeaveChangedEvent struct {
	EventType     string    `json:"event_type"`
	LeaveID       string    `json:"leave_id,omitempty"`
	EmployeeEmail string    `json:"employee_email,omitempty"`
	Status        string    `json:"status,omitempty"`
	Affected      int64     `json:"affected,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

const (
	LeaveSubmitted    = "leave.submitted"
	LeaveResolved     = "leave.resolved"
	LeaveBulkResolved = "leave.bulk_resolved"
	LeaveAutoApproved = "leave.auto_approved"
)
