package models

// Urgency is the ordinal severity attached to a kitchen note.
type Urgency string

const (
	UrgencyRed    Urgency = "red"
	UrgencyOrange Urgency = "orange"
	UrgencyGreen  Urgency = "green"
)

// Status is the reservation-level attention state derived from the
// most severe urgency among its kitchen notes.
type Status string

const (
	StatusUrgent    Status = "urgent"
	StatusAttention Status = "attention"
	StatusNormal    Status = "normal"
)

// Severity returns the urgency's rank for comparisons. Red outranks
// orange outranks green; unknown values rank lowest.
func (u Urgency) Severity() int {
	switch u {
	case UrgencyRed:
		return 3
	case UrgencyOrange:
		return 2
	case UrgencyGreen:
		return 1
	default:
		return 0
	}
}

// Status maps an urgency to its reservation-level status.
func (u Urgency) Status() Status {
	switch u {
	case UrgencyRed:
		return StatusUrgent
	case UrgencyOrange:
		return StatusAttention
	default:
		return StatusNormal
	}
}

// StatusPriority ranks statuses for presentation ordering within a
// time group (urgent first).
func StatusPriority(s Status) int {
	switch s {
	case StatusUrgent:
		return 0
	case StatusAttention:
		return 1
	default:
		return 2
	}
}
