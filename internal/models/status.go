package models

import "fmt"

// Status is the lifecycle state of an order. The stored column stays a plain
// string for compatibility with rows written before the vocabulary was closed,
// but every write goes through ParseStatus and CanTransitionTo.
type Status string

const (
	StatusPending        Status = "pending"
	StatusAssigned       Status = "assigned"
	StatusPreparing      Status = "preparing"
	StatusCooking        Status = "cooking"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// rank orders the delivery pipeline. Forward moves may skip stages; backward
// moves are rejected. Terminal states have no outgoing transitions.
var statusRank = map[Status]int{
	StatusPending:        0,
	StatusAssigned:       1,
	StatusPreparing:      2,
	StatusCooking:        3,
	StatusOutForDelivery: 4,
	StatusDelivered:      5,
}

// ParseStatus validates a status label supplied by a caller.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if _, ok := statusRank[s]; ok {
		return s, nil
	}
	if s == StatusCancelled {
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal transition.
// Cancellation is allowed from any non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		// Legacy rows may hold labels outside the vocabulary; allow them to
		// re-enter the pipeline at any stage.
		return true
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

func (s Status) String() string {
	return string(s)
}
