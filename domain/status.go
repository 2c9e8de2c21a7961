package domain

import (
	"moonlight/errors"
)

// DeliveryStatus is the lifecycle stage of a message from the recipient's
// acknowledgment perspective. The order is total and strictly increasing:
// a message's status only ever moves forward.
type DeliveryStatus int

const (
	StatusSent DeliveryStatus = iota + 1
	StatusArrived
	StatusDelivered
	StatusRead
)

func (s DeliveryStatus) String() string {
	switch s {
	case StatusSent:
		return "SENT"
	case StatusArrived:
		return "ARRIVED"
	case StatusDelivered:
		return "DELIVERED"
	case StatusRead:
		return "READ"
	default:
		return "UNKNOWN"
	}
}

// Advance validates a client-reported status transition.
//
// SENT is assigned at persistence time and ARRIVED locally once routing
// succeeds, so clients may only ever report DELIVERED or READ. A report equal
// to the current status is a harmless duplicate and succeeds as a no-op
// (duplicate=true); a backward report is rejected so stale or out-of-order
// receipts stay detectable.
func Advance(current, requested DeliveryStatus) (next DeliveryStatus, duplicate bool, err error) {
	if requested != StatusDelivered && requested != StatusRead {
		return 0, false, errors.ErrIllegalStatus
	}
	if requested == current {
		return current, true, nil
	}
	if requested < current {
		return 0, false, errors.ErrIllegalStatus
	}
	return requested, false, nil
}
