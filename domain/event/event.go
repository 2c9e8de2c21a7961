package event

import (
	"moonlight/domain"
)

// DomainEvent is anything the server pushes to a connected client over its
// personal queue. Recipient is the user signature the event is addressed to.
type DomainEvent interface {
	Recipient() string
}

// MessageIncoming carries a routed chat message to one recipient.
type MessageIncoming struct {
	To      string
	Message domain.Message
}

func (e MessageIncoming) Recipient() string { return e.To }

// DeliveryUpdate echoes a message's delivery status back to its sender,
// so sender UIs reflect arrived/delivered/read receipts.
type DeliveryUpdate struct {
	To      string
	Receipt domain.DeliveryReceipt
}

func (e DeliveryUpdate) Recipient() string { return e.To }

// ContactUpdate informs a user that their relationship to a group or another
// user changed state.
type ContactUpdate struct {
	Request domain.ContactRequest
}

func (e ContactUpdate) Recipient() string { return e.Request.Recipient }
