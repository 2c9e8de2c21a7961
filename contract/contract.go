//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"moonlight/domain"
	"moonlight/domain/event"
)

// Topics a client subscribes to on its personal queue.
const (
	TopicIncoming = "chat/incoming"
	TopicDelivery = "messages/delivery"
	TopicContacts = "contacts/reply"
)

// EventSink is one connected client's receiving end. Implementations must be
// safe for concurrent use; Consume may block up to the sink's own delivery
// timeout, never longer.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Dispatcher delivers payloads to participants' personal queues. Delivery is
// at-most-once per call from the core's perspective; any retry policy belongs
// to the implementation. Dispatch failures for one recipient must not affect
// the others in a batch.
type Dispatcher interface {
	SendToUser(ctx context.Context, signature, topic string, e event.DomainEvent) error
	SendToUsers(ctx context.Context, events map[domain.Participant]event.DomainEvent, topic string) error
}

// ContactRequestHandler persists and delivers a contact request event.
// Group membership changes are funneled through the same handler as direct
// contact requests.
type ContactRequestHandler interface {
	Handle(ctx context.Context, request domain.ContactRequest) error
}

// SessionDirectory is the active-session registry: it resolves a user
// signature to the sink of its live connection, if any.
type SessionDirectory interface {
	Subscribe(signature string, sink EventSink)
	Unsubscribe(signature string)
	GetSink(signature string) (EventSink, bool)
	ActiveUsers() []string
}
