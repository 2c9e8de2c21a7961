package services

import (
	"context"
	"log/slog"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"
)

// ContactService is the contact-request handler: it takes a contact request
// and delivers it to the affected user's personal queue. Group membership
// changes flow through here exactly like direct contact requests.
type ContactService struct {
	log        *slog.Logger
	dispatcher contract.Dispatcher
}

func NewContactService(log *slog.Logger, dispatcher contract.Dispatcher) *ContactService {
	return &ContactService{log: log, dispatcher: dispatcher}
}

func (s *ContactService) Handle(ctx context.Context, request domain.ContactRequest) error {
	return s.dispatcher.SendToUser(ctx, request.Recipient, contract.TopicContacts,
		event.ContactUpdate{Request: request})
}
