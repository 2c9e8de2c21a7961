//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"
	"moonlight/errors"
	"moonlight/repositories"
	"moonlight/runtime"
)

type IMessageService interface {
	RoutePrivate(ctx context.Context, sender string, message domain.Message) (domain.Message, error)
	RouteGroup(ctx context.Context, sender string, message domain.Message) (domain.Message, error)
	UpdateDeliveryStatus(ctx context.Context, reportingUser string, receipt domain.DeliveryReceipt) (domain.DeliveryReceipt, error)
	GetMessagesOfUser(login string) ([]domain.Message, error)
	GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error)
}

// MessageService is the routing core. It assigns identity and ordering to
// inbound messages, resolves the recipient set, persists the canonical
// record, and hands deliveries to the dispatcher. All failure paths reject
// before any mutation.
type MessageService struct {
	log        *slog.Logger
	messages   repositories.IMessageRepository
	users      repositories.IUserRepository
	groups     repositories.IGroupRepository
	dispatcher contract.Dispatcher
	locks      *runtime.EntityLocks
}

func NewMessageService(log *slog.Logger, messages repositories.IMessageRepository,
	users repositories.IUserRepository, groups repositories.IGroupRepository,
	dispatcher contract.Dispatcher, locks *runtime.EntityLocks) *MessageService {
	return &MessageService{
		log:        log,
		messages:   messages,
		users:      users,
		groups:     groups,
		dispatcher: dispatcher,
		locks:      locks,
	}
}

// setUp validates the client-controlled parts of an inbound message and
// stamps the server-controlled ones: the authenticated sender and the server
// timestamp. The sender signature is never taken from the payload.
func setUp(sender string, message domain.Message, expected domain.ParticipantType) (domain.Message, error) {
	if message.PacketID == "" {
		return domain.Message{}, errors.ErrEmptyPacketID
	}
	if message.To.Type == "" {
		message.To.Type = expected
	} else if message.To.Type != expected {
		return domain.Message{}, errors.ErrIllegalRecipientType
	}
	if message.To.Signature == "" {
		return domain.Message{}, errors.ErrInvalidRecipient
	}

	message.From = sender
	if message.SentAt.IsZero() {
		message.SentAt = time.Now().UTC()
	}
	message.Status = domain.StatusSent
	return message, nil
}

// RoutePrivate routes a message to a single user recipient. On success the
// message is persisted with status SENT, advanced to ARRIVED once the
// delivery is queued, and the recipient plus a sender-side ARRIVED receipt
// are dispatched.
func (s *MessageService) RoutePrivate(ctx context.Context, sender string, message domain.Message) (domain.Message, error) {
	message, err := setUp(sender, message, domain.ParticipantUser)
	if err != nil {
		return domain.Message{}, err
	}

	exists, err := s.users.ExistsUser(message.To.Signature)
	if err != nil {
		return domain.Message{}, err
	}
	if !exists {
		return domain.Message{}, errors.ErrRecipientDoesNotExist
	}

	message, err = s.persistArrived(message)
	if err != nil {
		return domain.Message{}, err
	}

	s.log.Info(fmt.Sprintf("user %s sent private message to %s", sender, message.To.Signature))

	s.dispatch(ctx, message.To.Signature, contract.TopicIncoming, event.MessageIncoming{
		To:      message.To.Signature,
		Message: message,
	})
	s.echoReceipt(ctx, message)
	return message, nil
}

// RouteGroup routes a message to every current member of the recipient group
// except the sender, with an identical payload for all of them. Membership
// is resolved and the message persisted under the group's entity lock, so a
// message is never stored against a membership state it was not validated
// against.
func (s *MessageService) RouteGroup(ctx context.Context, sender string, message domain.Message) (domain.Message, error) {
	message, err := setUp(sender, message, domain.ParticipantGroup)
	if err != nil {
		return domain.Message{}, err
	}

	release, err := s.locks.Acquire("group:" + message.To.Signature)
	if err != nil {
		return domain.Message{}, err
	}

	group, err := s.groups.GetGroup(message.To.Signature)
	if err != nil {
		release()
		if err == errors.ErrGroupNotExists {
			return domain.Message{}, errors.ErrRecipientDoesNotExist
		}
		return domain.Message{}, err
	}
	if !group.Belongs(sender) {
		release()
		return domain.Message{}, errors.ErrIllegalGroupRecipient
	}

	message, err = s.persistArrived(message)
	release()
	if err != nil {
		return domain.Message{}, err
	}

	s.log.Info(fmt.Sprintf("user %s sent message to group %s", sender, message.To.Signature))

	deliveries := make(map[domain.Participant]event.DomainEvent, len(group.Participants))
	for _, member := range group.Members() {
		if member.Signature == sender {
			continue
		}
		deliveries[member] = event.MessageIncoming{To: member.Signature, Message: message}
	}
	if err := s.dispatcher.SendToUsers(ctx, deliveries, contract.TopicIncoming); err != nil {
		s.log.Error("group fan-out incomplete", "group", message.To.Signature, "error", err)
	}
	s.echoReceipt(ctx, message)
	return message, nil
}

// persistArrived stores the canonical record and advances it SENT -> ARRIVED.
// ARRIVED is a local transition assigned once routing has succeeded, never
// reported by a client.
func (s *MessageService) persistArrived(message domain.Message) (domain.Message, error) {
	if err := s.messages.SaveMessage(message); err != nil {
		return domain.Message{}, err
	}
	return s.messages.UpdateStatus(message.Key(), domain.StatusArrived)
}

// UpdateDeliveryStatus applies a client-reported status transition. The
// receipt's To is stamped with the reporting user, never trusted from the
// wire. A duplicate report succeeds as a no-op but still echoes to the
// original sender, so sender UIs converge even across receipt replays.
func (s *MessageService) UpdateDeliveryStatus(ctx context.Context, reportingUser string, receipt domain.DeliveryReceipt) (domain.DeliveryReceipt, error) {
	receipt.To = domain.Participant{Type: domain.ParticipantUser, Signature: reportingUser}
	key := domain.KeyFromReceipt(receipt)

	release, err := s.locks.Acquire("message:" + key.String())
	if err != nil {
		return domain.DeliveryReceipt{}, err
	}

	message, err := s.messages.Get(key)
	if err != nil {
		release()
		return domain.DeliveryReceipt{}, err
	}

	next, duplicate, err := domain.Advance(message.Status, receipt.Status)
	if err != nil {
		release()
		return domain.DeliveryReceipt{}, err
	}
	if !duplicate {
		if message, err = s.messages.UpdateStatus(key, next); err != nil {
			release()
			return domain.DeliveryReceipt{}, err
		}
	}
	release()

	echo := domain.DeliveryReceipt{
		From:     message.From,
		To:       receipt.To,
		SentAt:   message.SentAt,
		PacketID: message.PacketID,
		Status:   next,
	}
	s.dispatch(ctx, message.From, contract.TopicDelivery, event.DeliveryUpdate{
		To:      message.From,
		Receipt: echo,
	})
	return echo, nil
}

func (s *MessageService) GetMessagesOfUser(login string) ([]domain.Message, error) {
	if login == "" {
		return nil, errors.ErrInvalidSignature
	}
	return s.messages.GetMessagesOfUser(login)
}

func (s *MessageService) GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error) {
	return s.messages.GetMessagesBetween(user, companion)
}

// echoReceipt pushes the ARRIVED receipt of a freshly routed message back to
// its sender.
func (s *MessageService) echoReceipt(ctx context.Context, message domain.Message) {
	s.dispatch(ctx, message.From, contract.TopicDelivery, event.DeliveryUpdate{
		To: message.From,
		Receipt: domain.DeliveryReceipt{
			From:     message.From,
			To:       message.To,
			SentAt:   message.SentAt,
			PacketID: message.PacketID,
			Status:   domain.StatusArrived,
		},
	})
}

// dispatch is fire-and-forget: the message is already persisted, so a
// recipient whose dispatch fails simply fetches it from history later.
func (s *MessageService) dispatch(ctx context.Context, to, topic string, e event.DomainEvent) {
	if err := s.dispatcher.SendToUser(ctx, to, topic, e); err != nil {
		s.log.Error("dispatch failed", "recipient", to, "topic", topic, "error", err)
	}
}
