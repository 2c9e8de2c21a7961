package test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"moonlight/domain"
	"moonlight/domain/event"
	"moonlight/repositories"
	"moonlight/runtime"
	"moonlight/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every event pushed to one connected user.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) received() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent(nil), s.events...)
}

type world struct {
	messages services.IMessageService
	groups   services.IGroupService
	sinks    map[string]*recordingSink
}

// newWorld wires the full service stack against a real store and connects
// the given users through recording sinks.
func newWorld(t *testing.T, users ...string) *world {
	t.Helper()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() {
		db.Close()
	})

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	dispatcher := runtime.NewQueueDispatcher(log, registry)
	locks := runtime.NewEntityLocks(2 * time.Second)

	messageRepository := repositories.NewMessageRepository(db, log, lo.ToPtr(100))
	userRepository := repositories.NewUserRepository(db)
	groupRepository := repositories.NewGroupRepository(db)

	contactService := services.NewContactService(log, dispatcher)
	w := &world{
		messages: services.NewMessageService(log, messageRepository, userRepository, groupRepository, dispatcher, locks),
		groups:   services.NewGroupService(log, groupRepository, contactService, locks),
		sinks:    make(map[string]*recordingSink, len(users)),
	}
	for _, user := range users {
		_, err := userRepository.CreateUser(user, "irrelevant-hash")
		req.NoError(err)
		sink := &recordingSink{}
		registry.Subscribe(user, sink)
		w.sinks[user] = sink
	}
	return w
}

func contactRequests(events []event.DomainEvent) []domain.ContactRequest {
	var requests []domain.ContactRequest
	for _, e := range events {
		if update, ok := e.(event.ContactUpdate); ok {
			requests = append(requests, update.Request)
		}
	}
	return requests
}

func Test_Scenario_GroupLifecycle(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	w := newWorld(t, "alice", "bob", "carol")

	// alice opens a group and invites bob and carol
	_, err := w.groups.CreateGroup(ctx, "alice", "team")
	req.NoError(err)

	group, delta, err := w.groups.ChangeParticipants(ctx, "alice", "team", []string{"bob", "carol"}, nil)
	req.NoError(err)
	req.ElementsMatch([]domain.Participant{
		domain.Participant{Type: domain.ParticipantUser, Signature: "bob"},
		domain.Participant{Type: domain.ParticipantUser, Signature: "carol"},
	}, delta.Added)
	req.Empty(delta.Removed)
	req.ElementsMatch([]string{"alice", "bob", "carol"}, services.Signatures(group.Members()))

	for _, invited := range []string{"bob", "carol"} {
		requests := contactRequests(w.sinks[invited].received())
		req.Len(requests, 1)
		req.Equal(domain.ContactPending, requests[0].Status)
		req.Equal("alice", requests[0].Sender)
		req.Equal("team", requests[0].ContextID)
		req.Equal(domain.ParticipantGroup, requests[0].Context)
	}

	// then bob is removed again
	group, delta, err = w.groups.ChangeParticipants(ctx, "alice", "team", nil, []string{"bob"})
	req.NoError(err)
	req.Empty(delta.Added)
	req.ElementsMatch([]domain.Participant{{Type: domain.ParticipantUser, Signature: "bob"}}, delta.Removed)
	req.ElementsMatch([]string{"alice", "carol"}, services.Signatures(group.Members()))

	requests := contactRequests(w.sinks["bob"].received())
	req.Len(requests, 2)
	req.Equal(domain.ContactRejected, requests[1].Status)
	req.Equal("team", requests[1].ContextID)
}

func Test_Scenario_PrivateMessageDelivery(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	w := newWorld(t, "alice", "bob")

	message, err := w.messages.RoutePrivate(ctx, "alice", domain.Message{
		To:       domain.Participant{Signature: "bob"},
		PacketID: "n1",
		Body:     "hi",
	})
	req.NoError(err)
	req.Equal(domain.StatusArrived, message.Status)

	// bob holds the message, alice holds the routing receipt
	bobEvents := w.sinks["bob"].received()
	req.Len(bobEvents, 1)
	incoming, ok := bobEvents[0].(event.MessageIncoming)
	req.True(ok)
	req.Equal("hi", incoming.Message.Body)
	req.Equal("alice", incoming.Message.From)

	aliceEvents := w.sinks["alice"].received()
	req.Len(aliceEvents, 1)
	echo, ok := aliceEvents[0].(event.DeliveryUpdate)
	req.True(ok)
	req.Equal(domain.StatusArrived, echo.Receipt.Status)
	req.Equal("n1", echo.Receipt.PacketID)

	// bob reports the message delivered
	report := domain.DeliveryReceipt{
		From:     message.From,
		SentAt:   message.SentAt,
		PacketID: message.PacketID,
		Status:   domain.StatusDelivered,
	}
	receipt, err := w.messages.UpdateDeliveryStatus(ctx, "bob", report)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, receipt.Status)

	aliceEvents = w.sinks["alice"].received()
	req.Len(aliceEvents, 2)
	update, ok := aliceEvents[1].(event.DeliveryUpdate)
	req.True(ok)
	req.Equal(domain.StatusDelivered, update.Receipt.Status)

	// a replayed report is a no-op but still reaches alice
	receipt, err = w.messages.UpdateDeliveryStatus(ctx, "bob", report)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, receipt.Status)
	req.Len(w.sinks["alice"].received(), 3)

	// the stored record reflects the reported status
	history, err := w.messages.GetMessagesBetween("alice", domain.Participant{Type: domain.ParticipantUser, Signature: "bob"})
	req.NoError(err)
	req.Len(history, 1)
	req.Equal(domain.StatusDelivered, history[0].Status)
}
