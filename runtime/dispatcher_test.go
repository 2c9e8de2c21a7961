package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"

	"github.com/stretchr/testify/require"
)

// recordingSink collects consumed events; failing makes Consume error out.
type recordingSink struct {
	events  []event.DomainEvent
	failing bool
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	if s.failing {
		return fmt.Errorf("connection gone")
	}
	s.events = append(s.events, e)
	return nil
}

func TestRegistry(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	_, ok := registry.GetSink("alice")
	req.False(ok)

	sink := &recordingSink{}
	registry.Subscribe("alice", sink)
	got, ok := registry.GetSink("alice")
	req.True(ok)
	req.Same(contract.EventSink(sink), got)
	req.Equal([]string{"alice"}, registry.ActiveUsers())

	registry.Unsubscribe("alice")
	_, ok = registry.GetSink("alice")
	req.False(ok)
	req.Empty(registry.ActiveUsers())
}

func TestQueueDispatcher_SendToUser(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	dispatcher := NewQueueDispatcher(slog.Default(), registry)

	sink := &recordingSink{}
	registry.Subscribe("bob", sink)

	evt := event.MessageIncoming{To: "bob"}
	req.NoError(dispatcher.SendToUser(context.Background(), "bob", contract.TopicIncoming, evt))
	req.Equal([]event.DomainEvent{evt}, sink.events)

	t.Run("a recipient without a session is skipped, not an error", func(t *testing.T) {
		req.NoError(dispatcher.SendToUser(context.Background(), "offline", contract.TopicIncoming, evt))
	})
}

func TestQueueDispatcher_SendToUsers_IsolatesFailures(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	dispatcher := NewQueueDispatcher(slog.Default(), registry)

	healthy := &recordingSink{}
	broken := &recordingSink{failing: true}
	registry.Subscribe("carol", healthy)
	registry.Subscribe("dave", broken)

	carol, err := domain.User("carol")
	req.NoError(err)
	dave, err := domain.User("dave")
	req.NoError(err)

	events := map[domain.Participant]event.DomainEvent{
		carol: event.MessageIncoming{To: "carol"},
		dave:  event.MessageIncoming{To: "dave"},
	}
	err = dispatcher.SendToUsers(context.Background(), events, contract.TopicIncoming)

	req.Error(err, "the broken recipient's failure is reported")
	req.Len(healthy.events, 1, "the healthy recipient still got its delivery")
}
