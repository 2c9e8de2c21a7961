package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"
)

// QueueDispatcher delivers events to the personal queues of connected users,
// resolving connections through the session registry. A recipient without a
// live session is skipped silently: offline delivery is out of scope and the
// message itself is already persisted before any dispatch happens.
type QueueDispatcher struct {
	log      *slog.Logger
	sessions contract.SessionDirectory
}

func NewQueueDispatcher(log *slog.Logger, sessions contract.SessionDirectory) *QueueDispatcher {
	return &QueueDispatcher{log: log, sessions: sessions}
}

func (d *QueueDispatcher) SendToUser(ctx context.Context, signature, topic string, e event.DomainEvent) error {
	sink, ok := d.sessions.GetSink(signature)
	if !ok {
		d.log.Debug(fmt.Sprintf("No active session for %s, skipping %s dispatch", signature, topic))
		return nil
	}
	if err := sink.Consume(ctx, e); err != nil {
		return fmt.Errorf("dispatch to %s on %s: %w", signature, topic, err)
	}
	return nil
}

// SendToUsers dispatches one event per participant. Failures are isolated:
// a full or broken connection only costs its own recipient, the rest of the
// batch still goes out. The first error is reported after the whole batch
// has been attempted.
func (d *QueueDispatcher) SendToUsers(ctx context.Context, events map[domain.Participant]event.DomainEvent, topic string) error {
	var firstErr error
	for participant, e := range events {
		if err := d.SendToUser(ctx, participant.Signature, topic, e); err != nil {
			d.log.Error("batch dispatch failed",
				"recipient", participant.Signature,
				"topic", topic,
				"error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
