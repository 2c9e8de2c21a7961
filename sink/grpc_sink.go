package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moonlight/domain/event"
)

// GrpcSink buffers events for one connected user until the Connect stream
// handler drains them. Consume blocks for at most the delivery timeout, so a
// slow consumer cannot stall a routing unit of work; a full buffer after the
// timeout counts as that recipient's dispatch failure only.
type GrpcSink struct {
	log                *slog.Logger
	deliveryTimeout    time.Duration
	ConnectedUserEvent chan event.DomainEvent
}

func NewGrpcSink(log *slog.Logger, bufferSize int, deliveryTimeout time.Duration) *GrpcSink {
	return &GrpcSink{
		log:                log,
		deliveryTimeout:    deliveryTimeout,
		ConnectedUserEvent: make(chan event.DomainEvent, bufferSize),
	}
}

// Consume is called by the dispatcher and hands the event to the stream
// handler owning the channel.
func (s *GrpcSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.ConnectedUserEvent <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.deliveryTimeout):
		s.log.Warn(fmt.Sprintf("Connection buffer full for %s, dropping event", e.Recipient()))
		return fmt.Errorf("connection buffer full for %s", e.Recipient())
	}
}
