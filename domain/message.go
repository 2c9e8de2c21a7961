// Package domain contains core concepts of the chat system.
// This file defines Message values and their stable identity.
package domain

import (
	"fmt"
	"time"

	"moonlight/errors"
)

// Message represents an immutable chat event exchanged between participants.
// From is always a user signature resolved from the authenticated session,
// never taken from the client payload. To may be a user or a group.
type Message struct {
	From     string
	To       Participant
	SentAt   time.Time
	PacketID string // client-generated nonce, unique per sending device
	Subject  string
	Body     string
	Status   DeliveryStatus
}

// MessageKey is the stable identity of a message, derived from the four
// fields a client echoes back in a delivery receipt. Two messages with equal
// constituent fields produce equal keys, which makes re-delivery and
// duplicate receipt handling idempotent. The derivation never consults
// persistence and survives process restarts.
type MessageKey struct {
	From     string
	To       Participant
	SentAt   int64 // unix nanoseconds, normalized
	PacketID string
}

// Key derives the message's identity from its constituent fields.
func (m Message) Key() MessageKey {
	return MessageKey{
		From:     m.From,
		To:       m.To,
		SentAt:   m.SentAt.UnixNano(),
		PacketID: m.PacketID,
	}
}

// String renders the key in a canonical form usable as a storage key part.
func (k MessageKey) String() string {
	return fmt.Sprintf("%s|%s:%s|%d|%s", k.From, k.To.Type, k.To.Signature, k.SentAt, k.PacketID)
}

// DeliveryReceipt is a client report about a message it received. The first
// four fields echo the original message so the key can be derived without a
// server-side correlation cache. To is stamped with the reporting user by
// the service layer, not trusted from the wire.
type DeliveryReceipt struct {
	From     string
	To       Participant
	SentAt   time.Time
	PacketID string
	Status   DeliveryStatus
}

// KeyFromReceipt correlates a delivery receipt to its original message.
// Same derivation as Message.Key, applied to the echoed fields.
func KeyFromReceipt(r DeliveryReceipt) MessageKey {
	return MessageKey{
		From:     r.From,
		To:       r.To,
		SentAt:   r.SentAt.UnixNano(),
		PacketID: r.PacketID,
	}
}

// Validate enforces the message invariants that hold before routing:
// a non-empty packet id and a resolvable recipient.
func (m Message) Validate() error {
	if m.PacketID == "" {
		return errors.ErrEmptyPacketID
	}
	if m.To.Signature == "" {
		return errors.ErrInvalidRecipient
	}
	return nil
}
