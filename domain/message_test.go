package domain

import (
	"testing"
	"time"

	"moonlight/errors"

	"github.com/stretchr/testify/require"
)

func baseMessage() Message {
	return Message{
		From:     "alice",
		To:       Participant{Type: ParticipantUser, Signature: "bob"},
		SentAt:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		PacketID: "n1",
		Body:     "hi",
	}
}

func TestMessageKey(t *testing.T) {
	req := require.New(t)

	t.Run("is deterministic for field-identical messages", func(t *testing.T) {
		req.Equal(baseMessage().Key(), baseMessage().Key())
	})

	t.Run("changes when any constituent field changes", func(t *testing.T) {
		reference := baseMessage().Key()

		otherFrom := baseMessage()
		otherFrom.From = "carol"
		req.NotEqual(reference, otherFrom.Key())

		otherTo := baseMessage()
		otherTo.To.Signature = "carol"
		req.NotEqual(reference, otherTo.Key())

		otherTime := baseMessage()
		otherTime.SentAt = otherTime.SentAt.Add(time.Nanosecond)
		req.NotEqual(reference, otherTime.Key())

		otherNonce := baseMessage()
		otherNonce.PacketID = "n2"
		req.NotEqual(reference, otherNonce.Key())
	})

	t.Run("ignores content fields", func(t *testing.T) {
		edited := baseMessage()
		edited.Subject = "greeting"
		edited.Body = "hello there"
		edited.Status = StatusRead
		req.Equal(baseMessage().Key(), edited.Key())
	})

	t.Run("correlates a receipt to its original message", func(t *testing.T) {
		message := baseMessage()
		receipt := DeliveryReceipt{
			From:     message.From,
			To:       message.To,
			SentAt:   message.SentAt,
			PacketID: message.PacketID,
			Status:   StatusDelivered,
		}
		req.Equal(message.Key(), KeyFromReceipt(receipt))
	})
}

func TestMessageValidate(t *testing.T) {
	req := require.New(t)

	noNonce := baseMessage()
	noNonce.PacketID = ""
	req.ErrorIs(noNonce.Validate(), errors.ErrEmptyPacketID)

	noRecipient := baseMessage()
	noRecipient.To.Signature = ""
	req.ErrorIs(noRecipient.Validate(), errors.ErrInvalidRecipient)

	req.NoError(baseMessage().Validate())
}
