package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotificationsFromDelta(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 6, 22, 12, 0, 0, 0, time.UTC)

	t.Run("one PENDING per added, one REJECTED per removed", func(t *testing.T) {
		delta := MembershipDelta{
			Added:   []Participant{user(t, "bob"), user(t, "carol")},
			Removed: []Participant{user(t, "dave")},
		}

		requests := NotificationsFromDelta("team", "alice", delta, at)

		req.Len(requests, 3)
		byRecipient := make(map[string]ContactRequest)
		for _, r := range requests {
			byRecipient[r.Recipient] = r
			req.Equal("alice", r.Sender)
			req.Equal(ParticipantGroup, r.Context)
			req.Equal("team", r.ContextID)
			req.Equal(at, r.At)
		}
		req.Equal(ContactPending, byRecipient["bob"].Status)
		req.Equal(ContactPending, byRecipient["carol"].Status)
		req.Equal(ContactRejected, byRecipient["dave"].Status)
	})

	t.Run("empty delta yields no notifications", func(t *testing.T) {
		requests := NotificationsFromDelta("team", "alice", MembershipDelta{
			Updated: []Participant{user(t, "alice")},
		}, at)
		req.Empty(requests)
	})
}
