package domain

import (
	"testing"

	"moonlight/errors"

	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	req := require.New(t)

	t.Run("should reject an empty signature", func(t *testing.T) {
		_, err := NewParticipant(ParticipantUser, "")
		req.ErrorIs(err, errors.ErrInvalidSignature)

		_, err = GroupParticipant("")
		req.ErrorIs(err, errors.ErrInvalidSignature)
	})

	t.Run("should build comparable values usable as map keys", func(t *testing.T) {
		alice1, err := User("alice")
		req.NoError(err)
		alice2, err := User("alice")
		req.NoError(err)
		groupAlice, err := GroupParticipant("alice")
		req.NoError(err)

		req.Equal(alice1, alice2)
		req.NotEqual(alice1, groupAlice, "same signature, different type")

		set := map[Participant]struct{}{
			alice1:     {},
			groupAlice: {},
		}
		req.Len(set, 2)
		_, ok := set[alice2]
		req.True(ok)
	})
}
