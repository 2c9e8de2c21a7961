package repositories

import (
	"log/slog"
	"testing"
	"time"

	"moonlight/domain"
	"moonlight/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func message(from, toSig string, toType domain.ParticipantType, at time.Time, packetID, body string) domain.Message {
	return domain.Message{
		From:     from,
		To:       domain.Participant{Type: toType, Signature: toSig},
		SentAt:   at,
		PacketID: packetID,
		Body:     body,
		Status:   domain.StatusSent,
	}
}

func Test_Save_Get_And_Exists(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC().Truncate(time.Nanosecond)
	msg := message("alice", "bob", domain.ParticipantUser, at, "n1", "hi")
	req.NoError(repository.SaveMessage(msg))

	exists, err := repository.ExistsWithKey(msg.Key())
	req.NoError(err)
	req.True(exists)

	fetched, err := repository.Get(msg.Key())
	req.NoError(err)
	req.Equal(msg, fetched)

	unknown := message("alice", "bob", domain.ParticipantUser, at, "other", "")
	exists, err = repository.ExistsWithKey(unknown.Key())
	req.NoError(err)
	req.False(exists)

	_, err = repository.Get(unknown.Key())
	req.ErrorIs(err, errors.ErrMessageNotExists)
}

func Test_UpdateStatus(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	msg := message("alice", "bob", domain.ParticipantUser, time.Now().UTC(), "n1", "hi")
	req.NoError(repository.SaveMessage(msg))

	updated, err := repository.UpdateStatus(msg.Key(), domain.StatusDelivered)
	req.NoError(err)
	req.Equal(domain.StatusDelivered, updated.Status)

	fetched, err := repository.Get(msg.Key())
	req.NoError(err)
	req.Equal(domain.StatusDelivered, fetched.Status)

	unknown := message("alice", "bob", domain.ParticipantUser, time.Now().UTC(), "nope", "")
	_, err = repository.UpdateStatus(unknown.Key(), domain.StatusRead)
	req.ErrorIs(err, errors.ErrMessageNotExists)
}

func Test_GetMessagesOfUser_CoversBothDirections(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC()
	sent := message("alice", "bob", domain.ParticipantUser, at, "n1", "hello bob")
	received := message("bob", "alice", domain.ParticipantUser, at.Add(time.Minute), "n2", "hello alice")
	unrelated := message("carol", "dave", domain.ParticipantUser, at, "n3", "private")
	for _, m := range []domain.Message{sent, received, unrelated} {
		req.NoError(repository.SaveMessage(m))
	}

	messages, err := repository.GetMessagesOfUser("alice")
	req.NoError(err)
	req.ElementsMatch([]domain.Message{sent, received}, messages)
}

func Test_GetMessagesBetween_Users(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC()
	aliceToBob := message("alice", "bob", domain.ParticipantUser, at, "n1", "hi")
	bobToAlice := message("bob", "alice", domain.ParticipantUser, at.Add(time.Second), "n2", "hey")
	aliceToCarol := message("alice", "carol", domain.ParticipantUser, at, "n3", "other thread")
	for _, m := range []domain.Message{aliceToBob, bobToAlice, aliceToCarol} {
		req.NoError(repository.SaveMessage(m))
	}

	bob, err := domain.User("bob")
	req.NoError(err)
	messages, err := repository.GetMessagesBetween("alice", bob)
	req.NoError(err)
	req.ElementsMatch([]domain.Message{aliceToBob, bobToAlice}, messages)
}

func Test_GetMessagesBetween_GroupCompanion(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default(), nil)

	at := time.Now().UTC()
	first := message("alice", "team", domain.ParticipantGroup, at, "n1", "standup?")
	second := message("bob", "team", domain.ParticipantGroup, at.Add(time.Second), "n2", "in 5")
	direct := message("alice", "bob", domain.ParticipantUser, at, "n3", "psst")
	for _, m := range []domain.Message{first, second, direct} {
		req.NoError(repository.SaveMessage(m))
	}

	team, err := domain.GroupParticipant("team")
	req.NoError(err)
	messages, err := repository.GetMessagesBetween("alice", team)
	req.NoError(err)
	req.ElementsMatch([]domain.Message{first, second}, messages)
}

func Test_ScanLimit(t *testing.T) {
	req := require.New(t)
	limit := 2
	repository := NewMessageRepository(openTestDB(t), slog.Default(), &limit)

	at := time.Now().UTC()
	for i, packetID := range []string{"n1", "n2", "n3"} {
		req.NoError(repository.SaveMessage(
			message("alice", "bob", domain.ParticipantUser, at.Add(time.Duration(i)*time.Minute), packetID, "x")))
	}

	bob, err := domain.User("bob")
	req.NoError(err)
	messages, err := repository.GetMessagesBetween("alice", bob)
	req.NoError(err)
	req.Len(messages, limit)
}
