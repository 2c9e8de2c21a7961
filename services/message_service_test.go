package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/domain/event"
	"moonlight/errors"
	"moonlight/mocks"
	"moonlight/runtime"
	. "moonlight/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	messages   *mocks.MockIMessageRepository
	users      *mocks.MockIUserRepository
	groups     *mocks.MockIGroupRepository
	dispatcher *mocks.MockDispatcher
	service    *MessageService
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := routerFixture{
		messages:   mocks.NewMockIMessageRepository(ctrl),
		users:      mocks.NewMockIUserRepository(ctrl),
		groups:     mocks.NewMockIGroupRepository(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
	}
	f.service = NewMessageService(logs.GetLoggerFromLevel(slog.LevelDebug),
		f.messages, f.users, f.groups, f.dispatcher, runtime.NewEntityLocks(time.Second))
	return f
}

// expectPersistArrived wires the SENT persist followed by the local
// SENT -> ARRIVED transition, echoing the saved message back.
func (f routerFixture) expectPersistArrived(t *testing.T) {
	t.Helper()
	var saved domain.Message
	f.messages.EXPECT().
		SaveMessage(gomock.Any()).
		DoAndReturn(func(m domain.Message) error {
			require.Equal(t, domain.StatusSent, m.Status)
			saved = m
			return nil
		}).
		Times(1)
	f.messages.EXPECT().
		UpdateStatus(gomock.Any(), domain.StatusArrived).
		DoAndReturn(func(key domain.MessageKey, status domain.DeliveryStatus) (domain.Message, error) {
			require.Equal(t, saved.Key(), key)
			saved.Status = status
			return saved, nil
		}).
		Times(1)
}

func TestMessageService_RoutePrivate(t *testing.T) {
	t.Run("routes, persists and echoes an ARRIVED receipt", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.users.EXPECT().ExistsUser("bob").Return(true, nil)
		f.expectPersistArrived(t)
		f.dispatcher.EXPECT().
			SendToUser(gomock.Any(), "bob", contract.TopicIncoming, gomock.Any()).
			Return(nil)
		f.dispatcher.EXPECT().
			SendToUser(gomock.Any(), "alice", contract.TopicDelivery, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, e event.DomainEvent) error {
				update, ok := e.(event.DeliveryUpdate)
				require.True(t, ok)
				require.Equal(t, domain.StatusArrived, update.Receipt.Status)
				return nil
			})

		routed, err := f.service.RoutePrivate(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Signature: "bob"},
			PacketID: "n1",
			Body:     "hi",
		})

		req.NoError(err)
		req.Equal("alice", routed.From, "sender comes from the session, not the payload")
		req.Equal(domain.StatusArrived, routed.Status)
		req.False(routed.SentAt.IsZero(), "server assigns the timestamp")
		req.Equal(domain.ParticipantUser, routed.To.Type, "unset recipient type defaults to USER")
	})

	t.Run("unknown recipient fails without touching persistence", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.users.EXPECT().ExistsUser("ghost").Return(false, nil)
		f.messages.EXPECT().SaveMessage(gomock.Any()).Times(0)
		f.dispatcher.EXPECT().SendToUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.RoutePrivate(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Signature: "ghost"},
			PacketID: "n1",
		})
		req.ErrorIs(err, errors.ErrRecipientDoesNotExist)
	})

	t.Run("empty packet id is rejected before anything else", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		_, err := f.service.RoutePrivate(context.Background(), "alice", domain.Message{
			To: domain.Participant{Signature: "bob"},
		})
		req.ErrorIs(err, errors.ErrEmptyPacketID)
	})

	t.Run("a group recipient on the private path is rejected", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		_, err := f.service.RoutePrivate(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Type: domain.ParticipantGroup, Signature: "team"},
			PacketID: "n1",
		})
		req.ErrorIs(err, errors.ErrIllegalRecipientType)
	})

	t.Run("empty recipient signature is rejected", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		_, err := f.service.RoutePrivate(context.Background(), "alice", domain.Message{
			PacketID: "n1",
		})
		req.ErrorIs(err, errors.ErrInvalidRecipient)
	})
}

func teamGroup(t *testing.T, members ...string) *domain.Group {
	t.Helper()
	group := domain.NewGroup("team")
	for _, m := range members {
		p, err := domain.User(m)
		require.NoError(t, err)
		group.Participants[p] = struct{}{}
	}
	return group
}

func TestMessageService_RouteGroup(t *testing.T) {
	t.Run("fans out to every member except the sender", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(teamGroup(t, "alice", "tom", "uma"), nil)
		f.expectPersistArrived(t)
		f.dispatcher.EXPECT().
			SendToUsers(gomock.Any(), gomock.Any(), contract.TopicIncoming).
			DoAndReturn(func(_ context.Context, events map[domain.Participant]event.DomainEvent, _ string) error {
				recipients := make([]string, 0, len(events))
				for p := range events {
					recipients = append(recipients, p.Signature)
				}
				require.ElementsMatch(t, []string{"tom", "uma"}, recipients)
				return nil
			})
		f.dispatcher.EXPECT().
			SendToUser(gomock.Any(), "alice", contract.TopicDelivery, gomock.Any()).
			Return(nil)

		routed, err := f.service.RouteGroup(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Signature: "team"},
			PacketID: "n1",
			Body:     "standup in 5",
		})
		req.NoError(err)
		req.Equal(domain.ParticipantGroup, routed.To.Type)
		req.Equal(domain.StatusArrived, routed.Status)
	})

	t.Run("unknown group reads as an unknown recipient", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.groups.EXPECT().GetGroup("nowhere").Return(nil, errors.ErrGroupNotExists)
		f.messages.EXPECT().SaveMessage(gomock.Any()).Times(0)

		_, err := f.service.RouteGroup(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Signature: "nowhere"},
			PacketID: "n1",
		})
		req.ErrorIs(err, errors.ErrRecipientDoesNotExist)
	})

	t.Run("a non-member sender is rejected", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(teamGroup(t, "tom", "uma"), nil)
		f.messages.EXPECT().SaveMessage(gomock.Any()).Times(0)

		_, err := f.service.RouteGroup(context.Background(), "alice", domain.Message{
			To:       domain.Participant{Signature: "team"},
			PacketID: "n1",
		})
		req.ErrorIs(err, errors.ErrIllegalGroupRecipient)
	})
}

func storedMessage(status domain.DeliveryStatus) domain.Message {
	return domain.Message{
		From:     "alice",
		To:       domain.Participant{Type: domain.ParticipantUser, Signature: "bob"},
		SentAt:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		PacketID: "n1",
		Body:     "hi",
		Status:   status,
	}
}

func TestMessageService_UpdateDeliveryStatus(t *testing.T) {
	report := func(status domain.DeliveryStatus) domain.DeliveryReceipt {
		m := storedMessage(0)
		return domain.DeliveryReceipt{
			From:     m.From,
			SentAt:   m.SentAt,
			PacketID: m.PacketID,
			Status:   status,
		}
	}

	t.Run("advances the status and echoes to the sender", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)
		expectedKey := storedMessage(0).Key()

		f.messages.EXPECT().Get(expectedKey).Return(storedMessage(domain.StatusArrived), nil)
		f.messages.EXPECT().
			UpdateStatus(expectedKey, domain.StatusDelivered).
			Return(storedMessage(domain.StatusDelivered), nil)
		f.dispatcher.EXPECT().
			SendToUser(gomock.Any(), "alice", contract.TopicDelivery, gomock.Any()).
			Return(nil)

		echo, err := f.service.UpdateDeliveryStatus(context.Background(), "bob", report(domain.StatusDelivered))
		req.NoError(err)
		req.Equal(domain.StatusDelivered, echo.Status)
		req.Equal("bob", echo.To.Signature, "receipt To is stamped with the reporting user")
	})

	t.Run("a duplicate report succeeds and still echoes", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.messages.EXPECT().Get(gomock.Any()).Return(storedMessage(domain.StatusDelivered), nil)
		f.messages.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Times(0)
		f.dispatcher.EXPECT().
			SendToUser(gomock.Any(), "alice", contract.TopicDelivery, gomock.Any()).
			Return(nil)

		echo, err := f.service.UpdateDeliveryStatus(context.Background(), "bob", report(domain.StatusDelivered))
		req.NoError(err)
		req.Equal(domain.StatusDelivered, echo.Status)
	})

	t.Run("a backward report is rejected without echo", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.messages.EXPECT().Get(gomock.Any()).Return(storedMessage(domain.StatusRead), nil)
		f.dispatcher.EXPECT().SendToUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.UpdateDeliveryStatus(context.Background(), "bob", report(domain.StatusDelivered))
		req.ErrorIs(err, errors.ErrIllegalStatus)
	})

	t.Run("a report for an unknown message fails", func(t *testing.T) {
		req := require.New(t)
		f := newRouterFixture(t)

		f.messages.EXPECT().Get(gomock.Any()).Return(domain.Message{}, errors.ErrMessageNotExists)

		_, err := f.service.UpdateDeliveryStatus(context.Background(), "bob", report(domain.StatusDelivered))
		req.ErrorIs(err, errors.ErrMessageNotExists)
	})
}
