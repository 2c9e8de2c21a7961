package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"moonlight/domain"
	"moonlight/errors"
	"moonlight/mocks"
	"moonlight/runtime"
	. "moonlight/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type groupFixture struct {
	groups   *mocks.MockIGroupRepository
	contacts *mocks.MockContactRequestHandler
	service  *GroupService
}

func newGroupFixture(t *testing.T) groupFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := groupFixture{
		groups:   mocks.NewMockIGroupRepository(ctrl),
		contacts: mocks.NewMockContactRequestHandler(ctrl),
	}
	f.service = NewGroupService(logs.GetLoggerFromLevel(slog.LevelDebug),
		f.groups, f.contacts, runtime.NewEntityLocks(time.Second))
	return f
}

func TestGroupService_CreateGroup(t *testing.T) {
	t.Run("the creator joins the new group immediately", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().CreateGroup("team").Return(domain.NewGroup("team"), nil)
		f.groups.EXPECT().
			SaveGroup(gomock.Any()).
			DoAndReturn(func(group *domain.Group) error {
				require.True(t, group.Belongs("alice"))
				return nil
			})

		group, err := f.service.CreateGroup(context.Background(), "alice", "team")
		req.NoError(err)
		req.True(group.Belongs("alice"))
	})

	t.Run("an empty signature is rejected before any repository call", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		_, err := f.service.CreateGroup(context.Background(), "alice", "")
		req.ErrorIs(err, errors.ErrInvalidSignature)
	})

	t.Run("a taken signature propagates the conflict", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().CreateGroup("team").Return(nil, errors.ErrGroupAlreadyExists)

		_, err := f.service.CreateGroup(context.Background(), "alice", "team")
		req.ErrorIs(err, errors.ErrGroupAlreadyExists)
	})
}

func existingGroup(t *testing.T, members ...string) *domain.Group {
	t.Helper()
	group := domain.NewGroup("team")
	for _, m := range members {
		p, err := domain.User(m)
		require.NoError(t, err)
		group.Participants[p] = struct{}{}
	}
	return group
}

func TestGroupService_ChangeParticipants(t *testing.T) {
	t.Run("additions notify each new member with PENDING", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "alice"), nil)
		f.groups.EXPECT().SaveGroup(gomock.Any()).Return(nil)

		var notified []domain.ContactRequest
		f.contacts.EXPECT().
			Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.ContactRequest) error {
				notified = append(notified, r)
				return nil
			}).
			Times(2)

		group, delta, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", []string{"bob", "carol"}, nil)

		req.NoError(err)
		req.ElementsMatch([]string{"bob", "carol"}, Signatures(delta.Added))
		req.Empty(delta.Removed)
		req.ElementsMatch([]string{"alice", "bob", "carol"}, Signatures(group.Members()))
		for _, r := range notified {
			req.Equal(domain.ContactPending, r.Status)
			req.Equal("alice", r.Sender)
			req.Equal("team", r.ContextID)
		}
	})

	t.Run("removals notify each removed member with REJECTED", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "alice", "bob", "carol"), nil)
		f.groups.EXPECT().SaveGroup(gomock.Any()).Return(nil)
		f.contacts.EXPECT().
			Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r domain.ContactRequest) error {
				require.Equal(t, "bob", r.Recipient)
				require.Equal(t, domain.ContactRejected, r.Status)
				return nil
			}).
			Times(1)

		group, delta, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", nil, []string{"bob"})

		req.NoError(err)
		req.ElementsMatch([]string{"bob"}, Signatures(delta.Removed))
		req.ElementsMatch([]string{"alice", "carol"}, Signatures(group.Members()))
	})

	t.Run("no-op changes produce no notifications", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "alice", "bob"), nil)
		f.groups.EXPECT().SaveGroup(gomock.Any()).Return(nil)
		f.contacts.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(0)

		_, delta, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", []string{"bob"}, []string{"ghost"})

		req.NoError(err)
		req.Empty(delta.Added)
		req.Empty(delta.Removed)
	})

	t.Run("a non-member requester is denied before any mutation", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "bob"), nil)
		f.groups.EXPECT().SaveGroup(gomock.Any()).Times(0)

		_, _, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", []string{"carol"}, nil)
		req.ErrorIs(err, errors.ErrIllegalGroupAccess)
	})

	t.Run("a malformed participant aborts before any mutation", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		_, _, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", []string{""}, nil)
		req.ErrorIs(err, errors.ErrInvalidSignature)
	})

	t.Run("a failed notification is best-effort, the change stands", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "alice"), nil)
		f.groups.EXPECT().SaveGroup(gomock.Any()).Return(nil)
		f.contacts.EXPECT().
			Handle(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("contact channel down")).
			Times(1)

		group, delta, err := f.service.ChangeParticipants(context.Background(),
			"alice", "team", []string{"bob"}, nil)

		req.NoError(err)
		req.ElementsMatch([]string{"bob"}, Signatures(delta.Added))
		req.True(group.Belongs("bob"))
	})
}

func TestGroupService_GetParticipants(t *testing.T) {
	t.Run("a closed group is visible to members only", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		f.groups.EXPECT().GetGroup("team").Return(existingGroup(t, "bob"), nil).Times(2)

		_, err := f.service.GetParticipants(context.Background(), "alice", "team")
		req.ErrorIs(err, errors.ErrIllegalGroupAccess)

		group, err := f.service.GetParticipants(context.Background(), "bob", "team")
		req.NoError(err)
		req.True(group.Belongs("bob"))
	})

	t.Run("an opened group answers read-only queries from anyone", func(t *testing.T) {
		req := require.New(t)
		f := newGroupFixture(t)

		opened := existingGroup(t, "bob")
		opened.Opened = true
		f.groups.EXPECT().GetGroup("team").Return(opened, nil)

		group, err := f.service.GetParticipants(context.Background(), "stranger", "team")
		req.NoError(err)
		req.ElementsMatch([]string{"bob"}, Signatures(group.Members()))
	})
}
