package repositories

import (
	"testing"

	"moonlight/domain"
	"moonlight/errors"

	"github.com/stretchr/testify/require"
)

func Test_CreateGroup_ClaimsSignatureOnce(t *testing.T) {
	req := require.New(t)
	repository := NewGroupRepository(openTestDB(t))

	group, err := repository.CreateGroup("team")
	req.NoError(err)
	req.Equal("team", group.Signature)
	req.Empty(group.Participants)

	_, err = repository.CreateGroup("team")
	req.ErrorIs(err, errors.ErrGroupAlreadyExists)
}

func Test_GetGroup(t *testing.T) {
	req := require.New(t)
	repository := NewGroupRepository(openTestDB(t))

	_, err := repository.GetGroup("nope")
	req.ErrorIs(err, errors.ErrGroupNotExists)

	_, err = repository.CreateGroup("team")
	req.NoError(err)

	group, err := repository.GetGroup("team")
	req.NoError(err)
	req.Equal("team", group.Signature)
}

func Test_SaveGroup_RoundTripsMembership(t *testing.T) {
	req := require.New(t)
	repository := NewGroupRepository(openTestDB(t))

	group, err := repository.CreateGroup("team")
	req.NoError(err)

	alice, err := domain.User("alice")
	req.NoError(err)
	bob, err := domain.User("bob")
	req.NoError(err)
	group.ApplyParticipantChange([]domain.Participant{alice, bob}, nil)
	req.NoError(repository.SaveGroup(group))

	fetched, err := repository.GetGroup("team")
	req.NoError(err)
	req.True(fetched.Belongs("alice"))
	req.True(fetched.Belongs("bob"))
	req.False(fetched.Belongs("carol"))

	exists, err := repository.ExistsGroup("team")
	req.NoError(err)
	req.True(exists)
	exists, err = repository.ExistsGroup("other")
	req.NoError(err)
	req.False(exists)
}
