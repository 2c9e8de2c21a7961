package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func user(t *testing.T, signature string) Participant {
	t.Helper()
	p, err := User(signature)
	require.NoError(t, err)
	return p
}

func groupWith(t *testing.T, signature string, members ...string) *Group {
	t.Helper()
	g := NewGroup(signature)
	for _, m := range members {
		g.Participants[user(t, m)] = struct{}{}
	}
	return g
}

func TestApplyParticipantChange(t *testing.T) {
	t.Run("adds and removes compute the minimal delta", func(t *testing.T) {
		req := require.New(t)
		g := groupWith(t, "team", "alice")

		delta := g.ApplyParticipantChange(
			[]Participant{user(t, "bob"), user(t, "carol")}, nil)

		req.ElementsMatch([]Participant{user(t, "bob"), user(t, "carol")}, delta.Added)
		req.Empty(delta.Removed)
		req.ElementsMatch([]Participant{user(t, "alice"), user(t, "bob"), user(t, "carol")}, delta.Updated)
		req.True(g.Belongs("bob"))
	})

	t.Run("re-adding a present member is a silent no-op", func(t *testing.T) {
		req := require.New(t)
		g := groupWith(t, "team", "bob")

		delta := g.ApplyParticipantChange([]Participant{user(t, "bob")}, nil)

		req.Empty(delta.Added)
		req.Empty(delta.Removed)
		req.True(g.Belongs("bob"))
	})

	t.Run("removing an absent member is a silent no-op", func(t *testing.T) {
		req := require.New(t)
		g := groupWith(t, "team", "alice")

		delta := g.ApplyParticipantChange(nil, []Participant{user(t, "ghost")})

		req.Empty(delta.Added)
		req.Empty(delta.Removed)
	})

	t.Run("re-add wins over remove on conflicting signature", func(t *testing.T) {
		req := require.New(t)
		g := groupWith(t, "team", "alice")

		delta := g.ApplyParticipantChange(
			[]Participant{user(t, "alice")},
			[]Participant{user(t, "alice")})

		req.Equal([]Participant{user(t, "alice")}, delta.Added)
		req.Empty(delta.Removed, "net effect is a plain add, one notification only")
		req.True(g.Belongs("alice"))
	})

	t.Run("actual removal is reported", func(t *testing.T) {
		req := require.New(t)
		g := groupWith(t, "team", "alice", "bob")

		delta := g.ApplyParticipantChange(nil, []Participant{user(t, "bob")})

		req.Empty(delta.Added)
		req.Equal([]Participant{user(t, "bob")}, delta.Removed)
		req.Equal([]Participant{user(t, "alice")}, delta.Updated)
		req.False(g.Belongs("bob"))
	})
}
