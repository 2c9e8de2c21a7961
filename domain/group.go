package domain

// Group owns a set of user participants under a unique, immutable signature.
// Opened groups permit read-only participant queries by non-members.
type Group struct {
	Signature    string
	Participants map[Participant]struct{}
	Opened       bool
}

func NewGroup(signature string) *Group {
	return &Group{
		Signature:    signature,
		Participants: make(map[Participant]struct{}),
	}
}

// Belongs reports whether the user signature is a current member.
func (g *Group) Belongs(userSignature string) bool {
	_, ok := g.Participants[Participant{Type: ParticipantUser, Signature: userSignature}]
	return ok
}

// Members returns the current membership as a slice, in no particular order.
func (g *Group) Members() []Participant {
	members := make([]Participant, 0, len(g.Participants))
	for p := range g.Participants {
		members = append(members, p)
	}
	return members
}

// MembershipDelta is the net effect of an add/remove command on a group.
// Updated is the membership after the delta has been applied; it doubles as
// the response payload and as the notification source.
type MembershipDelta struct {
	Added   []Participant
	Removed []Participant
	Updated []Participant
}

// ApplyParticipantChange mutates the group's membership and computes the
// minimal delta. Removals are applied before additions, so a participant
// present in both sets ends up added (re-add wins over remove on conflict,
// documented policy). Re-adding a present member and removing an absent one
// are no-ops and are excluded from the delta, so no duplicate notifications
// are synthesized for them.
func (g *Group) ApplyParticipantChange(toAdd, toRemove []Participant) MembershipDelta {
	var delta MembershipDelta

	for _, p := range toRemove {
		if _, present := g.Participants[p]; present {
			delete(g.Participants, p)
			delta.Removed = append(delta.Removed, p)
		}
	}
	for _, p := range toAdd {
		if _, present := g.Participants[p]; !present {
			g.Participants[p] = struct{}{}
			delta.Added = append(delta.Added, p)
		}
	}

	// A member removed then re-added in the same command nets out to a plain
	// add: drop it from Removed so only one notification is produced.
	if len(delta.Removed) > 0 && len(delta.Added) > 0 {
		added := make(map[Participant]struct{}, len(delta.Added))
		for _, p := range delta.Added {
			added[p] = struct{}{}
		}
		kept := delta.Removed[:0]
		for _, p := range delta.Removed {
			if _, readded := added[p]; !readded {
				kept = append(kept, p)
			}
		}
		delta.Removed = kept
	}

	delta.Updated = g.Members()
	return delta
}
