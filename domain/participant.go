// Package domain contains core concepts of the chat system.
// This file defines Participant endpoints and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"moonlight/errors"
)

// ParticipantType discriminates the two kinds of message endpoints.
type ParticipantType string

const (
	ParticipantUser  ParticipantType = "USER"
	ParticipantGroup ParticipantType = "GROUP"
)

// Participant is an addressable endpoint for a message: a user or a group,
// identified by its signature. It is an immutable value and is safe to use
// as a map key or set member.
type Participant struct {
	Type      ParticipantType
	Signature string
}

// NewParticipant builds a Participant and rejects empty signatures,
// so an invalid endpoint can never enter the routing core.
func NewParticipant(t ParticipantType, signature string) (Participant, error) {
	if signature == "" {
		return Participant{}, errors.ErrInvalidSignature
	}
	return Participant{Type: t, Signature: signature}, nil
}

// User is a shorthand for a USER participant.
func User(signature string) (Participant, error) {
	return NewParticipant(ParticipantUser, signature)
}

// GroupParticipant is a shorthand for a GROUP participant.
func GroupParticipant(signature string) (Participant, error) {
	return NewParticipant(ParticipantGroup, signature)
}

func (p Participant) IsUser() bool  { return p.Type == ParticipantUser }
func (p Participant) IsGroup() bool { return p.Type == ParticipantGroup }

// Zero reports whether the participant was never resolved.
func (p Participant) Zero() bool {
	return p.Type == "" && p.Signature == ""
}
