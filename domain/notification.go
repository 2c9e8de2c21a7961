package domain

import "time"

// ContactRequestStatus is the lifecycle state a contact relationship is in.
type ContactRequestStatus string

const (
	ContactPending  ContactRequestStatus = "PENDING"
	ContactRejected ContactRequestStatus = "REJECTED"
)

// ContactRequest is an envelope-level event informing a user that their
// relationship to a group changed. Group membership changes reuse the
// contact-request lifecycle rather than a separate notification channel:
// an added member receives a PENDING request, a removed one a REJECTED.
type ContactRequest struct {
	Sender    string
	Recipient string
	Context   ParticipantType
	ContextID string
	Status    ContactRequestStatus
	At        time.Time
}

// NotificationsFromDelta synthesizes one contact request per participant a
// membership delta actually affected. Participants in neither Added nor
// Removed yield nothing. The function is pure; dispatching the requests is
// the caller's concern.
func NotificationsFromDelta(groupSignature, actingUser string, delta MembershipDelta, at time.Time) []ContactRequest {
	requests := make([]ContactRequest, 0, len(delta.Added)+len(delta.Removed))
	for _, p := range delta.Added {
		requests = append(requests, ContactRequest{
			Sender:    actingUser,
			Recipient: p.Signature,
			Context:   ParticipantGroup,
			ContextID: groupSignature,
			Status:    ContactPending,
			At:        at,
		})
	}
	for _, p := range delta.Removed {
		requests = append(requests, ContactRequest{
			Sender:    actingUser,
			Recipient: p.Signature,
			Context:   ParticipantGroup,
			ContextID: groupSignature,
			Status:    ContactRejected,
			At:        at,
		})
	}
	return requests
}
