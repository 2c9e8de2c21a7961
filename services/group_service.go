//go:generate go run go.uber.org/mock/mockgen -source=group_service.go -destination=../mocks/mock_group_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"moonlight/contract"
	"moonlight/domain"
	"moonlight/errors"
	"moonlight/repositories"
	"moonlight/runtime"

	"github.com/samber/lo"
)

type IGroupService interface {
	CreateGroup(ctx context.Context, principal, signature string) (*domain.Group, error)
	GetParticipants(ctx context.Context, principal, signature string) (*domain.Group, error)
	ChangeParticipants(ctx context.Context, principal, signature string, add, remove []string) (*domain.Group, domain.MembershipDelta, error)
}

// GroupService owns group lifecycle and membership changes. Units of work
// touching the same group serialize on its entity lock; unrelated groups
// proceed in parallel.
type GroupService struct {
	log      *slog.Logger
	groups   repositories.IGroupRepository
	contacts contract.ContactRequestHandler
	locks    *runtime.EntityLocks
}

func NewGroupService(log *slog.Logger, groups repositories.IGroupRepository,
	contacts contract.ContactRequestHandler, locks *runtime.EntityLocks) *GroupService {
	return &GroupService{log: log, groups: groups, contacts: contacts, locks: locks}
}

// CreateGroup claims an unused signature and joins the creator to the new
// group immediately, so a fresh group always has its founding member.
func (s *GroupService) CreateGroup(_ context.Context, principal, signature string) (*domain.Group, error) {
	if signature == "" {
		return nil, errors.ErrInvalidSignature
	}

	release, err := s.locks.Acquire("group:" + signature)
	if err != nil {
		return nil, err
	}
	defer release()

	group, err := s.groups.CreateGroup(signature)
	if err != nil {
		return nil, err
	}
	group.ApplyParticipantChange([]domain.Participant{
		{Type: domain.ParticipantUser, Signature: principal},
	}, nil)
	if err := s.groups.SaveGroup(group); err != nil {
		return nil, err
	}

	s.log.Info(fmt.Sprintf("user %s created group %s", principal, signature))
	return group, nil
}

// GetParticipants returns the group's current membership. Closed groups are
// visible to members only; opened groups answer read-only queries from
// anyone.
func (s *GroupService) GetParticipants(_ context.Context, principal, signature string) (*domain.Group, error) {
	if signature == "" {
		return nil, errors.ErrInvalidSignature
	}
	group, err := s.groups.GetGroup(signature)
	if err != nil {
		return nil, err
	}
	if !group.Opened && !group.Belongs(principal) {
		return nil, errors.ErrIllegalGroupAccess
	}
	return group, nil
}

// ChangeParticipants applies an add/remove command and notifies every
// actually-affected participant through the contact-request handler: PENDING
// for added members, REJECTED for removed ones. Validation failures abort
// before any mutation; notification delivery is best-effort per participant
// and never rolls the membership change back.
func (s *GroupService) ChangeParticipants(ctx context.Context, principal, signature string, add, remove []string) (*domain.Group, domain.MembershipDelta, error) {
	if signature == "" {
		return nil, domain.MembershipDelta{}, errors.ErrInvalidSignature
	}
	toAdd, err := toParticipants(add)
	if err != nil {
		return nil, domain.MembershipDelta{}, err
	}
	toRemove, err := toParticipants(remove)
	if err != nil {
		return nil, domain.MembershipDelta{}, err
	}

	release, err := s.locks.Acquire("group:" + signature)
	if err != nil {
		return nil, domain.MembershipDelta{}, err
	}

	group, err := s.groups.GetGroup(signature)
	if err != nil {
		release()
		return nil, domain.MembershipDelta{}, err
	}
	if !group.Belongs(principal) {
		release()
		return nil, domain.MembershipDelta{}, errors.ErrIllegalGroupAccess
	}

	delta := group.ApplyParticipantChange(toAdd, toRemove)
	if err := s.groups.SaveGroup(group); err != nil {
		release()
		return nil, domain.MembershipDelta{}, err
	}
	release()

	s.log.Info(fmt.Sprintf("group %s changed by %s: %d added, %d removed",
		signature, principal, len(delta.Added), len(delta.Removed)))

	for _, request := range domain.NotificationsFromDelta(signature, principal, delta, time.Now().UTC()) {
		if err := s.contacts.Handle(ctx, request); err != nil {
			// One participant's failed notification costs that participant
			// only; the membership change itself already happened.
			s.log.Error("contact notification failed",
				"group", signature,
				"recipient", request.Recipient,
				"status", request.Status,
				"error", err)
		}
	}
	return group, delta, nil
}

func toParticipants(signatures []string) ([]domain.Participant, error) {
	participants := make([]domain.Participant, 0, len(signatures))
	for _, signature := range signatures {
		p, err := domain.User(signature)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// Signatures projects participants back to their signatures, for DTO shaping
// at the transport boundary.
func Signatures(participants []domain.Participant) []string {
	return lo.Map(participants, func(p domain.Participant, _ int) string {
		return p.Signature
	})
}
