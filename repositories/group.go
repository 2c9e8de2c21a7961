//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	pb "moonlight/proto/storage"

	"moonlight/domain"
	"moonlight/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type IGroupRepository interface {
	CreateGroup(signature string) (*domain.Group, error)
	GetGroup(signature string) (*domain.Group, error)
	ExistsGroup(signature string) (bool, error)
	SaveGroup(group *domain.Group) error
}

type GroupRepository struct {
	db *badger.DB
}

func NewGroupRepository(db *badger.DB) IGroupRepository {
	return &GroupRepository{db: db}
}

func groupKey(signature string) []byte {
	return []byte("group:" + signature)
}

// CreateGroup persists an empty group under an unused signature. The
// existence check and the write share one transaction, so two concurrent
// creates for the same signature cannot both succeed.
func (g GroupRepository) CreateGroup(signature string) (*domain.Group, error) {
	group := domain.NewGroup(signature)
	data, err := proto.Marshal(fromDomainGroup(group))
	if err != nil {
		return nil, err
	}
	err = g.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(groupKey(signature)); err == nil {
			return errors.ErrGroupAlreadyExists
		}
		return txn.Set(groupKey(signature), data)
	})
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (g GroupRepository) GetGroup(signature string) (*domain.Group, error) {
	var groupPb pb.Group
	err := g.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(groupKey(signature))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &groupPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.ErrGroupNotExists
	}
	if err != nil {
		return nil, err
	}
	return toDomainGroup(&groupPb), nil
}

func (g GroupRepository) ExistsGroup(signature string) (bool, error) {
	err := g.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(groupKey(signature))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	return err == nil, err
}

// SaveGroup overwrites the stored membership with the group's current one.
// Callers serialize per group signature, so the overwrite never clobbers a
// concurrent change.
func (g GroupRepository) SaveGroup(group *domain.Group) error {
	data, err := proto.Marshal(fromDomainGroup(group))
	if err != nil {
		return err
	}
	return g.db.Update(func(txn *badger.Txn) error {
		return txn.Set(groupKey(group.Signature), data)
	})
}

func fromDomainGroup(group *domain.Group) *pb.Group {
	participants := make([]string, 0, len(group.Participants))
	for p := range group.Participants {
		participants = append(participants, p.Signature)
	}
	return &pb.Group{
		Signature:    group.Signature,
		Opened:       group.Opened,
		Participants: participants,
	}
}

func toDomainGroup(groupPb *pb.Group) *domain.Group {
	group := domain.NewGroup(groupPb.Signature)
	group.Opened = groupPb.Opened
	for _, signature := range groupPb.Participants {
		group.Participants[domain.Participant{
			Type:      domain.ParticipantUser,
			Signature: signature,
		}] = struct{}{}
	}
	return group
}
