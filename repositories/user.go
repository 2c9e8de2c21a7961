//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	pb "moonlight/proto/storage"

	"moonlight/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

type IUserRepository interface {
	CreateUser(login, hashedPassword string) (string, error)
	GetUserByLogin(login string) (User, error)
	ExistsUser(login string) (bool, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the domain-friendly representation of an account in the repository
// layer. The login doubles as the user's chat signature.
type User struct {
	ID           string
	Login        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

func userKey(login string) []byte {
	return []byte("user:" + login)
}

// CreateUser persists the account and returns the newly generated user ID.
// Password hashing happens in the service layer; the repository only ever
// sees the hash.
func (u UserRepository) CreateUser(login, hashedPassword string) (string, error) {
	newID := uuid.New().String()
	userPb := &pb.User{
		Id:           newID,
		Login:        login,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().Unix(),
		Roles:        []string{"user"},
	}

	data, err := proto.Marshal(userPb)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err = txn.Get(userKey(login)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(userKey(login), data)
	})

	return newID, err
}

func (u UserRepository) GetUserByLogin(login string) (User, error) {
	var userPb pb.User

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(login))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &userPb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}

	return toUserStruct(&userPb), nil
}

// ExistsUser is the recipient-resolution check used by the message router.
func (u UserRepository) ExistsUser(login string) (bool, error) {
	err := u.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(login))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	return err == nil, err
}

func toUserStruct(pbUser *pb.User) User {
	return User{
		ID:           pbUser.Id,
		Login:        pbUser.Login,
		PasswordHash: pbUser.PasswordHash,
		Roles:        pbUser.Roles,
		CreatedAt:    time.Unix(pbUser.CreatedAt, 0).UTC(),
	}
}
