//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	pb "moonlight/proto/storage"

	"moonlight/domain"
	"moonlight/errors"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

type IMessageRepository interface {
	SaveMessage(message domain.Message) error
	Get(key domain.MessageKey) (domain.Message, error)
	ExistsWithKey(key domain.MessageKey) (bool, error)
	UpdateStatus(key domain.MessageKey, status domain.DeliveryStatus) (domain.Message, error)
	GetMessagesOfUser(login string) ([]domain.Message, error)
	GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// primaryKey formats the canonical storage key of a message as
// "msg:{from}:{timestamp_padded}:{to_type}:{to_signature}:{packet_id}".
// The layout serves two purposes:
//  1. It is a pure function of the MessageKey, so a delivery receipt resolves
//     to the exact record without any index roundtrip.
//  2. The 19-digit zero padding keeps a sender's messages chronologically
//     sorted under the "msg:{from}:" prefix (lexicographical order).
func primaryKey(k domain.MessageKey) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s:%s:%s",
		k.From, k.SentAt, k.To.Type, k.To.Signature, k.PacketID))
}

// inboxKey is the recipient-side index: "inbox:{to_signature}:{timestamp_padded}:{from}:{packet_id}".
// Its value holds the primary key bytes, so recipient scans resolve through
// a single extra point lookup.
func inboxKey(k domain.MessageKey) []byte {
	return []byte(fmt.Sprintf("inbox:%s:%019d:%s:%s",
		k.To.Signature, k.SentAt, k.From, k.PacketID))
}

// SaveMessage persists the canonical record and its inbox index entry in a
// single transaction. Messages are append-only: saving an existing key is an
// idempotent overwrite of an identical record.
func (m MessageRepository) SaveMessage(message domain.Message) error {
	key := message.Key()
	bytes, err := proto.Marshal(fromDomainMessage(message))
	if err != nil {
		return err
	}
	primary := primaryKey(key)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, bytes); err != nil {
			return err
		}
		return txn.Set(inboxKey(key), primary)
	})
}

func (m MessageRepository) Get(key domain.MessageKey) (domain.Message, error) {
	var messagePb pb.Message
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(primaryKey(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &messagePb)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotExists
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toDomainMessage(&messagePb)
}

func (m MessageRepository) ExistsWithKey(key domain.MessageKey) (bool, error) {
	err := m.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(primaryKey(key))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	return err == nil, err
}

// UpdateStatus rewrites the stored record with the new delivery status and
// returns the updated message. The read-modify-write runs inside one badger
// transaction, so concurrent receipts for the same key serialize here even
// before the service-level entity lock is considered.
func (m MessageRepository) UpdateStatus(key domain.MessageKey, status domain.DeliveryStatus) (domain.Message, error) {
	var messagePb pb.Message
	err := m.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(primaryKey(key))
		if err != nil {
			return err
		}
		if err = item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &messagePb)
		}); err != nil {
			return err
		}
		messagePb.Status = int32(status)
		bytes, err := proto.Marshal(&messagePb)
		if err != nil {
			return err
		}
		return txn.Set(primaryKey(key), bytes)
	})
	if err == badger.ErrKeyNotFound {
		return domain.Message{}, errors.ErrMessageNotExists
	}
	if err != nil {
		return domain.Message{}, err
	}
	return toDomainMessage(&messagePb)
}

// GetMessagesOfUser returns every message the user sent or received,
// chronological within each direction. Group messages the user received are
// found through the inbox entries of the groups they belong to, which is the
// caller's concern; this scan covers direct traffic only.
func (m MessageRepository) GetMessagesOfUser(login string) ([]domain.Message, error) {
	sent, err := m.scanPrimary(fmt.Sprintf("msg:%s:", login), nil)
	if err != nil {
		return nil, err
	}
	received, err := m.scanInbox(fmt.Sprintf("inbox:%s:", login))
	if err != nil {
		return nil, err
	}
	return append(sent, received...), nil
}

// GetMessagesBetween returns the conversation between a user and a companion.
// For a group companion the whole group inbox is the conversation; for a user
// companion both directions are merged.
func (m MessageRepository) GetMessagesBetween(user string, companion domain.Participant) ([]domain.Message, error) {
	if companion.IsGroup() {
		return m.scanInbox(fmt.Sprintf("inbox:%s:", companion.Signature))
	}
	outgoing, err := m.scanPrimary(fmt.Sprintf("msg:%s:", user), &companion)
	if err != nil {
		return nil, err
	}
	toUser := domain.Participant{Type: domain.ParticipantUser, Signature: user}
	incoming, err := m.scanPrimary(fmt.Sprintf("msg:%s:", companion.Signature), &toUser)
	if err != nil {
		return nil, err
	}
	return append(outgoing, incoming...), nil
}

// scanPrimary iterates records under a "msg:{sender}:" prefix, optionally
// keeping only those addressed to one companion. Iteration stops once
// limitMessages records have been collected.
func (m MessageRepository) scanPrimary(prefixStr string, onlyTo *domain.Participant) ([]domain.Message, error) {
	var byteMessages [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *m.limitMessages))
				break
			}
			if onlyTo != nil && !keyAddressedTo(string(it.Item().Key()), *onlyTo) {
				continue
			}
			if err := it.Item().Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte(nil), value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.unmarshalAll(byteMessages)
}

// scanInbox resolves inbox index entries back to their primary records.
func (m MessageRepository) scanInbox(prefixStr string) ([]domain.Message, error) {
	var byteMessages [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				break
			}
			var primary []byte
			if err := it.Item().Value(func(value []byte) error {
				primary = append([]byte(nil), value...)
				return nil
			}); err != nil {
				return err
			}
			item, err := txn.Get(primary)
			if err != nil {
				// Index without a record is an invariant violation, not a
				// recoverable miss.
				return fmt.Errorf("dangling inbox entry %s: %w", it.Item().Key(), err)
			}
			if err = item.Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte(nil), value...))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m.unmarshalAll(byteMessages)
}

func (m MessageRepository) unmarshalAll(byteMessages [][]byte) ([]domain.Message, error) {
	var messages []domain.Message
	for _, b := range byteMessages {
		var messagePb pb.Message
		if err := proto.Unmarshal(b, &messagePb); err != nil {
			return nil, err
		}
		message, err := toDomainMessage(&messagePb)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// keyAddressedTo checks the "{to_type}:{to_signature}:" segment of a primary
// key without unmarshalling the record.
func keyAddressedTo(key string, to domain.Participant) bool {
	return strings.Contains(key, fmt.Sprintf(":%s:%s:", to.Type, to.Signature))
}

func fromDomainMessage(message domain.Message) *pb.Message {
	return &pb.Message{
		From:        message.From,
		ToType:      string(message.To.Type),
		ToSignature: message.To.Signature,
		SentAt:      message.SentAt.UnixNano(),
		PacketId:    message.PacketID,
		Subject:     message.Subject,
		Body:        message.Body,
		Status:      int32(message.Status),
	}
}

func toDomainMessage(messagePb *pb.Message) (domain.Message, error) {
	to, err := domain.NewParticipant(domain.ParticipantType(messagePb.ToType), messagePb.ToSignature)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		From:     messagePb.From,
		To:       to,
		SentAt:   time.Unix(0, messagePb.SentAt).UTC(),
		PacketID: messagePb.PacketId,
		Subject:  messagePb.Subject,
		Body:     messagePb.Body,
		Status:   domain.DeliveryStatus(messagePb.Status),
	}, nil
}
