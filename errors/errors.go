package errors

import "fmt"

// Validation failures. Rejected before any mutation and surfaced verbatim.
var (
	ErrInvalidSignature     = fmt.Errorf("empty participant signature")
	ErrEmptyPacketID        = fmt.Errorf("empty message packet id")
	ErrIllegalRecipientType = fmt.Errorf("illegal message recipient type")
	ErrInvalidRecipient     = fmt.Errorf("invalid message recipient")
)

// Not-found failures.
var (
	ErrGroupNotExists        = fmt.Errorf("group does not exist")
	ErrMessageNotExists      = fmt.Errorf("message does not exist")
	ErrRecipientDoesNotExist = fmt.Errorf("recipient does not exist")
	ErrUserNotFound          = fmt.Errorf("user not found")
)

// Conflict failures.
var (
	ErrGroupAlreadyExists    = fmt.Errorf("group already exists")
	ErrIllegalGroupRecipient = fmt.Errorf("sender does not belong to the recipient group")
	ErrIllegalGroupAccess    = fmt.Errorf("user does not belong to the group")
	ErrIllegalStatus         = fmt.Errorf("illegal delivery status transition")
	ErrUserAlreadyExists     = fmt.Errorf("user already exists")
)

// Transient failures. The whole unit of work is safe to retry.
var (
	ErrLockTimeout = fmt.Errorf("timed out acquiring entity access")
)

// Auth failures.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
)
