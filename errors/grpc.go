package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates the domain error taxonomy into a gRPC status.
// Anything unclassified is an internal invariant violation and must not be
// dressed up as a user-facing message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrEmptyPacketID),
		errors.Is(err, ErrIllegalRecipientType),
		errors.Is(err, ErrInvalidRecipient),
		errors.Is(err, ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, ErrGroupNotExists),
		errors.Is(err, ErrMessageNotExists),
		errors.Is(err, ErrRecipientDoesNotExist),
		errors.Is(err, ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, ErrGroupAlreadyExists),
		errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, ErrIllegalGroupRecipient),
		errors.Is(err, ErrIllegalGroupAccess),
		errors.Is(err, ErrIllegalStatus):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())

	case errors.Is(err, ErrLockTimeout):
		return status.Error(codes.Unavailable, err.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
