package common

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrorKindTransactionRejected     ErrorKind = "TransactionRejected"
	ErrorKindPersistence             ErrorKind = "PersistenceError"
	ErrorKindVerificationUnavailable ErrorKind = "VerificationUnavailable"
	ErrorKindSettlementFailed        ErrorKind = "SettlementFailed"
	ErrorKindUnauthenticated         ErrorKind = "Unauthenticated"
	ErrorKindUnauthorized            ErrorKind = "Unauthorized"
	ErrorKindValidation              ErrorKind = "ValidationError"
	ErrorKindNotFound                ErrorKind = "NotFound"
	ErrorKindInternal                ErrorKind = "Internal"
)

// GenericErrorMessage is what users see for anything that is not their fault.
const GenericErrorMessage = "Something went wrong"

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Err == nil
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

var (
	ErrTransactionRejected     = &Error{Kind: ErrorKindTransactionRejected}
	ErrPersistence             = &Error{Kind: ErrorKindPersistence}
	ErrVerificationUnavailable = &Error{Kind: ErrorKindVerificationUnavailable}
	ErrSettlementFailed        = &Error{Kind: ErrorKindSettlementFailed}
	ErrUnauthenticated         = &Error{Kind: ErrorKindUnauthenticated}
	ErrUnauthorized            = &Error{Kind: ErrorKindUnauthorized}
	ErrValidation              = &Error{Kind: ErrorKindValidation}
	ErrNotFound                = &Error{Kind: ErrorKindNotFound}
)

// KindOf returns the kind of the first *Error in the chain, or ErrorKindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKindInternal
}

// UserMessage is the text safe to show to an end user.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return GenericErrorMessage
	}
	switch e.Kind {
	case ErrorKindValidation, ErrorKindNotFound:
		return e.Message
	case ErrorKindUnauthenticated:
		return "You must be logged in"
	case ErrorKindUnauthorized:
		return "You are not allowed to do this"
	case ErrorKindTransactionRejected:
		return "Transaction was rejected"
	case ErrorKindSettlementFailed:
		return "Transaction failed"
	default:
		return GenericErrorMessage
	}
}
