package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a business-rule or storage failure.
type Kind string

const (
	MissingField      Kind = "MissingField"
	InvalidEnum       Kind = "InvalidEnum"
	InvalidDate       Kind = "InvalidDate"
	InvalidAmount     Kind = "InvalidAmount"
	NegativeValue     Kind = "NegativeValue"
	InvalidEmail      Kind = "InvalidEmail"
	DuplicateUser     Kind = "DuplicateUser"
	DuplicateItem     Kind = "DuplicateItem"
	UserNotFound      Kind = "UserNotFound"
	WrongPassword     Kind = "WrongPassword"
	NotFound          Kind = "NotFound"
	NoUpdatesProvided Kind = "NoUpdatesProvided"
	ItemNotFound      Kind = "ItemNotFound"
	InsufficientStock Kind = "InsufficientStock"
	PurchaseCancelled Kind = "PurchaseCancelled"
	StorageError      Kind = "StorageError"
)

// Error is the result every core operation returns on failure.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind that keeps cause for errors.Unwrap.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Storage wraps an unexpected persistence failure.
func Storage(cause error) *Error {
	return Wrap(StorageError, "storage operation failed", cause)
}

// KindOf returns the kind carried by err, or StorageError for foreign errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageError
}

var (
	ErrMissingField      = New(MissingField, "required field is missing")
	ErrInvalidEnum       = New(InvalidEnum, "value is not one of the allowed values")
	ErrInvalidDate       = New(InvalidDate, "invalid date format, use YYYY-MM-DD")
	ErrInvalidAmount     = New(InvalidAmount, "amount must be greater than zero")
	ErrNegativeValue     = New(NegativeValue, "value must be non-negative")
	ErrInvalidEmail      = New(InvalidEmail, "invalid email address")
	ErrDuplicateUser     = New(DuplicateUser, "username or email already exists")
	ErrDuplicateItem     = New(DuplicateItem, "inventory item already exists")
	ErrUserNotFound      = New(UserNotFound, "user not found")
	ErrWrongPassword     = New(WrongPassword, "incorrect password")
	ErrNotFound          = New(NotFound, "record not found")
	ErrNoUpdatesProvided = New(NoUpdatesProvided, "no updates provided")
	ErrItemNotFound      = New(ItemNotFound, "item not found")
	ErrInsufficientStock = New(InsufficientStock, "not enough stock available")
	ErrPurchaseCancelled = New(PurchaseCancelled, "payment not confirmed, purchase not done")
	ErrStorage           = New(StorageError, "storage operation failed")
)
