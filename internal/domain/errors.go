package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking. Every *Error unwraps to exactly
// one of them, selected by its Kind.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotAuthorized   = errors.New("not authorized")
	ErrServer          = errors.New("server error")
	ErrValidation      = errors.New("validation error")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Kind classifies a domain failure. The set is closed; transports map each
// kind to a status code.
type Kind string

const (
	KindNotFound        Kind = "NotFound"
	KindAlreadyExists   Kind = "AlreadyExists"
	KindInvalidArgument Kind = "InvalidArgument"
	KindNotAuthorized   Kind = "NotAuthorized"
	KindServer          Kind = "ServerError"
	KindValidation      Kind = "ValidationError"
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindAlreadyExists:
		return ErrAlreadyExists
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindNotAuthorized:
		return ErrNotAuthorized
	case KindValidation:
		return ErrValidation
	default:
		return ErrServer
	}
}

// Error is a classified domain failure carrying a stable machine-readable
// code and a human-readable message.
//
// The code is Entity + Field + Kind, e.g. "TaskNotFound" or
// "UserPhoneAlreadyExists". Field is empty unless the failure concerns a
// single attribute of the entity.
type Error struct {
	Kind    Kind
	Entity  string
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Code() + ": " + e.Message
}

// Unwrap returns the sentinel matching the error's Kind so that callers can
// use errors.Is(err, domain.ErrNotFound) and friends.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// Code returns the stable machine-readable error code.
func (e *Error) Code() string {
	return e.Entity + e.Field + string(e.Kind)
}

func newError(kind Kind, entity, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(entity, format string, args ...any) *Error {
	return newError(KindNotFound, entity, "", format, args...)
}

// AlreadyExists reports a uniqueness violation on the entity as a whole.
func AlreadyExists(entity, format string, args ...any) *Error {
	return newError(KindAlreadyExists, entity, "", format, args...)
}

// FieldAlreadyExists reports a uniqueness violation on one attribute.
func FieldAlreadyExists(entity, field, format string, args ...any) *Error {
	return newError(KindAlreadyExists, entity, field, format, args...)
}

// InvalidArgument reports a request that is well-formed but not applicable
// to the current state.
func InvalidArgument(entity, format string, args ...any) *Error {
	return newError(KindInvalidArgument, entity, "", format, args...)
}

// NotAuthorized reports a policy denial.
func NotAuthorized(entity, format string, args ...any) *Error {
	return newError(KindNotAuthorized, entity, "", format, args...)
}

// KindOf classifies any error. Errors that carry no domain classification
// (driver failures, canceled contexts) are reported as KindServer.
func KindOf(err error) Kind {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return KindValidation
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadyExists):
		return KindAlreadyExists
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrNotAuthorized):
		return KindNotAuthorized
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindServer
	}
}

// CodeOf returns the machine-readable code of err, falling back to the bare
// kind when err is not a *Error.
func CodeOf(err error) string {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code()
	}
	return string(KindOf(err))
}

// IsDomain reports whether err carries a domain classification. Errors that
// are not domain errors indicate an infrastructure failure.
func IsDomain(err error) bool {
	return err != nil && KindOf(err) != KindServer
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
