// Package fault classifies failures into the kinds the bot reports to users
// and logs. Each user-visible error carries exactly one kind.
package fault

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind names a failure category.
type Kind string

const (
	Config     Kind = "config"
	Access     Kind = "access"
	Validation Kind = "validation"
	Extraction Kind = "extraction"
	Download   Kind = "download"
	Delivery   Kind = "delivery"
)

// MaxUserMessageLen bounds the cause text shown to users.
const MaxUserMessageLen = 100

// Error is an error tagged with a Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with the given kind. Returns nil if err is nil.
func New(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Errorf builds a kinded error from a format string.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap annotates err with a message and tags it with the given kind.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

// KindOf reports the kind of err, or the zero Kind when untagged.
func KindOf(err error) Kind {
	var fe *Error
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// UserMessage renders err as a bounded string suitable for a chat message.
// The cause text is truncated to MaxUserMessageLen runes.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	var fe *Error
	if stderrors.As(err, &fe) {
		msg = fe.Err.Error()
	}
	return Truncate(msg, MaxUserMessageLen)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
