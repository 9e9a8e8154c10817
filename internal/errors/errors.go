// Package errors wraps github.com/go-errors/errors so every error that leaves
// this module carries the stack of the call that created it.
package errors

import (
	"errors"

	errorsGo "github.com/go-errors/errors"
)

var ErrUnsupported = errors.ErrUnsupported

type Error = errorsGo.Error

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func As(err error, target any) bool { return errorsGo.As(err, target) }

// New returns nil for nil, and keeps the original stack of an error that
// already carries one.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	if errGo, ok := obj.(*errorsGo.Error); ok {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

// Wrap prefixes err with the name of the operation that failed.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return errorsGo.WrapPrefix(err, op, 1)
}

func Join(errs ...error) error {
	if err := errors.Join(errs...); err != nil {
		return errorsGo.Wrap(err, 1)
	}
	return nil
}

// Stack returns the stack trace recorded for err, or "" if it has none.
func Stack(err error) string {
	var errGo *errorsGo.Error
	if errorsGo.As(err, &errGo) {
		return errGo.ErrorStack()
	}
	return ""
}
