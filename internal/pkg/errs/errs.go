// Package errs wraps cockroachdb/errors so call sites stay decoupled from the
// underlying error library.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err satisfy errors.Is(err, markErr) while keeping its own
// message and stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return nil
	}
	return cr.Mark(err, markErr)
}
