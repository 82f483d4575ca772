package fnerrors

import "errors"

// persistentError marks work that will fail the same way if attempted again.
type persistentError struct {
	err error
}

func NewPersistentError(err error) error {
	if err == nil {
		panic("err is nil")
	}
	return &persistentError{err: err}
}

func (p *persistentError) Unwrap() error {
	return p.err
}

func (p *persistentError) Error() string {
	return p.err.Error()
}

func (p *persistentError) Is(target error) bool {
	_, ok := target.(*persistentError)
	return ok
}

func IsPersistentError(err error) bool {
	return errors.Is(err, &persistentError{})
}

func NewRetryable(err error) error {
	if err == nil {
		panic("err is nil")
	}
	return &retryable{err: err}
}

type retryable struct {
	err error
}

func (r *retryable) Error() string {
	return "Should retry: " + r.err.Error()
}

func (r *retryable) Is(target error) bool {
	_, ok := target.(*retryable)
	return ok
}

func (r *retryable) Unwrap() error {
	return r.err
}

// IsRetryable is true for errors explicitly marked retryable. Persistent errors are never retryable.
func IsRetryable(err error) bool {
	return errors.Is(err, &retryable{}) && !IsPersistentError(err)
}
