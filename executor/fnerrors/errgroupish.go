package fnerrors

import (
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// ErrGroupish runs functions concurrently and collects every error, where
// errgroup would only keep the first one. Functions are never cancelled.
type ErrGroupish struct {
	wg     sync.WaitGroup
	lock   sync.Mutex
	result *multierror.Error
}

func NewErrGroupIsh() *ErrGroupish {
	return &ErrGroupish{}
}

func (e *ErrGroupish) Run(f func() error) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := f(); err != nil {
			e.lock.Lock()
			e.result = multierror.Append(e.result, err)
			e.lock.Unlock()
		}
	}()
}

// Wait returns the errors of every function, or stops waiting once ctx is done
// and adds ctx's error to those collected so far.
func (e *ErrGroupish) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	var ctxErr error
	select {
	case <-done:
	case <-ctx.Done():
		ctxErr = ctx.Err()
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	result := &multierror.Error{}
	if e.result != nil {
		result.Errors = append(result.Errors, e.result.Errors...)
	}
	if ctxErr != nil {
		result = multierror.Append(result, ctxErr)
	}
	return result.ErrorOrNil()
}
