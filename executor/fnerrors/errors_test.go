package fnerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"
	"gotest.tools/assert"
)

func TestRetryableSurvivesWrapping(t *testing.T) {
	base := errors.New("connection reset")
	err := pkgerrors.Wrap(NewRetryable(base), "upload failed")
	assert.Assert(t, IsRetryable(err))
	assert.Assert(t, !IsPersistentError(err))
	assert.Assert(t, errors.Is(err, base))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Assert(t, IsRetryable(wrapped))
}

func TestPersistentIsNotRetryable(t *testing.T) {
	err := NewPersistentError(NewRetryable(errors.New("bad request")))
	assert.Assert(t, IsPersistentError(err))
	assert.Assert(t, !IsRetryable(err))
	assert.Assert(t, !IsRetryable(errors.New("plain")))
}

func TestErrGroupishCollectsAll(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := NewErrGroupIsh()
	group.Run(func() error { return errors.New("first") })
	group.Run(func() error { return nil })
	group.Run(func() error { return errors.New("second") })

	err := group.Wait(ctx)
	assert.ErrorContains(t, err, "first")
	assert.ErrorContains(t, err, "second")
}

func TestErrGroupishNoErr(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := NewErrGroupIsh()
	group.Run(func() error {
		return nil
	})

	assert.NilError(t, group.Wait(ctx))
}

func TestErrGroupishContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	group := NewErrGroupIsh()
	group.Run(func() error {
		time.Sleep(time.Second)
		return nil
	})

	err := group.Wait(ctx)
	assert.ErrorContains(t, err, context.DeadlineExceeded.Error())
}
