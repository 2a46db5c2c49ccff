package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := Clone(ErrInvariant, "duplicate register number")
	assert.True(t, errors.Is(err, ErrInvariant))
	assert.False(t, errors.Is(err, ErrPersistence))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvariant))
}

func TestErrorMessageIncludesStage(t *testing.T) {
	err := Wrap(errors.New("connection refused"), ErrPersistence.Code, "insert students", "bulk insert rejected")
	assert.Equal(t, "insert students: bulk insert rejected: connection refused", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "connection refused")
}

func TestFromErrorNormalises(t *testing.T) {
	assert.Nil(t, FromError(nil))
	assert.Equal(t, ErrInternal.Code, FromError(errors.New("boom")).Code)
	assert.Same(t, ErrConfigInvalid, FromError(ErrConfigInvalid))
}

func TestWithStage(t *testing.T) {
	staged := WithStage(ErrCredential, "hash")
	assert.Equal(t, "hash", staged.Stage)
	assert.Empty(t, ErrCredential.Stage)
}
