package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("load: %w", Wrap(cause, CodeInternal, "failed to load"))

	assert.ErrorIs(t, err, cause)
	de, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, CodeInternal, de.Code)
	assert.Equal(t, "failed to load", de.Message)
	assert.Equal(t, "internal_error: failed to load: connection reset", de.Error())
}

func TestHasCode(t *testing.T) {
	err := New(CodeNotFound, "Donation not found")
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeInternal))
	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
}

func TestIsComparesCodeAndMessage(t *testing.T) {
	err := Wrap(errors.New("x"), CodeUnauthorized, "Invalid OTP")
	assert.ErrorIs(t, err, New(CodeUnauthorized, "Invalid OTP"))
	assert.NotErrorIs(t, err, New(CodeUnauthorized, "OTP expired"))
}
