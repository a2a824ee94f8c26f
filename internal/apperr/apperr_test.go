package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory/drive-gateway/internal/apperr"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("tagged error reports its kind", func(t *testing.T) {
		t.Parallel()
		err := apperr.NotFound("file %s not found", "abc")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
		assert.False(t, apperr.Is(err, apperr.KindForbidden))
	})

	t.Run("untagged error reports unknown", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, apperr.KindUnknown, apperr.KindOf(errors.New("boom")))
	})

	t.Run("kind survives wrapping with fmt.Errorf", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", apperr.Forbidden("nope"))
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := apperr.Upstream(cause, "upload %q", "a.png")

	require.ErrorIs(t, err, cause)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Equal(t, `upload "a.png": connection reset`, err.Error())
}

func TestNewWithoutCause(t *testing.T) {
	t.Parallel()

	err := apperr.BadRequest("file extension not allowed: %q", ".exe")
	assert.Equal(t, `file extension not allowed: ".exe"`, err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
