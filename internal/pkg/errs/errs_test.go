//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"volume-discount-admin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
		assert.NoError(t, errs.Wrapf(nil, "context %d", 1))
	})

	t.Run("message is prefixed and cause is kept", func(t *testing.T) {
		cause := errors.New("ECONNRESET")
		err := errs.Wrap(cause, "graphql request")

		require.Error(t, err)
		assert.Equal(t, "graphql request: ECONNRESET", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrShopNotInstalled, errs.Mark(nil, errs.ErrShopNotInstalled))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		cause := errors.New("shop mismatch")
		err := errs.Mark(cause, errs.ErrShopNotInstalled)

		assert.True(t, errs.Is(err, errs.ErrShopNotInstalled))
		assert.Equal(t, "shop mismatch", err.Error())
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("boom"), 2)
	require.Len(t, lines, 2)
	assert.Equal(t, "boom", lines[0])
}
