package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	t.Parallel()

	detailed := ErrPersistenceFailed.WithDetails("write timed out")

	assert.True(t, stderrors.Is(detailed, ErrPersistenceFailed))
	assert.Equal(t, "write timed out", detailed.Details())
	assert.Equal(t, http.StatusInternalServerError, detailed.HTTPCode())
}

func TestBaseError_WrappedMatchesSentinel(t *testing.T) {
	t.Parallel()

	wrapped := errors.Wrap(ErrProductNotFound.WithDetails("doc absent"), "product lookup failed")

	assert.True(t, stderrors.Is(wrapped, ErrProductNotFound))

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestBaseError_DistinctSentinelsDoNotMatch(t *testing.T) {
	t.Parallel()

	assert.False(t, stderrors.Is(ErrProductNotFound, ErrOrderNotFound))
	assert.False(t, stderrors.Is(ErrPersistenceFailed.WithDetails("x"), ErrStorageUnavailable))
	assert.False(t, stderrors.Is(ErrProductNotFound, stderrors.New("product not found")))
}
