package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

var errSample = apperror.New(apperror.CodeNotFound, "thing not found", http.StatusNotFound)

func TestAppError_Is(t *testing.T) {
	t.Run("sentinel_matches_itself", func(t *testing.T) {
		assert.ErrorIs(t, errSample, errSample)
	})

	t.Run("with_cause_still_matches_sentinel", func(t *testing.T) {
		err := errSample.WithCause(errors.New("mongo: no documents in result"))
		assert.ErrorIs(t, err, errSample)
	})

	t.Run("wrapped_copy_matches_sentinel", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", errSample.WithCause(errors.New("boom")))
		assert.ErrorIs(t, err, errSample)
	})

	t.Run("different_message_does_not_match", func(t *testing.T) {
		other := apperror.New(apperror.CodeNotFound, "other thing not found", http.StatusNotFound)
		assert.NotErrorIs(t, other, errSample)
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app_error_maps_through", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errSample)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Equal(t, "thing not found", httpErr.Message)
	})

	t.Run("wrapped_app_error_maps_through", func(t *testing.T) {
		httpErr := apperror.ToHTTP(fmt.Errorf("outer: %w", errSample))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("unknown_error_is_500_without_leaking", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("dial tcp 10.0.0.5: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "internal server error", httpErr.Message)
		assert.NotContains(t, httpErr.Message, "10.0.0.5")
	})
}
