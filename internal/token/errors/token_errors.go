package tokenerrors

import (
	"net/http"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

// The middleware collapses both verify failures into one uniform 401 body,
// so callers cannot tell a forged token from a stale one. The distinction
// only exists internally for logging and tests.
var (
	ErrTokenInvalid = apperror.New(
		apperror.CodeUnauthorized,
		"invalid token",
		http.StatusUnauthorized,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"token expired",
		http.StatusUnauthorized,
	)

	ErrSigningFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to sign token",
		http.StatusInternalServerError,
	)
)
