package carterrors

import (
	"net/http"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

var (
	ErrInvalidCartItemID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid cart item id",
		http.StatusBadRequest,
	)

	ErrCartOwnershipMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"cart items do not belong to this user",
		http.StatusBadRequest,
	)
)
