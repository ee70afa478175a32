package paymenterrors

import (
	"net/http"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

var (
	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"price must be a positive amount",
		http.StatusBadRequest,
	)

	ErrInvalidSettleRequest = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment record",
		http.StatusBadRequest,
	)
)
