package menuerrors

import (
	"net/http"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/apperror"
)

var (
	ErrMenuItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"menu item not found",
		http.StatusNotFound,
	)

	ErrInvalidMenuItemID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid menu item id",
		http.StatusBadRequest,
	)
)
