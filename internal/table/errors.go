package table

import (
	"errors"
	"net/http"
)

// MapError translates table errors to an HTTP status and error code.
func MapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrTableNotFound):
		return http.StatusNotFound, ErrTableNotFound.Error()
	case errors.Is(err, ErrPlayerNotFound):
		return http.StatusNotFound, ErrPlayerNotFound.Error()
	case errors.Is(err, ErrDuplicatePlayer):
		return http.StatusConflict, ErrDuplicatePlayer.Error()
	case errors.Is(err, ErrTableFull):
		return http.StatusConflict, ErrTableFull.Error()
	case errors.Is(err, ErrInvalidAction):
		return http.StatusBadRequest, ErrInvalidAction.Error()
	case errors.Is(err, ErrInvalidAmount):
		return http.StatusBadRequest, ErrInvalidAmount.Error()
	case errors.Is(err, ErrInvalidName):
		return http.StatusBadRequest, ErrInvalidName.Error()
	case errors.Is(err, ErrInvalidConfig):
		return http.StatusBadRequest, ErrInvalidConfig.Error()
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
