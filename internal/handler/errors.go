package handler

import (
	"errors"
	"net/http"

	"sellos/internal/logger"
	"sellos/internal/middleware"
	"sellos/internal/service"
	"sellos/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var verr *service.FormValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrActNotFound),
		errors.Is(err, service.ErrPartyNotFound),
		errors.Is(err, service.ErrRegistryNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCUIT),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidEdit),
		errors.Is(err, service.ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err through the response envelope. Failed gate
// conditions are returned in data so the form can highlight them.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	res := response.Error(status, err.Error())

	var verr *service.FormValidationError
	if errors.As(err, &verr) {
		res.Data = gin.H{"failed": verr.Failed}
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log := logger.WithRequestID(c.GetString(middleware.ContextRequestID))
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		res.Error = "internal error"
	}

	c.JSON(status, res)
}
