// Package handlers provides HTTP handler implementations for the gateway API.
//
// This file defines the response utilities shared by all endpoints: the
// error envelope, the translation of service errors into HTTP results, and
// success helpers.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "realm not found"
//	}
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/wow-auctions/internal/http/middleware"
	"github.com/tbourn/wow-auctions/internal/services"
)

// ErrorResponse is the standard error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"realm not found"`
}

// fail aborts the request with a structured error. Server errors (>=500) are
// logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail() used by the router for NoRoute and
// NoMethod.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failErr translates a service error:
//
//	ErrRealmNotFound, ErrAuctionFileNotFound -> 404 not_found
//	ErrInvalidInput                          -> 400 bad_request
//	ErrConstraintViolation                   -> 409 conflict
//	anything else                            -> 500 internal_error
//
// Internal errors are logged in full but answered with a generic message.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRealmNotFound), errors.Is(err, services.ErrAuctionFileNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, reason(err, services.ErrInvalidInput))
	case errors.Is(err, services.ErrConstraintViolation):
		fail(c, http.StatusConflict, ErrCodeConflict, "constraint violation")
	default:
		_ = c.Error(err)
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("gateway call failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}

// reason strips the sentinel prefix from a wrapped validation error.
func reason(err, sentinel error) string {
	msg := err.Error()
	if r := strings.TrimPrefix(msg, sentinel.Error()+": "); r != "" {
		return r
	}
	return msg
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
