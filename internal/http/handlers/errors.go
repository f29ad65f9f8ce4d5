// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable; clients branch on them rather
// than on messages. Generic codes mirror HTTP status semantics, catalog codes
// name failures the status alone cannot convey.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "conflict",
//	  "message": "category already exists"
//	}
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/media"
	"github.com/tbourn/go-soft-portal/internal/services"
	"github.com/tbourn/go-soft-portal/internal/view"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Catalog-specific:
	ErrCodeValidation        = "validation_failed"
	ErrCodePersistFailed     = "persist_failed"
	ErrCodeInvalidTransition = "invalid_transition"
	ErrCodeUnsupportedMedia  = "unsupported_media"
	ErrCodePayloadTooLarge   = "payload_too_large"
	ErrCodeCanceled          = "request_canceled"
)

// failErr maps a service, view or media error onto the error envelope.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSoftwareNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrCategoryExists),
		errors.Is(err, services.ErrAuthorExists):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, services.ErrInvalidSoftware),
		errors.Is(err, services.ErrInvalidReview),
		errors.Is(err, services.ErrEmptyName),
		errors.Is(err, services.ErrNoMedia),
		errors.Is(err, view.ErrUnknownSubview),
		errors.Is(err, view.ErrEmptySelection):
		fail(c, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, view.ErrInvalidTransition):
		fail(c, http.StatusConflict, ErrCodeInvalidTransition, err.Error())
	case errors.Is(err, media.ErrNotImage):
		fail(c, http.StatusUnsupportedMediaType, ErrCodeUnsupportedMedia, err.Error())
	case errors.Is(err, media.ErrTooLarge):
		fail(c, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fail(c, http.StatusServiceUnavailable, ErrCodeCanceled, "request canceled")
	case errors.Is(err, services.ErrPersist):
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodePersistFailed, "failed to persist catalog")
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
