package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-soft-portal/internal/domain"
	"github.com/tbourn/go-soft-portal/internal/http/middleware"
)

// ErrorResponse is the body of every non-2xx response:
//
//	HTTP/1.1 409 Conflict
//	{
//	  "request_id": "7d0c3a52-5b0e-4c0f-9d55-1c7e2f1b8a10",
//	  "code": "invalid_transition",
//	  "message": "invalid view transition: select requires the catalog view"
//	}
//
// Clients branch on Code; Message is for display.
type ErrorResponse struct {
	// Echo of X-Request-ID
	RequestID string `json:"request_id,omitempty" example:"7d0c3a52-5b0e-4c0f-9d55-1c7e2f1b8a10"`
	// One of the ErrCode* constants
	Code string `json:"code" example:"not_found"`
	// Safe to show to users; never carries storage errors
	Message string `json:"message" example:"software not found"`
}

// fail aborts with the error envelope. 5xx responses are logged through the
// request logger together with the cause recorded via c.Error, since the
// client only ever sees the generic message.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("route", c.FullPath())
		if last := c.Errors.Last(); last != nil {
			ev = ev.Err(last.Err)
		}
		ev.Msg(msg)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail lets the router answer NoRoute/NoMethod with the same envelope.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// entry writes a single software entry with its logo resolved for display.
func entry(c *gin.Context, status int, s domain.Software) {
	c.JSON(status, present(s))
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
