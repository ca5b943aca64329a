package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/errs"
)

// Result is what every api handler produces; Wrapper writes it to the response.
type Result struct {
	Status  int
	Body    any
	Headers map[string]string
	// Err is recorded on the gin context for logging, it is never sent to the client.
	Err error
}

// Error is the body of every 4xx and 5xx response.
type Error struct {
	Message string `json:"message" example:"The id is not valid"`
}

type Func func(ctx *gin.Context) Result

// Wrapper adapts a Func to gin. A nil Body writes the status with no content.
func Wrapper(h Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := h(ctx)
		if r.Err != nil {
			_ = ctx.Error(r.Err)
		}
		for k, v := range r.Headers {
			ctx.Header(k, v)
		}
		if r.Body == nil {
			ctx.Status(r.Status)
			return
		}
		ctx.JSON(r.Status, r.Body)
	}
}

// Fail maps err to a Result by its errs.Kind. Unclassified errors become a
// generic 500 and keep the cause in Result.Err.
func Fail(err error) Result {
	var e *errs.Error
	if !errors.As(err, &e) {
		e = &errs.Error{}
	}
	switch e.Kind {
	case errs.KindValidation:
		return Result{Status: http.StatusBadRequest, Body: Error{Message: e.Message}}
	case errs.KindNotFound:
		return Result{Status: http.StatusNotFound, Body: Error{Message: e.Message}}
	default:
		return Result{
			Status: http.StatusInternalServerError,
			Body:   Error{Message: http.StatusText(http.StatusInternalServerError)},
			Err:    err,
		}
	}
}

// NotFound is the generic not-found response, used for unknown routes and
// for reads of well-formed ids that match nothing.
func NotFound() Result {
	return Result{Status: http.StatusNotFound, Body: Error{Message: http.StatusText(http.StatusNotFound)}}
}

// BadRequest is a 400 with message.
func BadRequest(message string) Result {
	return Result{Status: http.StatusBadRequest, Body: Error{Message: message}}
}

// Location is the URL of the resource id below the current request path.
func Location(ctx *gin.Context, id string) string {
	return strings.TrimSuffix(ctx.Request.URL.Path, "/") + "/" + id
}
