package healthcheck

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Checker reports whether a dependency is reachable.
type Checker func(ctx context.Context) error

type Status struct {
	Status string `json:"status" example:"ok"`
}

// Get godoc
// @Summary Health check
// @Description Reports whether the service can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Failure 503 {object} handler.Error
// @Router /v1/healthcheck [get]
func Get(check Checker) handler.Func {
	return func(ctx *gin.Context) handler.Result {
		if err := check(ctx.Request.Context()); err != nil {
			return handler.Result{
				Status: http.StatusServiceUnavailable,
				Body:   handler.Error{Message: "database unavailable"},
				Err:    err,
			}
		}
		return handler.Result{
			Status: http.StatusOK,
			Body:   Status{Status: "ok"},
		}
	}
}
