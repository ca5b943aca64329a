package lookups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// List godoc
// @Summary List folders or tags
// @Description List every item ordered by name descending
// @Tags Folder, Tag
// @Produce json
// @Success 200 {array} lookup.Item
// @Failure 500 {object} handler.Error
// @Router /api/folders [get]
// @Router /api/tags [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	items, err := h.core.List(ctx.Request.Context())
	if err != nil {
		return handler.Fail(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   items,
	}
}
