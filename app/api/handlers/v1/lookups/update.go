package lookups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Update godoc
// @Summary Rename a folder or tag
// @Description Update an item's name
// @Tags Folder, Tag
// @Accept json
// @Produce json
// @Param id path string true "Item id"
// @Param item body lookup.UpdateItem true "New name"
// @Success 200 {object} lookup.Item
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/folders/{id} [put]
// @Router /api/tags/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	body, err := handler.Body(ctx)
	if err != nil {
		return handler.Fail(err)
	}
	// a missing name is reported by the core, after the id check
	n, _ := name(body)

	item, err := h.core.Update(ctx.Request.Context(), ctx.Param("id"), lookup.UpdateItem{Name: n})
	if err != nil {
		return handler.Fail(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   item,
	}
}
