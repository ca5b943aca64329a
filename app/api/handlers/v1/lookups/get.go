package lookups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Get godoc
// @Summary Find a folder or tag
// @Description Find an item using its id
// @Tags Folder, Tag
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} lookup.Item
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/folders/{id} [get]
// @Router /api/tags/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	item, err := h.core.Find(ctx.Request.Context(), ctx.Param("id"))

	switch {
	case errs.KindOf(err) == errs.KindNotFound:
		return handler.NotFound()
	case err != nil:
		return handler.Fail(err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   item,
		}
	}
}
