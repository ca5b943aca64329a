package lookups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Delete godoc
// @Summary Delete a folder or tag
// @Description Delete an item, succeeds whether or not it exists
// @Tags Folder, Tag
// @Param id path string true "Item id"
// @Success 204
// @Failure 400 {object} handler.Error
// @Router /api/folders/{id} [delete]
// @Router /api/tags/{id} [delete]
func (h Handlers) Delete(ctx *gin.Context) handler.Result {
	if err := h.core.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return handler.Fail(err)
	}

	return handler.Result{Status: http.StatusNoContent}
}
