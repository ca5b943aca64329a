package lookups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/platform/validate"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Create godoc
// @Summary Create a folder or tag
// @Description Create an item, name is required and unique
// @Tags Folder, Tag
// @Accept json
// @Produce json
// @Param item body lookup.NewItem true "Item to create"
// @Success 201 {object} lookup.Item
// @Header 201 {string} Location "URL of the created item"
// @Failure 400 {object} handler.Error
// @Router /api/folders [post]
// @Router /api/tags [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	body, err := handler.Body(ctx)
	if err != nil {
		return handler.Fail(err)
	}
	n, ok := name(body)
	if !ok {
		return handler.BadRequest(validate.MissingField("name"))
	}

	item, err := h.core.Create(ctx.Request.Context(), lookup.NewItem{Name: n})
	if err != nil {
		return handler.Fail(err)
	}

	return handler.Result{
		Status:  http.StatusCreated,
		Body:    item,
		Headers: map[string]string{"Location": handler.Location(ctx, item.ID)},
	}
}
