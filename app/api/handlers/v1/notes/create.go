package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/platform/validate"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Create godoc
// @Summary Create a note
// @Description Create a note, title is required
// @Tags Note
// @Accept json
// @Produce json
// @Param note body note.NewNote true "Note to create"
// @Success 201 {object} note.Note
// @Header 201 {string} Location "URL of the created note"
// @Failure 400 {object} handler.Error
// @Router /api/notes [post]
func (h Handlers) Create(ctx *gin.Context) handler.Result {
	body, err := handler.Body(ctx)
	if err != nil {
		return handler.Fail(err)
	}
	if missing, ok := validate.RequireFields(body, "title"); !ok {
		return handler.BadRequest(validate.MissingField(missing))
	}
	title, ok := handler.String(body, "title")
	if !ok {
		return handler.BadRequest(validate.MissingField("title"))
	}
	content, _ := handler.String(body, "content")

	n, err := h.core.Create(ctx.Request.Context(), note.NewNote{Title: title, Content: content})
	if err != nil {
		return handler.Fail(err)
	}

	return handler.Result{
		Status:  http.StatusCreated,
		Body:    n,
		Headers: map[string]string{"Location": handler.Location(ctx, n.ID)},
	}
}
