package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// List godoc
// @Summary List notes
// @Description List notes, optionally filtered. searchTerm matches title or content ignoring case, title and content match exactly
// @Tags Note
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring of title or content"
// @Param title query string false "Exact title"
// @Param content query string false "Exact content"
// @Success 200 {array} note.Note
// @Failure 500 {object} handler.Error
// @Router /api/notes [get]
func (h Handlers) List(ctx *gin.Context) handler.Result {
	notes, err := h.core.List(ctx.Request.Context(), note.Filter{
		SearchTerm: ctx.Query("searchTerm"),
		Title:      ctx.Query("title"),
		Content:    ctx.Query("content"),
	})
	if err != nil {
		return handler.Fail(err)
	}

	return handler.Result{
		Status: http.StatusOK,
		Body:   notes,
	}
}
