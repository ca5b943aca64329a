package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/platform/errs"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Get godoc
// @Summary Find a note
// @Description Find a note using its id
// @Tags Note
// @Produce json
// @Param id path string true "Note id"
// @Success 200 {object} note.Note
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [get]
func (h Handlers) Get(ctx *gin.Context) handler.Result {
	n, err := h.core.Find(ctx.Request.Context(), ctx.Param("id"))

	switch {
	case errs.KindOf(err) == errs.KindNotFound:
		return handler.NotFound()
	case err != nil:
		return handler.Fail(err)
	default:
		return handler.Result{
			Status: http.StatusOK,
			Body:   n,
		}
	}
}
