package notes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// updatable lists the fields a PUT may change, anything else in the body is ignored.
var updatable = []string{"title", "content"}

// Update godoc
// @Summary Update a note
// @Description Partially update a note. The body id must match the path id, only title and content are applied
// @Tags Note
// @Accept json
// @Param id path string true "Note id"
// @Param note body note.UpdateNote true "Fields to update"
// @Success 204
// @Failure 400 {object} handler.Error
// @Failure 404 {object} handler.Error
// @Router /api/notes/{id} [put]
func (h Handlers) Update(ctx *gin.Context) handler.Result {
	body, err := handler.Body(ctx)
	if err != nil {
		return handler.Fail(err)
	}

	u := note.UpdateNote{}
	u.ID, _ = handler.String(body, "id")
	for _, field := range updatable {
		v, present := body[field]
		if !present {
			continue
		}
		s, _ := v.(string)
		switch field {
		case "title":
			u.Title = &s
		case "content":
			u.Content = &s
		}
	}

	if _, err := h.core.Update(ctx.Request.Context(), ctx.Param("id"), u); err != nil {
		return handler.Fail(err)
	}

	return handler.Result{Status: http.StatusNoContent}
}
