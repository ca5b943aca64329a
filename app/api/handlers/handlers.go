package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/noteful-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/noteful-api/app/api/handlers/v1/lookups"
	"github.com/ribgsilva/noteful-api/app/api/handlers/v1/notes"
	"github.com/ribgsilva/noteful-api/business/v1/lookup"
	"github.com/ribgsilva/noteful-api/business/v1/note"
	"github.com/ribgsilva/noteful-api/platform/web/handler"
)

// Cores are the business operations the api routes call.
type Cores struct {
	Notes   note.Core
	Folders lookup.Core
	Tags    lookup.Core
}

func MapDefaults(r *gin.Engine, check healthcheck.Checker) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get(check)))
}

func MapApi(r *gin.Engine, c Cores) {
	api := r.Group("/api")

	n := notes.New(c.Notes)
	api.GET("/notes", handler.Wrapper(n.List))
	api.GET("/notes/:id", handler.Wrapper(n.Get))
	api.POST("/notes", handler.Wrapper(n.Create))
	api.PUT("/notes/:id", handler.Wrapper(n.Update))
	api.DELETE("/notes/:id", handler.Wrapper(n.Delete))

	mapLookup(api.Group("/folders"), lookups.New(c.Folders))
	mapLookup(api.Group("/tags"), lookups.New(c.Tags))

	r.NoRoute(handler.Wrapper(func(*gin.Context) handler.Result {
		return handler.NotFound()
	}))
}

func mapLookup(g *gin.RouterGroup, h lookups.Handlers) {
	g.GET("", handler.Wrapper(h.List))
	g.GET("/:id", handler.Wrapper(h.Get))
	g.POST("", handler.Wrapper(h.Create))
	g.PUT("/:id", handler.Wrapper(h.Update))
	g.DELETE("/:id", handler.Wrapper(h.Delete))
}
