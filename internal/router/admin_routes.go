package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/autolight/autolight-analyser/internal/handler"
	"github.com/autolight/autolight-analyser/internal/middleware"
	"github.com/autolight/autolight-analyser/internal/model"
)

// RegisterAdmin registers catalog maintenance endpoints under
// /v1/admin.  All routes require a valid JWT and ADMIN role.  Reading
// the catalog is public; only mutations live here.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	g.POST("/catalog", h.CreateCatalogFixture)
	g.PATCH("/catalog/:id", h.UpdateCatalogFixture)
	g.DELETE("/catalog/:id", h.DeleteCatalogFixture)
}
