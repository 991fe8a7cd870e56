package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/autolight/autolight-analyser/internal/handler"    // architect handlers
	"github.com/autolight/autolight-analyser/internal/middleware" // JWT + role middlewares
	"github.com/autolight/autolight-analyser/internal/model"      // role constants
)

// RegisterArchitect registers ARCHITECT-scoped endpoints under /v1.
// All routes require a valid JWT and ARCHITECT role.
func RegisterArchitect(e *echo.Echo, h *handler.ArchitectHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleArchitect),
	)

	// ---- CAD files ----
	g.POST("/cad-files", h.CreateCADFile)
	g.GET("/cad-files", h.ListCADFiles)
	g.GET("/cad-files/:id", h.GetCADFile)
	g.PATCH("/cad-files/:id/status", h.UpdateCADFileStatus)
	g.DELETE("/cad-files/:id", h.DeleteCADFile)

	// ---- Rooms ----
	g.POST("/cad-files/:id/rooms", h.CreateRoom)
	g.GET("/cad-files/:id/rooms", h.ListRooms)
	g.GET("/rooms/:id", h.GetRoom)
	g.PUT("/rooms/:id", h.UpdateRoom)
	g.PATCH("/rooms/:id", h.UpdateRoom) // allow partial updates via PATCH as well
	g.DELETE("/rooms/:id", h.DeleteRoom)

	// ---- Fixture installations ----
	g.POST("/rooms/:id/installations", h.CreateInstallation)
	g.GET("/rooms/:id/installations", h.ListInstallations)
	g.PATCH("/installations/:id", h.UpdateInstallation)
	g.DELETE("/installations/:id", h.DeleteInstallation)

	// ---- Illuminance analysis ----
	g.GET("/rooms/:id/illuminance", h.AnalyseRoom)
	g.GET("/cad-files/:id/analysis", h.AnalyseCADFile)

	// ---- Reports ----
	g.POST("/cad-files/:id/reports", h.CreateReport)
	g.GET("/cad-files/:id/reports", h.ListReports)
}
