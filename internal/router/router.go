package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/autolight/autolight-analyser/internal/handler"    // import the handlers that implement business logic
	"github.com/autolight/autolight-analyser/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/autolight/autolight-analyser/internal/model"      // role constants
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token; refresh-access reuses it and
	// only issues a new access token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT middleware: the handler accepts either
	// an Authorization header or a refresh_token body.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleArchitect, model.RoleVendor, model.RoleAdmin))
	auth.GET("/me", a.Me)

	// Alias so clients can call either /v1/auth/logout or /v1/logout.
	e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated catalog endpoints on the
// provided Echo instance.  The extra middlewares (response cache, rate
// limiter) are applied to this group only: catalog data is read-mostly
// and safe to serve from cache, unlike the architect CRUD surface.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mws ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mws...)
	// Whole catalog with efficiency scores
	g.GET("/catalog", p.GetCatalog)
	// Single fixture by CAD symbol name
	g.GET("/catalog/:symbol", p.GetCatalogFixture)
	// Budget-tier recommendations relative to a reference fixture
	g.GET("/catalog/:symbol/recommendations", p.GetRecommendations)
	// Supported room types and their standard illuminance levels
	g.GET("/room-types", p.GetRoomTypes)
}
