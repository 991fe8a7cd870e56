package handler // handler defines http handlers

import (
	"errors"  // errors provides sentinel values used in getUserID
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/autolight/autolight-analyser/internal/repository" // repository holds data access layer
)

// ArchitectHandler bundles repositories for architects to manage their
// CAD files, rooms, installed fixtures, analyses and report requests.
type ArchitectHandler struct {
	CADFileRepo      *repository.CADFileRepo      // CADFileRepo provides CAD file persistence
	RoomRepo         *repository.RoomRepo         // RoomRepo provides room persistence
	InstallationRepo *repository.InstallationRepo // InstallationRepo provides installation persistence
	CatalogRepo      *repository.CatalogRepo      // CatalogRepo provides catalog lookups
	ReportRepo       *repository.ReportRepo       // ReportRepo provides report persistence
}

// NewArchitectHandler constructs a new ArchitectHandler and panics if a
// required repository is nil.
func NewArchitectHandler(cad *repository.CADFileRepo, rooms *repository.RoomRepo, installations *repository.InstallationRepo, catalog *repository.CatalogRepo, reports *repository.ReportRepo) *ArchitectHandler {
	if cad == nil || rooms == nil || installations == nil || catalog == nil || reports == nil {
		panic("nil repository passed to NewArchitectHandler")
	}
	return &ArchitectHandler{
		CADFileRepo:      cad,
		RoomRepo:         rooms,
		InstallationRepo: installations,
		CatalogRepo:      catalog,
		ReportRepo:       reports,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
