package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tripplanner/internal/service"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/catalog", h.GetCatalog)
}

// GetCatalog returns hotels, transport options and guides in one response.
// A fetch failure is an explicit error response; an empty catalog is a 200
// with empty lists. Clients must not conflate the two.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	catalog, err := h.svc.GetCatalog(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, catalog)
}
