package handlers

import (
	applog "almacen/internal/log"
	"almacen/internal/repos"
	"almacen/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Products *repos.ProductRepo
	Forecast *services.ForecastService
}

// GET /dashboard
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	productos, err := h.Products.List()
	if err != nil {
		applog.Error(c, "dashboard.products.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	alertas, err := h.Forecast.Alerts()
	if err != nil {
		applog.Error(c, "dashboard.alerts.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	recomendaciones, err := h.Forecast.Suggestions()
	if err != nil {
		applog.Error(c, "dashboard.suggestions.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "dashboard", fiber.Map{
		"Productos":       productos,
		"Alertas":         alertas,
		"Recomendaciones": recomendaciones,
	})
}
