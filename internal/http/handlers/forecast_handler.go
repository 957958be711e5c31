package handlers

import (
	"time"

	applog "almacen/internal/log"
	"almacen/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ForecastHandler struct {
	Forecast *services.ForecastService
}

// GET /prediccion — average daily demand per product over the last 7 days.
func (h *ForecastHandler) Prediccion(c *fiber.Ctx) error {
	predicciones, err := h.Forecast.Predictions(time.Now())
	if err != nil {
		applog.Error(c, "forecast.predictions.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "prediccion", fiber.Map{"Predicciones": predicciones})
}
