package services

import (
	"math"
	"time"

	"almacen/internal/domain"
	"almacen/internal/repos"
)

// Stock alert thresholds.
const (
	lowStockBelow  = 5
	highStockAbove = 100
)

// consumptionWindow is the flat divisor turning lifetime outbound volume
// into a daily rate. It is a normalization constant, not a count of days
// with actual history.
const consumptionWindow = 30.0

// ForecastService derives restock suggestions, demand predictions and
// stock alerts from the movement ledger. Everything here is read-only and
// recomputed per request; nothing is cached.
type ForecastService struct {
	Products *repos.ProductRepo
	Ledger   *repos.MovementRepo
}

func NewForecastService(products *repos.ProductRepo, ledger *repos.MovementRepo) *ForecastService {
	return &ForecastService{Products: products, Ledger: ledger}
}

// Suggestions projects each product's lifetime consumption rate seven days
// forward and suggests covering the shortfall. Products with no shortfall
// (including products with no outbound history) are excluded.
func (s *ForecastService) Suggestions() ([]domain.Suggestion, error) {
	productos, err := s.Products.List()
	if err != nil {
		return nil, err
	}

	var out []domain.Suggestion
	for _, p := range productos {
		total, err := s.Ledger.SumSalida(p.ID)
		if err != nil {
			return nil, err
		}
		diario := float64(total) / consumptionWindow
		recomendado := int(diario*7 - float64(p.Cantidad))
		if recomendado > 0 {
			out = append(out, domain.Suggestion{Nombre: p.Nombre, Sugerencia: recomendado})
		}
	}
	return out, nil
}

// Predictions averages each product's outbound quantity over the last
// seven days (inclusive lower bound), rounded to two decimals.
func (s *ForecastService) Predictions(now time.Time) ([]domain.Prediction, error) {
	productos, err := s.Products.List()
	if err != nil {
		return nil, err
	}
	since := now.UTC().Add(-7 * 24 * time.Hour).Format(time.RFC3339)

	var out []domain.Prediction
	for _, p := range productos {
		total, err := s.Ledger.SumSalidaSince(p.ID, since)
		if err != nil {
			return nil, err
		}
		promedio := math.Round(float64(total)/7*100) / 100
		out = append(out, domain.Prediction{Nombre: p.Nombre, PromedioDiario: promedio})
	}
	return out, nil
}

// Alerts flags products outside the normal stock band.
func (s *ForecastService) Alerts() ([]domain.Alert, error) {
	productos, err := s.Products.List()
	if err != nil {
		return nil, err
	}

	var out []domain.Alert
	for _, p := range productos {
		switch {
		case p.Cantidad < lowStockBelow:
			out = append(out, domain.Alert{Tipo: "bajo", Nombre: p.Nombre, Cantidad: p.Cantidad})
		case p.Cantidad > highStockAbove:
			out = append(out, domain.Alert{Tipo: "alto", Nombre: p.Nombre, Cantidad: p.Cantidad})
		}
	}
	return out, nil
}
