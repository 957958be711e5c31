package handlers

import (
	"almacen/internal/repos"
	"almacen/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	ProductHandler   *ProductHandler
	MovementHandler  *MovementHandler
	ForecastHandler  *ForecastHandler
}

func NewDeps(db *sqlx.DB, auth *services.AuthService) *Deps {
	prodRepo := repos.NewProductRepo(db)
	movRepo := repos.NewMovementRepo(db)

	stockSvc := services.NewStockService(movRepo)
	forecastSvc := services.NewForecastService(prodRepo, movRepo)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: auth},
		DashboardHandler: &DashboardHandler{Products: prodRepo, Forecast: forecastSvc},
		ProductHandler:   &ProductHandler{Products: prodRepo},
		MovementHandler:  &MovementHandler{Products: prodRepo, Ledger: movRepo, Stock: stockSvc},
		ForecastHandler:  &ForecastHandler{Forecast: forecastSvc},
	}
}
