package services

import (
	"database/sql"
	"errors"

	"almacen/internal/domain"
	"almacen/internal/repos"
)

var (
	ErrBadQuantity       = errors.New("quantity must be positive")
	ErrBadDirection      = errors.New("unknown movement type")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = repos.ErrInsufficientStock
)

// StockService applies movements to product quantities. Each apply commits
// the quantity change and the ledger entry as one unit or not at all.
type StockService struct {
	Ledger *repos.MovementRepo
}

func NewStockService(ledger *repos.MovementRepo) *StockService {
	return &StockService{Ledger: ledger}
}

func (s *StockService) Apply(productID, tipo string, cantidad int) (domain.Product, error) {
	if cantidad <= 0 {
		return domain.Product{}, ErrBadQuantity
	}
	if tipo != domain.MovementIn && tipo != domain.MovementOut {
		return domain.Product{}, ErrBadDirection
	}
	p, err := s.Ledger.Apply(productID, tipo, cantidad)
	if err == sql.ErrNoRows {
		return domain.Product{}, ErrProductNotFound
	}
	return p, err
}
