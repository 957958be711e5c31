package repos

import (
	"almacen/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(id, nombre string, cantidad int) error {
	_, err := r.db.Exec(`
	  INSERT INTO productos(id,nombre,cantidad,created_at)
	  VALUES(?,?,?,CURRENT_TIMESTAMP)
	`, id, nombre, cantidad)
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, nombre, cantidad, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM productos
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, nombre, cantidad, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM productos
	  ORDER BY LOWER(nombre)
	`)
	return out, err
}
