package repos

import (
	"database/sql"
	"errors"
	"time"

	"almacen/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrInsufficientStock signals an outbound movement larger than the
// on-hand quantity. Nothing is committed when it is returned.
var ErrInsufficientStock = errors.New("insufficient stock")

type MovementRepo struct{ db *sqlx.DB }

func NewMovementRepo(db *sqlx.DB) *MovementRepo { return &MovementRepo{db: db} }

// Row used by the movements page (ledger entry + product name)
type MovementRow struct {
	ID       string `db:"id"`
	Nombre   string `db:"nombre"`
	Tipo     string `db:"tipo"`
	Cantidad int    `db:"cantidad"`
	Fecha    string `db:"fecha"`
}

// Filter narrows List; zero values mean "any".
type Filter struct {
	ProductoID string
	Tipo       string
	Since      string // RFC3339 lower bound on fecha, inclusive
}

const productCols = `id, nombre, cantidad, created_at, COALESCE(updated_at,'') AS updated_at`

// Apply records one movement and adjusts the product quantity in a single
// transaction: either both rows land or neither does. Outbound updates are
// guarded by "cantidad >= ?" so two racing outbounds cannot both spend the
// same stock; the loser matches zero rows and rolls back.
func (r *MovementRepo) Apply(productID, tipo string, cantidad int) (domain.Product, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Product{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Product
	if err := tx.Get(&p, `SELECT `+productCols+` FROM productos WHERE id=?`, productID); err != nil {
		return domain.Product{}, err
	}

	var res sql.Result
	if tipo == domain.MovementOut {
		res, err = tx.Exec(`
			UPDATE productos
			SET cantidad = cantidad - ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ? AND cantidad >= ?
		`, cantidad, productID, cantidad)
	} else {
		res, err = tx.Exec(`
			UPDATE productos
			SET cantidad = cantidad + ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, cantidad, productID)
	}
	if err != nil {
		return domain.Product{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Product{}, ErrInsufficientStock
	}

	if _, err := tx.Exec(`
		INSERT INTO movimientos(id,producto_id,tipo,cantidad,fecha)
		VALUES(?,?,?,?,?)
	`, uuid.NewString(), productID, tipo, cantidad, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return domain.Product{}, err
	}

	if err := tx.Get(&p, `SELECT `+productCols+` FROM productos WHERE id=?`, productID); err != nil {
		return domain.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// ListRecent returns the newest entries with product names for display.
func (r *MovementRepo) ListRecent(limit int) ([]MovementRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []MovementRow
	err := r.db.Select(&out, `
		SELECT m.id, p.nombre, m.tipo, m.cantidad, m.fecha
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		ORDER BY datetime(m.fecha) DESC
		LIMIT ?
	`, limit)
	return out, err
}

// List returns ledger entries matching the filter, newest first.
func (r *MovementRepo) List(f Filter) ([]domain.Movement, error) {
	where := `1=1`
	args := []any{}
	if f.ProductoID != "" {
		where += ` AND producto_id = ?`
		args = append(args, f.ProductoID)
	}
	if f.Tipo != "" {
		where += ` AND tipo = ?`
		args = append(args, f.Tipo)
	}
	if f.Since != "" {
		where += ` AND fecha >= ?`
		args = append(args, f.Since)
	}

	var out []domain.Movement
	err := r.db.Select(&out, `
		SELECT id, producto_id, tipo, cantidad, fecha
		FROM movimientos
		WHERE `+where+`
		ORDER BY datetime(fecha) DESC
	`, args...)
	return out, err
}

// SumSalida totals all outbound quantity ever recorded for a product.
func (r *MovementRepo) SumSalida(productID string) (int, error) {
	var total int
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(cantidad),0)
		FROM movimientos
		WHERE producto_id = ? AND tipo = 'salida'
	`, productID)
	return total, err
}

// SumSalidaSince totals outbound quantity on or after the given RFC3339 instant.
func (r *MovementRepo) SumSalidaSince(productID, since string) (int, error) {
	var total int
	err := r.db.Get(&total, `
		SELECT COALESCE(SUM(cantidad),0)
		FROM movimientos
		WHERE producto_id = ? AND tipo = 'salida' AND fecha >= ?
	`, productID, since)
	return total, err
}
