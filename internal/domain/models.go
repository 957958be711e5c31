package domain

// Movement directions as stored in movimientos.tipo.
const (
	MovementIn  = "entrada"
	MovementOut = "salida"
)

type Product struct {
	ID        string `db:"id"`
	Nombre    string `db:"nombre"`
	Cantidad  int    `db:"cantidad"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

// Movement is an append-only ledger row; entries are never updated or deleted.
type Movement struct {
	ID         string `db:"id"`
	ProductoID string `db:"producto_id"`
	Tipo       string `db:"tipo"` // entrada | salida
	Cantidad   int    `db:"cantidad"`
	Fecha      string `db:"fecha"`
}

// Alert flags a product whose on-hand quantity left the normal band.
type Alert struct {
	Tipo     string // bajo | alto
	Nombre   string
	Cantidad int
}

type Suggestion struct {
	Nombre     string
	Sugerencia int
}

type Prediction struct {
	Nombre         string
	PromedioDiario float64
}
