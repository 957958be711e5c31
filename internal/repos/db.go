package repos

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (products + movement history)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure demo users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Products
CREATE TABLE IF NOT EXISTS productos(
  id TEXT PRIMARY KEY,
  nombre TEXT NOT NULL,
  cantidad INTEGER NOT NULL DEFAULT 0 CHECK (cantidad >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_productos_nombre ON productos(LOWER(nombre));

-- Movement ledger (append-only; rows are never updated or deleted)
CREATE TABLE IF NOT EXISTS movimientos(
  id TEXT PRIMARY KEY,
  producto_id TEXT NOT NULL REFERENCES productos(id) ON DELETE RESTRICT,
  tipo TEXT NOT NULL CHECK (tipo IN ('entrada','salida')),
  cantidad INTEGER NOT NULL CHECK (cantidad > 0),
  fecha TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_movimientos_producto ON movimientos(producto_id);
CREATE INDEX IF NOT EXISTS idx_movimientos_fecha    ON movimientos(fecha);

-- Sessions
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM productos`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products and movement history")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO productos(id,nombre,cantidad) VALUES
	  ('prod-cafe','Cafe molido 500g',40),
	  ('prod-azucar','Azucar 1kg',3),
	  ('prod-harina','Harina 1kg',150)`)

	// A little history so the dashboard has something to chew on.
	now := time.Now().UTC()
	mv := func(pid, tipo string, qty, daysAgo int) {
		tx.MustExec(`INSERT INTO movimientos(id,producto_id,tipo,cantidad,fecha) VALUES(?,?,?,?,?)`,
			uuid.NewString(), pid, tipo, qty,
			now.AddDate(0, 0, -daysAgo).Format(time.RFC3339))
	}
	mv("prod-cafe", "entrada", 60, 20)
	mv("prod-cafe", "salida", 12, 9)
	mv("prod-cafe", "salida", 8, 2)
	mv("prod-azucar", "entrada", 10, 15)
	mv("prod-azucar", "salida", 7, 4)

	return tx.Commit()
}

// seedUsers ensures a demo account exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	h, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO users(id,email,password_hash)
		VALUES(?,?,?)
		ON CONFLICT(email) DO NOTHING
	`, "u-demo", "demo@almacen.test", string(h)); err != nil {
		return err
	}

	return tx.Commit()
}
