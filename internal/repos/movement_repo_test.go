package repos_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"almacen/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	schema := `
	CREATE TABLE productos(id TEXT PRIMARY KEY, nombre TEXT NOT NULL,
	  cantidad INTEGER NOT NULL DEFAULT 0 CHECK (cantidad >= 0),
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP, updated_at TEXT);
	CREATE TABLE movimientos(id TEXT PRIMARY KEY, producto_id TEXT NOT NULL,
	  tipo TEXT NOT NULL, cantidad INTEGER NOT NULL, fecha TEXT NOT NULL);

	INSERT INTO productos(id,nombre,cantidad) VALUES
	  ('cafe','Cafe',10),
	  ('azucar','Azucar',20);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func insertAt(t *testing.T, db *sqlx.DB, id, pid, tipo string, qty, daysAgo int) {
	t.Helper()
	fecha := time.Now().UTC().AddDate(0, 0, -daysAgo).Format(time.RFC3339)
	if _, err := db.Exec(`INSERT INTO movimientos(id,producto_id,tipo,cantidad,fecha) VALUES(?,?,?,?,?)`,
		id, pid, tipo, qty, fecha); err != nil {
		t.Fatal(err)
	}
}

func TestMovementListFilters(t *testing.T) {
	db := memdb(t)
	r := repos.NewMovementRepo(db)

	insertAt(t, db, "m1", "cafe", "entrada", 10, 20)
	insertAt(t, db, "m2", "cafe", "salida", 3, 10)
	insertAt(t, db, "m3", "cafe", "salida", 2, 1)
	insertAt(t, db, "m4", "azucar", "salida", 5, 1)

	all, err := r.List(repos.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("want 4 rows, got %d", len(all))
	}

	cafe, err := r.List(repos.Filter{ProductoID: "cafe"})
	if err != nil {
		t.Fatal(err)
	}
	if len(cafe) != 3 {
		t.Fatalf("want 3 cafe rows, got %d", len(cafe))
	}

	salidas, err := r.List(repos.Filter{ProductoID: "cafe", Tipo: "salida"})
	if err != nil {
		t.Fatal(err)
	}
	if len(salidas) != 2 {
		t.Fatalf("want 2 cafe salidas, got %d", len(salidas))
	}

	since := time.Now().UTC().AddDate(0, 0, -7).Format(time.RFC3339)
	recent, err := r.List(repos.Filter{Tipo: "salida", Since: since})
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("want 2 salidas in window, got %d", len(recent))
	}
}

func TestMovementListRecentOrderAndLimit(t *testing.T) {
	db := memdb(t)
	r := repos.NewMovementRepo(db)

	insertAt(t, db, "old", "cafe", "entrada", 1, 30)
	insertAt(t, db, "mid", "cafe", "salida", 2, 15)
	insertAt(t, db, "new", "azucar", "salida", 3, 1)

	rows, err := r.ListRecent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0].ID != "new" || rows[1].ID != "mid" {
		t.Fatalf("bad order: %+v", rows)
	}
	if rows[0].Nombre != "Azucar" {
		t.Fatalf("want joined product name, got %q", rows[0].Nombre)
	}
}

func TestSumSalida(t *testing.T) {
	db := memdb(t)
	r := repos.NewMovementRepo(db)

	insertAt(t, db, "m1", "cafe", "entrada", 100, 5)
	insertAt(t, db, "m2", "cafe", "salida", 4, 9)
	insertAt(t, db, "m3", "cafe", "salida", 6, 2)

	total, err := r.SumSalida("cafe")
	if err != nil {
		t.Fatal(err)
	}
	if total != 10 {
		t.Fatalf("want lifetime salida 10, got %d", total)
	}

	since := time.Now().UTC().AddDate(0, 0, -7).Format(time.RFC3339)
	windowed, err := r.SumSalidaSince("cafe", since)
	if err != nil {
		t.Fatal(err)
	}
	if windowed != 6 {
		t.Fatalf("want windowed salida 6, got %d", windowed)
	}

	none, err := r.SumSalida("azucar")
	if err != nil {
		t.Fatal(err)
	}
	if none != 0 {
		t.Fatalf("want 0 for product without salidas, got %d", none)
	}
}
