package services_test

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"almacen/internal/repos"
	"almacen/internal/services"
)

func addMovement(t *testing.T, db *sqlx.DB, id, productID, tipo string, cantidad int, fecha time.Time) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO movimientos(id,producto_id,tipo,cantidad,fecha) VALUES(?,?,?,?,?)`,
		id, productID, tipo, cantidad, fecha.UTC().Format(time.RFC3339)); err != nil {
		t.Fatal(err)
	}
}

func newForecast(db *sqlx.DB) *services.ForecastService {
	return services.NewForecastService(repos.NewProductRepo(db), repos.NewMovementRepo(db))
}

func TestSuggestions(t *testing.T) {
	db := memdb(t)
	now := time.Now()
	// 30 units of lifetime consumption -> 1/day -> 7 needed, 2 on hand -> suggest 5
	addProduct(t, db, "cafe", "Cafe", 2)
	addMovement(t, db, "m1", "cafe", "salida", 18, now.AddDate(0, -2, 0))
	addMovement(t, db, "m2", "cafe", "salida", 12, now.AddDate(0, 0, -3))
	// no outbound history -> never suggested
	addProduct(t, db, "azucar", "Azucar", 10)
	// consumption covered by stock -> not suggested
	addProduct(t, db, "harina", "Harina", 50)
	addMovement(t, db, "m3", "harina", "salida", 30, now.AddDate(0, 0, -1))

	sug, err := newForecast(db).Suggestions()
	if err != nil {
		t.Fatal(err)
	}
	if len(sug) != 1 {
		t.Fatalf("want exactly one suggestion, got %+v", sug)
	}
	if sug[0].Nombre != "Cafe" || sug[0].Sugerencia != 5 {
		t.Fatalf("want Cafe=5, got %+v", sug[0])
	}
}

func TestPredictionsSevenDayWindow(t *testing.T) {
	db := memdb(t)
	now := time.Now()
	// 14 units 3 days ago -> round(14/7, 2) = 2.0
	addProduct(t, db, "cafe", "Cafe", 5)
	addMovement(t, db, "m1", "cafe", "salida", 14, now.AddDate(0, 0, -3))
	// outbound outside the window is ignored
	addMovement(t, db, "m2", "cafe", "salida", 70, now.AddDate(0, 0, -10))
	// inbound never counts as demand
	addMovement(t, db, "m3", "cafe", "entrada", 7, now.AddDate(0, 0, -1))
	// quiet product -> 0
	addProduct(t, db, "azucar", "Azucar", 5)

	preds, err := newForecast(db).Predictions(now)
	if err != nil {
		t.Fatal(err)
	}
	byName := map[string]float64{}
	for _, p := range preds {
		byName[p.Nombre] = p.PromedioDiario
	}
	if byName["Cafe"] != 2.0 {
		t.Fatalf("want Cafe avg 2.0, got %v", byName["Cafe"])
	}
	if byName["Azucar"] != 0 {
		t.Fatalf("want Azucar avg 0, got %v", byName["Azucar"])
	}
	if len(preds) != 2 {
		t.Fatalf("want one prediction per product, got %+v", preds)
	}
}

func TestAlerts(t *testing.T) {
	db := memdb(t)
	addProduct(t, db, "bajo", "Casi agotado", 3)
	addProduct(t, db, "alto", "Sobrestock", 150)
	addProduct(t, db, "ok", "Normal", 50)

	alerts, err := newForecast(db).Alerts()
	if err != nil {
		t.Fatal(err)
	}
	if len(alerts) != 2 {
		t.Fatalf("want 2 alerts, got %+v", alerts)
	}
	for _, a := range alerts {
		switch a.Nombre {
		case "Casi agotado":
			if a.Tipo != "bajo" || a.Cantidad != 3 {
				t.Fatalf("bad low alert: %+v", a)
			}
		case "Sobrestock":
			if a.Tipo != "alto" || a.Cantidad != 150 {
				t.Fatalf("bad high alert: %+v", a)
			}
		default:
			t.Fatalf("unexpected alert: %+v", a)
		}
	}
}
