package handlers

import (
	"errors"

	applog "almacen/internal/log"
	"almacen/internal/repos"
	"almacen/internal/services"
	"almacen/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type MovementHandler struct {
	Products *repos.ProductRepo
	Ledger   *repos.MovementRepo
	Stock    *services.StockService
}

// GET /movimientos — movement form + the last 50 ledger entries.
func (h *MovementHandler) Page(c *fiber.Ctx) error {
	productos, err := h.Products.List()
	if err != nil {
		applog.Error(c, "movements.products.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	movimientos, err := h.Ledger.ListRecent(50)
	if err != nil {
		applog.Error(c, "movements.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return render(c, "movimientos", fiber.Map{
		"Productos":   productos,
		"Movimientos": movimientos,
	})
}

// POST /movimientos
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	tipo, ok := validate.Direction(c.FormValue("tipo"))
	if !ok {
		setFlash(c, "Tipo de movimiento inválido.")
		return c.Redirect("/movimientos")
	}
	productoID, ok := validate.ID(c.FormValue("producto_id"))
	if !ok {
		setFlash(c, "Producto no encontrado")
		return c.Redirect("/movimientos")
	}
	cantidad, ok := validate.MovementQty(c.FormValue("cantidad"))
	if !ok {
		setFlash(c, "La cantidad debe ser un número entero positivo.")
		return c.Redirect("/movimientos")
	}

	_, err := h.Stock.Apply(productoID, tipo, cantidad)
	switch {
	case err == nil:
		applog.Audit(c, "movement.apply", map[string]any{"producto": productoID, "tipo": tipo, "cantidad": cantidad})
		setFlash(c, "Movimiento registrado.")
	case errors.Is(err, services.ErrProductNotFound):
		setFlash(c, "Producto no encontrado")
	case errors.Is(err, services.ErrInsufficientStock):
		applog.Info(c, "movement.insufficient", map[string]any{"producto": productoID, "cantidad": cantidad})
		setFlash(c, "Cantidad insuficiente en stock.")
	default:
		applog.Error(c, "movement.apply.fail", err, map[string]any{"producto": productoID})
		setFlash(c, "Error al registrar el movimiento.")
	}
	return c.Redirect("/movimientos")
}
