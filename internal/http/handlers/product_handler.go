package handlers

import (
	applog "almacen/internal/log"
	"almacen/internal/repos"
	"almacen/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

// GET /agregar
func (h *ProductHandler) AddForm(c *fiber.Ctx) error {
	return render(c, "agregar_producto", fiber.Map{})
}

// POST /agregar
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	nombre, ok := validate.ProductName(c.FormValue("nombre"))
	if !ok {
		setFlash(c, "Nombre de producto inválido.")
		return c.Redirect("/agregar")
	}
	cantidad, ok := validate.Qty(c.FormValue("cantidad"))
	if !ok {
		setFlash(c, "La cantidad debe ser un número entero.")
		return c.Redirect("/agregar")
	}

	if err := h.Products.Create(uuid.NewString(), nombre, cantidad); err != nil {
		applog.Error(c, "product.create.fail", err, map[string]any{"nombre": nombre})
		setFlash(c, "Ocurrió un error al agregar el producto.")
		return c.Redirect("/dashboard")
	}

	applog.Audit(c, "product.create", map[string]any{"nombre": nombre, "cantidad": cantidad})
	setFlash(c, "Producto agregado exitosamente.")
	return c.Redirect("/dashboard")
}
