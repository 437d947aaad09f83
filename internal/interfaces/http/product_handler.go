package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *catalog.ProductoUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *catalog.ProductoUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/products?soloListos=true — con soloListos solo los
// vendibles (precio de venta y stock positivos).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), c.QueryBool("soloListos"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	producto, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(producto)
}

// ControlStockMinimo GET /api/products/minimumStockControl
func (h *ProductHandler) ControlStockMinimo(c *fiber.Ctx) error {
	control, err := h.uc.ControlStockMinimo(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(control)
}

// Update PUT /api/products/:id (protegido, auditado; nunca toca stock)
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProductoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto actualizado"})
}

// Hide PATCH /api/products/:id (protegido, auditado)
func (h *ProductHandler) Hide(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Hide(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto ocultado"})
}
