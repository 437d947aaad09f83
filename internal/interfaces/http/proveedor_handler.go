package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
)

// ProveedorHandler maneja las peticiones HTTP de proveedores.
type ProveedorHandler struct {
	uc *catalog.ProveedorUseCase
}

// NewProveedorHandler construye el handler.
func NewProveedorHandler(uc *catalog.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{uc: uc}
}

// Create POST /api/proveedor
func (h *ProveedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProveedorRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/proveedor
func (h *ProveedorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/proveedor/:id
func (h *ProveedorHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	proveedor, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proveedor)
}

// ProductosComprados GET /api/proveedor/:id/productos — productos
// comprados históricamente al proveedor.
func (h *ProveedorHandler) ProductosComprados(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	list, err := h.uc.ProductosComprados(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /api/proveedor/:id (protegido, auditado)
func (h *ProveedorHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateProveedorRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor actualizado"})
}

// Hide PATCH /api/proveedor/:id (protegido, auditado)
func (h *ProveedorHandler) Hide(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Hide(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor ocultado"})
}
