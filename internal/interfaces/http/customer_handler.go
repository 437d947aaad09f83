package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *catalog.ClienteUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *catalog.ClienteUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customer
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/customer
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/customer/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	cliente, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(cliente)
}

// Update PUT /api/customer/:id (protegido, auditado)
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateClienteRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente actualizado"})
}

// Hide PATCH /api/customer/:id (protegido, auditado)
func (h *CustomerHandler) Hide(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Hide(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente ocultado"})
}
