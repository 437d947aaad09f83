package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/remitos"
)

// RemitoHandler maneja las peticiones HTTP de remitos.
type RemitoHandler struct {
	uc *remitos.RemitoUseCase
}

// NewRemitoHandler construye el handler.
func NewRemitoHandler(uc *remitos.RemitoUseCase) *RemitoHandler {
	return &RemitoHandler{uc: uc}
}

// Create POST /api/remitos — alta transaccional con descuento de stock.
func (h *RemitoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRemitoRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/remitos
func (h *RemitoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// ByCliente GET /api/remitos/byClient/:clientId — remitos impagos del
// cliente con su deuda total.
func (h *RemitoHandler) ByCliente(c *fiber.Ctx) error {
	clienteID, err := paramID(c, "clientId")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.ByCliente(c.Context(), clienteID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/remitos/:id — remito con sus líneas.
func (h *RemitoHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
