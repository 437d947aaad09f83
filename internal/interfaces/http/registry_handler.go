package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/registry"
)

// RegistryHandler maneja los listados de caja, auditoría y facturas.
type RegistryHandler struct {
	uc *registry.RegistryUseCase
}

// NewRegistryHandler construye el handler.
func NewRegistryHandler(uc *registry.RegistryUseCase) *RegistryHandler {
	return &RegistryHandler{uc: uc}
}

// Caja GET /api/registros/caja
func (h *RegistryHandler) Caja(c *fiber.Ctx) error {
	list, err := h.uc.Caja(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Auditoria GET /api/registros/auditoria
func (h *RegistryHandler) Auditoria(c *fiber.Ctx) error {
	list, err := h.uc.Auditoria(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// AuditoriaDetalle GET /api/registros/auditorias/detail/:id — fila de
// auditoría con los snapshots abiertos.
func (h *RegistryHandler) AuditoriaDetalle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.AuditoriaDetalle(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Facturas GET /api/registros/facturas — listado unificado de ventas y
// compras.
func (h *RegistryHandler) Facturas(c *fiber.Ctx) error {
	list, err := h.uc.Facturas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// FacturaDetalle GET /api/registros/facturas/detail/:id?facturaType=venta|compra
func (h *RegistryHandler) FacturaDetalle(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.FacturaDetalle(c.Context(), id, c.Query("facturaType"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
