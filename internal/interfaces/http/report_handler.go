package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/reports"
	"github.com/gestorpyme/gestor-api/internal/domain"
)

// ReportHandler maneja los informes de solo lectura.
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// rangoFechas lee startDate y endDate (YYYY-MM-DD), ambos obligatorios.
func rangoFechas(c *fiber.Ctx) (time.Time, time.Time, error) {
	desde, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	hasta, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return desde, hasta, nil
}

// Sales GET /api/report/sales?startDate=&endDate=
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	desde, hasta, err := rangoFechas(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Sales(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Inventory GET /api/report/inventory?startDate=&endDate=
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	desde, hasta, err := rangoFechas(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Inventory(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Debt GET /api/report/debt
func (h *ReportHandler) Debt(c *fiber.Ctx) error {
	resp, err := h.uc.Debt(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Purchases GET /api/report/purchase
func (h *ReportHandler) Purchases(c *fiber.Ctx) error {
	resp, err := h.uc.Purchases(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// CashFlow GET /api/report/cashflow?fecha=&periodo=dia|mes|año
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	fecha, err := time.Parse("2006-01-02", c.Query("fecha"))
	if err != nil {
		return respondError(c, domain.ErrInvalidInput)
	}
	periodo, err := reports.ParsePeriodo(c.Query("periodo"), fecha)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.CashFlow(c.Context(), periodo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Audit GET /api/report/audit?startDate=&endDate=
func (h *ReportHandler) Audit(c *fiber.Ctx) error {
	desde, hasta, err := rangoFechas(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Audit(c.Context(), desde, hasta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
