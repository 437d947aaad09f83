package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
)

// TransactionsHandler maneja las dos operaciones que mueven dinero:
// compra a proveedor y cobranza de cliente. Ambas protegidas: el id del
// usuario logueado queda en el libro de caja.
type TransactionsHandler struct {
	purchaseUC   *transactions.PurchaseUseCase
	collectionUC *transactions.CollectionUseCase
}

// NewTransactionsHandler construye el handler.
func NewTransactionsHandler(purchaseUC *transactions.PurchaseUseCase, collectionUC *transactions.CollectionUseCase) *TransactionsHandler {
	return &TransactionsHandler{purchaseUC: purchaseUC, collectionUC: collectionUC}
}

// Purchase POST /api/transactions/purchase
func (h *TransactionsHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.purchaseUC.Execute(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Collection POST /api/transactions/collectionAndBilling
func (h *TransactionsHandler) Collection(c *fiber.Ctx) error {
	var in dto.CollectionRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.collectionUC.Execute(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}
