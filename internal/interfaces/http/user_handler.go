package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/application/users"
	"github.com/gestorpyme/gestor-api/internal/domain"
)

// UserHandler maneja las peticiones HTTP de usuarios del sistema.
type UserHandler struct {
	uc *users.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *users.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/user
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// List GET /api/user
func (h *UserHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/user/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	u, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(u)
}

// Update PUT /api/user/:id (protegido, auditado)
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateUsuarioRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario actualizado"})
}

// Hide PATCH /api/user/:id (protegido, auditado)
func (h *UserHandler) Hide(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Hide(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "usuario ocultado"})
}

// RequestPasswordReset GET /api/user/passwordReset?email= — emite y
// entrega un token de recuperación.
func (h *UserHandler) RequestPasswordReset(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	if err := h.uc.RequestPasswordReset(c.Context(), email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "token de recuperación enviado"})
}

// ResetPassword PATCH /api/user/passwordReset — consume el token y
// cambia la contraseña.
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.PasswordChangeRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	if err := h.uc.ResetPassword(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
