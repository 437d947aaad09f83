package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/auth"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
)

// SessionHandler maneja login, logout y la identidad de la sesión.
type SessionHandler struct {
	uc         *auth.AuthUseCase
	expMinutes int
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *auth.AuthUseCase, expMinutes int) *SessionHandler {
	return &SessionHandler{uc: uc, expMinutes: expMinutes}
}

// Login POST /api/session/login — credenciales → cookie HTTP-only.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	token, user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(time.Duration(h.expMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(user)
}

// Logout POST /api/session/logout — expira la cookie.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// GetLoginUser GET /api/session/getLoginUser — identidad pública del
// usuario logueado (protegido).
func (h *SessionHandler) GetLoginUser(c *fiber.Ctx) error {
	return c.JSON(dto.LoginUserResponse{
		Nombre: GetUserName(c),
		Rol:    GetUserRole(c),
	})
}
