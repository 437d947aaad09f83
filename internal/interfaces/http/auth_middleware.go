package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/pkg/jwt"
)

// CookieName cookie HTTP-only que transporta el token de sesión.
const CookieName = "access_token"

// Locals keys para la identidad del usuario en Fiber.
const (
	LocalUserID   = "userId"
	LocalUserName = "userName"
	LocalUserRole = "userRole"
)

// AuthMiddleware valida el JWT de la cookie de sesión e inyecta la
// identidad del usuario en c.Locals. Cookie ausente o token inválido
// cortan con 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		}
		userID, userName, userRole, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, userName)
		c.Locals(LocalUserRole, userRole)
		return c.Next()
	}
}

// GetUserID devuelve el id del usuario logueado (después del middleware).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUserName devuelve el nombre del usuario logueado.
func GetUserName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserName).(string)
	return v
}

// GetUserRole devuelve el rol del usuario logueado.
func GetUserRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserRole).(string)
	return v
}
