package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gestorpyme/gestor-api/internal/interfaces/http"
	pkgjwt "github.com/gestorpyme/gestor-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = int64(42)
	testUserName  = "Carlos"
	testUserRole  = "Administrador"
	testIssuer    = "gestor-api-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta
// protegida que devuelve la identidad cargada en locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   apphttp.GetUserID(c),
			"userName": apphttp.GetUserName(c),
			"userRole": apphttp.GetUserRole(c),
		})
	})
	return app
}

// sessionToken genera un JWT de sesión válido.
func sessionToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testUserRole, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza GET /protected con la cookie de sesión indicada.
func doRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — sesión por cookie HTTP-only
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: cookie válida → pasa y los locals quedan cargados.
func TestAuthMiddleware_CookieValida_CargaIdentidad(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, sessionToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["userId"])
	assert.Equal(t, testUserName, body["userName"])
	assert.Equal(t, testUserRole, body["userRole"])
}

// Caso 2: sin cookie → HTTP 403 MISSING_TOKEN.
func TestAuthMiddleware_SinCookie_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin cookie de sesión el acceso debe cortarse con 403")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 3: token malformado → HTTP 403 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna403(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 4: token firmado con otro secret → HTTP 403.
func TestAuthMiddleware_SecretDistinto_Retorna403(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUserName, testUserRole, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 5: token expirado → HTTP 403.
func TestAuthMiddleware_TokenExpirado_Retorna403(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, testUserRole, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
