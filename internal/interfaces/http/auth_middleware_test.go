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

	apphttp "github.com/gabrielamnss1/Estoque-Certo/internal/interfaces/http"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	pkgjwt "github.com/gabrielamnss1/Estoque-Certo/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "chave-secreta-para-testes-unitarios"
	testUserID    = int64(1)
	testCompanyID = int64(2)
	testIssuer    = "estoque-certo-test"
	testExpMin    = 60
)

// buildTestApp monta uma aplicação Fiber mínima com AuthMiddleware,
// RequireModule e um handler que devolve 200 expondo o retrato da sessão.
func buildTestApp(module entity.Module) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireModule(module),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":         true,
				"user_id":    apphttp.GetUserID(c),
				"company_id": apphttp.GetCompanyID(c),
				"is_admin":   apphttp.IsAdmin(c),
				"modules":    apphttp.GetModules(c),
			})
		},
	)
	return app
}

// tokenFor gera um JWT com o retrato indicado.
func tokenFor(t *testing.T, isAdmin bool, modules []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, isAdmin, modules, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireModule
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: módulo concedido no token → passa (HTTP 200) com o retrato exposto.
func TestRequireModule_OperadorComModuloPassa(t *testing.T) {
	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, tokenFor(t, false, []string{"operacional"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, float64(testCompanyID), body["company_id"])
	assert.Equal(t, false, body["is_admin"])
}

// Caso 2: módulo fora do conjunto do token → HTTP 403 MODULE_DENIED.
func TestRequireModule_OperadorSemModuloBarrado(t *testing.T) {
	app := buildTestApp(entity.ModuleFinanceiro)
	resp := doRequest(t, app, tokenFor(t, false, []string{"operacional"}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DENIED")
}

// Caso 3: admin passa em qualquer módulo, mesmo sem concessão explícita.
func TestRequireModule_AdminPassaSempre(t *testing.T) {
	for _, m := range entity.AllModules() {
		app := buildTestApp(m)
		resp := doRequest(t, app, tokenFor(t, true, nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "admin deve entrar no módulo %s", m)
		resp.Body.Close()
	}
}

// Caso 4: operador com conjunto vazio (travado) é barrado em todos.
func TestRequireModule_ConjuntoVazioBarrado(t *testing.T) {
	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, tokenFor(t, false, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SemToken(t *testing.T) {
	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sem o prefixo Bearer → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token assinado com outro secret → HTTP 401.
func TestAuthMiddleware_AssinaturaErrada(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-secret", testUserID, testCompanyID, true, nil, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, true, nil, testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp(entity.ModuleOperacional)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func buildOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/open",
		apphttp.OptionalAuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

// Chamada anônima passa com sessão zero.
func TestOptionalAuth_AnonimoPassa(t *testing.T) {
	app := buildOptionalApp()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body["user_id"], "anônimo fica com user_id zero")
}

// Com token válido os locals são carregados normalmente.
func TestOptionalAuth_ComTokenCarregaSessao(t *testing.T) {
	app := buildOptionalApp()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", tokenFor(t, false, []string{"rh"}))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(testUserID), body["user_id"])
}

// Token presente mas inválido é rejeitado mesmo na rota opcional.
func TestOptionalAuth_TokenInvalidoRejeitado(t *testing.T) {
	app := buildOptionalApp()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer lixo")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
