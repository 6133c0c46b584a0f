package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/pkg/jwt"
)

// Locals keys do retrato de sessão no Fiber.
const (
	LocalUserID    = "user_id"
	LocalCompanyID = "company_id"
	LocalIsAdmin   = "is_admin"
	LocalModules   = "modules"
	LocalIssuedAt  = "issued_at"
)

// AuthMiddleware valida o Bearer Token e carrega o retrato da sessão em
// c.Locals. Os módulos vêm do token, não do banco: é isso que congela o
// conjunto de permissões no momento do login.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := parseBearer(c, jwtSecret)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		setSessionLocals(c, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware carrega a sessão quando há Authorization, mas deixa
// passar chamadas anônimas. Usado nas rotas de cadastro, que são abertas
// durante o bootstrap e exigem admin depois — quem decide é o caso de uso.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get("Authorization") == "" {
			return c.Next()
		}
		claims, errResp := parseBearer(c, jwtSecret)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(*errResp)
		}
		setSessionLocals(c, claims)
		return c.Next()
	}
}

func parseBearer(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"}
	}
	return claims, nil
}

func setSessionLocals(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalCompanyID, claims.CompanyID)
	c.Locals(LocalIsAdmin, claims.IsAdmin)
	c.Locals(LocalModules, claims.Modules)
	if claims.IssuedAt != nil {
		c.Locals(LocalIssuedAt, claims.IssuedAt.Time)
	}
}

// GetUserID devolve o UserID do contexto (0 quando anônimo).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetCompanyID devolve o CompanyID do contexto (0 quando anônimo).
func GetCompanyID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalCompanyID).(int64)
	return v
}

// IsAdmin informa se a sessão do contexto é de admin.
func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalIsAdmin).(bool)
	return v
}

// GetModules devolve os módulos congelados no token.
func GetModules(c *fiber.Ctx) []string {
	v, _ := c.Locals(LocalModules).([]string)
	return v
}

// SessionFromLocals reconstrói a sessão do núcleo a partir dos locals.
// Devolve nil quando a chamada é anônima.
func SessionFromLocals(c *fiber.Ctx) *auth.Session {
	userID := GetUserID(c)
	if userID == 0 {
		return nil
	}
	var modules []entity.Module
	for _, code := range GetModules(c) {
		if m, ok := entity.ParseModule(code); ok {
			modules = append(modules, m)
		}
	}
	issuedAt, _ := c.Locals(LocalIssuedAt).(time.Time)
	return &auth.Session{
		UserID:    userID,
		CompanyID: GetCompanyID(c),
		IsAdmin:   IsAdmin(c),
		Modules:   modules,
		IssuedAt:  issuedAt,
	}
}
