package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
)

// RequireModule devolve um middleware Fiber que barra a entrada no módulo de
// negócio quando a sessão não o tem no conjunto efetivo. Deve ser usado
// DEPOIS de AuthMiddleware (precisa dos locals).
//
// A decisão usa SÓ o retrato do token: admin passa sempre; não-admin passa se
// o módulo estava concedido no momento do login. Concessões feitas depois do
// login só valem num novo login.
//
//   - 401 → sessão ausente (AuthMiddleware deveria ter barrado antes).
//   - 403 → módulo fora do conjunto efetivo da sessão.
func RequireModule(module entity.Module) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sessão não encontrada no token",
			})
		}
		if IsAdmin(c) {
			return c.Next()
		}
		for _, code := range GetModules(c) {
			if code == module.String() {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "MODULE_DENIED",
			Message: "sem permissão para o módulo '" + module.String() + "'",
		})
	}
}
