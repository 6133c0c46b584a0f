package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/tenant"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/usecase"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
)

// UserHandler expõe listagem e gestão de usuários do tenant.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários da empresa da sessão
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de itens"
// @Param        offset  query  int  false  "deslocamento"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	session := SessionFromLocals(c)
	if session == nil {
		return renderError(c, domain.ErrForbidden)
	}
	f := tenant.FromSession(session).Apply(tenant.Filter{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	})
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar usuário por ID dentro do tenant
// @Description  Usuários de outra empresa resultam em 404, nunca em 403.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID do usuário"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	session := SessionFromLocals(c)
	if session == nil {
		return renderError(c, domain.ErrForbidden)
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), tenant.FromSession(session), int64(id))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Ativar ou desativar usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                   true  "ID do usuário"
// @Param        body  body  dto.SetActiveRequest  true  "active"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/active [put]
func (h *UserHandler) SetActive(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.SetActiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), GetUserID(c), int64(id), in.Active); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
