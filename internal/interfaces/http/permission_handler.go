package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

// PermissionHandler expõe a gestão de concessões de módulo.
type PermissionHandler struct {
	authz *authz.Service
	users repository.UserRepository
}

// NewPermissionHandler constrói o handler de permissões.
func NewPermissionHandler(az *authz.Service, users repository.UserRepository) *PermissionHandler {
	return &PermissionHandler{authz: az, users: users}
}

// Get godoc
// @Summary      Módulos efetivos de um usuário
// @Description  O próprio usuário pode consultar o seu conjunto; outro
// @Description  usuário só via admin ativo da mesma empresa.
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID do usuário"
// @Success      200  {object}  dto.PermissionsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/permissions [get]
func (h *PermissionHandler) Get(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	actorID := GetUserID(c)

	var target *entity.User
	if int64(targetID) == actorID {
		target, err = h.users.GetByID(c.Context(), actorID)
		if err != nil {
			return renderError(c, err)
		}
		if target == nil {
			return renderError(c, domain.ErrUserNotFound)
		}
	} else {
		target, err = h.authz.RequireSameCompanyAdmin(c.Context(), actorID, int64(targetID))
		if err != nil {
			return renderError(c, err)
		}
	}

	modules, err := h.authz.EffectiveModules(c.Context(), target)
	if err != nil {
		return renderError(c, err)
	}
	codes := make([]string, len(modules))
	for i, m := range modules {
		codes[i] = m.String()
	}
	return c.JSON(dto.PermissionsResponse{
		UserID:  target.ID,
		IsAdmin: target.IsAdmin,
		Modules: codes,
	})
}

// Grant godoc
// @Summary      Conceder um módulo
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "ID do usuário alvo"
// @Param        body  body  dto.GrantRequest true  "module"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/permissions/grant [post]
func (h *PermissionHandler) Grant(c *fiber.Ctx) error {
	targetID, module, err := h.parseTarget(c)
	if err != nil {
		return renderError(c, err)
	}
	if err := h.authz.Grant(c.Context(), GetUserID(c), targetID, module); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Revoke godoc
// @Summary      Revogar um módulo
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "ID do usuário alvo"
// @Param        body  body  dto.GrantRequest true  "module"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/permissions/revoke [post]
func (h *PermissionHandler) Revoke(c *fiber.Ctx) error {
	targetID, module, err := h.parseTarget(c)
	if err != nil {
		return renderError(c, err)
	}
	if err := h.authz.Revoke(c.Context(), GetUserID(c), targetID, module); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Replace godoc
// @Summary      Substituir o conjunto de módulos do usuário
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                            true  "ID do usuário alvo"
// @Param        body  body  dto.ReplacePermissionsRequest  true  "modules"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/permissions [put]
func (h *PermissionHandler) Replace(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ReplacePermissionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	modules := make([]entity.Module, 0, len(in.Modules))
	for _, code := range in.Modules {
		m, ok := entity.ParseModule(code)
		if !ok {
			return renderError(c, domain.ErrInvalidModule)
		}
		modules = append(modules, m)
	}
	if err := h.authz.Configure(c.Context(), GetUserID(c), int64(targetID), modules); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PermissionHandler) parseTarget(c *fiber.Ctx) (int64, entity.Module, error) {
	targetID, err := c.ParamsInt("id")
	if err != nil {
		return 0, "", domain.ErrUserNotFound
	}
	var in dto.GrantRequest
	if err := c.BodyParser(&in); err != nil {
		return 0, "", domain.ErrInvalidModule
	}
	module, ok := entity.ParseModule(in.Module)
	if !ok {
		return 0, "", domain.ErrInvalidModule
	}
	return int64(targetID), module, nil
}
