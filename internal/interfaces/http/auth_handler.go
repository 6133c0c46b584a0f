package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/usecase"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
)

// AuthHandler trata login e cadastro de usuário.
type AuthHandler struct {
	uc    *auth.UseCase
	authz *authz.Service
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.UseCase, az *authz.Service) *AuthHandler {
	return &AuthHandler{uc: uc, authz: az}
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são obrigatórios"})
	}
	out, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(dto.LoginResponse{
		Token: out.Token,
		User:  *usecase.ToUserResponse(out.User, out.Session.Modules),
	})
}

// Register godoc
// @Summary      Cadastrar usuário
// @Description  Aberto enquanto o sistema não tem nenhum usuário (bootstrap);
// @Description  depois exige Bearer de um admin da mesma empresa.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "company_id, name, email, password, is_admin"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.CompanyID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id, email e password são obrigatórios"})
	}
	user, err := h.uc.Register(c.Context(), GetUserID(c), auth.RegisterInput{
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		IsAdmin:   in.IsAdmin,
	})
	if err != nil {
		return renderError(c, err)
	}
	modules, err := h.authz.EffectiveModules(c.Context(), user)
	if err != nil {
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToUserResponse(user, modules))
}

// Me godoc
// @Summary      Retrato da sessão autenticada
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session := SessionFromLocals(c)
	if session == nil {
		return renderError(c, domain.ErrForbidden)
	}
	return c.JSON(fiber.Map{
		"user_id":    session.UserID,
		"company_id": session.CompanyID,
		"is_admin":   session.IsAdmin,
		"modules":    GetModules(c),
	})
}
