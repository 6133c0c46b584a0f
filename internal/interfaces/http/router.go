package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/usecase"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	CompanyUC *usecase.CompanyUseCase
	UserUC    *usecase.UserUseCase
	Authz     *authz.Service
	Users     repository.UserRepository
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.Authz)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	userHandler := NewUserHandler(deps.UserUC)
	permissionHandler := NewPermissionHandler(deps.Authz, deps.Users)

	// Auth. Login é público; register aceita Bearer opcional porque o
	// primeiro cadastro do sistema acontece sem nenhuma sessão.
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", OptionalAuthMiddleware(deps.JWTSecret), authHandler.Register)

	// Cadastro de empresa também participa do bootstrap.
	api.Post("/companies", OptionalAuthMiddleware(deps.JWTSecret), companyHandler.Create)

	// Rotas protegidas (exigem Bearer Token).
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/me", authHandler.Me)

	companies := protected.Group("/companies")
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id/active", companyHandler.SetActive)

	users := protected.Group("/users")
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/active", userHandler.SetActive)
	users.Get("/:id/permissions", permissionHandler.Get)
	users.Put("/:id/permissions", permissionHandler.Replace)
	users.Post("/:id/permissions/grant", permissionHandler.Grant)
	users.Post("/:id/permissions/revoke", permissionHandler.Revoke)

	// Portais de módulo. Cada grupo só abre para quem carrega o módulo
	// no retrato da sessão; mudanças de concessão pedem novo login.
	modules := protected.Group("/modules")
	for _, m := range entity.AllModules() {
		modules.Get("/"+m.String(), RequireModule(m), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"module": m.String(), "status": "disponível"})
		})
	}
}
