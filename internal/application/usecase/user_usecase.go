package usecase

import (
	"context"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/tenant"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

// UserUseCase aplica as regras de negócio de usuários já cadastrados
// (o cadastro em si vive em application/auth por causa da regra de bootstrap).
type UserUseCase struct {
	users repository.UserRepository
	authz *authz.Service
}

// NewUserUseCase constrói o caso de uso com o porto de persistência.
func NewUserUseCase(users repository.UserRepository, az *authz.Service) *UserUseCase {
	return &UserUseCase{users: users, authz: az}
}

// List devolve os usuários visíveis ao escopo, com o conjunto efetivo de
// módulos de cada um. O filtro de tenant já veio aplicado: o CompanyID do
// Filter é o da sessão, não o do chamador.
func (uc *UserUseCase) List(ctx context.Context, f tenant.Filter) ([]dto.UserResponse, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	users, err := uc.users.ListByCompany(ctx, f.CompanyID, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		modules, err := uc.authz.EffectiveModules(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, *ToUserResponse(u, modules))
	}
	return out, nil
}

// GetByID obtém um usuário visível ao escopo da sessão.
func (uc *UserUseCase) GetByID(ctx context.Context, scope tenant.Scope, id int64) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || u.CompanyID != scope.CompanyID {
		// Usuário de outra empresa rende o mesmo "não encontrado" —
		// a partição alheia é invisível, não proibida.
		return nil, domain.ErrUserNotFound
	}
	modules, err := uc.authz.EffectiveModules(ctx, u)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u, modules), nil
}

// SetActive liga/desliga um usuário: só admin da mesma empresa. Desativar
// revoga o acesso preservando o histórico (nunca há exclusão física).
func (uc *UserUseCase) SetActive(ctx context.Context, actorID, userID int64, active bool) error {
	if _, err := uc.authz.RequireSameCompanyAdmin(ctx, actorID, userID); err != nil {
		return err
	}
	return uc.users.SetActive(ctx, userID, active)
}

// ToUserResponse converte a entidade para o DTO de saída, marcando a
// condição reportável de usuário travado (não-admin sem nenhum módulo).
func ToUserResponse(u *entity.User, modules []entity.Module) *dto.UserResponse {
	if u == nil {
		return nil
	}
	codes := make([]string, len(modules))
	for i, m := range modules {
		codes[i] = m.String()
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Active:    u.Active,
		LastLogin: u.LastLogin,
		Modules:   codes,
		LockedOut: !u.IsAdmin && len(modules) == 0,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
