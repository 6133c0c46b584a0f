// Package authz implementa o motor de autorização: conjunto efetivo de
// módulos, consultas de acesso pontuais e a gestão de concessões com a
// fronteira de tenant aplicada à própria superfície de gestão.
package authz

import (
	"context"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

// Service avalia permissões. É o único ponto da aplicação que conhece a
// regra "admin tem todos os módulos".
type Service struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	perms     repository.PermissionRepository
}

// NewService constrói o motor de autorização.
func NewService(users repository.UserRepository, companies repository.CompanyRepository, perms repository.PermissionRepository) *Service {
	return &Service{users: users, companies: companies, perms: perms}
}

// Bootstrapped informa se o sistema já saiu do estado inicial.
// Enquanto não existe nenhum usuário, cadastro de empresa e do primeiro
// usuário são livres; a partir do primeiro usuário a transição é permanente
// e todo cadastro passa a exigir um admin autenticado.
func (s *Service) Bootstrapped(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EffectiveModules devolve o conjunto de módulos acessíveis ao usuário:
// a enumeração completa para admin, senão as concessões explícitas.
// Conjunto vazio para não-admin é válido (usuário travado, condição
// reportável, não erro).
func (s *Service) EffectiveModules(ctx context.Context, user *entity.User) ([]entity.Module, error) {
	if user.IsAdmin {
		return entity.AllModules(), nil
	}
	return s.perms.ListByUser(ctx, user.ID)
}

// CanAccess responde se o usuário pode entrar no módulo AGORA: módulo no
// conjunto efetivo E usuário ativo E empresa ativa.
func (s *Service) CanAccess(ctx context.Context, user *entity.User, module entity.Module) (bool, error) {
	if !user.Active {
		return false, nil
	}
	company, err := s.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return false, err
	}
	if company == nil || !company.Active {
		return false, nil
	}
	modules, err := s.EffectiveModules(ctx, user)
	if err != nil {
		return false, err
	}
	for _, m := range modules {
		if m == module {
			return true, nil
		}
	}
	return false, nil
}

// Grant concede um módulo ao usuário alvo. Idempotente: conceder duas vezes
// produz o mesmo conjunto efetivo. Conceder a um admin é sucesso vazio — ele
// já tem tudo.
func (s *Service) Grant(ctx context.Context, actorID, targetID int64, module entity.Module) error {
	target, err := s.RequireSameCompanyAdmin(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if target.IsAdmin {
		return nil
	}
	return s.perms.Grant(ctx, targetID, module)
}

// Revoke remove uma concessão; ausência é no-op.
func (s *Service) Revoke(ctx context.Context, actorID, targetID int64, module entity.Module) error {
	target, err := s.RequireSameCompanyAdmin(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if target.IsAdmin {
		return nil
	}
	return s.perms.Revoke(ctx, targetID, module)
}

// Configure troca o conjunto inteiro de módulos do alvo de uma vez
// (fluxo "configurar permissões" da gestão de usuários).
func (s *Service) Configure(ctx context.Context, actorID, targetID int64, modules []entity.Module) error {
	target, err := s.RequireSameCompanyAdmin(ctx, actorID, targetID)
	if err != nil {
		return err
	}
	if target.IsAdmin {
		return nil
	}
	return s.perms.ReplaceForUser(ctx, targetID, modules)
}

// RequireSameCompanyAdmin carrega ator e alvo e aplica a fronteira de tenant
// da superfície de gestão: só um admin ativo da MESMA empresa do alvo pode
// mexer nas permissões dele. O ator é sempre recarregado do repositório, não
// confiamos no retrato da sessão para atos de gestão.
func (s *Service) RequireSameCompanyAdmin(ctx context.Context, actorID, targetID int64) (*entity.User, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.IsAdmin || !actor.Active {
		return nil, domain.ErrForbidden
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if target.CompanyID != actor.CompanyID {
		return nil, domain.ErrForbidden
	}
	return target, nil
}

// RequireAdmin verifica que o ator é um admin ativo (cadastros pós-bootstrap).
func (s *Service) RequireAdmin(ctx context.Context, actorID int64) (*entity.User, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.IsAdmin || !actor.Active {
		return nil, domain.ErrForbidden
	}
	return actor, nil
}
