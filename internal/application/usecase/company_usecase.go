package usecase

import (
	"context"
	"strings"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

// CompanyUseCase aplica as regras de negócio de empresas.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	authz     *authz.Service
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência.
func NewCompanyUseCase(companies repository.CompanyRepository, az *authz.Service) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, authz: az}
}

// Create cadastra uma empresa. Livre enquanto o sistema está no estado de
// bootstrap (nenhum usuário existe); depois exige um admin autenticado.
func (uc *CompanyUseCase) Create(ctx context.Context, actorID int64, in dto.CreateCompanyRequest) (*entity.Company, error) {
	bootstrapped, err := uc.authz.Bootstrapped(ctx)
	if err != nil {
		return nil, err
	}
	if bootstrapped {
		if actorID == 0 {
			return nil, domain.ErrForbidden
		}
		if _, err := uc.authz.RequireAdmin(ctx, actorID); err != nil {
			return nil, err
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	cnpj := strings.TrimSpace(in.CNPJ)
	if !validCNPJ(cnpj) {
		return nil, domain.ErrInvalidCNPJ
	}
	if existing, err := uc.companies.GetByCNPJ(ctx, cnpj); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrCNPJAlreadyExists
	}

	company := &entity.Company{
		Name:    name,
		CNPJ:    cnpj,
		Segment: strings.TrimSpace(in.Segment),
		Active:  true,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID obtém uma empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return ToCompanyResponse(company), nil
}

// List devolve empresas com paginação.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.companies.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *ToCompanyResponse(c))
	}
	return out, nil
}

// SetActive liga/desliga a empresa: só admin ativo da PRÓPRIA empresa, nos
// dois sentidos. Não existe super-admin neste núcleo; um admin de outra
// empresa nunca atravessa a fronteira de tenant, nem para reativar.
// Desativar NÃO cascateia para os registros dos usuários: apenas bloqueia o
// login deles, checado pelo gerente de sessão.
func (uc *CompanyUseCase) SetActive(ctx context.Context, actorID, companyID int64, active bool) error {
	actor, err := uc.authz.RequireAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	if actor.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.companies.SetActive(ctx, companyID, active)
}

// validCNPJ aceita exatamente 14 dígitos numéricos.
func validCNPJ(cnpj string) bool {
	if len(cnpj) != 14 {
		return false
	}
	for _, r := range cnpj {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ToCompanyResponse converte a entidade para o DTO de saída.
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		Segment:   c.Segment,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
