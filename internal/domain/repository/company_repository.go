package repository

import (
	"context"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
)

// CompanyRepository define o porto de persistência para Company (DIP).
// A implementação vive em infrastructure (postgres ou memory).
type CompanyRepository interface {
	// Create persiste a empresa e preenche company.ID.
	Create(ctx context.Context, company *entity.Company) error
	// GetByID devolve (nil, nil) quando a empresa não existe.
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	// GetByCNPJ devolve (nil, nil) quando não há empresa com o CNPJ.
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// SetActive é idempotente; desativar não cascateia para os usuários.
	SetActive(ctx context.Context, id int64, active bool) error
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
}
