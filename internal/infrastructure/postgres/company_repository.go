package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementação do porto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository constrói o adaptador de persistência de empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

const companyColumns = `id, name, cnpj, segment, active, created_at, updated_at`

// Create persiste uma nova empresa e preenche o ID atribuído pelo banco.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	query := `
		INSERT INTO companies (name, cnpj, segment, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		company.Name, company.CNPJ, company.Segment, company.Active,
		company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Segment, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByCNPJ obtém uma empresa por CNPJ.
func (r *CompanyRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE cnpj = $1`
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, cnpj).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.Segment, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by CNPJ: %w", err)
	}
	return &c, nil
}

// Update atualiza uma empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	company.UpdatedAt = time.Now()
	query := `
		UPDATE companies SET name = $2, cnpj = $3, segment = $4, active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.CNPJ, company.Segment, company.Active, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// SetActive liga/desliga a empresa. Idempotente: o UPDATE só toca a linha
// quando o valor muda.
func (r *CompanyRepo) SetActive(ctx context.Context, id int64, active bool) error {
	query := `
		UPDATE companies SET active = $2, updated_at = now()
		WHERE id = $1 AND active <> $2`
	_, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("set company active: %w", err)
	}
	return nil
}

// List devolve empresas com paginação, ordenadas por ID.
func (r *CompanyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.CNPJ, &c.Segment, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
