package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementação do porto PermissionRepository sobre PostgreSQL.
// A tabela permissions tem chave primária (user_id, module): semântica de
// conjunto garantida pelo banco.
type PermissionRepo struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository constrói o adaptador de persistência de permissões.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepo {
	return &PermissionRepo{pool: pool}
}

// Grant concede o módulo; ON CONFLICT DO NOTHING torna a operação idempotente.
func (r *PermissionRepo) Grant(ctx context.Context, userID int64, module entity.Module) error {
	query := `
		INSERT INTO permissions (user_id, module)
		VALUES ($1, $2)
		ON CONFLICT (user_id, module) DO NOTHING`
	if _, err := r.pool.Exec(ctx, query, userID, module.String()); err != nil {
		return fmt.Errorf("grant permission: %w", err)
	}
	return nil
}

// Revoke remove a concessão; ausência não é erro.
func (r *PermissionRepo) Revoke(ctx context.Context, userID int64, module entity.Module) error {
	query := `DELETE FROM permissions WHERE user_id = $1 AND module = $2`
	if _, err := r.pool.Exec(ctx, query, userID, module.String()); err != nil {
		return fmt.Errorf("revoke permission: %w", err)
	}
	return nil
}

// ListByUser devolve os módulos concedidos na ordem da enumeração fixa.
func (r *PermissionRepo) ListByUser(ctx context.Context, userID int64) ([]entity.Module, error) {
	query := `SELECT module FROM permissions WHERE user_id = $1`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()

	granted := make(map[entity.Module]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		if m, ok := entity.ParseModule(code); ok {
			granted[m] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var modules []entity.Module
	for _, m := range entity.AllModules() {
		if _, ok := granted[m]; ok {
			modules = append(modules, m)
		}
	}
	return modules, nil
}

// ReplaceForUser troca o conjunto inteiro numa transação.
func (r *PermissionRepo) ReplaceForUser(ctx context.Context, userID int64, modules []entity.Module) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM permissions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear permissions: %w", err)
	}
	for _, m := range modules {
		if _, err := tx.Exec(ctx,
			`INSERT INTO permissions (user_id, module) VALUES ($1, $2) ON CONFLICT (user_id, module) DO NOTHING`,
			userID, m.String()); err != nil {
			return fmt.Errorf("insert permission: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
