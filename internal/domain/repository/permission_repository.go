package repository

import (
	"context"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
)

// PermissionRepository define o porto de persistência para Permission.
// Semântica de conjunto: (user_id, module) existe ou não existe.
type PermissionRepository interface {
	// Grant é idempotente: conceder módulo já concedido não é erro.
	Grant(ctx context.Context, userID int64, module entity.Module) error
	// Revoke é no-op quando a concessão não existe.
	Revoke(ctx context.Context, userID int64, module entity.Module) error
	// ListByUser devolve os módulos concedidos, em ordem estável.
	ListByUser(ctx context.Context, userID int64) ([]entity.Module, error)
	// ReplaceForUser troca o conjunto inteiro de uma vez (fluxo
	// "configurar permissões" da gestão de usuários).
	ReplaceForUser(ctx context.Context, userID int64, modules []entity.Module) error
}
