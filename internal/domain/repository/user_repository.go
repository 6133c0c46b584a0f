package repository

import (
	"context"
	"time"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
// Emails são armazenados e consultados sempre em minúsculas; a comparação
// case-insensitive acontece aqui, não nos casos de uso.
type UserRepository interface {
	// Create persiste o usuário e preenche user.ID.
	Create(ctx context.Context, user *entity.User) error
	// GetByID devolve (nil, nil) quando o usuário não existe.
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail normaliza o email para minúsculas antes de consultar.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// SetActive é idempotente.
	SetActive(ctx context.Context, id int64, active bool) error
	// UpdateLastLogin grava o carimbo do último login bem-sucedido.
	UpdateLastLogin(ctx context.Context, id int64, t time.Time) error
	// ListByCompany restringe à partição da empresa — ponto de aplicação do
	// escopo de tenant na camada de leitura.
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.User, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	// Count informa o total de usuários do sistema (estado de bootstrap).
	Count(ctx context.Context) (int64, error)
}
