package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/infrastructure/memory"
)

func newUser(email string) *entity.User {
	return &entity.User{
		CompanyID:    1,
		Name:         email,
		Email:        email,
		PasswordHash: "$2a$12$invalido.apenas.para.teste",
		Active:       true,
	}
}

// Unicidade de email é case-insensitive: JOAO@ e joao@ são a mesma conta.
func TestUserStore_EmailUnicoCaseInsensitive(t *testing.T) {
	s := memory.NewUserStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newUser("Joao@ABC.com")))

	err := s.Create(ctx, newUser("joao@abc.com"))
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	u, err := s.GetByEmail(ctx, "JOAO@ABC.COM")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "joao@abc.com", u.Email, "armazenado na forma minúscula")
}

// IDs são sequenciais e a leitura devolve cópia, não o registro interno.
func TestUserStore_IDsECopias(t *testing.T) {
	s := memory.NewUserStore()
	ctx := context.Background()

	a := newUser("a@abc.com")
	b := newUser("b@abc.com")
	require.NoError(t, s.Create(ctx, a))
	require.NoError(t, s.Create(ctx, b))
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := s.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Name = "mutado"

	fresh, err := s.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@abc.com", fresh.Name, "mutar a cópia não afeta o armazenado")
}

// UpdateLastLogin grava o instante sem tocar nos demais campos.
func TestUserStore_UpdateLastLogin(t *testing.T) {
	s := memory.NewUserStore()
	ctx := context.Background()
	u := newUser("a@abc.com")
	require.NoError(t, s.Create(ctx, u))

	ts := time.Now()
	require.NoError(t, s.UpdateLastLogin(ctx, u.ID, ts))

	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.WithinDuration(t, ts, *got.LastLogin, time.Second)
	assert.True(t, got.Active)
}

// Inexistentes: GetByID e GetByEmail devolvem (nil, nil); SetActive erra.
func TestUserStore_Inexistente(t *testing.T) {
	s := memory.NewUserStore()
	ctx := context.Background()

	u, err := s.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.GetByEmail(ctx, "ninguem@abc.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.ErrorIs(t, s.SetActive(ctx, 42, false), domain.ErrUserNotFound)
}

// Count alimenta a regra de bootstrap: conta todos, ativos ou não.
func TestUserStore_Count(t *testing.T) {
	s := memory.NewUserStore()
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	u := newUser("a@abc.com")
	require.NoError(t, s.Create(ctx, u))
	require.NoError(t, s.SetActive(ctx, u.ID, false))

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "usuário desativado continua contando")
}
