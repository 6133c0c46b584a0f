package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

var _ repository.UserRepository = (*UserStore)(nil)

// UserStore implementação em memória do porto UserRepository.
// O índice de email guarda a forma minúscula, então a unicidade é
// case-insensitive por construção.
type UserStore struct {
	mu      sync.Mutex
	nextID  int64
	byID    map[int64]*entity.User
	byEmail map[string]int64
}

// NewUserStore constrói o repositório em memória de usuários.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[int64]*entity.User),
		byEmail: make(map[string]int64),
	}
}

// Create persiste o usuário, atribuindo o próximo ID sequencial.
func (s *UserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, exists := s.byEmail[key]; exists {
		return domain.ErrEmailAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	user.Email = key
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	clone := cloneUser(user)
	s.byID[user.ID] = clone
	s.byEmail[key] = user.ID
	return nil
}

// GetByID devolve (nil, nil) quando o usuário não existe.
func (s *UserStore) GetByID(_ context.Context, id int64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(u), nil
}

// GetByEmail consulta pela forma minúscula do email.
func (s *UserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return cloneUser(s.byID[id]), nil
}

// Update substitui o registro existente, mantendo o índice de email coerente.
func (s *UserStore) Update(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.byID[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	newKey := strings.ToLower(user.Email)
	if newKey != old.Email {
		if _, taken := s.byEmail[newKey]; taken {
			return domain.ErrEmailAlreadyExists
		}
		delete(s.byEmail, old.Email)
		s.byEmail[newKey] = user.ID
	}
	user.Email = newKey
	user.UpdatedAt = time.Now()
	s.byID[user.ID] = cloneUser(user)
	return nil
}

// SetActive é idempotente.
func (s *UserStore) SetActive(_ context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.Active != active {
		u.Active = active
		u.UpdatedAt = time.Now()
	}
	return nil
}

// UpdateLastLogin grava o carimbo do último login.
func (s *UserStore) UpdateLastLogin(_ context.Context, id int64, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	ts := t
	u.LastLogin = &ts
	u.UpdatedAt = time.Now()
	return nil
}

// ListByCompany devolve apenas os usuários da partição da empresa.
func (s *UserStore) ListByCompany(_ context.Context, companyID int64, limit, offset int) ([]*entity.User, error) {
	return s.list(func(u *entity.User) bool { return u.CompanyID == companyID }, limit, offset)
}

// List devolve todos os usuários (superfície administrativa/bootstrap).
func (s *UserStore) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return s.list(func(*entity.User) bool { return true }, limit, offset)
}

// Count informa o total de usuários do sistema.
func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.byID)), nil
}

func (s *UserStore) list(keep func(*entity.User) bool, limit, offset int) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.byID))
	for id, u := range s.byID {
		if keep(u) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var list []*entity.User
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(list) >= limit {
			break
		}
		list = append(list, cloneUser(s.byID[id]))
	}
	return list, nil
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	if u.LastLogin != nil {
		ts := *u.LastLogin
		clone.LastLogin = &ts
	}
	return &clone
}
