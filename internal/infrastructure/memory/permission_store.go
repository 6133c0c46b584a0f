package memory

import (
	"context"
	"sync"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionStore)(nil)

// PermissionStore implementação em memória do porto PermissionRepository.
// Um conjunto de módulos por usuário; duplicatas são absorvidas pelo map.
type PermissionStore struct {
	mu     sync.Mutex
	byUser map[int64]map[entity.Module]struct{}
}

// NewPermissionStore constrói o repositório em memória de permissões.
func NewPermissionStore() *PermissionStore {
	return &PermissionStore{byUser: make(map[int64]map[entity.Module]struct{})}
}

// Grant é idempotente.
func (s *PermissionStore) Grant(_ context.Context, userID int64, module entity.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.byUser[userID]
	if !ok {
		set = make(map[entity.Module]struct{})
		s.byUser[userID] = set
	}
	set[module] = struct{}{}
	return nil
}

// Revoke é no-op quando a concessão não existe.
func (s *PermissionStore) Revoke(_ context.Context, userID int64, module entity.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if set, ok := s.byUser[userID]; ok {
		delete(set, module)
	}
	return nil
}

// ListByUser devolve os módulos concedidos na ordem da enumeração fixa,
// para uma saída estável independente do histórico de concessões.
func (s *PermissionStore) ListByUser(_ context.Context, userID int64) ([]entity.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.byUser[userID]
	var modules []entity.Module
	for _, m := range entity.AllModules() {
		if _, ok := set[m]; ok {
			modules = append(modules, m)
		}
	}
	return modules, nil
}

// ReplaceForUser troca o conjunto inteiro de uma vez.
func (s *PermissionStore) ReplaceForUser(_ context.Context, userID int64, modules []entity.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[entity.Module]struct{}, len(modules))
	for _, m := range modules {
		set[m] = struct{}{}
	}
	s.byUser[userID] = set
	return nil
}
