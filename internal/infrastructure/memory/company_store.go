package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyStore)(nil)

// CompanyStore implementação em memória do porto CompanyRepository.
// Escritas serializadas por um mutex; leituras devolvem cópias, então o
// chamador enxerga um snapshot estável.
type CompanyStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*entity.Company
}

// NewCompanyStore constrói o repositório em memória de empresas.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{byID: make(map[int64]*entity.Company)}
}

// Create persiste a empresa, atribuindo o próximo ID sequencial.
// A unicidade do CNPJ é garantida aqui além da validação do caso de uso,
// para fechar a corrida entre cadastros concorrentes.
func (s *CompanyStore) Create(_ context.Context, company *entity.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.byID {
		if c.CNPJ == company.CNPJ {
			return domain.ErrCNPJAlreadyExists
		}
	}
	s.nextID++
	company.ID = s.nextID
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	clone := *company
	s.byID[company.ID] = &clone
	return nil
}

// GetByID devolve (nil, nil) quando a empresa não existe.
func (s *CompanyStore) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

// GetByCNPJ devolve (nil, nil) quando não há empresa com o CNPJ.
func (s *CompanyStore) GetByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.byID {
		if c.CNPJ == cnpj {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

// Update substitui o registro existente.
func (s *CompanyStore) Update(_ context.Context, company *entity.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	company.UpdatedAt = time.Now()
	clone := *company
	s.byID[company.ID] = &clone
	return nil
}

// SetActive é idempotente: reativar empresa ativa não muda nada.
func (s *CompanyStore) SetActive(_ context.Context, id int64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	if c.Active != active {
		c.Active = active
		c.UpdatedAt = time.Now()
	}
	return nil
}

// List devolve as empresas ordenadas por ID, com paginação.
func (s *CompanyStore) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var list []*entity.Company
	for i, id := range ids {
		if i < offset {
			continue
		}
		if limit > 0 && len(list) >= limit {
			break
		}
		clone := *s.byID[id]
		list = append(list, &clone)
	}
	return list, nil
}
