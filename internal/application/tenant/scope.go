// Package tenant implementa o filtro de escopo de tenant: toda consulta de
// dados que sai de uma sessão autenticada é interceptada aqui e restringida
// à partição da empresa da sessão.
package tenant

import "github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"

// Scope amarra consultas à partição de uma empresa.
type Scope struct {
	CompanyID int64
}

// FromSession deriva o escopo da sessão autenticada.
func FromSession(s *auth.Session) Scope {
	return Scope{CompanyID: s.CompanyID}
}

// Filter é o conjunto de restrições de uma listagem.
type Filter struct {
	CompanyID int64
	Limit     int
	Offset    int
}

// Apply sobrescreve incondicionalmente o CompanyID do filtro com o da
// sessão: um CompanyID estrangeiro vindo do chamador é silenciosamente
// substituído, nunca honrado. Invariante duro — nenhum caminho de leitura
// ou escrita de módulo pode contornar este filtro.
func (s Scope) Apply(f Filter) Filter {
	f.CompanyID = s.CompanyID
	return f
}
