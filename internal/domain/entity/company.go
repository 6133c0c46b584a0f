package entity

import "time"

// Company representa uma empresa/tenant do sistema (multi-tenancy por partição de dados).
// Cada usuário pertence a exatamente uma Company; nenhuma consulta de módulo
// pode cruzar a fronteira entre empresas.
type Company struct {
	ID        int64
	Name      string
	CNPJ      string // exatamente 14 dígitos, único no sistema
	Segment   string // Indústria, Comércio, Serviços, Logística, Outro
	Active    bool   // empresa inativa bloqueia o login de todos os seus usuários
	CreatedAt time.Time
	UpdatedAt time.Time
}
