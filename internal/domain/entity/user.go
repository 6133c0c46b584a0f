package entity

import "time"

// User representa um usuário do sistema (pertence a uma Company).
// O email é a chave de login, armazenado sempre em minúsculas e único no
// sistema inteiro, não apenas dentro da empresa.
type User struct {
	ID           int64
	CompanyID    int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca a senha em claro depois de persistir
	IsAdmin      bool   // admin tem acesso a todos os módulos, sem linhas de permissão
	Active       bool
	LastLogin    *time.Time // nil até o primeiro login
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
