package dto

import "time"

// RegisterRequest entrada para cadastro de usuário (senha em texto, o caso
// de uso faz o hash e nunca a devolve).
type RegisterRequest struct {
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserResponse saída de um usuário (sem hash de senha).
// LockedOut sinaliza usuário não-admin sem nenhum módulo concedido: condição
// válida porém reportável — o usuário não entra em módulo nenhum.
type UserResponse struct {
	ID        int64      `json:"id"`
	CompanyID int64      `json:"company_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsAdmin   bool       `json:"is_admin"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	Modules   []string   `json:"modules"`
	LockedOut bool       `json:"locked_out,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse saída com o token de sessão e o retrato do usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SetActiveRequest liga/desliga um usuário ou empresa.
type SetActiveRequest struct {
	Active bool `json:"active"`
}
