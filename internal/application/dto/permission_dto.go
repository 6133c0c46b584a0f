package dto

// GrantRequest concede ou revoga um único módulo.
type GrantRequest struct {
	Module string `json:"module"`
}

// ReplacePermissionsRequest troca o conjunto inteiro de módulos do usuário.
type ReplacePermissionsRequest struct {
	Modules []string `json:"modules"`
}

// PermissionsResponse módulos efetivos de um usuário.
type PermissionsResponse struct {
	UserID  int64    `json:"user_id"`
	IsAdmin bool     `json:"is_admin"`
	Modules []string `json:"modules"`
}
