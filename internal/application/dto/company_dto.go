package dto

import "time"

// CreateCompanyRequest entrada para cadastrar uma empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"` // apenas números, 14 dígitos
	Segment string `json:"segment"`
}

// CompanyResponse saída de uma empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj"`
	Segment   string    `json:"segment"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
