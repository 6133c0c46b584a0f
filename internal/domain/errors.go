package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada HTTP/CLI traduz para
// códigos apresentáveis; nenhum deles é fatal para o processo.
var (
	// Validação — entrada malformada, sempre recuperável.
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidCNPJ   = errors.New("CNPJ deve conter exatamente 14 dígitos")
	ErrInvalidEmail  = errors.New("email inválido")
	ErrWeakPassword  = errors.New("senha deve ter no mínimo 6 caracteres")
	ErrInvalidModule = errors.New("módulo desconhecido")

	// Conflito — valor já em uso, o chamador deve escolher outro.
	ErrCNPJAlreadyExists  = errors.New("já existe empresa com este CNPJ")
	ErrEmailAlreadyExists = errors.New("já existe usuário com este email")

	// Autenticação — sempre com o mínimo de detalhe para não permitir
	// enumeração de contas. Email inexistente e senha errada produzem o
	// MESMO erro, por construção.
	ErrInvalidCredentials = errors.New("email ou senha incorretos")
	ErrAccountInactive    = errors.New("usuário inativo")
	ErrCompanyInactive    = errors.New("empresa inativa")

	// Autorização — violação de fronteira de permissão ou de tenant.
	// Nunca deve ser rebaixado silenciosamente para sucesso.
	ErrForbidden = errors.New("acesso negado")

	// Lookup.
	ErrNotFound        = errors.New("recurso não encontrado")
	ErrCompanyNotFound = errors.New("empresa não encontrada ou inativa")
	ErrUserNotFound    = errors.New("usuário não encontrado")
)
