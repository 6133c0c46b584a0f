// Package password encapsula o hash e a verificação de senhas com bcrypt.
// A senha em claro nunca é logada nem persistida; só entra aqui para virar
// digest ou para comparação.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength é o tamanho mínimo aceito ao CRIAR um hash. Não vale na
// verificação: um digest antigo de senha curta continua verificável.
const MinLength = 6

// cost 12: mesmo custo usado desde a primeira versão do sistema. Mudar o
// custo não invalida hashes antigos (bcrypt embute o custo no digest).
const cost = 12

// ErrTooShort indica senha abaixo de MinLength na criação do hash.
var ErrTooShort = errors.New("senha muito curta")

// Hash gera o digest bcrypt da senha (salt automático, custo fixo).
func Hash(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify informa se a senha em claro corresponde ao digest armazenado.
// A comparação interna do bcrypt é de tempo constante em relação ao ponto
// da divergência.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
