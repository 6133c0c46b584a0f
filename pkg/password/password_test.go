package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gabrielamnss1/Estoque-Certo/pkg/password"
)

// Caso básico: hash e verificação da mesma senha.
func TestHash_RoundTrip(t *testing.T) {
	digest, err := password.Hash("senha1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	assert.True(t, strings.HasPrefix(digest, "$2"), "digest deve ser bcrypt")
	assert.True(t, password.Verify("senha1", digest), "a senha original deve verificar")
	assert.False(t, password.Verify("senha2", digest), "senha errada não deve verificar")
}

// Dois hashes da mesma senha diferem (salt aleatório), mas ambos verificam.
func TestHash_SaltAleatorio(t *testing.T) {
	a, err := password.Hash("segredo-forte")
	require.NoError(t, err)
	b, err := password.Hash("segredo-forte")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "salts diferentes produzem digests diferentes")
	assert.True(t, password.Verify("segredo-forte", a))
	assert.True(t, password.Verify("segredo-forte", b))
}

// O mínimo vale na CRIAÇÃO do hash: 5 caracteres recusa, 6 aceita.
func TestHash_TamanhoMinimo(t *testing.T) {
	_, err := password.Hash("curta")
	assert.ErrorIs(t, err, password.ErrTooShort)

	digest, err := password.Hash("123456")
	require.NoError(t, err)
	assert.True(t, password.Verify("123456", digest))
}

// O mínimo NÃO vale na verificação: um digest antigo de senha curta
// continua verificável.
func TestVerify_DigestAntigoDeSenhaCurta(t *testing.T) {
	legado, err := bcrypt.GenerateFromPassword([]byte("abc"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, password.Verify("abc", string(legado)))
}

// Digest corrompido ou vazio nunca verifica, sem pânico.
func TestVerify_DigestInvalido(t *testing.T) {
	assert.False(t, password.Verify("qualquer", ""))
	assert.False(t, password.Verify("qualquer", "não-é-um-digest"))
}
