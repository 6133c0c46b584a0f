package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/infrastructure/memory"
	pkgjwt "github.com/gabrielamnss1/Estoque-Certo/pkg/jwt"
)

const testSecret = "segredo-de-teste-nao-usar-em-producao"

type env struct {
	users     *memory.UserStore
	companies *memory.CompanyStore
	perms     *memory.PermissionStore
	authz     *authz.Service
	uc        *auth.UseCase
}

func newEnv(secret string) *env {
	users := memory.NewUserStore()
	companies := memory.NewCompanyStore()
	perms := memory.NewPermissionStore()
	az := authz.NewService(users, companies, perms)
	return &env{
		users:     users,
		companies: companies,
		perms:     perms,
		authz:     az,
		uc: auth.NewUseCase(users, companies, az, auth.JWTConfig{
			Secret:     secret,
			ExpMinutes: 60,
			Issuer:     "estoque-certo-test",
		}),
	}
}

func (e *env) addCompany(t *testing.T, name, cnpj string) *entity.Company {
	t.Helper()
	c := &entity.Company{Name: name, CNPJ: cnpj, Segment: "varejo", Active: true}
	require.NoError(t, e.companies.Create(context.Background(), c))
	return c
}

// Cenário completo: empresa ABC, primeiro admin via bootstrap, operadora
// cadastrada pelo admin, concessão de módulo e login de ambos.
func TestRegisterELogin_CicloCompleto(t *testing.T) {
	e := newEnv(testSecret)
	ctx := context.Background()
	abc := e.addCompany(t, "ABC Comércio Ltda", "12345678901234")

	// Bootstrap: sem nenhum usuário, o cadastro anônimo (actorID=0) passa.
	joao, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID,
		Name:      "João Silva",
		Email:     "Joao@ABC.com",
		Password:  "senha1",
		IsAdmin:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "joao@abc.com", joao.Email, "email é normalizado para minúsculas")
	assert.True(t, joao.Active)
	assert.Nil(t, joao.LastLogin, "nunca logou")

	// Depois do primeiro usuário o cadastro anônimo é barrado.
	_, err = e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "Intruso", Email: "x@abc.com", Password: "senha1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// O admin cadastra a operadora.
	maria, err := e.uc.Register(ctx, joao.ID, auth.RegisterInput{
		CompanyID: abc.ID,
		Name:      "Maria Souza",
		Email:     "maria@abc.com",
		Password:  "senha2",
	})
	require.NoError(t, err)
	require.NoError(t, e.authz.Grant(ctx, joao.ID, maria.ID, entity.ModuleOperacional))

	// Login do admin: conjunto completo e token com o retrato.
	out, err := e.uc.Login(ctx, "joao@abc.com", "senha1")
	require.NoError(t, err)
	assert.True(t, out.Session.IsAdmin)
	assert.ElementsMatch(t, entity.AllModules(), out.Session.Modules)
	require.NotEmpty(t, out.Token)
	require.NotNil(t, out.User.LastLogin, "login registra o último acesso")

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, joao.ID, claims.UserID)
	assert.Equal(t, abc.ID, claims.CompanyID)
	assert.True(t, claims.IsAdmin)

	// Login da operadora: só o módulo concedido.
	out, err = e.uc.Login(ctx, "maria@abc.com", "senha2")
	require.NoError(t, err)
	assert.False(t, out.Session.IsAdmin)
	assert.Equal(t, []entity.Module{entity.ModuleOperacional}, out.Session.Modules)
}

// Email inexistente e senha errada devolvem o MESMO erro, para não
// denunciar quais contas existem.
func TestLogin_ErroUnicoParaCredenciais(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	_, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)

	_, errDesconhecido := e.uc.Login(ctx, "ninguem@abc.com", "qualquer")
	_, errSenhaErrada := e.uc.Login(ctx, "joao@abc.com", "errada")

	assert.ErrorIs(t, errDesconhecido, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errSenhaErrada, domain.ErrInvalidCredentials)
	assert.Equal(t, errDesconhecido, errSenhaErrada, "os dois caminhos são indistinguíveis")
}

// Conta desativada: a senha confere mas o login é negado com erro próprio.
func TestLogin_ContaInativa(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	joao, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)
	require.NoError(t, e.users.SetActive(ctx, joao.ID, false))

	_, err = e.uc.Login(ctx, "joao@abc.com", "senha1")
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

// Empresa desativada bloqueia o login de TODOS os seus usuários, mesmo
// ativos e com senha correta.
func TestLogin_EmpresaInativa(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	_, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)
	require.NoError(t, e.companies.SetActive(ctx, abc.ID, false))

	_, err = e.uc.Login(ctx, "joao@abc.com", "senha1")
	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
}

// O retrato da sessão congela no login: revogar depois não muda a sessão
// emitida, só o próximo login.
func TestLogin_RetratoImuneARevogacaoPosterior(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	joao, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)
	maria, err := e.uc.Register(ctx, joao.ID, auth.RegisterInput{
		CompanyID: abc.ID, Name: "Maria", Email: "maria@abc.com", Password: "senha2",
	})
	require.NoError(t, err)
	require.NoError(t, e.authz.Grant(ctx, joao.ID, maria.ID, entity.ModuleOperacional))

	out, err := e.uc.Login(ctx, "maria@abc.com", "senha2")
	require.NoError(t, err)
	require.NoError(t, e.authz.Revoke(ctx, joao.ID, maria.ID, entity.ModuleOperacional))

	assert.Equal(t, []entity.Module{entity.ModuleOperacional}, out.Session.Modules,
		"a sessão emitida mantém o conjunto do momento do login")

	novo, err := e.uc.Login(ctx, "maria@abc.com", "senha2")
	require.NoError(t, err)
	assert.Empty(t, novo.Session.Modules, "o próximo login enxerga a revogação")
}

// Validações de cadastro: empresa inexistente ou inativa, nome vazio,
// email malformado ou duplicado, senha curta.
func TestRegister_Validacoes(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	joao, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)

	casos := []struct {
		nome string
		in   auth.RegisterInput
		want error
	}{
		{"empresa inexistente", auth.RegisterInput{CompanyID: 999, Name: "X", Email: "x@abc.com", Password: "senha1"}, domain.ErrCompanyNotFound},
		{"nome vazio", auth.RegisterInput{CompanyID: abc.ID, Name: "   ", Email: "x@abc.com", Password: "senha1"}, domain.ErrEmptyName},
		{"email sem arroba", auth.RegisterInput{CompanyID: abc.ID, Name: "X", Email: "x.abc.com", Password: "senha1"}, domain.ErrInvalidEmail},
		{"email duplicado", auth.RegisterInput{CompanyID: abc.ID, Name: "X", Email: "JOAO@abc.com", Password: "senha1"}, domain.ErrEmailAlreadyExists},
		{"senha curta", auth.RegisterInput{CompanyID: abc.ID, Name: "X", Email: "x@abc.com", Password: "12345"}, domain.ErrWeakPassword},
	}
	for _, tc := range casos {
		t.Run(tc.nome, func(t *testing.T) {
			_, err := e.uc.Register(ctx, joao.ID, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// Admin de outra empresa não cadastra usuário fora do próprio tenant.
func TestRegister_FronteiraDeTenant(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	xyz := e.addCompany(t, "XYZ", "98765432109876")
	adminABC, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)

	_, err = e.uc.Register(ctx, adminABC.ID, auth.RegisterInput{
		CompanyID: xyz.ID, Name: "Ana", Email: "ana@xyz.com", Password: "senha1",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Secret vazio desliga a emissão de token (modo CLI), sem afetar a sessão.
func TestLogin_SemSecretNaoEmiteToken(t *testing.T) {
	e := newEnv("")
	ctx := context.Background()
	abc := e.addCompany(t, "ABC", "12345678901234")
	_, err := e.uc.Register(ctx, 0, auth.RegisterInput{
		CompanyID: abc.ID, Name: "João", Email: "joao@abc.com", Password: "senha1", IsAdmin: true,
	})
	require.NoError(t, err)

	out, err := e.uc.Login(ctx, "joao@abc.com", "senha1")
	require.NoError(t, err)
	assert.Empty(t, out.Token)
	assert.NotNil(t, out.Session)
}
