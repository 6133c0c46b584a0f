// Package auth implementa o gerente de sessão: verificação de credenciais,
// emissão do retrato de sessão e o cadastro de usuários com a regra de
// bootstrap.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/repository"
	"github.com/gabrielamnss1/Estoque-Certo/pkg/jwt"
	"github.com/gabrielamnss1/Estoque-Certo/pkg/password"
)

// JWTConfig configuração para geração de tokens de sessão.
// Secret vazio desliga a emissão de token (modo CLI em memória).
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session é o contexto autenticado: retrato tirado no momento do login.
// Mudanças de permissão feitas depois NÃO afetam uma sessão já emitida —
// é preciso logar de novo para enxergá-las. Política explícita, não descuido.
type Session struct {
	UserID    int64
	CompanyID int64
	IsAdmin   bool
	Modules   []entity.Module
	IssuedAt  time.Time
}

// LoginResult é o retorno de um login bem-sucedido.
type LoginResult struct {
	Session *Session
	User    *entity.User
	Token   string // vazio quando JWTConfig.Secret não está definido
}

// RegisterInput entrada para cadastro de usuário.
type RegisterInput struct {
	CompanyID int64
	Name      string
	Email     string
	Password  string
	IsAdmin   bool
}

// UseCase casos de uso de autenticação: login e cadastro.
type UseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	authz     *authz.Service
	jwtCfg    JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(users repository.UserRepository, companies repository.CompanyRepository, az *authz.Service, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, companies: companies, authz: az, jwtCfg: jwtCfg}
}

// digest fixo usado no caminho "email inexistente" para que a resposta leve
// o mesmo tempo de um bcrypt de verdade e não denuncie quais contas existem.
var timingPad, _ = password.Hash("estoque-certo-timing-pad")

// Login verifica email/senha e emite a sessão.
// Email inexistente e senha errada devolvem o MESMO ErrInvalidCredentials.
func (uc *UseCase) Login(ctx context.Context, email, plain string) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		password.Verify(plain, timingPad)
		return nil, domain.ErrInvalidCredentials
	}
	if !password.Verify(plain, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	company, err := uc.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.Active {
		return nil, domain.ErrCompanyInactive
	}

	now := time.Now()
	if err := uc.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	modules, err := uc.authz.EffectiveModules(ctx, user)
	if err != nil {
		return nil, err
	}

	session := &Session{
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		IsAdmin:   user.IsAdmin,
		Modules:   modules,
		IssuedAt:  now,
	}

	var token string
	if uc.jwtCfg.Secret != "" {
		codes := make([]string, len(modules))
		for i, m := range modules {
			codes[i] = m.String()
		}
		token, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.IsAdmin, codes, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
	}
	return &LoginResult{Session: session, User: user, Token: token}, nil
}

// Register cadastra um usuário. actorID zero significa chamador anônimo:
// permitido apenas enquanto o sistema não tem nenhum usuário (bootstrap).
// Depois da transição, exige um admin ativo da mesma empresa do novo usuário.
func (uc *UseCase) Register(ctx context.Context, actorID int64, in RegisterInput) (*entity.User, error) {
	bootstrapped, err := uc.authz.Bootstrapped(ctx)
	if err != nil {
		return nil, err
	}
	if bootstrapped {
		if actorID == 0 {
			return nil, domain.ErrForbidden
		}
		actor, err := uc.authz.RequireAdmin(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if actor.CompanyID != in.CompanyID {
			return nil, domain.ErrForbidden
		}
	}

	company, err := uc.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.Active {
		return nil, domain.ErrCompanyNotFound
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return nil, domain.ErrInvalidEmail
	}
	if existing, err := uc.users.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		if err == password.ErrTooShort {
			return nil, domain.ErrWeakPassword
		}
		return nil, err
	}

	user := &entity.User{
		CompanyID:    in.CompanyID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
		Active:       true,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
