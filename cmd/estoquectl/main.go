// estoquectl é a interface de linha de comando de gestão: empresas,
// usuários, permissões e migrações, espelhando os fluxos administrativos
// da API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/authz"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/usecase"
	"github.com/gabrielamnss1/Estoque-Certo/internal/infrastructure/postgres"
	"github.com/gabrielamnss1/Estoque-Certo/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

var rootCmd = &cobra.Command{
	Use:          "estoquectl",
	Short:        "Gestão do Estoque Certo: empresas, usuários, permissões e migrações",
	SilenceUsage: true,
}

// actorID identifica quem executa atos de gestão. Zero significa anônimo e
// só serve durante o bootstrap do sistema.
var actorID int64

func init() {
	rootCmd.PersistentFlags().Int64Var(&actorID, "ator", 0, "ID do usuário admin que executa a operação")
}

// deps agrupa o grafo de dependências usado pelos subcomandos.
type deps struct {
	pool      *pgxpool.Pool
	cfg       *config.Config
	authz     *authz.Service
	authUC    *auth.UseCase
	companyUC *usecase.CompanyUseCase
	userUC    *usecase.UserUseCase
}

func buildDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("carregar configuração: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexão com PostgreSQL: %w", err)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)

	az := authz.NewService(userRepo, companyRepo, permissionRepo)
	return &deps{
		pool:  pool,
		cfg:   cfg,
		authz: az,
		authUC: auth.NewUseCase(userRepo, companyRepo, az, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		}),
		companyUC: usecase.NewCompanyUseCase(companyRepo, az),
		userUC:    usecase.NewUserUseCase(userRepo, az),
	}, nil
}

func (d *deps) close() {
	d.pool.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
