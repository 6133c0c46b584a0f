package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielamnss1/Estoque-Certo/internal/domain"
	"github.com/gabrielamnss1/Estoque-Certo/internal/domain/entity"
)

var permissaoCmd = &cobra.Command{
	Use:   "permissao",
	Short: "Concessões de módulo por usuário",
	Long: `Concessões de módulo por usuário. Módulos disponíveis:
` + strings.Join(moduleCodes(), ", "),
}

func moduleCodes() []string {
	all := entity.AllModules()
	out := make([]string, len(all))
	for i, m := range all {
		out[i] = m.String()
	}
	return out
}

func parseUserAndModule(args []string) (int64, entity.Module, error) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("id inválido: %q", args[0])
	}
	m, ok := entity.ParseModule(args[1])
	if !ok {
		return 0, "", domain.ErrInvalidModule
	}
	return id, m, nil
}

var permissaoConcederCmd = &cobra.Command{
	Use:   "conceder <usuario-id> <modulo>",
	Short: "Concede um módulo ao usuário (idempotente)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, m, err := parseUserAndModule(args)
		if err != nil {
			return err
		}
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.authz.Grant(cmd.Context(), actorID, id, m); err != nil {
			return err
		}
		fmt.Printf("módulo %s concedido ao usuário %d\n", m, id)
		return nil
	},
}

var permissaoRevogarCmd = &cobra.Command{
	Use:   "revogar <usuario-id> <modulo>",
	Short: "Revoga um módulo do usuário",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, m, err := parseUserAndModule(args)
		if err != nil {
			return err
		}
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.authz.Revoke(cmd.Context(), actorID, id, m); err != nil {
			return err
		}
		fmt.Printf("módulo %s revogado do usuário %d\n", m, id)
		return nil
	},
}

var permissaoListarCmd = &cobra.Command{
	Use:   "listar <usuario-id>",
	Short: "Mostra o conjunto efetivo de módulos do usuário",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id inválido: %q", args[0])
		}
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		target, err := d.authz.RequireSameCompanyAdmin(cmd.Context(), actorID, id)
		if err != nil {
			return err
		}
		modules, err := d.authz.EffectiveModules(cmd.Context(), target)
		if err != nil {
			return err
		}
		if target.IsAdmin {
			fmt.Printf("usuário %d é admin: acesso a todos os módulos\n", id)
			return nil
		}
		if len(modules) == 0 {
			fmt.Printf("usuário %d não tem nenhum módulo (travado: válido, mas sem acesso)\n", id)
			return nil
		}
		codes := make([]string, len(modules))
		for i, m := range modules {
			codes[i] = m.String()
		}
		fmt.Printf("usuário %d: %s\n", id, strings.Join(codes, ", "))
		return nil
	},
}

var permissaoConfigurarCmd = &cobra.Command{
	Use:   "configurar <usuario-id> <modulos>",
	Short: "Substitui o conjunto inteiro (lista separada por vírgula, vazio remove tudo)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id inválido: %q", args[0])
		}
		var modules []entity.Module
		if len(args) == 2 && args[1] != "" {
			for _, code := range strings.Split(args[1], ",") {
				m, ok := entity.ParseModule(strings.TrimSpace(code))
				if !ok {
					return domain.ErrInvalidModule
				}
				modules = append(modules, m)
			}
		}
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.authz.Configure(cmd.Context(), actorID, id, modules); err != nil {
			return err
		}
		fmt.Printf("permissões do usuário %d reconfiguradas (%d módulos)\n", id, len(modules))
		return nil
	},
}

func init() {
	permissaoCmd.AddCommand(permissaoConcederCmd, permissaoRevogarCmd, permissaoListarCmd, permissaoConfigurarCmd)
	rootCmd.AddCommand(permissaoCmd)
}
