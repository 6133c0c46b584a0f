package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/auth"
	"github.com/gabrielamnss1/Estoque-Certo/internal/application/tenant"
)

var usuarioCmd = &cobra.Command{
	Use:   "usuario",
	Short: "Cadastro e gestão de usuários",
}

var (
	usuarioEmpresa int64
	usuarioNome    string
	usuarioEmail   string
	usuarioSenha   string
	usuarioAdmin   bool
)

var usuarioCriarCmd = &cobra.Command{
	Use:   "criar",
	Short: "Cadastra um usuário (o primeiro do sistema dispensa --ator)",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		user, err := d.authUC.Register(cmd.Context(), actorID, auth.RegisterInput{
			CompanyID: usuarioEmpresa,
			Name:      usuarioNome,
			Email:     usuarioEmail,
			Password:  usuarioSenha,
			IsAdmin:   usuarioAdmin,
		})
		if err != nil {
			return err
		}
		papel := "operador"
		if user.IsAdmin {
			papel = "admin"
		}
		fmt.Printf("usuário criado: id=%d email=%s papel=%s empresa=%d\n", user.ID, user.Email, papel, user.CompanyID)
		return nil
	},
}

var usuarioListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista os usuários da empresa do ator",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		actor, err := d.authz.RequireAdmin(cmd.Context(), actorID)
		if err != nil {
			return err
		}
		out, err := d.userUC.List(cmd.Context(), tenant.Filter{CompanyID: actor.CompanyID})
		if err != nil {
			return err
		}
		for _, u := range out {
			papel := "operador"
			if u.IsAdmin {
				papel = "admin"
			}
			status := "ativo"
			if !u.Active {
				status = "inativo"
			}
			fmt.Printf("%-4d %-30s %-10s %-8s módulos=%s\n", u.ID, u.Email, papel, status, strings.Join(u.Modules, ","))
		}
		return nil
	},
}

var usuarioAtivo bool

var usuarioAtivarCmd = &cobra.Command{
	Use:   "ativar <id>",
	Short: "Liga ou desliga um usuário (--ativo=false desativa)",
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

		if err := d.userUC.SetActive(cmd.Context(), actorID, id, usuarioAtivo); err != nil {
			return err
		}
		fmt.Printf("usuário %d: active=%v\n", id, usuarioAtivo)
		return nil
	},
}

func init() {
	usuarioCriarCmd.Flags().Int64Var(&usuarioEmpresa, "empresa", 0, "ID da empresa do usuário")
	usuarioCriarCmd.Flags().StringVar(&usuarioNome, "nome", "", "nome completo")
	usuarioCriarCmd.Flags().StringVar(&usuarioEmail, "email", "", "email de login")
	usuarioCriarCmd.Flags().StringVar(&usuarioSenha, "senha", "", "senha, mínimo 6 caracteres")
	usuarioCriarCmd.Flags().BoolVar(&usuarioAdmin, "admin", false, "concede papel de administrador")
	_ = usuarioCriarCmd.MarkFlagRequired("empresa")
	_ = usuarioCriarCmd.MarkFlagRequired("email")
	_ = usuarioCriarCmd.MarkFlagRequired("senha")

	usuarioAtivarCmd.Flags().BoolVar(&usuarioAtivo, "ativo", true, "estado desejado")

	usuarioCmd.AddCommand(usuarioCriarCmd, usuarioListarCmd, usuarioAtivarCmd)
	rootCmd.AddCommand(usuarioCmd)
}
