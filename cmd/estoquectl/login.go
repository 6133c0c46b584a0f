package main

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verifica credenciais e imprime o token de sessão",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("senha: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("ler senha: %w", err)
		}

		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		out, err := d.authUC.Login(cmd.Context(), loginEmail, string(raw))
		if err != nil {
			return err
		}
		papel := "operador"
		if out.Session.IsAdmin {
			papel = "admin"
		}
		codes := make([]string, len(out.Session.Modules))
		for i, m := range out.Session.Modules {
			codes[i] = m.String()
		}
		fmt.Printf("bem-vindo, %s (%s)\n", out.User.Name, papel)
		fmt.Printf("módulos: %s\n", strings.Join(codes, ", "))
		if out.Token != "" {
			fmt.Printf("token: %s\n", out.Token)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "email de login")
	_ = loginCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(loginCmd)
}
