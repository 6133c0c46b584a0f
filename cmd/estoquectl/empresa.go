package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gabrielamnss1/Estoque-Certo/internal/application/dto"
)

var empresaCmd = &cobra.Command{
	Use:   "empresa",
	Short: "Cadastro e gestão de empresas",
}

var (
	empresaNome     string
	empresaCNPJ     string
	empresaSegmento string
)

var empresaCriarCmd = &cobra.Command{
	Use:   "criar",
	Short: "Cadastra uma empresa (livre durante o bootstrap, depois só admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		company, err := d.companyUC.Create(cmd.Context(), actorID, dto.CreateCompanyRequest{
			Name:    empresaNome,
			CNPJ:    empresaCNPJ,
			Segment: empresaSegmento,
		})
		if err != nil {
			return err
		}
		fmt.Printf("empresa criada: id=%d nome=%q cnpj=%s\n", company.ID, company.Name, company.CNPJ)
		return nil
	},
}

var empresaListarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista as empresas cadastradas",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd.Context())
		if err != nil {
			return err
		}
		defer d.close()

		out, err := d.companyUC.List(cmd.Context(), dto.PageRequest{})
		if err != nil {
			return err
		}
		for _, c := range out {
			status := "ativa"
			if !c.Active {
				status = "inativa"
			}
			fmt.Printf("%-4d %-30s %-14s %s\n", c.ID, c.Name, c.CNPJ, status)
		}
		return nil
	},
}

var empresaAtiva bool

var empresaAtivarCmd = &cobra.Command{
	Use:   "ativar <id>",
	Short: "Liga ou desliga uma empresa (--ativa=false desativa)",
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

		if err := d.companyUC.SetActive(cmd.Context(), actorID, id, empresaAtiva); err != nil {
			return err
		}
		fmt.Printf("empresa %d: active=%v\n", id, empresaAtiva)
		return nil
	},
}

func init() {
	empresaCriarCmd.Flags().StringVar(&empresaNome, "nome", "", "razão social")
	empresaCriarCmd.Flags().StringVar(&empresaCNPJ, "cnpj", "", "CNPJ, 14 dígitos sem máscara")
	empresaCriarCmd.Flags().StringVar(&empresaSegmento, "segmento", "", "segmento de atuação")
	_ = empresaCriarCmd.MarkFlagRequired("nome")
	_ = empresaCriarCmd.MarkFlagRequired("cnpj")

	empresaAtivarCmd.Flags().BoolVar(&empresaAtiva, "ativa", true, "estado desejado")

	empresaCmd.AddCommand(empresaCriarCmd, empresaListarCmd, empresaAtivarCmd)
	rootCmd.AddCommand(empresaCmd)
}
