package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/bootstrap"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/events"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/export"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/locale"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the seeded portfolio aggregate as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap.NewPortfolio(cfg.Seed, events.NewMemoryNotifier(), logger)
		if err != nil {
			return err
		}

		out := struct {
			Portfolio any `json:"portfolio"`
			Companies any `json:"companies"`
		}{svc.Summary(), svc.CompanySummaries()}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

var (
	exportCompany int
	exportOut     string
	exportLang    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a company's projects to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := bootstrap.NewPortfolio(cfg.Seed, events.NewMemoryNotifier(), logger)
		if err != nil {
			return err
		}
		company, err := svc.GetCompany(exportCompany)
		if err != nil {
			return err
		}

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("company-%d.xlsx", company.ID)
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()

		if err := export.WriteCompanyWorkbook(f, company, locale.Match(exportLang)); err != nil {
			return err
		}
		logger.Info("workbook written", zap.String("path", out), zap.Int("company_id", company.ID))
		return f.Close()
	},
}

func init() {
	exportCmd.Flags().IntVar(&exportCompany, "company", 1, "Company id to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default company-<id>.xlsx)")
	exportCmd.Flags().StringVar(&exportLang, "lang", "pt-BR", "Workbook language (pt-BR or en)")
}
