package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"worksbill/internal/config"
	"worksbill/internal/repository/postgres"
	"worksbill/internal/service"
	"worksbill/internal/sheetimport"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Load budget_plan, budget_np and works sheets into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := sheetimport.ReadFile(args[0])
			if err != nil {
				return err
			}

			if dryRun {
				fmt.Printf("plan budget rows: %d\nnon-plan budget rows: %d\nworks: %d\n",
					len(wb.PlanBudget), len(wb.NonPlanBudget), len(wb.Works))
				for _, s := range wb.Skipped {
					fmt.Println("skipped:", s.Error())
				}
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			db, err := postgres.NewDB(&cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			importer := sheetimport.NewImporter(
				service.NewBudgetService(postgres.NewBudgetRepo(db)),
				service.NewWorkService(postgres.NewWorkRepo(db)),
			)
			sum, err := importer.Import(cmd.Context(), wb)
			if sum != nil {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				_ = enc.Encode(sum)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse the workbook without writing")
	return cmd
}
