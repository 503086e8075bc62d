package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/officegen-go/pkg/officegen/workbook"
)

var workbookCmd = &cobra.Command{
	Use:   "workbook <problem>",
	Short: "Build an LP homework workbook",
	Long: fmt.Sprintf(`Build the Excel template for one linear-programming problem (%s).
The workbook holds decision variables, constraint checks and Solver
instructions. The default output is <Problem>_Solution.xlsx in workbook.output_dir.`,
		strings.Join(workbook.Problems(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: workbook.Problems(),
	RunE:      runWorkbook,
}

func init() {
	workbookCmd.Flags().StringP("output", "o", "", "output file path")
	workbookCmd.Flags().String("out-dir", ".", "directory for the default output file")
	bindFlag(workbookCmd, "workbook.output_dir", "out-dir")

	rootCmd.AddCommand(workbookCmd)
}

func runWorkbook(cmd *cobra.Command, args []string) error {
	problem := args[0]
	if err := workbook.Validate(problem); err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		name := strings.ToUpper(problem[:1]) + problem[1:] + "_Solution.xlsx"
		out = filepath.Join(viper.GetString("workbook.output_dir"), name)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := workbook.Generate(problem, out); err != nil {
		return err
	}
	logger.Info("created", "problem", problem, "path", out)
	return nil
}
