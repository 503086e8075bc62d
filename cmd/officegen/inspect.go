package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/officegen-go/pkg/officegen"
	"github.com/ukaji3/officegen-go/pkg/officegen/models"
	"github.com/ukaji3/officegen-go/pkg/officegen/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Read a generated xlsx, pptx or docx file back as JSON or YAML",
	Long: `inspect extracts structured data from a generated file: cells, formulas,
table candidates and print areas for workbooks, shapes per slide for decks,
and blocks with runs for Word documents.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringP("output", "o", "", "output file path (default: stdout)")
	inspectCmd.Flags().String("format", "json", "output format: json or yaml")
	inspectCmd.Flags().Bool("pretty", false, "pretty-print JSON output")
	inspectCmd.Flags().String("mode", "standard", "inspection mode: light, standard, verbose")
	inspectCmd.Flags().String("print-areas-dir", "", "directory for per-print-area output files (workbooks only)")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")
	pretty, _ := cmd.Flags().GetBool("pretty")
	modeName, _ := cmd.Flags().GetString("mode")
	printAreasDir, _ := cmd.Flags().GetString("print-areas-dir")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	mode, err := officegen.ParseMode(modeName)
	if err != nil {
		return err
	}

	report, err := officegen.Inspect(args[0], officegen.Options{Mode: mode})
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}
	if printAreasDir != "" && report.Workbook == nil {
		return fmt.Errorf("--print-areas-dir requires a workbook: %s", args[0])
	}

	data, err := output.Marshal(report, format, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("written", "path", outputPath)
	} else if printAreasDir == "" {
		fmt.Println(string(data))
	}

	if printAreasDir != "" {
		if err := writePrintAreaFiles(report.Workbook, printAreasDir, format, pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}
	return nil
}

// writePrintAreaFiles writes one "<sheet>_area<N>" file per print area.
func writePrintAreaFiles(wb *models.WorkbookData, dir string, format output.Format, pretty bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, view := range officegen.PrintAreaViews(wb) {
		counts[view.SheetName]++
		data, err := output.Marshal(view, format, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%s_area%d%s", view.SheetName, counts[view.SheetName], format.Ext()))
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			return err
		}
		logger.Debug("print area written", "path", filename)
	}
	return nil
}
