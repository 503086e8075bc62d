package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/officegen-go/pkg/officegen/docx"
	"github.com/ukaji3/officegen-go/pkg/officegen/markdown"
)

var md2docxCmd = &cobra.Command{
	Use:   "md2docx <input.md>",
	Short: "Convert a Markdown file to Word",
	Long: `Convert a Markdown file to a .docx document.

The simple dialect handles headings 1-4, flat lists, code fences and inline
bold, italic and code. The full dialect adds tables, block quotes, rules,
headings 5-6 and links.`,
	Args: cobra.ExactArgs(1),
	RunE: runMD2DOCX,
}

func init() {
	md2docxCmd.Flags().StringP("output", "o", "", "output file path (default: input with .docx extension)")
	md2docxCmd.Flags().String("dialect", string(markdown.Full), "markdown dialect: simple or full")
	bindFlag(md2docxCmd, "docx.dialect", "dialect")

	rootCmd.AddCommand(md2docxCmd)
}

func runMD2DOCX(cmd *cobra.Command, args []string) error {
	src := args[0]
	dialect, err := markdown.ParseDialect(viper.GetString("docx.dialect"))
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = strings.TrimSuffix(src, filepath.Ext(src)) + ".docx"
	}

	if err := docx.Convert(src, out, dialect); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	logger.Info("created", "source", src, "path", out, "dialect", string(dialect))
	return nil
}
