package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/officegen-go/pkg/officegen/deck"
)

var deckCmd = &cobra.Command{
	Use:   "deck <name|all>",
	Short: "Build an Axiom Forge slide deck",
	Long: fmt.Sprintf(`Build one of the Axiom Forge slide decks (%s), or all of them.

Colours and fonts come from the built-in black theme unless --theme names
a YAML file with palette and fonts overrides.`, strings.Join(deck.Names(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: append(deck.Names(), "all"),
	RunE:      runDeck,
}

func init() {
	deckCmd.Flags().StringP("output", "o", "", "output file path (single deck only)")
	deckCmd.Flags().String("out-dir", ".", "directory for default output files")
	deckCmd.Flags().String("theme", "", "YAML theme file")
	bindFlag(deckCmd, "deck.output_dir", "out-dir")
	bindFlag(deckCmd, "deck.theme", "theme")

	rootCmd.AddCommand(deckCmd)
}

func runDeck(cmd *cobra.Command, args []string) error {
	name := args[0]
	out, _ := cmd.Flags().GetString("output")
	dir := viper.GetString("deck.output_dir")

	theme := deck.DefaultTheme()
	if path := viper.GetString("deck.theme"); path != "" {
		t, err := deck.LoadTheme(path)
		if err != nil {
			return err
		}
		theme = t
		logger.Debug("loaded theme", "path", path)
	}

	if name == "all" {
		if out != "" {
			return fmt.Errorf("--output cannot be used with all; use --out-dir")
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		_, err := deck.GenerateAll(dir, theme, logger)
		return err
	}

	if out == "" {
		file, err := deck.FileName(name)
		if err != nil {
			return err
		}
		out = filepath.Join(dir, file)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return deck.Generate(name, out, theme, logger)
}
