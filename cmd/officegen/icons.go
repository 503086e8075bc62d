package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/officegen-go/pkg/officegen/icons"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Rasterise the SVG logo into PNG app icons",
	Long: `Render the SVG source once per size as icon-<size>.png.

A size that cannot be written is reported and skipped; the command fails
only when no icon could be written or the source cannot be read.`,
	Args: cobra.NoArgs,
	RunE: runIcons,
}

func init() {
	iconsCmd.Flags().String("source", "assets/logo-white-back.svg", "SVG source file")
	iconsCmd.Flags().String("out-dir", "assets/icons", "output directory")
	iconsCmd.Flags().IntSlice("sizes", icons.DefaultSizes, "icon sizes in pixels")
	bindFlag(iconsCmd, "icons.source", "source")
	bindFlag(iconsCmd, "icons.output_dir", "out-dir")
	bindFlag(iconsCmd, "icons.sizes", "sizes")

	rootCmd.AddCommand(iconsCmd)
}

// configSizes resolves icons.sizes from a flag ([]int), an environment
// variable ("72,96"), or a config file list.
func configSizes() ([]int, error) {
	var sizes []int
	var err error
	switch v := viper.Get("icons.sizes").(type) {
	case []int:
		sizes = v
	case string:
		sizes, err = icons.ParseSizes(v)
	case []string:
		sizes, err = icons.ParseSizes(strings.Join(v, ","))
	case []any:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = fmt.Sprint(x)
		}
		sizes, err = icons.ParseSizes(strings.Join(parts, ","))
	case nil:
		sizes = icons.DefaultSizes
	default:
		err = fmt.Errorf("unsupported value %v", v)
	}
	if err != nil {
		return nil, fmt.Errorf("icons.sizes: %w", err)
	}
	if len(sizes) == 0 {
		return nil, errors.New("icons.sizes: no icon sizes given")
	}
	return sizes, nil
}

func runIcons(cmd *cobra.Command, args []string) error {
	sizes, err := configSizes()
	if err != nil {
		return err
	}
	res, err := icons.Generate(viper.GetString("icons.source"), viper.GetString("icons.output_dir"), sizes, logger)
	if err != nil {
		return err
	}
	if len(res.Generated) == 0 {
		return fmt.Errorf("no icons generated (%d failed)", len(res.Failed))
	}
	logger.Info("icon generation complete", "generated", len(res.Generated), "failed", len(res.Failed))
	return nil
}
