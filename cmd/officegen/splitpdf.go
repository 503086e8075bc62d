package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/officegen-go/pkg/officegen/pdfsplit"
)

var splitPDFCmd = &cobra.Command{
	Use:   "split-pdf <file.pdf> [pages_per_chunk]",
	Short: "Split a PDF into fixed-size chunks",
	Long: `Split a PDF into files of at most pages_per_chunk pages each, written to
<dir>/<stem>_split/<stem>_part<N>_pages<A>-<B>.pdf.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplitPDF,
}

func init() {
	viper.SetDefault("pdf.pages_per_chunk", pdfsplit.DefaultPagesPerChunk)

	rootCmd.AddCommand(splitPDFCmd)
}

func runSplitPDF(cmd *cobra.Command, args []string) error {
	chunk := viper.GetInt("pdf.pages_per_chunk")
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid pages_per_chunk %q: %w", args[1], err)
		}
		chunk = n
	}

	_, err := pdfsplit.Split(args[0], chunk, logger)
	return err
}
