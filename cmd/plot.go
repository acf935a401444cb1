package cmd

import (
	"fmt"

	"github.com/nanoporegenomics/wambam/config"
	"github.com/nanoporegenomics/wambam/internal/plot"
	"github.com/nanoporegenomics/wambam/internal/summary"
	"github.com/spf13/cobra"
)

// plotCmd is for drawing alignment positions per chromosome, colored by identity.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot alignment positions by chromosome and identity",
	Long: `Plot alignment positions by chromosome and identity

Reads a tab-separated alignment summary with the columns "#chr", "start_pos",
"end_pos" and "identity". The line after the header holds units and is skipped.

Each alignment is drawn as a horizontal line from its start to its end position,
in its chromosome's row and colored by identity (viridis). Chromosomes are ordered
by number with unnumbered ones (chrX, chrM, contigs) last.

The image is written to <output_dir>/alignment_summary.png, creating output_dir
if it doesn't exist.`,
	RunE:                       plotExec,
	SuggestionsMinimumDistance: 2,
	Example:                    "  wambam plot -a alignment_summary.tsv -o plots",
	Aliases:                    []string{"draw"},
}

// plotExec reads the alignment summary and renders it.
func plotExec(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, "alignment_summary", "output_dir"); err != nil {
		return err
	}

	c, err := config.New()
	if err != nil {
		return err
	}

	t, err := summary.Read(c.AlignmentSummary)
	if err != nil {
		return err
	}

	out, err := plot.Render(t, c.Plot, c.OutputDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// addPlotFlags sets the flags shared by 'wambam' and 'wambam plot'.
func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("alignment_summary", "a", "", "input file of alignment_summary.tsv")
	cmd.Flags().StringP("output_dir", "o", "", "directory path where output will be written")

	cmd.MarkFlagRequired("alignment_summary")
	cmd.MarkFlagRequired("output_dir")
}

// set flags
func init() {
	addPlotFlags(plotCmd)

	RootCmd.AddCommand(plotCmd)
}
