package cmd

import (
	"fmt"

	"github.com/nanoporegenomics/wambam/config"
	"github.com/nanoporegenomics/wambam/internal/identity"
	"github.com/spf13/cobra"
)

// identityCmd is for the distribution of alignment identities in a BAM.
var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Count the identity of each primary alignment in a BAM",
	Long: `Count the identity of each primary alignment in a BAM (or SAM, by extension)

Identity is matches / (matches + mismatches + inserted + deleted bases), read from
the '=' and 'X' CIGAR operations. Alignments with 'M' operations are an error since
they don't separate matches from mismatches: re-align with extended CIGARs
(ex: minimap2 --eqx).

Writes one line per identity (percent, 4 decimal places) with its alignment count.`,
	RunE:                       identityExec,
	SuggestionsMinimumDistance: 2,
	Example:                    "  wambam identity -i reads_vs_ref.bam > identity.tsv",
	Aliases:                    []string{"idy"},
}

func identityExec(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, "input_bam", "verbose"); err != nil {
		return err
	}

	c, err := config.New()
	if err != nil {
		return err
	}

	var each func(identity.Alignment)
	if c.Verbose {
		each = func(a identity.Alignment) {
			stderr.Println(a)
		}
	}

	dist, err := identity.FromFile(c.InputBAM, each)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, b := range dist.Bins() {
		fmt.Fprintf(out, "%.4f\t%d\n", b.Percent(), b.Count)
	}
	return nil
}

// set flags
func init() {
	identityCmd.Flags().StringP("input_bam", "i", "", "path to BAM")
	identityCmd.Flags().BoolP("verbose", "v", false, "log each alignment to stderr")

	identityCmd.MarkFlagRequired("input_bam")

	RootCmd.AddCommand(identityCmd)
}
