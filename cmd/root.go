// Package cmd is for command line interactions with the wambam application
package cmd

import (
	"log"
	"os"

	"github.com/nanoporegenomics/wambam/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)

	// path to a settings file, if not the default
	cfgFile string
)

// RootCmd represents the base command when called without any subcommands.
// On its own it plots an alignment summary, same as 'wambam plot'.
var RootCmd = &cobra.Command{
	Use: "wambam",
	Short: `Whole assembly metrics from alignments.
Plot alignment summaries by chromosome and identity`,
	Long: `Whole assembly metrics from alignments.

Without a subcommand, wambam plots an alignment summary table:
one line per alignment, one row per chromosome, colored by identity.
See 'wambam plot --help'.`,
	Example:           "  wambam -a alignment_summary.tsv -o plots",
	Version:           "0.1.0",
	RunE:              plotExec,
	PersistentPreRunE: setupConfig,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		stderr.Fatalf("%v", err)
	}
}

// setupConfig reads the settings file and environment before any command runs.
func setupConfig(cmd *cobra.Command, args []string) error {
	return config.Setup(viper.GetViper(), cfgFile)
}

// bindFlags binds the named flags of the command being run to viper. This is done at
// run time since 'wambam' and 'wambam plot' share flag names.
func bindFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := viper.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// set flags
func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./wambam.yaml or ~/.wambam/wambam.yaml)")

	addPlotFlags(RootCmd)
}
