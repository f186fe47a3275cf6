package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/niramoy/niramoy_backend/cmd/http"
	systemcmd "github.com/niramoy/niramoy_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "niramoy",
	Short: "Niramoy hospital management backend.",
	Long: `Niramoy is the backend for a hospital management system. It covers patient
registration, doctor queues, prescriptions, lab, pharmacy, canteen and the
hospital's financial reporting, all behind one HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
