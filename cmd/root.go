package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/curaline/curaline_backend/cmd/http"
	systemcmd "github.com/curaline/curaline_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "curaline",
	Short: "Curaline telemedicine platform for doctors and patients.",
	Long: `Curaline is a telemedicine platform connecting doctors and patients.
It handles doctor availability, appointment scheduling with video visits,
secure messaging, and shared medical records in a single deployment.`,
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
