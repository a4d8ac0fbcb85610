package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/atriumhq/atrium_backend/cmd/http"
	systemcmd "github.com/atriumhq/atrium_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "atrium",
	Short: "Atrium backend for the landing site: contact inquiries and blog.",
	Long: `Atrium is the backend behind the public landing site. It takes
contact-form submissions (altcha-protected, with email threading for staff
replies) and serves the blog, with an admin surface for both.`,
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
