package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "config-compliance-cli",
	Short: "A CLI tool for auditing network device configurations",
	Long: `Config Compliance CLI audits saved network device configurations against
rendered expected-configuration templates. It reports which expected lines are
missing from a device and which device lines are not covered by the expected
configuration, together with the commands that would reconcile the drift.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}
