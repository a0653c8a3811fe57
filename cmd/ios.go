package cmd

import (
	"github.com/spf13/cobra"
)

// iosCmd represents the ios command
var iosCmd = &cobra.Command{
	Use:   "ios",
	Short: "Audit Cisco IOS configurations for compliance",
	Long: `Audit Cisco IOS device configurations against expected configuration
templates. Supports whole-config line comparison and per-stanza block
comparison (interfaces, routing processes, ACLs).`,
}

func init() {
	rootCmd.AddCommand(iosCmd)
}
