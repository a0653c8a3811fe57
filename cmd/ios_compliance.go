package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/jessequinn/config-compliance-cli/pkg/ios"
	"github.com/jessequinn/config-compliance-cli/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	complianceOutputFormat string
	complianceOutputFile   string
	complianceSource       string
	complianceCheckFilter  string
)

// complianceCmd represents the compliance command
var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Compare running configurations against expected configuration",
	Long: `Compare saved running configurations against the expected configuration
defined in the config file. Each check compares either the whole config (line
mode) or the stanzas matching a parent pattern (block mode), and reports the
lines to push and the lines to clear.`,
	RunE:          runComplianceAnalysis,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	iosCmd.AddCommand(complianceCmd)
	complianceCmd.Flags().StringVarP(&complianceOutputFormat, "output", "o", "text", "output format (text|json|yaml|tui)")
	complianceCmd.Flags().StringVar(&complianceOutputFile, "out-file", "", "write the report to a file instead of stdout")
	complianceCmd.Flags().StringVarP(&complianceSource, "source", "s", "", "running-config file to audit instead of the configured devices (- for stdin)")
	complianceCmd.Flags().StringVar(&complianceCheckFilter, "check", "", "run only the named check")
}

func runComplianceAnalysis(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	command := &ios.Command{
		ConfigFile:  cfgFile,
		Source:      complianceSource,
		CheckFilter: complianceCheckFilter,
		OutputFile:  complianceOutputFile,
		Format:      complianceOutputFormat,
	}

	if complianceOutputFormat == "tui" {
		rep, err := command.Run(ctx)
		if err != nil {
			return err
		}
		return tui.Run(tui.FromComplianceReport(rep))
	}

	err := command.Execute(ctx)
	if errors.Is(err, ios.ErrDriftDetected) {
		// The report was written; drift maps to a non-zero exit without the
		// usual error banner.
		os.Exit(1)
	}
	return err
}
