package ios

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessequinn/config-compliance-cli/pkg/analyzer"
	"gopkg.in/yaml.v3"
)

// ErrDriftDetected is returned by Execute when fail-on-drift is enabled and
// at least one device is non-compliant. The CLI maps it to a non-zero exit
// code.
var ErrDriftDetected = errors.New("configuration drift detected")

// Config represents the YAML configuration file structure
type Config struct {
	Devices     []Device `yaml:"devices"`
	Checks      []Check  `yaml:"checks"`
	FailOnDrift bool     `yaml:"fail_on_drift,omitempty"`
}

// LoadConfig reads and parses the unified YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Command handles IOS compliance analysis operations
type Command struct {
	ConfigFile  string
	Source      string // overrides configured devices; "-" reads stdin
	CheckFilter string
	OutputFile  string
	Format      string
}

// Run performs the analysis and returns the report without writing output.
func (c *Command) Run(ctx context.Context) (*ComplianceReport, error) {
	cfg, err := LoadConfig(c.ConfigFile)
	if err != nil {
		return nil, err
	}
	return c.run(ctx, cfg)
}

func (c *Command) run(ctx context.Context, cfg *Config) (*ComplianceReport, error) {
	checks := cfg.Checks
	if c.CheckFilter != "" {
		checks = filterChecks(checks, c.CheckFilter)
		if len(checks) == 0 {
			return nil, fmt.Errorf("no check named %q in config", c.CheckFilter)
		}
	}
	if len(checks) == 0 {
		return nil, fmt.Errorf("no checks defined in config")
	}

	a, err := NewAnalyzer(checks)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	devices := cfg.Devices
	if c.Source != "" {
		devices = []Device{{Name: sourceDeviceName(c.Source), Source: c.Source}}
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices specified; configure devices or pass --source")
	}

	rep := NewComplianceReport()
	for _, dev := range devices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := readSource(dev.Source)
		if err != nil {
			return nil, err
		}

		dr, err := a.AnalyzeDevice(dev.Name, text)
		if err != nil {
			return nil, err
		}
		dr.Source = dev.Source
		rep.Add(dr)
	}

	return rep, nil
}

// Execute runs the compliance analysis and writes the report in the
// requested format.
func (c *Command) Execute(ctx context.Context) error {
	cfg, err := LoadConfig(c.ConfigFile)
	if err != nil {
		return err
	}

	rep, err := c.run(ctx, cfg)
	if err != nil {
		return err
	}

	if err := outputReport(rep, c.Format, c.OutputFile); err != nil {
		return err
	}

	if cfg.FailOnDrift && rep.NonCompliantDevices > 0 {
		return ErrDriftDetected
	}
	return nil
}

// outputReport formats and writes the compliance report
func outputReport(rep *ComplianceReport, format, outputPath string) error {
	var output string
	var err error

	switch format {
	case "json":
		output, err = rep.FormatJSON()
	case "yaml":
		output, err = rep.FormatYAML()
	case "text", "":
		output = rep.FormatText()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(output), 0644)
	}

	fmt.Println(output)
	return nil
}

func filterChecks(checks []Check, name string) []Check {
	var kept []Check
	for _, c := range checks {
		if c.Name == name {
			kept = append(kept, c)
		}
	}
	return kept
}

func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading running config from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("reading running config %s: %w", source, err)
	}
	return string(data), nil
}

func sourceDeviceName(source string) string {
	if source == "-" {
		return "stdin"
	}
	return deviceNameFromPath(source)
}

// Compile-time interface implementation checks
var (
	_ analyzer.ConfigAnalyzer = (*Analyzer)(nil)
	_ analyzer.Rule           = (*Check)(nil)
)
