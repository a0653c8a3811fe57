package ios

import (
	"fmt"
	"os"

	"github.com/jessequinn/config-compliance-cli/pkg/compare"
)

// Device names one saved running configuration to audit.
type Device struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// Check is a single compliance rule: a scope of the running configuration
// and the expected configuration text it must match. The expected text is
// consumed as already-rendered configuration lines; rendering templates is
// the caller's business.
type Check struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description,omitempty"`
	SearchMode     string   `yaml:"search_mode"`
	SearchStart    string   `yaml:"search_start,omitempty"`
	SearchEnd      string   `yaml:"search_end,omitempty"`
	CompareMethod  string   `yaml:"compare_method,omitempty"`
	IgnoreLines    []string `yaml:"ignore_lines,omitempty"`
	StrictOrder    bool     `yaml:"strict_order,omitempty"`
	KeepBlockStart bool     `yaml:"keep_block_start,omitempty"`
	KeepBlockEnd   bool     `yaml:"keep_block_end,omitempty"`
	Severity       string   `yaml:"severity,omitempty"`

	// Expected carries the expected configuration inline; ExpectedFile
	// points at a file holding it. Exactly one must be set.
	Expected     string `yaml:"expected,omitempty"`
	ExpectedFile string `yaml:"expected_file,omitempty"`
}

// GetName implements analyzer.Rule
func (c *Check) GetName() string {
	return c.Name
}

// Validate implements analyzer.Rule
func (c *Check) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("check name is required")
	}
	if c.Expected == "" && c.ExpectedFile == "" {
		return fmt.Errorf("check %q: either expected or expected_file is required", c.Name)
	}
	if c.Expected != "" && c.ExpectedFile != "" {
		return fmt.Errorf("check %q: expected and expected_file are mutually exclusive", c.Name)
	}

	mode, err := compare.ParseMode(c.SearchMode)
	if err != nil {
		return fmt.Errorf("check %q: %w", c.Name, err)
	}
	if mode == compare.ModeBlock && c.SearchStart == "" {
		return fmt.Errorf("check %q: search_start is required in block mode", c.Name)
	}
	if _, err := compare.ParseMethod(c.CompareMethod); err != nil {
		return fmt.Errorf("check %q: %w", c.Name, err)
	}

	switch c.Severity {
	case "", "critical", "high", "medium", "low":
	default:
		return fmt.Errorf("check %q: unknown severity %q", c.Name, c.Severity)
	}

	return nil
}

func (c *Check) severityOrDefault() string {
	if c.Severity == "" {
		return "medium"
	}
	return c.Severity
}

// expectedText returns the expected configuration for the check, reading it
// from disk when the check references a file.
func (c *Check) expectedText() (string, error) {
	if c.ExpectedFile != "" {
		data, err := os.ReadFile(c.ExpectedFile)
		if err != nil {
			return "", fmt.Errorf("check %q: reading expected config: %w", c.Name, err)
		}
		return string(data), nil
	}
	return c.Expected, nil
}

// request builds the engine request for this check against the given
// running configuration text.
func (c *Check) request(actual, expected string) (compare.Request, error) {
	mode, err := compare.ParseMode(c.SearchMode)
	if err != nil {
		return compare.Request{}, err
	}
	method, err := compare.ParseMethod(c.CompareMethod)
	if err != nil {
		return compare.Request{}, err
	}

	return compare.Request{
		Actual:         actual,
		Expected:       expected,
		Mode:           mode,
		Method:         method,
		SearchStart:    c.SearchStart,
		SearchEnd:      c.SearchEnd,
		IgnoreLines:    c.IgnoreLines,
		StrictOrder:    c.StrictOrder,
		KeepBlockStart: c.KeepBlockStart,
		KeepBlockEnd:   c.KeepBlockEnd,
	}, nil
}
