package ios

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessequinn/config-compliance-cli/pkg/compare"
	"github.com/jessequinn/config-compliance-cli/pkg/report"
)

// Analyzer runs compliance checks against saved IOS running configurations.
// It never talks to a device: configurations arrive as text, expected
// configurations arrive already rendered, and every analysis is a pure
// comparison.
type Analyzer struct {
	checks     []Check
	lastReport *ComplianceReport
}

// NewAnalyzer creates an Analyzer after validating every check.
func NewAnalyzer(checks []Check) (*Analyzer, error) {
	if len(checks) == 0 {
		return nil, fmt.Errorf("no checks defined")
	}
	for i := range checks {
		if err := checks[i].Validate(); err != nil {
			return nil, err
		}
	}
	return &Analyzer{checks: checks}, nil
}

// AnalyzeDevice runs every check against one device's running configuration
// text and returns the per-check results.
func (a *Analyzer) AnalyzeDevice(name, configText string) (*DeviceResult, error) {
	dr := &DeviceResult{Name: name}
	for i := range a.checks {
		cr, err := a.runCheck(&a.checks[i], configText)
		if err != nil {
			return nil, err
		}
		dr.Checks = append(dr.Checks, *cr)
	}
	return dr, nil
}

func (a *Analyzer) runCheck(c *Check, configText string) (*CheckResult, error) {
	expected, err := c.expectedText()
	if err != nil {
		return nil, err
	}

	req, err := c.request(configText, expected)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", c.Name, err)
	}

	res, err := compare.Compare(req)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", c.Name, err)
	}

	cr := &CheckResult{
		Check:         c.Name,
		Description:   c.Description,
		Severity:      c.severityOrDefault(),
		Compliant:     res.Compliant(),
		Missing:       res.ExpectedCommands,
		Unexpected:    res.NotExpectedCommands,
		PushCommands:  res.PushCommands(),
		ClearCommands: res.ClearCommands(),
	}
	cr.Findings = buildFindings(res, cr.Severity)
	return cr, nil
}

// buildFindings flattens an engine result into per-line findings, tagging
// each with the owning parent stanza when the check ran in block mode.
func buildFindings(res *compare.Result, severity string) []report.Finding {
	var findings []report.Finding

	add := func(scope string, d compare.DiffResult) {
		for _, line := range d.ExpectedCommands {
			findings = append(findings, report.Finding{
				Scope:    scope,
				Line:     line,
				Action:   report.ActionPush,
				Severity: severity,
			})
		}
		for _, line := range d.NotExpectedCommands {
			findings = append(findings, report.Finding{
				Scope:    scope,
				Line:     line,
				Action:   report.ActionClear,
				Severity: severity,
			})
		}
	}

	if len(res.Blocks) > 0 {
		for _, b := range res.Blocks {
			add(b.Parent, b.DiffResult)
		}
	} else {
		add("", res.DiffResult)
	}

	return findings
}

// Analyze performs compliance analysis implementing analyzer.ConfigAnalyzer.
// Sources are paths to saved running-configuration files; the device name is
// derived from the file name.
func (a *Analyzer) Analyze(ctx context.Context, sources []string) error {
	rep := NewComplianceReport()

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading running config %s: %w", src, err)
		}

		dr, err := a.AnalyzeDevice(deviceNameFromPath(src), string(data))
		if err != nil {
			return err
		}
		dr.Source = src
		rep.Add(dr)
	}

	a.lastReport = rep
	return nil
}

// GenerateReport generates a formatted report implementing analyzer.ConfigAnalyzer
func (a *Analyzer) GenerateReport() (string, error) {
	if a.lastReport == nil {
		return "", fmt.Errorf("no analysis has been performed yet")
	}
	return a.lastReport.FormatText(), nil
}

// GetFindingCount returns the number of findings implementing analyzer.ConfigAnalyzer
func (a *Analyzer) GetFindingCount() int {
	if a.lastReport == nil {
		return 0
	}
	return a.lastReport.FindingCount()
}

// LastReport returns the report from the most recent Analyze call, or nil.
func (a *Analyzer) LastReport() *ComplianceReport {
	return a.lastReport
}

func deviceNameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NewComplianceReport returns an empty report stamped with the current time.
func NewComplianceReport() *ComplianceReport {
	return &ComplianceReport{Timestamp: time.Now()}
}
