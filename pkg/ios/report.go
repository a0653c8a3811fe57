package ios

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessequinn/config-compliance-cli/pkg/report"
	"gopkg.in/yaml.v3"
)

// ComplianceReport contains the complete analysis results for all devices
type ComplianceReport struct {
	Timestamp           time.Time       `json:"timestamp" yaml:"timestamp"`
	TotalDevices        int             `json:"total_devices" yaml:"total_devices"`
	NonCompliantDevices int             `json:"non_compliant_devices" yaml:"non_compliant_devices"`
	Devices             []*DeviceResult `json:"devices" yaml:"devices"`
}

// DeviceResult represents compliance analysis results for a single device
type DeviceResult struct {
	Name   string        `json:"name" yaml:"name"`
	Source string        `json:"source,omitempty" yaml:"source,omitempty"`
	Checks []CheckResult `json:"checks" yaml:"checks"`
}

// CheckResult represents the outcome of a single compliance check
type CheckResult struct {
	Check       string `json:"check" yaml:"check"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Severity    string `json:"severity" yaml:"severity"`
	Compliant   bool   `json:"compliant" yaml:"compliant"`

	// Missing holds expected lines absent from the device; Unexpected holds
	// device lines not covered by the expected configuration.
	Missing    []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Unexpected []string `json:"unexpected,omitempty" yaml:"unexpected,omitempty"`

	// PushCommands and ClearCommands are the derived device commands that
	// would reconcile the check, scoped under their parent stanza in block
	// mode.
	PushCommands  []string `json:"push_commands,omitempty" yaml:"push_commands,omitempty"`
	ClearCommands []string `json:"clear_commands,omitempty" yaml:"clear_commands,omitempty"`

	Findings []report.Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Add appends a device result and updates the report counters.
func (r *ComplianceReport) Add(dr *DeviceResult) {
	r.Devices = append(r.Devices, dr)
	r.TotalDevices++
	if !dr.Compliant() {
		r.NonCompliantDevices++
	}
}

// Compliant reports whether every check on the device passed.
func (d *DeviceResult) Compliant() bool {
	for _, cr := range d.Checks {
		if !cr.Compliant {
			return false
		}
	}
	return true
}

// Findings flattens all check findings on the device.
func (d *DeviceResult) Findings() []report.Finding {
	var findings []report.Finding
	for _, cr := range d.Checks {
		findings = append(findings, cr.Findings...)
	}
	return findings
}

// FindingCount returns the total number of findings across all devices.
func (r *ComplianceReport) FindingCount() int {
	count := 0
	for _, d := range r.Devices {
		count += len(d.Findings())
	}
	return count
}

// FormatText generates a human-readable text report with summary and
// per-device detail
func (r *ComplianceReport) FormatText() string {
	var sb strings.Builder

	sb.WriteString("═══════════════════════════════════════════════════════════════════════════════\n")
	sb.WriteString("  IOS Configuration Compliance Report\n")
	sb.WriteString("═══════════════════════════════════════════════════════════════════════════════\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", r.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Total Devices: %d\n", r.TotalDevices))
	sb.WriteString(fmt.Sprintf("Devices with Drift: %d\n", r.NonCompliantDevices))
	if r.TotalDevices > 0 {
		sb.WriteString(fmt.Sprintf("Compliance Rate: %.1f%%\n\n",
			float64(r.TotalDevices-r.NonCompliantDevices)/float64(r.TotalDevices)*100))
	}

	critical, high, medium, low := r.countBySeverity()
	sb.WriteString(report.FormatFindingSummary(critical, high, medium, low))

	for i, d := range r.Devices {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(d.FormatText())
	}

	return sb.String()
}

func (r *ComplianceReport) countBySeverity() (critical, high, medium, low int) {
	for _, d := range r.Devices {
		c, h, m, l := report.CountBySeverity(d.Findings())
		critical += c
		high += h
		medium += m
		low += l
	}
	return
}

// FormatText generates a formatted text representation of one device's
// compliance results
func (d *DeviceResult) FormatText() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Background(lipgloss.Color("236")).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	divider := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render("───────────────────────────────────────────────────────────────────────────────")

	sb.WriteString(divider + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Device: %s", d.Name)) + "\n\n")
	if d.Source != "" {
		sb.WriteString(labelStyle.Render("Source:  ") + valueStyle.Render(d.Source) + "\n")
	}

	status := "compliant"
	if !d.Compliant() {
		status = "drift detected"
	}
	sb.WriteString(labelStyle.Render("Status:  ") + valueStyle.Render(status) + "\n\n")

	for _, cr := range d.Checks {
		sb.WriteString(cr.FormatText())
	}

	return sb.String()
}

// FormatText generates a formatted text representation of one check result
func (cr *CheckResult) FormatText() string {
	var sb strings.Builder

	checkStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("cyan"))

	sb.WriteString(checkStyle.Render(fmt.Sprintf("Check: %s", cr.Check)) + "\n")
	if cr.Description != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", cr.Description))
	}
	sb.WriteString(report.FormatFindings(cr.Findings))

	if len(cr.PushCommands) > 0 {
		sb.WriteString("Commands to push:\n")
		for _, cmd := range cr.PushCommands {
			sb.WriteString(fmt.Sprintf("  %s\n", cmd))
		}
	}
	if len(cr.ClearCommands) > 0 {
		sb.WriteString("Commands to clear:\n")
		for _, cmd := range cr.ClearCommands {
			sb.WriteString(fmt.Sprintf("  %s\n", cmd))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatJSON generates JSON output of the compliance report
func (r *ComplianceReport) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// FormatYAML generates YAML output of the compliance report
func (r *ComplianceReport) FormatYAML() (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}
