package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jessequinn/config-compliance-cli/pkg/report"
)

// DeviceItem represents one audited device for TUI display
type DeviceItem struct {
	Name          string
	Source        string
	Compliant     bool
	Findings      []report.Finding
	PushCommands  []string
	ClearCommands []string
}

// ReportData holds the complete compliance report data for TUI
type ReportData struct {
	Title        string
	Timestamp    time.Time
	TotalDevices int
	NonCompliant int
	Devices      []DeviceItem
}

// Run starts the TUI with the provided report data
func Run(data ReportData) error {
	model := NewModel(data.Title, buildTabs(data))
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// buildTabs creates tabs from report data
func buildTabs(data ReportData) []Tab {
	return []Tab{
		{Title: "Overview", Content: buildOverviewTab(data)},
		{Title: "Missing", Content: buildActionTab(data, report.ActionPush)},
		{Title: "Unexpected", Content: buildActionTab(data, report.ActionClear)},
		{Title: "Commands", Content: buildCommandsTab(data)},
	}
}

// buildOverviewTab creates the overview tab content
func buildOverviewTab(data ReportData) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("cyan")).
		Underline(true).
		MarginTop(1).
		MarginBottom(1)

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Width(25)

	sb.WriteString(titleStyle.Render(data.Title) + "\n\n")
	sb.WriteString(labelStyle.Render("Generated:") + infoStyle.Render(data.Timestamp.Format(time.RFC3339)) + "\n")
	sb.WriteString(labelStyle.Render("Total Devices:") + infoStyle.Render(fmt.Sprintf("%d", data.TotalDevices)) + "\n")
	sb.WriteString(labelStyle.Render("Devices with Drift:") + infoStyle.Render(fmt.Sprintf("%d", data.NonCompliant)) + "\n")

	if data.TotalDevices > 0 {
		complianceRate := float64(data.TotalDevices-data.NonCompliant) / float64(data.TotalDevices) * 100
		complianceStyle := lipgloss.NewStyle().Bold(true)
		if complianceRate >= 90 {
			complianceStyle = complianceStyle.Foreground(lipgloss.Color("46"))
		} else if complianceRate >= 70 {
			complianceStyle = complianceStyle.Foreground(lipgloss.Color("220"))
		} else {
			complianceStyle = complianceStyle.Foreground(lipgloss.Color("196"))
		}
		sb.WriteString(labelStyle.Render("Compliance Rate:") + complianceStyle.Render(fmt.Sprintf("%.1f%%", complianceRate)) + "\n\n")
	}

	var findings []report.Finding
	for _, d := range data.Devices {
		findings = append(findings, d.Findings...)
	}
	critical, high, medium, low := report.CountBySeverity(findings)
	sb.WriteString(titleStyle.Render("Finding Summary") + "\n\n")
	sb.WriteString(report.FormatFindingSummary(critical, high, medium, low))

	for _, d := range data.Devices {
		status := "compliant"
		if !d.Compliant {
			status = fmt.Sprintf("%d findings", len(d.Findings))
		}
		sb.WriteString(labelStyle.Render(d.Name+":") + infoStyle.Render(status) + "\n")
	}

	return sb.String()
}

// buildActionTab lists findings with the given action across all devices
func buildActionTab(data ReportData, action string) string {
	var sb strings.Builder

	deviceStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	scopeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	empty := true
	for _, d := range data.Devices {
		var lines []string
		for _, f := range d.Findings {
			if f.Action != action {
				continue
			}
			line := "  " + f.Line
			if f.Scope != "" {
				line += scopeStyle.Render("  (" + f.Scope + ")")
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}
		empty = false
		sb.WriteString(deviceStyle.Render(d.Name) + "\n")
		sb.WriteString(strings.Join(lines, "\n") + "\n\n")
	}

	if empty {
		return "\n  Nothing to report.\n"
	}
	return sb.String()
}

// buildCommandsTab lists the derived push and clear commands per device
func buildCommandsTab(data ReportData) string {
	var sb strings.Builder

	deviceStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	empty := true
	for _, d := range data.Devices {
		if len(d.PushCommands) == 0 && len(d.ClearCommands) == 0 {
			continue
		}
		empty = false

		sb.WriteString(deviceStyle.Render(d.Name) + "\n")
		if len(d.PushCommands) > 0 {
			sb.WriteString(sectionStyle.Render("  push:") + "\n")
			for _, cmd := range d.PushCommands {
				sb.WriteString("    " + cmd + "\n")
			}
		}
		if len(d.ClearCommands) > 0 {
			sb.WriteString(sectionStyle.Render("  clear:") + "\n")
			for _, cmd := range d.ClearCommands {
				sb.WriteString("    " + cmd + "\n")
			}
		}
		sb.WriteString("\n")
	}

	if empty {
		return "\n  All devices converged; no commands required.\n"
	}
	return sb.String()
}
