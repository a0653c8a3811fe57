package report

import (
	"fmt"
	"strings"
)

// Finding actions.
const (
	ActionPush  = "push"
	ActionClear = "clear"
)

// Finding represents a single configuration line deviating from the expected state
type Finding struct {
	Scope    string `json:"scope,omitempty" yaml:"scope,omitempty"`
	Line     string `json:"line" yaml:"line"`
	Action   string `json:"action" yaml:"action"`
	Severity string `json:"severity" yaml:"severity"`
}

// GetIconForSeverity returns an appropriate text marker for the severity level
func GetIconForSeverity(severity string) string {
	switch severity {
	case "critical":
		return "[!]"
	case "high":
		return "[!]"
	case "medium":
		return "[*]"
	case "low":
		return "[-]"
	default:
		return "[ ]"
	}
}

// CountBySeverity tallies the number of findings by severity level
func CountBySeverity(findings []Finding) (critical, high, medium, low int) {
	for _, f := range findings {
		switch f.Severity {
		case "critical":
			critical++
		case "high":
			high++
		case "medium":
			medium++
		case "low":
			low++
		}
	}
	return
}

// FormatFindingSummary generates a formatted summary of findings by severity
func FormatFindingSummary(critical, high, medium, low int) string {
	var sb strings.Builder
	if critical+high+medium+low > 0 {
		sb.WriteString("Finding Summary:\n")
		if critical > 0 {
			sb.WriteString(fmt.Sprintf("  [!] CRITICAL: %d\n", critical))
		}
		if high > 0 {
			sb.WriteString(fmt.Sprintf("  [!] HIGH:     %d\n", high))
		}
		if medium > 0 {
			sb.WriteString(fmt.Sprintf("  [*] MEDIUM:   %d\n", medium))
		}
		if low > 0 {
			sb.WriteString(fmt.Sprintf("  [-] LOW:      %d\n", low))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatFindings generates formatted text for a list of findings
func FormatFindings(findings []Finding) string {
	var sb strings.Builder
	if len(findings) == 0 {
		sb.WriteString("[OK] Configuration compliant\n")
	} else {
		sb.WriteString(fmt.Sprintf("Findings: %d\n\n", len(findings)))
		for _, f := range findings {
			icon := GetIconForSeverity(f.Severity)
			sb.WriteString(fmt.Sprintf("  %s [%s] %s\n", icon, strings.ToUpper(f.Severity), describeAction(f.Action)))
			if f.Scope != "" {
				sb.WriteString(fmt.Sprintf("     Scope: %s\n", f.Scope))
			}
			sb.WriteString(fmt.Sprintf("     Line:  %s\n", f.Line))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func describeAction(action string) string {
	switch action {
	case ActionPush:
		return "missing from device"
	case ActionClear:
		return "not expected on device"
	default:
		return action
	}
}
