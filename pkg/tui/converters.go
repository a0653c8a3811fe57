package tui

import (
	"github.com/jessequinn/config-compliance-cli/pkg/ios"
)

// FromComplianceReport converts an IOS compliance report to TUI format
func FromComplianceReport(rep *ios.ComplianceReport) ReportData {
	devices := make([]DeviceItem, 0, len(rep.Devices))

	for _, d := range rep.Devices {
		item := DeviceItem{
			Name:      d.Name,
			Source:    d.Source,
			Compliant: d.Compliant(),
			Findings:  d.Findings(),
		}
		for _, cr := range d.Checks {
			item.PushCommands = append(item.PushCommands, cr.PushCommands...)
			item.ClearCommands = append(item.ClearCommands, cr.ClearCommands...)
		}
		devices = append(devices, item)
	}

	return ReportData{
		Title:        "IOS Configuration Compliance Report",
		Timestamp:    rep.Timestamp,
		TotalDevices: rep.TotalDevices,
		NonCompliant: rep.NonCompliantDevices,
		Devices:      devices,
	}
}
