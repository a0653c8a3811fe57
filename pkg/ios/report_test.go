package ios

import (
	"strings"
	"testing"
	"time"

	"github.com/jessequinn/config-compliance-cli/pkg/report"
)

func testReport(timestamp time.Time) *ComplianceReport {
	rep := &ComplianceReport{Timestamp: timestamp}
	rep.Add(&DeviceResult{
		Name:   "sw1",
		Source: "configs/sw1.txt",
		Checks: []CheckResult{
			{
				Check:     "ntp",
				Severity:  "high",
				Compliant: false,
				Missing:   []string{"ntp server 10.0.0.1"},
				Findings: []report.Finding{
					{Line: "ntp server 10.0.0.1", Action: report.ActionPush, Severity: "high"},
				},
				PushCommands: []string{"ntp server 10.0.0.1"},
			},
			{
				Check:     "banner",
				Severity:  "low",
				Compliant: true,
			},
		},
	})
	rep.Add(&DeviceResult{
		Name: "sw2",
		Checks: []CheckResult{
			{Check: "ntp", Severity: "high", Compliant: true},
		},
	})
	return rep
}

func TestComplianceReport_Add(t *testing.T) {
	rep := testReport(time.Now())

	if rep.TotalDevices != 2 {
		t.Errorf("TotalDevices = %d, want 2", rep.TotalDevices)
	}
	if rep.NonCompliantDevices != 1 {
		t.Errorf("NonCompliantDevices = %d, want 1", rep.NonCompliantDevices)
	}
	if got := rep.FindingCount(); got != 1 {
		t.Errorf("FindingCount() = %d, want 1", got)
	}
}

func TestComplianceReport_FormatText(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rep := testReport(timestamp)

	got := rep.FormatText()

	want := []string{
		"IOS Configuration Compliance Report",
		"Total Devices: 2",
		"Devices with Drift: 1",
		"Compliance Rate: 50.0%",
		"Finding Summary:",
		"HIGH:     1",
		"Device: sw1",
		"drift detected",
		"Check: ntp",
		"missing from device",
		"Commands to push:",
		"ntp server 10.0.0.1",
		"Device: sw2",
		"compliant",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("FormatText() missing %q in output:\n%s", w, got)
		}
	}
}

func TestComplianceReport_FormatJSON(t *testing.T) {
	rep := testReport(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	got, err := rep.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON() error = %v", err)
	}
	for _, w := range []string{`"total_devices": 2`, `"non_compliant_devices": 1`, `"ntp server 10.0.0.1"`} {
		if !strings.Contains(got, w) {
			t.Errorf("FormatJSON() missing %q in output:\n%s", w, got)
		}
	}
}

func TestComplianceReport_FormatYAML(t *testing.T) {
	rep := testReport(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	got, err := rep.FormatYAML()
	if err != nil {
		t.Fatalf("FormatYAML() error = %v", err)
	}
	for _, w := range []string{"total_devices: 2", "non_compliant_devices: 1", "check: ntp"} {
		if !strings.Contains(got, w) {
			t.Errorf("FormatYAML() missing %q in output:\n%s", w, got)
		}
	}
}
