package ios

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/jessequinn/config-compliance-cli/pkg/report"
)

func TestCheckValidate(t *testing.T) {
	tests := []struct {
		name    string
		check   Check
		wantErr bool
	}{
		{
			name: "valid line check",
			check: Check{
				Name:       "ntp",
				SearchMode: "line",
				Expected:   "ntp server 10.0.0.1",
			},
		},
		{
			name: "valid block check",
			check: Check{
				Name:        "uplink",
				SearchMode:  "block",
				SearchStart: "^interface Gi0/1$",
				Expected:    "description uplink",
			},
		},
		{
			name: "missing name",
			check: Check{
				SearchMode: "line",
				Expected:   "x",
			},
			wantErr: true,
		},
		{
			name: "missing expected",
			check: Check{
				Name:       "ntp",
				SearchMode: "line",
			},
			wantErr: true,
		},
		{
			name: "expected and expected_file both set",
			check: Check{
				Name:         "ntp",
				SearchMode:   "line",
				Expected:     "x",
				ExpectedFile: "x.txt",
			},
			wantErr: true,
		},
		{
			name: "block mode without search start",
			check: Check{
				Name:       "uplink",
				SearchMode: "block",
				Expected:   "x",
			},
			wantErr: true,
		},
		{
			name: "unknown search mode",
			check: Check{
				Name:       "ntp",
				SearchMode: "global",
				Expected:   "x",
			},
			wantErr: true,
		},
		{
			name: "unknown compare method",
			check: Check{
				Name:          "ntp",
				SearchMode:    "line",
				CompareMethod: "regex",
				Expected:      "x",
			},
			wantErr: true,
		},
		{
			name: "unknown severity",
			check: Check{
				Name:       "ntp",
				SearchMode: "line",
				Expected:   "x",
				Severity:   "urgent",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAnalyzer(t *testing.T) {
	if _, err := NewAnalyzer(nil); err == nil {
		t.Error("NewAnalyzer(nil) error = nil, want error")
	}

	if _, err := NewAnalyzer([]Check{{Name: "bad", SearchMode: "nope", Expected: "x"}}); err == nil {
		t.Error("NewAnalyzer() with invalid check error = nil, want error")
	}

	if _, err := NewAnalyzer([]Check{{Name: "ok", SearchMode: "line", Expected: "x"}}); err != nil {
		t.Errorf("NewAnalyzer() error = %v, want nil", err)
	}
}

func TestAnalyzeDevice(t *testing.T) {
	checks := []Check{
		{
			Name:       "ntp",
			SearchMode: "line",
			Severity:   "high",
			Expected:   "ntp server 10.0.0.1\nntp server 10.0.0.2",
		},
		{
			Name:        "uplink",
			SearchMode:  "block",
			SearchStart: "^interface Gi0/1$",
			Expected:    "interface Gi0/1\n description core uplink\n",
			IgnoreLines: []string{"^switchport "},
		},
	}

	a, err := NewAnalyzer(checks)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	config := `hostname sw1
ntp server 10.0.0.1
ip http server
interface Gi0/1
 description old uplink
 switchport mode trunk
`

	dr, err := a.AnalyzeDevice("sw1", config)
	if err != nil {
		t.Fatalf("AnalyzeDevice() error = %v", err)
	}

	if dr.Compliant() {
		t.Fatal("DeviceResult.Compliant() = true, want drift")
	}
	if len(dr.Checks) != 2 {
		t.Fatalf("len(Checks) = %d, want 2", len(dr.Checks))
	}

	ntp := dr.Checks[0]
	if ntp.Compliant {
		t.Error("ntp check compliant, want drift")
	}
	if !slices.Equal(ntp.Missing, []string{"ntp server 10.0.0.2"}) {
		t.Errorf("ntp Missing = %v, want [ntp server 10.0.0.2]", ntp.Missing)
	}
	if ntp.Severity != "high" {
		t.Errorf("ntp Severity = %q, want high", ntp.Severity)
	}

	uplink := dr.Checks[1]
	if !slices.Equal(uplink.Missing, []string{"description core uplink"}) {
		t.Errorf("uplink Missing = %v, want [description core uplink]", uplink.Missing)
	}
	if !slices.Equal(uplink.Unexpected, []string{"description old uplink"}) {
		t.Errorf("uplink Unexpected = %v, want [description old uplink]", uplink.Unexpected)
	}
	if !slices.Equal(uplink.PushCommands, []string{"interface Gi0/1", "description core uplink"}) {
		t.Errorf("uplink PushCommands = %v", uplink.PushCommands)
	}
	if uplink.Severity != "medium" {
		t.Errorf("uplink Severity = %q, want default medium", uplink.Severity)
	}

	// Block findings carry the owning parent stanza as scope.
	var scoped bool
	for _, f := range uplink.Findings {
		if f.Scope == "interface Gi0/1" && f.Action == report.ActionPush {
			scoped = true
		}
	}
	if !scoped {
		t.Errorf("uplink Findings = %+v, want a push finding scoped to interface Gi0/1", uplink.Findings)
	}
}

func TestAnalyzeDeviceCompliant(t *testing.T) {
	a, err := NewAnalyzer([]Check{
		{Name: "ntp", SearchMode: "line", Expected: "ntp server 10.0.0.1\nhostname sw1"},
	})
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	dr, err := a.AnalyzeDevice("sw1", "hostname sw1\nntp server 10.0.0.1\n")
	if err != nil {
		t.Fatalf("AnalyzeDevice() error = %v", err)
	}
	if !dr.Compliant() {
		t.Errorf("DeviceResult.Compliant() = false, findings: %+v", dr.Findings())
	}
}

func TestAnalyzeFromFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sw1.txt")
	if err := os.WriteFile(path, []byte("hostname sw1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := NewAnalyzer([]Check{
		{Name: "hostname", SearchMode: "line", Expected: "hostname sw1"},
		{Name: "ntp", SearchMode: "line", Expected: "ntp server 10.0.0.1\nhostname sw1", Severity: "low"},
	})
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	if err := a.Analyze(context.Background(), []string{path}); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if got := a.GetFindingCount(); got != 1 {
		t.Errorf("GetFindingCount() = %d, want 1", got)
	}

	rep := a.LastReport()
	if rep == nil || len(rep.Devices) != 1 {
		t.Fatalf("LastReport() = %+v, want one device", rep)
	}
	if rep.Devices[0].Name != "sw1" {
		t.Errorf("device name = %q, want sw1 (derived from file name)", rep.Devices[0].Name)
	}

	out, err := a.GenerateReport()
	if err != nil {
		t.Fatalf("GenerateReport() error = %v", err)
	}
	if out == "" {
		t.Error("GenerateReport() returned empty report")
	}
}

func TestExpectedFromFile(t *testing.T) {
	dir := t.TempDir()
	expectedPath := filepath.Join(dir, "ntp.txt")
	if err := os.WriteFile(expectedPath, []byte("ntp server 10.0.0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := NewAnalyzer([]Check{
		{Name: "ntp", SearchMode: "line", ExpectedFile: expectedPath},
	})
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	dr, err := a.AnalyzeDevice("sw1", "ntp server 10.0.0.1\n")
	if err != nil {
		t.Fatalf("AnalyzeDevice() error = %v", err)
	}
	if !dr.Compliant() {
		t.Errorf("DeviceResult.Compliant() = false, findings: %+v", dr.Findings())
	}
}
