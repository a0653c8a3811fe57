package analyzer

import (
	"context"
	"testing"
)

// MockAnalyzer implements ConfigAnalyzer for testing
type MockAnalyzer struct {
	findingCount int
	report       string
	analyzeErr   error
}

func (m *MockAnalyzer) Analyze(ctx context.Context, sources []string) error {
	return m.analyzeErr
}

func (m *MockAnalyzer) GenerateReport() (string, error) {
	return m.report, nil
}

func (m *MockAnalyzer) GetFindingCount() int {
	return m.findingCount
}

// MockRule implements Rule for testing
type MockRule struct {
	name        string
	validateErr error
}

func (m *MockRule) GetName() string {
	return m.name
}

func (m *MockRule) Validate() error {
	return m.validateErr
}

func TestConfigAnalyzer_Interface(t *testing.T) {
	mock := &MockAnalyzer{
		findingCount: 5,
		report:       "Test Report",
	}

	ctx := context.Background()
	err := mock.Analyze(ctx, []string{"configs/sw1.txt"})
	if err != nil {
		t.Errorf("Analyze() failed: %v", err)
	}

	report, err := mock.GenerateReport()
	if err != nil {
		t.Errorf("GenerateReport() failed: %v", err)
	}
	if report != "Test Report" {
		t.Errorf("GenerateReport() = %q, want %q", report, "Test Report")
	}

	count := mock.GetFindingCount()
	if count != 5 {
		t.Errorf("GetFindingCount() = %d, want %d", count, 5)
	}
}

func TestRule_Interface(t *testing.T) {
	mock := &MockRule{
		name: "ntp-servers",
	}

	name := mock.GetName()
	if name != "ntp-servers" {
		t.Errorf("GetName() = %q, want %q", name, "ntp-servers")
	}

	err := mock.Validate()
	if err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}
