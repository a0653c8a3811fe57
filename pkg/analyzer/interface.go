package analyzer

import (
	"context"
)

// ConfigAnalyzer defines the interface for auditing device configurations for compliance
type ConfigAnalyzer interface {
	// Analyze performs compliance analysis on the specified configuration sources
	Analyze(ctx context.Context, sources []string) error

	// GenerateReport generates a formatted report of the compliance analysis
	GenerateReport() (string, error)

	// GetFindingCount returns the number of non-compliant findings detected
	GetFindingCount() int
}

// Rule defines the interface for compliance rule configurations
type Rule interface {
	// GetName returns the name/identifier of the rule
	GetName() string

	// Validate checks if the rule configuration is valid
	Validate() error
}
