// Package compare implements the configuration compliance diff engine:
// given a device's running configuration and an already-rendered expected
// configuration, it determines which expected lines are missing from the
// device and which device lines are not covered by the expected text.
//
// Comparison is set-based, not positional: IOS accepts most configuration
// statements in any order within a scope, so correctness depends on line
// membership, not line position. Every invocation is a pure computation over
// its inputs; the engine keeps no state between calls and concurrent
// invocations need no coordination.
package compare

import "fmt"

// Mode selects how the actual configuration is scoped before comparison.
type Mode int

const (
	// ModeLine treats the whole normalized configuration as one flat scope.
	ModeLine Mode = iota
	// ModeBlock compares each parent stanza matching the search-start
	// pattern independently, child lines only.
	ModeBlock
)

// String returns the configuration tag for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeBlock:
		return "block"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a configuration tag into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "line":
		return ModeLine, nil
	case "block":
		return ModeBlock, nil
	default:
		return 0, &InvalidModeError{Reason: fmt.Sprintf("unsupported search mode %q, valid modes are line, block", s)}
	}
}

// Method selects how two normalized lines are matched against each other.
// New match semantics are added as new variants, never as flags on an
// existing one.
type Method int

const (
	// MethodEquals matches on exact string equality after normalization.
	MethodEquals Method = iota
)

// String returns the configuration tag for the method.
func (m Method) String() string {
	switch m {
	case MethodEquals:
		return "equals"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod converts a configuration tag into a Method. The empty string
// selects MethodEquals.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "equals":
		return MethodEquals, nil
	default:
		return 0, &InvalidModeError{Reason: fmt.Sprintf("unsupported compare method %q, valid methods are equals", s)}
	}
}

// Request describes a single comparison of an actual configuration against
// an expected one.
type Request struct {
	// Actual is the device's running configuration text.
	Actual string
	// Expected is the already-rendered expected configuration text.
	Expected string

	Mode   Mode
	Method Method

	// SearchStart is the parent-line pattern. Required in block mode;
	// ignored in line mode. Callers control anchoring with pattern syntax,
	// e.g. a trailing $.
	SearchStart string
	// SearchEnd optionally terminates a block early when a line matches it,
	// e.g. ^! for the IOS section separator.
	SearchEnd string

	// IgnoreLines holds patterns whose matching lines are removed from both
	// sides before comparison, e.g. volatile description lines.
	IgnoreLines []string

	// StrictOrder compares lines positionally instead of by membership.
	StrictOrder bool
	// KeepBlockStart includes the matched parent line among the compared
	// child lines.
	KeepBlockStart bool
	// KeepBlockEnd includes the matched end line among the compared child
	// lines. Only meaningful together with SearchEnd.
	KeepBlockEnd bool
}

// DiffResult holds the outcome of one comparison scope.
//
// ExpectedCommands are lines present in the expected configuration but
// missing from the actual one, in the expected text's original order.
// NotExpectedCommands are lines present in the actual configuration but not
// found in the expected one, in the actual text's original order. Duplicate
// source lines are preserved; membership is set-based, so one occurrence on
// the other side satisfies every copy.
type DiffResult struct {
	ExpectedCommands    []string `json:"expected_commands" yaml:"expected_commands"`
	NotExpectedCommands []string `json:"not_expected_commands" yaml:"not_expected_commands"`
}

// Compliant reports whether the scope already matches the expected
// configuration.
func (r DiffResult) Compliant() bool {
	return len(r.ExpectedCommands) == 0 && len(r.NotExpectedCommands) == 0
}

// BlockDiff is the DiffResult for one parent stanza, tagged with the owning
// parent line so the caller can scope push and clear operations to the right
// configuration context.
type BlockDiff struct {
	Parent     string `json:"parent" yaml:"parent"`
	DiffResult `yaml:",inline"`
}

// Result is the outcome of a full comparison request. In line mode the
// embedded DiffResult is the whole-scope diff and Blocks is nil; in block
// mode the embedded DiffResult is the union over all blocks and Blocks holds
// the per-parent breakdown.
type Result struct {
	DiffResult `yaml:",inline"`

	Blocks []BlockDiff `json:"blocks,omitempty" yaml:"blocks,omitempty"`

	// AllCommands is the full normalized expected line list, the
	// convergence target for the scope.
	AllCommands []string `json:"all_commands" yaml:"all_commands"`
}
