package compare

import (
	"slices"
	"strings"
)

// PushCommands returns the device commands that add the missing lines, in
// the order they appear in the expected configuration.
func (r DiffResult) PushCommands() []string {
	return slices.Clone(r.ExpectedCommands)
}

// ClearCommands returns the device commands that remove the unexpected
// lines. Each line is negated with a "no " prefix unless it is already
// negated.
func (r DiffResult) ClearCommands() []string {
	if len(r.NotExpectedCommands) == 0 {
		return nil
	}
	cmds := make([]string, 0, len(r.NotExpectedCommands))
	for _, line := range r.NotExpectedCommands {
		if strings.HasPrefix(line, "no ") {
			cmds = append(cmds, line)
		} else {
			cmds = append(cmds, "no "+line)
		}
	}
	return cmds
}

// PushCommands prefixes the owning parent line so the device enters the
// right configuration context before the child lines are applied.
func (b BlockDiff) PushCommands() []string {
	if len(b.ExpectedCommands) == 0 {
		return nil
	}
	return append([]string{b.Parent}, b.DiffResult.PushCommands()...)
}

// ClearCommands prefixes the owning parent line before the negated child
// lines.
func (b BlockDiff) ClearCommands() []string {
	cmds := b.DiffResult.ClearCommands()
	if len(cmds) == 0 {
		return nil
	}
	return append([]string{b.Parent}, cmds...)
}

// PushCommands aggregates push commands across the result: per block, parent
// first, in block order; or the flat line list in line mode.
func (r *Result) PushCommands() []string {
	if len(r.Blocks) == 0 {
		return r.DiffResult.PushCommands()
	}
	var cmds []string
	for _, b := range r.Blocks {
		cmds = append(cmds, b.PushCommands()...)
	}
	return cmds
}

// ClearCommands aggregates clear commands across the result.
func (r *Result) ClearCommands() []string {
	if len(r.Blocks) == 0 {
		return r.DiffResult.ClearCommands()
	}
	var cmds []string
	for _, b := range r.Blocks {
		cmds = append(cmds, b.ClearCommands()...)
	}
	return cmds
}
