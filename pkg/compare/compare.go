package compare

import (
	"fmt"
	"regexp"
	"strings"
)

// Compare runs one compliance comparison and returns its result. It is the
// single entry point callers use: it validates the request, compiles the
// supplied patterns once, and dispatches to line or block comparison.
func Compare(req Request) (*Result, error) {
	switch req.Method {
	case MethodEquals:
	default:
		return nil, &InvalidModeError{Reason: fmt.Sprintf("unsupported compare method %s", req.Method)}
	}

	ignore, err := compilePatterns(req.IgnoreLines)
	if err != nil {
		return nil, err
	}

	expected := filterLines(Normalize(req.Expected), ignore)

	switch req.Mode {
	case ModeLine:
		actual := filterLines(Normalize(req.Actual), ignore)
		res := &Result{AllCommands: expected}
		res.DiffResult = diffScope(actual, expected, req)
		return res, nil
	case ModeBlock:
		return compareBlocks(req, expected, ignore)
	default:
		return nil, &InvalidModeError{Reason: fmt.Sprintf("unsupported search mode %s", req.Mode)}
	}
}

// compareBlocks extracts the parent stanzas matching the search-start
// pattern from both texts and diffs each pair of blocks independently.
// Blocks are paired by their trimmed parent line; a block present on only
// one side diffs against an empty peer, so a stanza missing from the device
// pushes in full and a stanza absent from the expected text clears in full.
//
// An expected text with no matching parent stanza of its own is treated as
// the flat child-line template for every extracted actual block, which is
// how per-interface templates are usually written.
func compareBlocks(req Request, expected []string, ignore []*regexp.Regexp) (*Result, error) {
	if strings.TrimSpace(req.SearchStart) == "" {
		return nil, &InvalidModeError{Reason: "block mode requires a search start pattern"}
	}

	parent, err := regexp.Compile(req.SearchStart)
	if err != nil {
		return nil, &PatternError{Pattern: req.SearchStart, Err: err}
	}

	opts := BlockOptions{KeepStart: req.KeepBlockStart, KeepEnd: req.KeepBlockEnd}
	if req.SearchEnd != "" {
		end, err := regexp.Compile(req.SearchEnd)
		if err != nil {
			return nil, &PatternError{Pattern: req.SearchEnd, Err: err}
		}
		opts.End = end
	}

	actualBlocks := ExtractBlocks(rawLines(req.Actual), parent, opts)
	expectedBlocks := ExtractBlocks(rawLines(req.Expected), parent, opts)

	actualByParent := make(map[string][]string, len(actualBlocks))
	for _, b := range actualBlocks {
		if _, ok := actualByParent[b.Parent]; !ok {
			actualByParent[b.Parent] = filterLines(b.Children, ignore)
		}
	}

	res := &Result{AllCommands: expected}

	// Expected blocks drive the push ordering.
	seen := make(map[string]struct{}, len(expectedBlocks))
	for _, b := range expectedBlocks {
		if _, ok := seen[b.Parent]; ok {
			continue
		}
		seen[b.Parent] = struct{}{}

		d := diffScope(actualByParent[b.Parent], filterLines(b.Children, ignore), req)
		res.addBlock(BlockDiff{Parent: b.Parent, DiffResult: d})
	}

	// Actual blocks with no expected counterpart: either diff against the
	// flat template, or clear in full.
	for _, b := range actualBlocks {
		if _, ok := seen[b.Parent]; ok {
			continue
		}
		seen[b.Parent] = struct{}{}

		var expectedChildren []string
		if len(expectedBlocks) == 0 {
			expectedChildren = expected
		}
		d := diffScope(filterLines(b.Children, ignore), expectedChildren, req)
		res.addBlock(BlockDiff{Parent: b.Parent, DiffResult: d})
	}

	return res, nil
}

func (r *Result) addBlock(b BlockDiff) {
	r.Blocks = append(r.Blocks, b)
	r.ExpectedCommands = append(r.ExpectedCommands, b.ExpectedCommands...)
	r.NotExpectedCommands = append(r.NotExpectedCommands, b.NotExpectedCommands...)
}

func diffScope(actual, expected []string, req Request) DiffResult {
	if req.StrictOrder {
		return diffStrict(actual, expected)
	}
	return Diff(actual, expected, req.Method)
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &PatternError{Pattern: p, Err: err}
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func filterLines(lines []string, ignore []*regexp.Regexp) []string {
	if len(ignore) == 0 {
		return lines
	}
	var kept []string
	for _, line := range lines {
		ignored := false
		for _, re := range ignore {
			if re.MatchString(line) {
				ignored = true
				break
			}
		}
		if !ignored {
			kept = append(kept, line)
		}
	}
	return kept
}
