package compare

import "slices"

// Diff computes the two-way set difference between actual and expected
// lines. ExpectedCommands are the expected lines, in expected order, whose
// normalized form does not occur anywhere in actual; NotExpectedCommands are
// the actual lines, in actual order, absent from expected. Inputs must
// already be normalized.
func Diff(actual, expected []string, method Method) DiffResult {
	switch method {
	case MethodEquals:
		return diffEquals(actual, expected)
	default:
		// Unknown methods are rejected by Compare before reaching here.
		return DiffResult{}
	}
}

func diffEquals(actual, expected []string) DiffResult {
	actualSet := lineSet(actual)
	expectedSet := lineSet(expected)

	var res DiffResult
	for _, line := range expected {
		if _, ok := actualSet[line]; !ok {
			res.ExpectedCommands = append(res.ExpectedCommands, line)
		}
	}
	for _, line := range actual {
		if _, ok := expectedSet[line]; !ok {
			res.NotExpectedCommands = append(res.NotExpectedCommands, line)
		}
	}
	return res
}

// diffStrict compares positionally. Pairwise-equal lines are satisfied; a
// pairwise mismatch within the edit-distance threshold reports just that
// pair, while a mismatch beyond it (or a length mismatch) means the scope
// has diverged structurally and both sides are reported in full.
func diffStrict(actual, expected []string) DiffResult {
	full := func() DiffResult {
		return DiffResult{
			ExpectedCommands:    slices.Clone(expected),
			NotExpectedCommands: slices.Clone(actual),
		}
	}

	if len(actual) != len(expected) {
		return full()
	}

	var res DiffResult
	for i := range actual {
		if actual[i] == expected[i] {
			continue
		}
		if levenshtein(actual[i], expected[i]) > editDistanceThreshold {
			return full()
		}
		res.ExpectedCommands = append(res.ExpectedCommands, expected[i])
		res.NotExpectedCommands = append(res.NotExpectedCommands, actual[i])
	}
	return res
}

func lineSet(lines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		set[line] = struct{}{}
	}
	return set
}

// editDistanceThreshold separates an in-place edit of one statement from a
// structural insertion or removal when comparing in strict order.
const editDistanceThreshold = 6

// levenshtein returns the edit distance between s and t.
func levenshtein(s, t string) int {
	if s == t {
		return 0
	}

	sr := []rune(s)
	tr := []rune(t)
	if len(sr) == 0 {
		return len(tr)
	}
	if len(tr) == 0 {
		return len(sr)
	}

	prev := make([]int, len(tr)+1)
	curr := make([]int, len(tr)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(sr); i++ {
		curr[0] = i
		for j := 1; j <= len(tr); j++ {
			cost := 1
			if sr[i-1] == tr[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(tr)]
}
