package compare

import "strings"

// Normalize splits text into lines, trims leading and trailing whitespace
// from each, and drops the ones that end up empty. Order and duplicates are
// preserved: repeated ACL entries and the like are legitimate configuration.
func Normalize(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// rawLines splits text into lines with indentation intact, dropping only
// blank and whitespace-only lines. Block extraction needs the leading
// whitespace to find child boundaries.
func rawLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(raw, " \t\r"))
	}
	return lines
}
