package compare

import (
	"regexp"
	"strings"
)

// Block is one parent stanza and its indented child lines. Parent and
// Children are stored trimmed.
type Block struct {
	Parent   string
	Children []string
}

// BlockOptions adjusts how ExtractBlocks delimits and populates blocks.
type BlockOptions struct {
	// End terminates a block when a line matches it, regardless of
	// indentation.
	End *regexp.Regexp
	// KeepStart includes the parent line in Children.
	KeepStart bool
	// KeepEnd includes the matched end line in Children.
	KeepEnd bool
}

// ExtractBlocks scans raw (indentation-preserving) config lines for parents
// matching the given pattern. Patterns are matched against the trimmed line
// content; anchoring is up to the caller's pattern syntax. A block's children
// are every following line with strictly greater leading whitespace than the
// parent, up to the first line at the same or lesser indentation, the next
// parent match, a matching end line, or end of input.
//
// No matching parent is not an error: it is the normal "not configured yet"
// case and yields an empty block set.
func ExtractBlocks(lines []string, parent *regexp.Regexp, opts BlockOptions) []Block {
	var blocks []Block

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !parent.MatchString(trimmed) {
			continue
		}

		depth := indentOf(lines[i])
		block := Block{Parent: trimmed}
		if opts.KeepStart {
			block.Children = append(block.Children, trimmed)
		}

		j := i + 1
		for ; j < len(lines); j++ {
			next := strings.TrimSpace(lines[j])
			if opts.End != nil && opts.End.MatchString(next) {
				if opts.KeepEnd {
					block.Children = append(block.Children, next)
				}
				break
			}
			if indentOf(lines[j]) <= depth || parent.MatchString(next) {
				break
			}
			block.Children = append(block.Children, next)
		}

		blocks = append(blocks, block)
		// Resume at the boundary line; it may itself start the next block.
		i = j - 1
	}

	return blocks
}

// indentOf counts leading whitespace characters.
func indentOf(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}
