package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString diffs two strings character by character, line by line when
// both span several lines.
func DiffString(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Lines diffs two texts, such as printed documents, line by line.
func Lines(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	return diffCfg.DiffCharsToLines(diffs, lines)
}

// Changed reports whether diffs holds anything but equal text.
func Changed(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}
