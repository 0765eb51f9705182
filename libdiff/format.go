package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Format renders a line diff with "+ ", "- " and "  " line prefixes,
// coloured when colors is set.
func Format(diffs []diffpatch.Diff, colors bool) string {
	var sb strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors {
				paint = color.GreenString
			}
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors {
				paint = color.RedString
			}
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			sb.WriteString(paint("%s", prefix+ln))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// FormatChanges renders one change per line.
func FormatChanges(changes []Change, colors bool) string {
	var sb strings.Builder
	for _, c := range changes {
		paint := fmt.Sprintf
		if colors {
			switch c.Op {
			case Insert:
				paint = color.GreenString
			case Delete:
				paint = color.RedString
			case Replace:
				paint = color.YellowString
			}
		}
		sb.WriteString(paint("%s", c.String()))
		sb.WriteByte('\n')
	}
	return sb.String()
}
