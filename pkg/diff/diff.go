package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated) ..."
)

// Summary counts the lines a diff adds and removes.
type Summary struct {
	Added   int
	Removed int
}

// Empty reports whether the two inputs were identical line for line.
func (s Summary) Empty() bool {
	return s.Added == 0 && s.Removed == 0
}

// Lines diffs two stylesheets line by line and returns a unified-style listing
// with the counts of changed lines. Identical inputs give an empty string.
func Lines(before, after, beforeLabel, afterLabel string) (string, Summary) {
	if before == after {
		return "", Summary{}
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var (
		buf       strings.Builder
		summary   Summary
		written   int
		truncated bool
	)

	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				summary.Removed++
			case diffmatchpatch.DiffInsert:
				summary.Added++
			}
			if written == maxDiffLines {
				truncated = true
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			written++
		}
	}

	if truncated {
		buf.WriteString(truncateMessage)
		buf.WriteByte('\n')
	}

	return buf.String(), summary
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
