package docs

import (
	"fmt"
	"slices"
	"strings"
)

// Diff is a unified diff between a doc's on-disk content and the content a
// generation run would write.
type Diff struct {
	// Path is the doc path, used for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines the run would add.
	Additions int

	// Deletions is the number of lines the run would remove.
	Deletions int
}

// DiffHunk is one hunk of a unified diff.
type DiffHunk struct {
	// CurrentStart is the 1-based line the hunk starts at on disk.
	CurrentStart int

	// CurrentCount is the number of on-disk lines in this hunk.
	CurrentCount int

	// WantStart is the 1-based line the hunk starts at in the generated
	// content.
	WantStart int

	// WantCount is the number of generated lines in this hunk.
	WantCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine is a single line within a hunk.
type DiffLine struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind DiffLineKind

	// Content is the line content without the diff prefix.
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line present only in the generated content.
	DiffLineAdd

	// DiffLineRemove is a line present only on disk.
	DiffLineRemove
)

// diffContextLines is the number of context lines shown around changes.
const diffContextLines = 3

// Unified diffs a doc's on-disk content against the content a run would
// write. Returns nil when the two already agree.
func Unified(path string, current, want []byte) *Diff {
	currentLines := diffSplit(current)
	wantLines := diffSplit(want)
	if slices.Equal(currentLines, wantLines) {
		return nil
	}

	hunks := diffHunks(currentLines, wantLines)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				d.Additions++
			case DiffLineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.CurrentStart, hunk.CurrentCount,
			hunk.WantStart, hunk.WantCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// diffSplit splits content into lines, dropping the trailing newline's empty
// remainder so a final newline does not count as an extra line.
func diffSplit(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

type diffOp struct {
	kind    DiffLineKind
	content string
}

func diffHunks(current, want []string) []DiffHunk {
	return groupHunks(diffOps(current, want))
}

// diffOps walks both line slices against their longest common subsequence,
// emitting context, remove, and add operations in order.
func diffOps(current, want []string) []diffOp {
	lcs := commonSubsequence(current, want)

	var ops []diffOp
	ci, wi, li := 0, 0, 0

	for ci < len(current) || wi < len(want) {
		if li < len(lcs) && ci < len(current) && wi < len(want) &&
			current[ci] == lcs[li] && want[wi] == lcs[li] {
			ops = append(ops, diffOp{kind: DiffLineContext, content: current[ci]})
			ci++
			wi++
			li++
			continue
		}

		for ci < len(current) && (li >= len(lcs) || current[ci] != lcs[li]) {
			ops = append(ops, diffOp{kind: DiffLineRemove, content: current[ci]})
			ci++
		}

		for wi < len(want) && (li >= len(lcs) || want[wi] != lcs[li]) {
			ops = append(ops, diffOp{kind: DiffLineAdd, content: want[wi]})
			wi++
		}
	}

	return ops
}

// groupHunks groups operations into hunks, merging change spans whose
// context windows would overlap.
func groupHunks(ops []diffOp) []DiffHunk {
	type span struct {
		start, end int
	}

	var spans []span
	open := -1
	for i, op := range ops {
		if op.kind != DiffLineContext {
			if open < 0 {
				open = i
			}
			continue
		}
		if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []DiffHunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= diffContextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

// buildHunk builds a single hunk from a range of change operations,
// expanded to include surrounding context.
func buildHunk(ops []diffOp, changeStart, changeEnd int) DiffHunk {
	start := max(changeStart-diffContextLines, 0)
	end := min(changeEnd+diffContextLines, len(ops))

	hunk := DiffHunk{CurrentStart: 1, WantStart: 1}
	for _, op := range ops[:start] {
		if op.kind != DiffLineAdd {
			hunk.CurrentStart++
		}
		if op.kind != DiffLineRemove {
			hunk.WantStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: op.kind, Content: op.content})
		switch op.kind {
		case DiffLineContext:
			hunk.CurrentCount++
			hunk.WantCount++
		case DiffLineRemove:
			hunk.CurrentCount++
		case DiffLineAdd:
			hunk.WantCount++
		}
	}

	return hunk
}

// commonSubsequence computes the longest common subsequence of two line
// slices with the classic DP table.
func commonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	length := dp[len(a)][len(b)]
	if length == 0 {
		return nil
	}

	lcs := make([]string, length)
	i, j, k := len(a), len(b), length-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			lcs[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}

	return lcs
}
