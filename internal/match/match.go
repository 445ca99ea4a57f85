// Package match scans a text buffer for selectable spans using prioritized
// regular-expression groups.
package match

import (
	"regexp"
	"sort"

	"github.com/mattn/go-runewidth"
)

// Span is a contiguous region of displayed text matched by a pattern group.
// Lines and columns are zero-based; columns count display cells, so wide
// runes occupy two columns. EndCol is the first cell after the span on
// EndLine. Spans are immutable once computed for a given buffer.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
	Text      string
	Group     int // index of the pattern group that produced this span
}

// Group is one prioritized pattern. Where matches from different groups
// overlap, the group with the lower Priority value wins; equal priorities
// keep their given order.
type Group struct {
	Priority int
	Pattern  *regexp.Regexp
}

// Find runs every group over text and returns the accepted spans in reading
// order (start line, then start column). Groups run from highest to lowest
// priority. Before a group runs, every byte claimed by a higher-priority
// span is masked out with a newline, so a later group can still match the
// text around an earlier span but never across or inside it. Empty matches
// are ignored.
func Find(text string, groups []Group) []Span {
	if text == "" || len(groups) == 0 {
		return nil
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return groups[order[a]].Priority < groups[order[b]].Priority
	})

	lines := newLineIndex(text)

	var claimed []byteRange
	var spans []Span
	for _, gi := range order {
		g := groups[gi]
		if g.Pattern == nil {
			continue
		}
		for _, m := range g.Pattern.FindAllStringIndex(mask(text, claimed), -1) {
			if m[0] == m[1] || overlaps(claimed, m[0], m[1]) {
				continue
			}
			claimed = append(claimed, byteRange{m[0], m[1]})
			sp := Span{Text: text[m[0]:m[1]], Group: gi}
			sp.StartLine, sp.StartCol = lines.position(m[0])
			sp.EndLine, sp.EndCol = lines.position(m[1])
			spans = append(spans, sp)
		}
	}

	sort.Slice(spans, func(a, b int) bool {
		if spans[a].StartLine != spans[b].StartLine {
			return spans[a].StartLine < spans[b].StartLine
		}
		return spans[a].StartCol < spans[b].StartCol
	})
	return spans
}

type byteRange struct {
	start, end int
}

// mask replaces every claimed byte with a newline. Claimed regions always
// cover whole matches, so the result stays valid for offset arithmetic, and
// masked bytes read as line breaks that ordinary patterns cannot cross.
func mask(text string, claimed []byteRange) string {
	if len(claimed) == 0 {
		return text
	}
	b := []byte(text)
	for _, r := range claimed {
		for i := r.start; i < r.end; i++ {
			b[i] = '\n'
		}
	}
	return string(b)
}

func overlaps(claimed []byteRange, start, end int) bool {
	for _, r := range claimed {
		if start < r.end && r.start < end {
			return true
		}
	}
	return false
}

// lineIndex converts byte offsets into (line, display column) positions.
type lineIndex struct {
	text   string
	starts []int
}

func newLineIndex(text string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{text: text, starts: starts}
}

func (ix *lineIndex) position(offset int) (line, col int) {
	line = sort.Search(len(ix.starts), func(i int) bool { return ix.starts[i] > offset }) - 1
	col = runewidth.StringWidth(ix.text[ix.starts[line]:offset])
	return line, col
}
