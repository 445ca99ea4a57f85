package match

import (
	"reflect"
	"regexp"
	"testing"
)

func groupsOf(patterns ...string) []Group {
	groups := make([]Group, len(patterns))
	for i, p := range patterns {
		groups[i] = Group{Priority: i + 1, Pattern: regexp.MustCompile(p)}
	}
	return groups
}

func TestFindPriorityOverlap(t *testing.T) {
	// The higher-priority digits group claims "123"; the broader group can
	// then only match the text around it.
	groups := groupsOf(`\d+`, `[a-z0-9]+`)
	spans := Find("abc123", groups)

	want := []Span{
		{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 3, Text: "abc", Group: 1},
		{StartLine: 0, StartCol: 3, EndLine: 0, EndCol: 6, Text: "123", Group: 0},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Find() = %+v, want %+v", spans, want)
	}
}

func TestFindClaimedRegionSplitsLaterGroup(t *testing.T) {
	groups := groupsOf(`\d+`, `[ab]+`)
	spans := Find("a1b", groups)

	want := []Span{
		{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 1, Text: "a", Group: 1},
		{StartLine: 0, StartCol: 1, EndLine: 0, EndCol: 2, Text: "1", Group: 0},
		{StartLine: 0, StartCol: 2, EndLine: 0, EndCol: 3, Text: "b", Group: 1},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Find() = %+v, want %+v", spans, want)
	}
}

func TestFindReadingOrder(t *testing.T) {
	// The lower-priority group's match sits on an earlier line; reading
	// order must win over priority order in the result.
	groups := []Group{
		{Priority: 1, Pattern: regexp.MustCompile(`\d+`)},
		{Priority: 2, Pattern: regexp.MustCompile(`[a-z]+`)},
	}
	spans := Find("abc\n123", groups)

	if len(spans) != 2 {
		t.Fatalf("Find() returned %d spans, want 2", len(spans))
	}
	if spans[0].Text != "abc" || spans[0].StartLine != 0 {
		t.Errorf("first span = %+v, want abc on line 0", spans[0])
	}
	if spans[1].Text != "123" || spans[1].StartLine != 1 {
		t.Errorf("second span = %+v, want 123 on line 1", spans[1])
	}
}

func TestFindWideRuneColumns(t *testing.T) {
	// "日本" occupies four display cells, so the match starts at column 5.
	groups := groupsOf(`go\.dev`)
	spans := Find("日本 go.dev", groups)

	if len(spans) != 1 {
		t.Fatalf("Find() returned %d spans, want 1", len(spans))
	}
	sp := spans[0]
	if sp.StartCol != 5 || sp.EndCol != 11 {
		t.Errorf("span columns = %d..%d, want 5..11", sp.StartCol, sp.EndCol)
	}
}

func TestFindMultiLineMatch(t *testing.T) {
	groups := groupsOf(`(?s)a.b`)
	spans := Find("a\nb", groups)

	want := []Span{
		{StartLine: 0, StartCol: 0, EndLine: 1, EndCol: 1, Text: "a\nb", Group: 0},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Find() = %+v, want %+v", spans, want)
	}
}

func TestFindSkipsEmptyMatches(t *testing.T) {
	groups := groupsOf(`x*`)
	if spans := Find("ab", groups); spans != nil {
		t.Errorf("Find() = %+v, want nil", spans)
	}
}

func TestFindDeterministic(t *testing.T) {
	groups := groupsOf(`https?://\S+`, `\w+`)
	text := "visit http://x.test and http://y.test"

	first := Find(text, groups)
	second := Find(text, groups)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Find() differs: %+v vs %+v", first, second)
	}
	if len(first) == 0 {
		t.Fatal("Find() returned no spans")
	}
}

func TestFindEmptyInputs(t *testing.T) {
	if spans := Find("", groupsOf(`\d+`)); spans != nil {
		t.Errorf("Find on empty text = %+v, want nil", spans)
	}
	if spans := Find("abc", nil); spans != nil {
		t.Errorf("Find with no groups = %+v, want nil", spans)
	}
}

func TestFindEqualPriorityKeepsConfigOrder(t *testing.T) {
	groups := []Group{
		{Priority: 1, Pattern: regexp.MustCompile(`ab`)},
		{Priority: 1, Pattern: regexp.MustCompile(`bc`)},
	}
	spans := Find("abc", groups)

	// The first-listed group runs first and claims "ab"; "bc" can no
	// longer match inside the claimed region.
	want := []Span{
		{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: 2, Text: "ab", Group: 0},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Find() = %+v, want %+v", spans, want)
	}
}
