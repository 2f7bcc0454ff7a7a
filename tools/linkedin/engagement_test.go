package linkedin

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

// perfectPost has a question, a personal phrase, an action word, a paragraph
// break and exactly 1500 characters.
func perfectPost(t *testing.T) string {
	t.Helper()
	base := "When I shared this tip with my team, everything changed.\n\nWhat would you have done?\n\n"
	post := base + strings.Repeat("a", 1500-utf8.RuneCountInString(base))
	if n := utf8.RuneCountInString(post); n != 1500 {
		t.Fatalf("fixture length %d", n)
	}
	return post
}

func TestScoreEngagementPerfect(t *testing.T) {
	score, level, feedback := ScoreEngagement(perfectPost(t))
	if score != 100 {
		t.Errorf("expecting 100, but got %d", score)
	}
	if level != EngagementHigh {
		t.Errorf("expecting HIGH, but got %s", level)
	}
	if len(feedback) != 5 {
		t.Errorf("expecting 5 feedback entries, but got %d", len(feedback))
	}
}

func TestScoreEngagementEmpty(t *testing.T) {
	score, level, feedback := ScoreEngagement("")
	if score != 0 {
		t.Errorf("expecting 0, but got %d", score)
	}
	if level != EngagementLow {
		t.Errorf("expecting LOW, but got %s", level)
	}
	want := []string{
		"❌ No questions found - add questions to encourage engagement",
		"⚠️ Consider adding personal experience or story",
		"⚠️ Consider adding actionable tips or insights",
		"❌ Needs better paragraph formatting",
		"❌ Length needs adjustment",
	}
	if len(feedback) != len(want) {
		t.Fatalf("expecting %d feedback entries, but got %d", len(want), len(feedback))
	}
	for i, line := range want {
		if feedback[i] != line {
			t.Errorf("feedback[%d]: expecting %q, but got %q", i, line, feedback[i])
		}
	}
}

func TestScoreEngagementLevels(t *testing.T) {
	cases := []struct {
		score int
		level EngagementLevel
	}{
		{100, EngagementHigh},
		{80, EngagementHigh},
		{79, EngagementMediumHigh},
		{60, EngagementMediumHigh},
		{59, EngagementMedium},
		{40, EngagementMedium},
		{39, EngagementLow},
		{0, EngagementLow},
	}
	for _, c := range cases {
		if got := engagementLevel(c.score); got != c.level {
			t.Errorf("score %d: expecting %s, but got %s", c.score, c.level, got)
		}
	}
}

func TestEngagementCheckerReport(t *testing.T) {
	ctx := context.Background()
	tool := NewEngagementChecker()
	out, err := tool.Run(ctx, NewEngagementInput(perfectPost(t)))
	if err != nil {
		t.Fatal(err)
	}
	report := out.String()
	if !strings.HasPrefix(report, "Engagement Score: 100/100 (HIGH)\n\nFeedback:\n") {
		t.Errorf("unexpected report header: %q", report)
	}
	if got := len(strings.Split(report, "\n")); got != 8 {
		t.Errorf("expecting 8 report lines, but got %d", got)
	}
}
