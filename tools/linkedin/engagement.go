package linkedin

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// EngagementLevel buckets an engagement score
type EngagementLevel string

const (
	EngagementHigh       EngagementLevel = "HIGH"
	EngagementMediumHigh EngagementLevel = "MEDIUM-HIGH"
	EngagementMedium     EngagementLevel = "MEDIUM"
	EngagementLow        EngagementLevel = "LOW"
)

// ScoreEngagement runs five independent weighted checks over the post and
// returns the additive score, its level and one feedback line per check in
// fixed order. The weights (20+25+20+15+20) sum to exactly 100; adding a
// check requires re-balancing them, there is no clamp.
func ScoreEngagement(content string) (int, EngagementLevel, []string) {
	score := 0
	feedback := make([]string, 0, 5)
	contentLower := strings.ToLower(content)

	if strings.Contains(content, "?") {
		score += 20
		feedback = append(feedback, "✅ Contains questions (encourages comments)")
	} else {
		feedback = append(feedback, "❌ No questions found - add questions to encourage engagement")
	}

	if containsAnyFold(contentLower, personalIndicators) {
		score += 25
		feedback = append(feedback, "✅ Includes personal experience (builds connection)")
	} else {
		feedback = append(feedback, "⚠️ Consider adding personal experience or story")
	}

	if containsAnyFold(contentLower, actionWords) {
		score += 20
		feedback = append(feedback, "✅ Contains actionable content")
	} else {
		feedback = append(feedback, "⚠️ Consider adding actionable tips or insights")
	}

	if strings.Contains(content, "\n\n") {
		score += 15
		feedback = append(feedback, "✅ Good paragraph breaks")
	} else {
		feedback = append(feedback, "❌ Needs better paragraph formatting")
	}

	if length := Length(content); length >= 1300 && length <= 3000 {
		score += 20
		feedback = append(feedback, "✅ Optimal length")
	} else {
		feedback = append(feedback, "❌ Length needs adjustment")
	}

	return score, engagementLevel(score), feedback
}

func engagementLevel(score int) EngagementLevel {
	switch {
	case score >= 80:
		return EngagementHigh
	case score >= 60:
		return EngagementMediumHigh
	case score >= 40:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// containsAnyFold reports whether any needle occurs in the already
// lower-cased haystack, matching case-insensitively.
func containsAnyFold(haystackLower string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystackLower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// EngagementInput is the input schema of the engagement checker
type EngagementInput struct {
	schema.Base
	// Content the LinkedIn post text to analyze
	Content string `json:"content" jsonschema:"title=content,description=The LinkedIn post content to analyze." validate:"required"`
}

func NewEngagementInput(content string) *EngagementInput {
	return &EngagementInput{Content: content}
}

// EngagementOutput is the output schema of the engagement checker
type EngagementOutput struct {
	schema.Base
	// Score additive engagement score, 0-100
	Score int `json:"score" jsonschema:"title=score,description=Engagement score between 0 and 100."`
	// Level engagement level bucket
	Level EngagementLevel `json:"level" jsonschema:"title=level,description=Engagement level bucket."`
	// Feedback one line per check, in fixed check order
	Feedback []string `json:"feedback" jsonschema:"title=feedback,description=One feedback line per check."`
}

func (s EngagementOutput) String() string {
	return fmt.Sprintf("Engagement Score: %d/100 (%s)\n\nFeedback:\n%s", s.Score, s.Level, strings.Join(s.Feedback, "\n"))
}

// EngagementChecker analyzes content for engagement potential and provides a score
type EngagementChecker struct {
	Config
}

func NewEngagementChecker(opts ...Option) *EngagementChecker {
	ret := new(EngagementChecker)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("CheckEngagementPotential")
	}
	if ret.Description() == "" {
		ret.SetDescription("Analyze content for engagement potential and provide a score.")
	}
	return ret
}

// Run executes the engagement analysis with the given parameters
func (t *EngagementChecker) Run(ctx context.Context, input *EngagementInput) (*EngagementOutput, error) {
	t.OnStart(ctx, t, input)
	score, level, feedback := ScoreEngagement(input.Content)
	out := &EngagementOutput{
		Score:    score,
		Level:    level,
		Feedback: feedback,
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *EngagementChecker) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*EngagementInput)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
