package linkedin

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// ValidateFormatting runs six structural checks over the post and returns
// the additive score (max 100) plus one feedback line per check in fixed
// order: line length, hook, white space, call to action, PS section and the
// 2,500 character limit.
func ValidateFormatting(content string) (int, []string) {
	lines := strings.Split(content, "\n")
	score := 0
	feedback := make([]string, 0, 6)

	longLines := 0
	for _, line := range lines {
		if Length(line) > 80 && strings.TrimSpace(line) != "" {
			longLines++
		}
	}
	// A couple of long lines are tolerated
	if longLines > 2 {
		feedback = append(feedback, "❌ Too many long lines. Break thoughts into shorter lines (max 80 chars)")
	} else {
		score += 20
		feedback = append(feedback, "✅ Good line length - thoughts broken into digestible pieces")
	}

	if len(lines) > 0 && Length(lines[0]) < 60 {
		score += 20
		feedback = append(feedback, "✅ Strong hook - first line is concise and impactful")
	} else {
		feedback = append(feedback, "❌ Hook too long - first line should be under 60 characters")
	}

	blankLines := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blankLines++
		}
	}
	if blankLines >= 2 {
		score += 15
		feedback = append(feedback, "✅ Good use of white space between sections")
	} else {
		feedback = append(feedback, "❌ Need more white space - add empty lines between sections")
	}

	if containsAnyFold(strings.ToLower(content), ctaIndicators) {
		score += 20
		feedback = append(feedback, "✅ Clear call-to-action present")
	} else {
		feedback = append(feedback, "❌ Missing call-to-action - add questions or engagement prompts")
	}

	if strings.Contains(content, "PS:") || strings.Contains(content, "P.S.") {
		score += 15
		feedback = append(feedback, "✅ PS section included")
	} else {
		feedback = append(feedback, "❌ Missing PS section - add postscript for extra engagement")
	}

	if Length(content) <= 2500 {
		score += 10
		feedback = append(feedback, "✅ Under 2,500 character limit")
	} else {
		feedback = append(feedback, "❌ Over 2,500 character limit - needs to be shortened")
	}

	return score, feedback
}

// FormattingInput is the input schema of the formatting validator
type FormattingInput struct {
	schema.Base
	// Content the LinkedIn post text to validate
	Content string `json:"content" jsonschema:"title=content,description=The LinkedIn post content to validate." validate:"required"`
}

func NewFormattingInput(content string) *FormattingInput {
	return &FormattingInput{Content: content}
}

// FormattingOutput is the output schema of the formatting validator
type FormattingOutput struct {
	schema.Base
	// Score additive formatting score, 0-100
	Score int `json:"score" jsonschema:"title=score,description=Formatting score between 0 and 100."`
	// Feedback one line per check, in fixed check order
	Feedback []string `json:"feedback" jsonschema:"title=feedback,description=One feedback line per check."`
}

func (s FormattingOutput) String() string {
	return fmt.Sprintf("Formatting Score: %d/100\n\nFormatting Analysis:\n%s", s.Score, strings.Join(s.Feedback, "\n"))
}

// FormatValidator validates that a LinkedIn post follows the required formatting structure
type FormatValidator struct {
	Config
}

func NewFormatValidator(opts ...Option) *FormatValidator {
	ret := new(FormatValidator)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("ValidateLinkedInFormatting")
	}
	if ret.Description() == "" {
		ret.SetDescription("Validate that the LinkedIn post follows the required formatting structure.")
	}
	return ret
}

// Run executes the formatting validation with the given parameters
func (t *FormatValidator) Run(ctx context.Context, input *FormattingInput) (*FormattingOutput, error) {
	t.OnStart(ctx, t, input)
	score, feedback := ValidateFormatting(input.Content)
	out := &FormattingOutput{
		Score:    score,
		Feedback: feedback,
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *FormatValidator) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*FormattingInput)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
