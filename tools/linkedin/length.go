package linkedin

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// LengthScheme selects one of the two length advisory schemes.
type LengthScheme int

const (
	// SchemeOptimalWindow recommends a 1300-3000 character window
	SchemeOptimalWindow LengthScheme = iota
	// SchemeHardLimit enforces a 2500 character cap
	SchemeHardLimit
)

// LengthCategory is the classification label for a post length
type LengthCategory string

const (
	LengthTooShort LengthCategory = "too_short"
	LengthShort    LengthCategory = "short"
	LengthIdeal    LengthCategory = "ideal"
	LengthTooLong  LengthCategory = "too_long"
)

// Length is the number of unicode code points in the content. All length
// thresholds in this package are defined over code points, not bytes.
func Length(content string) int {
	return utf8.RuneCountInString(content)
}

// ClassifyLength maps a post to a length category plus a human readable
// advisory under the given scheme. Bucket boundaries are inclusive on the
// lower bound: 300 is no longer too short, 1300 is already optimal under
// SchemeOptimalWindow and 3000 still is.
func ClassifyLength(scheme LengthScheme, content string) (LengthCategory, string) {
	length := Length(content)
	if scheme == SchemeHardLimit {
		switch {
		case length < 300:
			return LengthTooShort, fmt.Sprintf("Post is %d characters - TOO SHORT. LinkedIn posts should be under 2,500 characters but with substantial content.", length)
		case length <= 2500:
			return LengthIdeal, fmt.Sprintf("Post is %d characters - PERFECT LENGTH. Under the 2,500 character limit!", length)
		default:
			return LengthTooLong, fmt.Sprintf("Post is %d characters - TOO LONG. Must be under 2,500 characters. Please shorten the content.", length)
		}
	}
	switch {
	case length < 300:
		return LengthTooShort, fmt.Sprintf("Post is %d characters - TOO SHORT. LinkedIn posts should be 1300-3000 characters for optimal reach.", length)
	case length < 1300:
		return LengthShort, fmt.Sprintf("Post is %d characters - SHORT. Consider expanding with more details, examples, or insights.", length)
	case length <= 3000:
		return LengthIdeal, fmt.Sprintf("Post is %d characters - OPTIMAL LENGTH. Perfect for LinkedIn engagement!", length)
	default:
		return LengthTooLong, fmt.Sprintf("Post is %d characters - TOO LONG. Consider breaking into multiple posts or cutting unnecessary content.", length)
	}
}

// LengthInput is the input schema of the post length analyzer
type LengthInput struct {
	schema.Base
	// Content the LinkedIn post text to analyze
	Content string `json:"content" jsonschema:"title=content,description=The LinkedIn post content to analyze." validate:"required"`
}

func NewLengthInput(content string) *LengthInput {
	return &LengthInput{Content: content}
}

// LengthOutput is the output schema of the post length analyzer
type LengthOutput struct {
	schema.Base
	// Length number of characters in the post
	Length int `json:"length" jsonschema:"title=length,description=Number of characters in the post."`
	// Category length classification label
	Category LengthCategory `json:"category" jsonschema:"title=category,description=Length classification label."`
	// Advice human readable length recommendation
	Advice string `json:"advice" jsonschema:"title=advice,description=Length recommendation for the post."`
	// Stats supplementary size measures
	Stats PostStats `json:"stats" jsonschema:"title=stats,description=Supplementary size measures for the post."`
}

func (s LengthOutput) String() string {
	return s.Advice
}

// LengthAnalyzer analyzes the length of a LinkedIn post and provides recommendations
type LengthAnalyzer struct {
	Config
}

// NewLengthAnalyzer returns a LengthAnalyzer, SchemeOptimalWindow by default
func NewLengthAnalyzer(opts ...Option) *LengthAnalyzer {
	ret := new(LengthAnalyzer)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("AnalyzePostLength")
	}
	if ret.Description() == "" {
		ret.SetDescription("Analyze the length of a LinkedIn post and provide recommendations.")
	}
	return ret
}

// Run executes the length analysis with the given parameters
func (t *LengthAnalyzer) Run(ctx context.Context, input *LengthInput) (*LengthOutput, error) {
	t.OnStart(ctx, t, input)
	category, advice := ClassifyLength(t.scheme, input.Content)
	out := &LengthOutput{
		Length:   Length(input.Content),
		Category: category,
		Advice:   advice,
		Stats:    Stats(input.Content),
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *LengthAnalyzer) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*LengthInput)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
