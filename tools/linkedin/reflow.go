package linkedin

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

var sentenceBreaker = strings.NewReplacer(".", ".\n", "!", "!\n", "?", "?\n")

// Reflow re-breaks prose into short one-idea lines with a blank line after
// every second line. Sentences split on '.', '!' and '?' keeping their
// punctuation; longer fragments accumulate words until the running line
// would exceed 15 characters, at which point it is flushed and the
// overflowing word starts the next line. The threshold is characters, not
// the "15 words" the surrounding prompts describe; a single word longer
// than 15 characters is emitted verbatim.
func Reflow(content string) []string {
	var lines []string
	for _, fragment := range strings.Split(sentenceBreaker.Replace(content), "\n") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if utf8.RuneCountInString(fragment) <= 15 {
			lines = append(lines, fragment)
			continue
		}
		var current []string
		for _, word := range strings.Fields(fragment) {
			current = append(current, word)
			if utf8.RuneCountInString(strings.Join(current, " ")) > 15 {
				if len(current) > 1 {
					lines = append(lines, strings.Join(current[:len(current)-1], " "))
					current = []string{word}
				} else {
					lines = append(lines, word)
					current = nil
				}
			}
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
	}

	formatted := make([]string, 0, len(lines)+len(lines)/2)
	for i, line := range lines {
		formatted = append(formatted, line)
		if (i+1)%2 == 0 && i < len(lines)-1 {
			formatted = append(formatted, "")
		}
	}
	return formatted
}

// ReflowInput is the input schema of the reflow formatter
type ReflowInput struct {
	schema.Base
	// Content the original prose to reformat
	Content string `json:"content" jsonschema:"title=content,description=The original content to reformat with single ideas per line." validate:"required"`
}

func NewReflowInput(content string) *ReflowInput {
	return &ReflowInput{Content: content}
}

// ReflowOutput is the output schema of the reflow formatter. Empty entries
// in Lines are blank separator lines.
type ReflowOutput struct {
	schema.Base
	// Lines the reformatted post, one idea per line
	Lines []string `json:"lines" jsonschema:"title=lines,description=The reformatted post lines including blank separators."`
}

func (s ReflowOutput) String() string {
	return "CORRECTLY FORMATTED VERSION:\n\n" + strings.Join(s.Lines, "\n")
}

// Reflower takes any content and formats it with single ideas per line
type Reflower struct {
	Config
}

func NewReflower(opts ...Option) *Reflower {
	ret := new(Reflower)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("FormatLinkedInPost")
	}
	if ret.Description() == "" {
		ret.SetDescription("Take any content and format it correctly with single ideas per line.")
	}
	return ret
}

// Run executes the reflow formatter with the given parameters
func (t *Reflower) Run(ctx context.Context, input *ReflowInput) (*ReflowOutput, error) {
	t.OnStart(ctx, t, input)
	out := &ReflowOutput{
		Lines: Reflow(input.Content),
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *Reflower) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*ReflowInput)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
