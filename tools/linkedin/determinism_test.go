package linkedin

import (
	"context"
	"testing"
)

// Every tool must return byte identical output when called twice with the
// same arguments: no hidden state, randomness or clock reads.
func TestToolDeterminism(t *testing.T) {
	ctx := context.Background()
	content := "When I shared this tip, what did we learn?\n\nPS: comment below."

	length := NewLengthAnalyzer()
	hashtags := NewHashtagSuggester()
	engagement := NewEngagementChecker()
	formatting := NewFormatValidator()
	reflow := NewReflower()

	runs := make([]string, 2)
	for i := range runs {
		var parts []string
		for _, run := range []func() (string, error){
			func() (string, error) {
				out, err := length.Run(ctx, NewLengthInput(content))
				return out.String(), err
			},
			func() (string, error) {
				out, err := hashtags.Run(ctx, NewHashtagInput("team learning tips", "consulting"))
				return out.String(), err
			},
			func() (string, error) {
				out, err := engagement.Run(ctx, NewEngagementInput(content))
				return out.String(), err
			},
			func() (string, error) {
				out, err := formatting.Run(ctx, NewFormattingInput(content))
				return out.String(), err
			},
			func() (string, error) {
				out, err := reflow.Run(ctx, NewReflowInput(content))
				return out.String(), err
			},
		} {
			s, err := run()
			if err != nil {
				t.Fatal(err)
			}
			parts = append(parts, s)
		}
		runs[i] = parts[0] + "\x00" + parts[1] + "\x00" + parts[2] + "\x00" + parts[3] + "\x00" + parts[4]
	}
	if runs[0] != runs[1] {
		t.Error("tool output changed between identical invocations")
	}
}
