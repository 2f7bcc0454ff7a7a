package linkedin

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestReflowRoundTrip(t *testing.T) {
	content := "I just finished a project at work. It was challenging but we got it done! The team worked really hard and I'm proud of the results."
	lines := Reflow(content)
	var kept []string
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	want := strings.Join(strings.Fields(content), " ")
	if got := strings.Join(kept, " "); got != want {
		t.Errorf("reflow lost content:\nwant %q\ngot  %q", want, got)
	}
}

func TestReflowLineLengths(t *testing.T) {
	content := "Extraordinarily sesquipedalian verbosity overwhelms casual readers. Keep it short."
	for _, line := range Reflow(content) {
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) > 15 && strings.Contains(line, " ") {
			t.Errorf("multi-word line over 15 characters: %q", line)
		}
	}
}

func TestReflowBlankLineParity(t *testing.T) {
	lines := Reflow("One sentence that runs long enough to wrap over several output lines for sure.")
	if len(lines) == 0 {
		t.Fatal("expecting output lines")
	}
	if lines[len(lines)-1] == "" {
		t.Error("no blank line after the very last line")
	}
	content := 0
	for i, line := range lines {
		if line != "" {
			content++
			continue
		}
		if content%2 != 0 {
			t.Errorf("blank separator at %d not after an even number of lines", i)
		}
	}
}

func TestReflowEmpty(t *testing.T) {
	if lines := Reflow(""); len(lines) != 0 {
		t.Errorf("expecting no lines for empty input, but got %v", lines)
	}
}

func TestReflowShortFragmentVerbatim(t *testing.T) {
	lines := Reflow("Why? Picture this: a change.")
	if len(lines) == 0 || lines[0] != "Why?" {
		t.Errorf("short fragments must pass through unmodified, got %v", lines)
	}
}

func ExampleReflower() {
	ctx := context.Background()
	tool := NewReflower()
	out, _ := tool.Run(ctx, NewReflowInput("Short. This is a longer sentence here."))
	fmt.Println(out)
	// Output:
	// CORRECTLY FORMATTED VERSION:
	//
	// Short.
	// This is a
	//
	// longer sentence
	// here.
}
