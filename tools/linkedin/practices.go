package linkedin

import (
	"fmt"
	"strings"
)

// BestPractices are the advisory tables shipped to the reformatter agent as
// extra system prompt context.
type BestPractices struct {
	OptimalLength     string
	HookTechniques    []string
	EngagementTactics []string
	FormattingTips    []string
}

// DefaultBestPractices returns the stock LinkedIn best practices table
func DefaultBestPractices() BestPractices {
	return BestPractices{
		OptimalLength: "1300-3000 characters",
		HookTechniques: []string{
			"Start with a question",
			"Share a surprising statistic",
			"Begin with a controversial statement",
			"Tell a personal story",
			"Use 'Here's what I learned...'",
		},
		EngagementTactics: []string{
			"Ask questions to encourage comments",
			"Use line breaks for readability",
			"Include relevant hashtags (3-5)",
			"Tag relevant people or companies",
			"Add a call-to-action",
		},
		FormattingTips: []string{
			"Use emojis strategically (not too many)",
			"Break text into short paragraphs",
			"Use bullet points or numbered lists",
			"Bold key phrases with **text**",
			"Include white space for readability",
		},
	}
}

// Title implements systemprompt.ContextProvider
func (p BestPractices) Title() string {
	return "LinkedIn Best Practices"
}

// Info implements systemprompt.ContextProvider
func (p BestPractices) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Optimal length: %s\n", p.OptimalLength)
	writeSection(&b, "Hook techniques", p.HookTechniques)
	writeSection(&b, "Engagement tactics", p.EngagementTactics)
	writeSection(&b, "Formatting tips", p.FormattingTips)
	return strings.TrimSpace(b.String())
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
