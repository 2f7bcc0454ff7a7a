package linkedin

import (
	"context"
	"strings"

	"github.com/bububa/linkedin-agents/schema"
	"github.com/bububa/linkedin-agents/tools"
)

// SuggestHashtags assembles up to 5 unique hashtags for a topic and
// industry: the first 2 industry entries, then the first 2 topic rule
// matches, then 1 general hashtag, deduplicated preserving first occurrence.
// An unknown industry contributes nothing; the result is never padded.
func SuggestHashtags(catalog Catalog, topic string, industry string) []string {
	if catalog == nil {
		catalog = defaultCatalog
	}
	topicLower := strings.ToLower(topic)
	var suggested []string
	for _, rule := range topicRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(topicLower, trigger) {
				suggested = append(suggested, rule.hashtags...)
				break
			}
		}
	}

	final := make([]string, 0, 5)
	final = append(final, headOf(catalog[strings.ToLower(industry)], 2)...)
	final = append(final, headOf(suggested, 2)...)
	final = append(final, headOf(generalHashtags, 1)...)

	seen := make(map[string]struct{}, len(final))
	unique := final[:0]
	for _, tag := range final {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}
	return headOf(unique, 5)
}

func headOf(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// HashtagInput is the input schema of the hashtag suggester
type HashtagInput struct {
	schema.Base
	// Topic the subject of the post
	Topic string `json:"topic" jsonschema:"title=topic,description=The subject of the post." validate:"required"`
	// Industry the industry the post targets, defaults to general
	Industry string `json:"industry,omitempty" jsonschema:"title=industry,default=general,description=The industry the post targets."`
}

func NewHashtagInput(topic string, industry string) *HashtagInput {
	if industry == "" {
		industry = "general"
	}
	return &HashtagInput{
		Topic:    topic,
		Industry: industry,
	}
}

// HashtagOutput is the output schema of the hashtag suggester
type HashtagOutput struct {
	schema.Base
	// Hashtags recommended hashtags in priority order
	Hashtags []string `json:"hashtags" jsonschema:"title=hashtags,description=Recommended hashtags in priority order."`
}

func (s HashtagOutput) String() string {
	return "Recommended hashtags: " + strings.Join(s.Hashtags, " ")
}

// HashtagSuggester suggests relevant hashtags based on topic and industry
type HashtagSuggester struct {
	Config
}

func NewHashtagSuggester(opts ...Option) *HashtagSuggester {
	ret := new(HashtagSuggester)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("SuggestHashtags")
	}
	if ret.Description() == "" {
		ret.SetDescription("Suggest relevant hashtags based on topic and industry.")
	}
	return ret
}

// Run executes the hashtag suggestion with the given parameters
func (t *HashtagSuggester) Run(ctx context.Context, input *HashtagInput) (*HashtagOutput, error) {
	t.OnStart(ctx, t, input)
	out := &HashtagOutput{
		Hashtags: SuggestHashtags(t.catalog, input.Topic, input.Industry),
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// RunOrchestration implements tools.OrchestrationTool
func (t *HashtagSuggester) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*HashtagInput)
	if !ok {
		return nil, tools.ErrInvalidToolInput
	}
	return t.Run(ctx, in)
}
