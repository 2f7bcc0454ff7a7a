package linkedin

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

func TestSuggestHashtagsOrdering(t *testing.T) {
	got := SuggestHashtags(nil, "team success tips", "tech")
	want := []string{"#Technology", "#Innovation", "#Success", "#Achievement", "#LinkedIn"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expecting %v, but got %v", want, got)
	}
}

func TestSuggestHashtagsUnknownIndustry(t *testing.T) {
	got := SuggestHashtags(nil, "", "unknown-industry")
	want := []string{"#LinkedIn"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expecting general fallback only, but got %v", got)
	}
}

func TestSuggestHashtagsDedup(t *testing.T) {
	catalog := Catalog{
		"media": {"#LinkedIn", "#Growth", "#Video", "#Audio", "#Print"},
	}
	got := SuggestHashtags(catalog, "", "media")
	// the general #LinkedIn duplicates the industry head and must not repeat
	want := []string{"#LinkedIn", "#Growth"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expecting %v, but got %v", want, got)
	}
	seen := make(map[string]int)
	for _, tag := range SuggestHashtags(nil, "learn success team tips", "leadership") {
		seen[tag]++
		if seen[tag] > 1 {
			t.Errorf("duplicate hashtag %s", tag)
		}
	}
}

func TestSuggestHashtagsCaseInsensitiveIndustry(t *testing.T) {
	if got := SuggestHashtags(nil, "", "Tech"); got[0] != "#Technology" {
		t.Errorf("industry lookup should be case-insensitive, got %v", got)
	}
}

func ExampleHashtagSuggester() {
	ctx := context.Background()
	tool := NewHashtagSuggester()
	out, _ := tool.Run(ctx, NewHashtagInput("team success tips", "tech"))
	fmt.Println(out)
	// Output:
	// Recommended hashtags: #Technology #Innovation #Success #Achievement #LinkedIn
}
