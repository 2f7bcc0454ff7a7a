package linkedin

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/words"
)

// PostStats are supplementary size measures for a post. Classification and
// scoring use Runes (unicode code points); Graphemes and Words are reported
// for display only, segmented per UAX #29.
type PostStats struct {
	Runes     int `json:"runes"`
	Bytes     int `json:"bytes"`
	Graphemes int `json:"graphemes"`
	Words     int `json:"words"`
	Lines     int `json:"lines"`
}

// Stats measures a post
func Stats(content string) PostStats {
	ret := PostStats{
		Runes: utf8.RuneCountInString(content),
		Bytes: len(content),
		Lines: strings.Count(content, "\n") + 1,
	}
	seg := graphemes.NewSegmenter([]byte(content))
	for seg.Next() {
		ret.Graphemes++
	}
	wordSeg := words.NewSegmenter([]byte(content))
	for wordSeg.Next() {
		if len(strings.TrimSpace(string(wordSeg.Bytes()))) > 0 {
			ret.Words++
		}
	}
	return ret
}
