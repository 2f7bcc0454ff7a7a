// Package linkedin provides deterministic text analysis tools for LinkedIn
// post optimization: a post length classifier, a hashtag recommender, an
// engagement potential scorer, a formatting validator and a naive line
// reflow formatter.
//
// Every tool is a pure function over its input text and the static catalog
// tables in this package. Tools never fail on text input: empty or
// unmatched inputs degrade to low scores or smaller result sets, and
// identical inputs always produce byte identical reports, so the tools are
// safe to call concurrently from any number of agents.
package linkedin
