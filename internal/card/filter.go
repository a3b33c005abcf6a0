package card

import "strings"

// Tokenize normalizes a search query into lower-cased words. An empty
// or whitespace-only query yields nil.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Visible computes one boolean per card for the given query. A card is
// visible iff every query token is a case-insensitive substring of the
// card's term and definition taken together. An empty query makes every
// card visible.
func Visible(cards []Card, query string) []bool {
	tokens := Tokenize(query)
	vis := make([]bool, len(cards))
	for i, c := range cards {
		vis[i] = matches(c, tokens)
	}
	return vis
}

// MatchCount returns how many entries of a visibility vector are true.
func MatchCount(vis []bool) int {
	n := 0
	for _, v := range vis {
		if v {
			n++
		}
	}
	return n
}

func matches(c Card, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	haystack := strings.ToLower(c.Term + " " + c.Definition)
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}
