package card

import "strings"

// Parse converts raw generated text into flashcards, one per line of the
// form "term: definition". The first colon separates term from
// definition; any later colons belong to the definition. Lines with no
// colon, an empty term, or an empty definition are dropped silently.
// Source line order is preserved. The result may be empty.
func Parse(raw string) []Card {
	var cards []Card
	for _, line := range strings.Split(raw, "\n") {
		head, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		c := Card{Term: head, Definition: rest}.Normalize()
		if !c.Valid() {
			continue
		}
		cards = append(cards, c)
	}
	return cards
}
