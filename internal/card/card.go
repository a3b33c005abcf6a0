package card

import "strings"

// Card is a single flashcard. Term and Definition are trimmed and
// non-empty for any card produced by Parse or accepted by the deck.
type Card struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Valid reports whether the card has a non-empty trimmed term and
// definition.
func (c Card) Valid() bool {
	return strings.TrimSpace(c.Term) != "" && strings.TrimSpace(c.Definition) != ""
}

// Normalize returns the card with term and definition trimmed.
func (c Card) Normalize() Card {
	return Card{
		Term:       strings.TrimSpace(c.Term),
		Definition: strings.TrimSpace(c.Definition),
	}
}

// Equal reports whether two cards are identical after trimming.
func (c Card) Equal(other Card) bool {
	return c.Normalize() == other.Normalize()
}

// Clone returns a deep copy of the given card list. A nil or empty
// input returns nil.
func Clone(cards []Card) []Card {
	if len(cards) == 0 {
		return nil
	}
	dup := make([]Card, len(cards))
	copy(dup, cards)
	return dup
}
