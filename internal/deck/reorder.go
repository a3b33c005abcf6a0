package deck

import "cram/internal/card"

// DropIndex computes the insertion slot for a card released at
// pointerY. midpoints holds the vertical midpoint of each candidate
// slot in display order, excluding the dragged card itself. The card is
// inserted before the closest slot whose midpoint lies at or past the
// pointer; when the pointer is past every midpoint the card goes to the
// end (len(midpoints)).
//
// The caller supplies midpoints and the pointer position as plain
// values; this package never inspects the display surface.
func DropIndex(midpoints []int, pointerY int) int {
	best := len(midpoints)
	bestOffset := 0
	for i, mid := range midpoints {
		offset := pointerY - mid
		if offset <= 0 && (best == len(midpoints) || offset > bestOffset) {
			best = i
			bestOffset = offset
		}
	}
	return best
}

// Move returns a copy of cards with the card at from reinserted so it
// lands immediately before the card currently at index to; to ==
// len(cards) moves it to the end. Out-of-range positions return the
// list unchanged.
func Move(cards []card.Card, from, to int) []card.Card {
	out := card.Clone(cards)
	if from < 0 || from >= len(out) || to < 0 || to > len(out) {
		return out
	}
	if to > from {
		to--
	}
	if from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]card.Card{moved}, out[to:]...)...)
	return out
}

// MovePerm returns the permutation that Move would apply, expressed as
// new-position -> old-index. The store consumes the permutation so the
// commit stays a pure remapping of the pre-drag list.
func MovePerm(n, from, to int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if from < 0 || from >= n || to < 0 || to > n {
		return perm
	}
	if to > from {
		to--
	}
	if from == to {
		return perm
	}
	perm = append(perm[:from], perm[from+1:]...)
	perm = append(perm[:to], append([]int{from}, perm[to:]...)...)
	return perm
}

// Permute maps perm over cards, producing out[i] = cards[perm[i]]. It
// reports false, leaving the result nil, unless perm is a permutation
// of 0..len(cards)-1; a valid result is always the same multiset of
// cards as the input.
func Permute(cards []card.Card, perm []int) ([]card.Card, bool) {
	if len(perm) != len(cards) {
		return nil, false
	}
	seen := make([]bool, len(cards))
	for _, p := range perm {
		if p < 0 || p >= len(cards) || seen[p] {
			return nil, false
		}
		seen[p] = true
	}
	out := make([]card.Card, len(cards))
	for i, p := range perm {
		out[i] = cards[p]
	}
	return out, true
}
