// Package card defines the flashcard value type along with the two pure
// functions that operate on raw material: Parse, which turns generated
// "term: definition" text into validated cards, and Visible, which
// computes per-card visibility for a search query.
//
// The package has no dependencies on the rest of the application so the
// parsing and filtering rules can be tested in isolation.
package card
