// Package app wires cram's pieces together: configuration, the
// diskv-backed storage, the generation client, the deck store, and the
// terminal UI. It owns no behavior of its own beyond startup order and
// the decision that a failed card load degrades to an empty deck
// instead of aborting.
package app
