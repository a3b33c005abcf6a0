// Package storage persists the card list and theme preference in a
// flat diskv-backed key-value store under the configured data
// directory.
//
// Two keys exist: "cards" holds the JSON-serialized card list (a plain
// array of {term, definition} objects, no version field) and "theme"
// holds "light" or "dark". Corrupt card data is indistinguishable from
// no data: the whole load is discarded and the offending entry erased
// so the next start does not trip over it again.
package storage
