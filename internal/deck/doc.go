// Package deck holds the mutable heart of the application: the Store
// that owns the canonical card list and its single undo snapshot, the
// Selection tracker for multi-select batch deletes, and the pure
// reorder helpers that turn a drop position into a permutation of the
// list.
//
// # Store semantics
//
// Every destructive operation (edit, delete, batch delete, reorder)
// snapshots the list first, overwriting any earlier snapshot; a single
// Undo consumes it. Replacing the deck wholesale via SetCards (a fresh
// generation or the initial load) is a new baseline and clears nothing
// retroactively, but the UI drops the snapshot when a generation
// starts so the old deck cannot resurface under a new topic.
//
// Persistence runs through an injected SaveFunc after every mutation.
// A failed save is logged and the in-memory list stays authoritative;
// the user keeps working and a later successful save catches up.
//
// # Index discipline
//
// Indices are dense 0..n-1 and only valid until the next mutation.
// Batch delete removes all doomed indices in one filtering pass, and
// the Selection set is cleared rather than remapped whenever the list
// shifts underneath it.
package deck
