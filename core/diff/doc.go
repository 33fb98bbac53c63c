// Package diff computes edit scripts between two ordered lists.
//
// It is the list-reconciliation primitive consumed by the sections engine: given the list as it
// was before a refresh and the list after it, Compute returns the ordered removals, moves,
// insertions and changes that turn the first into the second.
//
// # Identity and Content
//
// A Policy supplies two comparisons. SameItem decides whether two entries represent the same
// logical item (stable key). SameContent decides whether an item that survived needs to be
// redrawn. With DetectMoves set, items that left the common subsequence but still exist on both
// sides are reported as moves instead of a remove plus an insert.
//
// # Op Ordering
//
// Ops are meant to be replayed in order against the old list:
//   - Remove ops come first, in descending position order, using old-list positions.
//   - Move ops follow, one per moved item; From is removed first, then the item is inserted at To.
//   - Insert ops come next, in ascending order, using new-list positions.
//   - Change ops come last and use new-list positions.
//
// # Usage
//
//	script := diff.Compute(old, current, policy)
//	script.Dispatch(updater)
package diff
