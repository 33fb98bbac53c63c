package diff

import "errors"

// ErrOutOfRange is returned by Apply when an op addresses a position outside the working list.
var ErrOutOfRange = errors.New("edit script op out of range")

// Kind identifies the operation carried by an Op.
type Kind string

const (
	// KindRemove removes Count entries starting at Position.
	KindRemove Kind = "remove"
	// KindMove moves the entry at Position to To.
	KindMove Kind = "move"
	// KindInsert inserts Count entries at Position.
	KindInsert Kind = "insert"
	// KindChange marks Count entries starting at Position as changed in place.
	KindChange Kind = "change"
)

// Op is a single edit script entry.
type Op struct {
	// Kind is the operation type.
	Kind Kind `json:"kind"`

	// Position is the first affected index. For moves it is the source index.
	Position int `json:"position"`

	// Count is the number of affected entries. Always 1 for moves.
	Count int `json:"count"`

	// To is the destination index of a move, evaluated after the source entry is removed.
	To int `json:"to"`
}

// Script is an ordered edit script.
type Script []Op

// Counts summarizes a script by the number of entries each kind touches.
type Counts struct {
	Removed  int `json:"removed"`
	Moved    int `json:"moved"`
	Inserted int `json:"inserted"`
	Changed  int `json:"changed"`
}

// Policy bundles the comparison rules used by Compute.
type Policy[T any] struct {
	// SameItem reports whether a and b are the same logical item.
	SameItem func(a, b T) bool

	// SameContent reports whether a and b render identically.
	// A nil SameContent treats every matched pair as unchanged.
	SameContent func(a, b T) bool

	// DetectMoves pairs unmatched items across both lists into moves.
	DetectMoves bool
}

// Updater receives edit script ops, typically the rendering layer.
type Updater interface {
	Inserted(position, count int)
	Removed(position, count int)
	Moved(from, to int)
	Changed(position, count int)
}

// IsEmpty reports whether the script carries no ops.
func (s Script) IsEmpty() bool {
	return len(s) == 0
}

// Summary counts the entries touched per op kind.
func (s Script) Summary() Counts {
	var c Counts
	for _, op := range s {
		switch op.Kind {
		case KindRemove:
			c.Removed += op.Count
		case KindMove:
			c.Moved += op.Count
		case KindInsert:
			c.Inserted += op.Count
		case KindChange:
			c.Changed += op.Count
		}
	}
	return c
}

// Dispatch replays every op, in order, to u.
func (s Script) Dispatch(u Updater) {
	for _, op := range s {
		switch op.Kind {
		case KindRemove:
			u.Removed(op.Position, op.Count)
		case KindMove:
			u.Moved(op.Position, op.To)
		case KindInsert:
			u.Inserted(op.Position, op.Count)
		case KindChange:
			u.Changed(op.Position, op.Count)
		}
	}
}
