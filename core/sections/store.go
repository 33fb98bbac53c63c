package sections

// Snapshot is the last committed contribution of one level to the flat list.
type Snapshot[T any] struct {
	// Data is the level's data block, in list order.
	Data []*Item[T]

	// Header is the item shown right before Data, if any.
	Header *Item[T]

	// Start and End delimit the half-open index range the level occupied at commit time.
	// Later merges of lower levels shift the range without updating it.
	Start int
	End   int
}

// Size returns the number of list entries the level contributes.
func (s Snapshot[T]) Size() int {
	n := len(s.Data)
	if s.Header != nil {
		n++
	}
	return n
}

// LevelStore keeps one snapshot per level.
type LevelStore[T any] struct {
	levels map[int]Snapshot[T]
}

// NewLevelStore creates an empty store.
func NewLevelStore[T any]() *LevelStore[T] {
	return &LevelStore[T]{levels: make(map[int]Snapshot[T])}
}

// Get returns the snapshot of level, if one was committed.
func (s *LevelStore[T]) Get(level int) (Snapshot[T], bool) {
	snap, ok := s.levels[level]
	return snap, ok
}

// Put replaces the snapshot of level.
func (s *LevelStore[T]) Put(level int, snap Snapshot[T]) {
	s.levels[level] = snap
}

// Len returns the number of levels with a snapshot.
func (s *LevelStore[T]) Len() int {
	return len(s.levels)
}

// Clear drops every snapshot.
func (s *LevelStore[T]) Clear() {
	clear(s.levels)
}
