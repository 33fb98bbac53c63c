package sections

import (
	"fmt"
	"slices"

	"level-list/core/diff"

	"go.uber.org/zap"
)

// Mode selects which part of a level a refresh replaces.
type Mode int

const (
	// ModeData replaces the level's data and keeps its header.
	ModeData Mode = iota
	// ModeHeader replaces the level's header and keeps its data.
	ModeHeader
	// ModeBoth replaces data and header.
	ModeBoth
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeData:
		return "data"
	case ModeHeader:
		return "header"
	case ModeBoth:
		return "both"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "data", "header" or "both".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "data":
		return ModeData, nil
	case "header":
		return ModeHeader, nil
	case "both":
		return ModeBoth, nil
	default:
		return 0, fmt.Errorf("parse mode %q: %w", s, ErrInvalidMode)
	}
}

func (m Mode) valid() bool {
	return m >= ModeData && m <= ModeBoth
}

func (m Mode) hasData() bool { return m != ModeHeader }

func (m Mode) hasHeader() bool { return m != ModeData }

// Engine materializes the flat list from its levels and diffs successive states.
// It is not safe for concurrent use; run it on one goroutine (see Worker).
type Engine[T any] struct {
	registry     *Registry
	ids          *IDAllocator
	placeholders *PlaceholderCache[T]
	levels       *LevelStore[T]
	gate         RefreshGate
	policy       diff.Policy[*Item[T]]
	logger       *zap.Logger

	// current is the authoritative list, old the list as of the last commit.
	current []*Item[T]
	old     []*Item[T]
	pending *Refresh[T]

	preDataCount int
	stickyHeader bool
}

// New creates an engine from cfg. A nil logger disables logging.
func New[T any](cfg Config, logger *zap.Logger) (*Engine[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PreDataCount < 0 {
		return nil, fmt.Errorf("pre data count %d: %w", cfg.PreDataCount, ErrInvalidConfig)
	}

	ids := NewIDAllocator(cfg.MinRandomID, cfg.MaxRandomID)
	placeholders, err := NewPlaceholderCache[T](cfg.MaxDataCacheCount, cfg.MaxHeaderCacheCount, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Engine[T]{
		registry:     NewRegistry(),
		ids:          ids,
		placeholders: placeholders,
		levels:       NewLevelStore[T](),
		policy: diff.Policy[*Item[T]]{
			SameItem:    SameItem[T],
			SameContent: SameContent[T],
			DetectMoves: cfg.DetectMoves,
		},
		logger:       logger,
		preDataCount: cfg.PreDataCount,
		stickyHeader: cfg.UseStickyHeader,
	}, nil
}

// Register adds a type registration. See Registry.Register.
func (e *Engine[T]) Register(t, level int, layout LayoutID, opts ...RegisterOption) error {
	return e.registry.Register(t, level, layout, opts...)
}

// Registry returns the engine's type registry.
func (e *Engine[T]) Registry() *Registry {
	return e.registry
}

// IDs returns the placeholder id allocator.
func (e *Engine[T]) IDs() *IDAllocator {
	return e.ids
}

// SetPolicy replaces the diff policy. Nil comparisons fall back to the defaults.
func (e *Engine[T]) SetPolicy(p diff.Policy[*Item[T]]) {
	if p.SameItem == nil {
		p.SameItem = SameItem[T]
	}
	if p.SameContent == nil {
		p.SameContent = SameContent[T]
	}
	e.policy = p
}

// Seed installs the caller-owned items that precede level 0.
// Both the current and the previous list start from items, so they are never reported as inserted.
// It must be called before the first merge; afterwards it fails with ErrSeedAfterMerge.
func (e *Engine[T]) Seed(items []*Item[T]) error {
	if e.levels.Len() > 0 || e.pending != nil {
		return ErrSeedAfterMerge
	}
	e.current = slices.Clone(items)
	e.old = slices.Clone(items)
	return nil
}

// NotifyData replaces the data of the level of type t.
func (e *Engine[T]) NotifyData(t int, data []*Item[T]) (*Refresh[T], error) {
	return e.refresh(t, ModeData, func() ([]*Item[T], *Item[T], error) {
		return data, nil, nil
	})
}

// NotifyHeader replaces the header of the level of type t.
func (e *Engine[T]) NotifyHeader(t int, header *Item[T]) (*Refresh[T], error) {
	return e.refresh(t, ModeHeader, func() ([]*Item[T], *Item[T], error) {
		return nil, header, nil
	})
}

// NotifyDataAndHeader replaces data and header of the level of type t.
func (e *Engine[T]) NotifyDataAndHeader(t int, data []*Item[T], header *Item[T]) (*Refresh[T], error) {
	return e.refresh(t, ModeBoth, func() ([]*Item[T], *Item[T], error) {
		return data, header, nil
	})
}

// NotifyPlaceholderData shows count placeholder items in place of the data of type t.
func (e *Engine[T]) NotifyPlaceholderData(t, count int) (*Refresh[T], error) {
	return e.refresh(t, ModeData, func() ([]*Item[T], *Item[T], error) {
		data, err := e.placeholders.DataList(t, count)
		return data, nil, err
	})
}

// NotifyPlaceholderHeader shows a placeholder header in place of the header of type t.
func (e *Engine[T]) NotifyPlaceholderHeader(t int) (*Refresh[T], error) {
	return e.refresh(t, ModeHeader, func() ([]*Item[T], *Item[T], error) {
		header, err := e.placeholders.Header(t)
		return nil, header, err
	})
}

// NotifyPlaceholderDataAndHeader shows placeholders for both data and header of type t.
func (e *Engine[T]) NotifyPlaceholderDataAndHeader(t, count int) (*Refresh[T], error) {
	return e.refresh(t, ModeBoth, func() ([]*Item[T], *Item[T], error) {
		if count < 1 {
			return nil, nil, fmt.Errorf("placeholder data for type %d: %w", t, ErrInvalidCount)
		}
		if e.ids.Remaining() < uint64(count)+1 {
			return nil, nil, fmt.Errorf("placeholder data and header for type %d: %w", t, ErrRangeExhausted)
		}
		header, err := e.placeholders.Header(t)
		if err != nil {
			return nil, nil, err
		}
		data, err := e.placeholders.DataList(t, count)
		return data, header, err
	})
}

// Merge replaces the contribution of level according to mode.
// It returns nil without error when a previous refresh is still pending.
func (e *Engine[T]) Merge(level int, data []*Item[T], header *Item[T], mode Mode) (*Refresh[T], error) {
	if !mode.valid() {
		return nil, fmt.Errorf("merge level %d: %w", level, ErrInvalidMode)
	}
	if !e.gate.TryEnter() {
		e.logDropped(zap.Int("level", level))
		return nil, nil
	}
	if !e.registry.HasLevel(level) {
		e.gate.Complete()
		return nil, fmt.Errorf("merge level %d: %w", level, ErrInvalidRegistration)
	}
	if _, _, err := e.blockRange(level); err != nil {
		e.gate.Complete()
		return nil, err
	}
	return e.commit(level, data, header, mode)
}

func (e *Engine[T]) refresh(t int, mode Mode, build func() ([]*Item[T], *Item[T], error)) (*Refresh[T], error) {
	if !e.gate.TryEnter() {
		e.logDropped(zap.Int("type", t))
		return nil, nil
	}

	level, err := e.registry.LevelOf(t)
	if err != nil {
		e.gate.Complete()
		return nil, err
	}
	if _, _, err := e.blockRange(level); err != nil {
		e.gate.Complete()
		return nil, err
	}

	data, header, err := build()
	if err != nil {
		e.gate.Complete()
		return nil, err
	}

	return e.commit(level, data, header, mode)
}

// commit runs the merge with the gate already held and registers the pending refresh.
func (e *Engine[T]) commit(level int, data []*Item[T], header *Item[T], mode Mode) (*Refresh[T], error) {
	script, err := e.merge(level, data, header, mode)
	if err != nil {
		e.gate.Complete()
		return nil, err
	}

	r := &Refresh[T]{
		Level:  level,
		Mode:   mode,
		Script: script,
		Items:  slices.Clone(e.current),
		engine: e,
	}
	e.pending = r

	counts := script.Summary()
	e.logger.Debug("Level merged",
		zap.Int("level", level),
		zap.Stringer("mode", mode),
		zap.Int("size", len(e.current)),
		zap.Int("ops", len(script)),
		zap.Int("removed", counts.Removed),
		zap.Int("moved", counts.Moved),
		zap.Int("inserted", counts.Inserted),
		zap.Int("changed", counts.Changed),
	)

	return r, nil
}

// merge splices the level block and diffs the result against the previous list.
// Nothing is mutated when it returns an error.
func (e *Engine[T]) merge(level int, data []*Item[T], header *Item[T], mode Mode) (diff.Script, error) {
	offset, end, err := e.blockRange(level)
	if err != nil {
		return nil, err
	}
	prev, _ := e.levels.Get(level)

	newData, newHeader := prev.Data, prev.Header
	if mode.hasData() {
		newData = slices.Clone(data)
	}
	if mode.hasHeader() {
		newHeader = header
	}

	block := make([]*Item[T], 0, len(newData)+1)
	if newHeader != nil {
		block = append(block, newHeader)
	}
	block = append(block, newData...)

	e.current = slices.Replace(e.current, offset, end, block...)
	script := diff.Compute(e.old, e.current, e.policy)

	e.levels.Put(level, Snapshot[T]{
		Data:   newData,
		Header: newHeader,
		Start:  offset,
		End:    offset + len(block),
	})
	e.old = append(e.old[:0], e.current...)

	return script, nil
}

// blockRange returns the current block [offset, end) of level in the list.
func (e *Engine[T]) blockRange(level int) (offset, end int, err error) {
	offset = e.Offset(level)
	prev, _ := e.levels.Get(level)
	end = offset + prev.Size()
	if end > len(e.current) {
		return 0, 0, fmt.Errorf("merge level %d at [%d, %d) of %d items: %w",
			level, offset, end, len(e.current), ErrOffsetOutOfRange)
	}
	return offset, end, nil
}

// Offset returns the index where level's block starts: PreDataCount plus every lower level's size.
func (e *Engine[T]) Offset(level int) int {
	sum := e.preDataCount
	for l := 0; l < level; l++ {
		if snap, ok := e.levels.Get(l); ok {
			sum += snap.Size()
		}
	}
	return sum
}

func (e *Engine[T]) logDropped(field zap.Field) {
	e.logger.Debug("Refresh dropped, previous refresh not applied yet", field)
}

func (e *Engine[T]) release(r *Refresh[T]) {
	if e.pending != r {
		return
	}
	e.pending = nil
	e.gate.Complete()
}

// Pending returns the computed refresh that was not applied yet, if any.
func (e *Engine[T]) Pending() *Refresh[T] {
	return e.pending
}

// GateState returns the refresh gate state.
func (e *Engine[T]) GateState() GateState {
	return e.gate.State()
}

// ResetGate forgets the pending refresh and reopens the gate.
// Use it when a computed refresh can never be reported applied.
func (e *Engine[T]) ResetGate() {
	e.pending = nil
	e.gate.Complete()
}

// Items returns a copy of the current list.
func (e *Engine[T]) Items() []*Item[T] {
	return slices.Clone(e.current)
}

// Len returns the current list length.
func (e *Engine[T]) Len() int {
	return len(e.current)
}

// Item returns the item at position.
func (e *Engine[T]) Item(position int) (*Item[T], bool) {
	if position < 0 || position >= len(e.current) {
		return nil, false
	}
	return e.current[position], true
}

// ViewTypeOf returns the type of the item at position, or DefaultViewType.
func (e *Engine[T]) ViewTypeOf(position int) int {
	item, ok := e.Item(position)
	if !ok || item == nil {
		return DefaultViewType
	}
	return item.Type
}

// LayoutOf returns the layout registered for viewType, or UnknownLayout.
func (e *Engine[T]) LayoutOf(viewType int) LayoutID {
	return e.registry.LayoutOf(viewType)
}

// HeaderKeyOf returns the sticky header key of the item at position.
// It returns NoHeaderKey when sticky headers are disabled or the position has no item.
func (e *Engine[T]) HeaderKeyOf(position int) int64 {
	if !e.stickyHeader {
		return NoHeaderKey
	}
	item, ok := e.Item(position)
	if !ok || item == nil {
		return NoHeaderKey
	}
	return item.HeaderKey
}

// StickyHeader reports whether header key lookups are enabled.
func (e *Engine[T]) StickyHeader() bool {
	return e.stickyHeader
}

// DataWithType returns the committed snapshot of the level of data type t.
// Header types have no level and fail with ErrInvalidRegistration.
func (e *Engine[T]) DataWithType(t int) (Snapshot[T], bool, error) {
	level, err := e.registry.LevelOf(t)
	if err != nil {
		return Snapshot[T]{}, false, err
	}
	snap, ok := e.levels.Get(level)
	return snap, ok, nil
}

// Refresh is the result of one merge: the edit script plus the token that reopens the gate.
type Refresh[T any] struct {
	// Level is the merged level.
	Level int
	// Mode is the refresh mode.
	Mode Mode
	// Script turns the previous list into Items.
	Script diff.Script
	// Items is the list after the merge.
	Items []*Item[T]

	engine   *Engine[T]
	released bool
}

// Apply dispatches the script to u, when non-nil, and reports the refresh applied.
func (r *Refresh[T]) Apply(u diff.Updater) {
	if u != nil {
		r.Script.Dispatch(u)
	}
	r.Release()
}

// Release reports the refresh applied without dispatching it.
func (r *Refresh[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.engine.release(r)
}

// Released reports whether Apply or Release was called.
func (r *Refresh[T]) Released() bool {
	return r.released
}
