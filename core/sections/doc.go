// Package sections maintains a flat list built from independently refreshable levels.
//
// Every item type maps to a level. A level contributes an optional header followed by its data
// block; levels appear in ascending order after PreDataCount caller-owned items. Refreshing a
// level replaces only its own block and yields the edit script between the list before and after
// the refresh, computed by package diff.
//
// # Type Bands
//
// A data type t lives in [0, 1000). Its companions are derived by fixed offsets:
//   - header: t-1000, band [-1000, 0)
//   - placeholder data: t-2000, band [-2000, -1000)
//   - placeholder header: t-3000, band [-3000, -2000)
//
// Headers and placeholder headers carry HeaderLevel (-1) and are never looked up by level;
// a header always sits right before its level's data.
//
// # Refresh Cycle
//
// A Notify* or Merge call enters the refresh gate, merges the level, diffs and returns a
// Refresh. The gate stays Pending until Refresh.Apply or Refresh.Release is called; requests
// arriving meanwhile are dropped and return a nil Refresh. Fatal errors (unregistered type,
// exhausted placeholder ids) reopen the gate and leave the list untouched.
//
// # Concurrency
//
// Engine has no internal locking. Call it from one goroutine, either directly (apply each
// Refresh inline) or through a Worker that owns the engine and serializes tasks.
//
// # Usage
//
//	engine, _ := sections.New[Row](sections.DefaultConfig(), logger)
//	_ = engine.Register(1, 0, layoutRow, sections.WithHeaderLayout(layoutTitle))
//
//	r, err := engine.NotifyDataAndHeader(1, rows, title)
//	if err != nil {
//	    return err
//	}
//	if r != nil {
//	    r.Apply(view)
//	}
package sections
