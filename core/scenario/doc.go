// Package scenario replays scripted refresh sequences against a sections engine.
//
// A scenario registers sections, seeds pre data and then runs steps: data, header and
// placeholder refreshes, direct level merges, and holds that keep a refresh pending so the
// following steps are dropped until a release. Every applied script is replayed onto a mirror
// list and checked against the engine's own list, so a scenario doubles as a consistency check.
package scenario
