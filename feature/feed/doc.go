// Package feed serves a sectioned feed backed by the sections engine.
//
// Every configured section is a data type with a level. Section content comes from a Source:
// the feed_items table (DBSource) or JSON documents in object storage (StorageSource). Loads
// for the same section are collapsed with singleflight.
//
// The Service owns a single engine on a sections.Worker goroutine. A refresh loads the section
// outside the worker, merges it on the worker and consumes the resulting edit script at once,
// keeping it as the last Update for clients that poll the feed.
//
// # Routes
//
//	GET  /feed                   current items with band, layout and header key
//	POST /feed/:type/refresh     reload a section (mode=data|header|both)
//	POST /feed/:type/shimmer     show loading placeholders (count, mode)
package feed
