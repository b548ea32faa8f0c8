// Package cache provides the LRU cache used for glyph outlines, advances
// and glyph bitmaps.
//
//	c := cache.New[rune, *vertex.Storage](512)
//	outline := c.GetOrCreate('A', func() *vertex.Storage { return load('A') })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
