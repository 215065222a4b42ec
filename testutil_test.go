// testutil_test.go
//
// Copyright (C) 2026 Codeword Contributors
//
// Shared helpers for the codeword package's tests.

package codeword

import (
	lru "github.com/hashicorp/golang-lru/simplelru"
)

// newTestDictionary builds an in-memory Dictionary out of a small word
// list, grouping by shape exactly as the on-disk builder would, but
// without touching the filesystem.
func newTestDictionary(t interface{ Fatalf(string, ...interface{}) }, words []string) *Dictionary {
	type group struct {
		shape Shape
		words []string
	}
	var groups []group

	for _, w := range words {
		shape, err := ShapeOfLetters([]byte(w))
		if err != nil {
			t.Fatalf("computing shape of %q: %v", w, err)
		}
		found := false
		for i := range groups {
			if groups[i].shape.Equal(shape) {
				groups[i].words = append(groups[i].words, w)
				found = true
				break
			}
		}
		if !found {
			groups = append(groups, group{shape: shape, words: []string{w}})
		}
	}

	var buf []byte
	patternGroups := make([]PatternGroup, len(groups))
	for i, g := range groups {
		start := uint32(len(buf))
		for _, w := range g.words {
			buf = append(buf, []byte(w)...)
		}
		patternGroups[i] = PatternGroup{
			Len:   byte(len(g.shape)),
			Shape: g.shape,
			Start: start,
			Count: uint32(len(g.words)),
		}
	}

	cache, _ := lru.NewLRU(groupCacheSize, nil)
	return &Dictionary{words: buf, groups: patternGroups, groupCache: cache}
}
