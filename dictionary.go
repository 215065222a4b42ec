// dictionary.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements the dictionary store: an immutable, in-memory
// word list grouped by shape, loaded once from the on-disk pattern
// index format LoadDictionary and cmd/cwbuild agree on.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package codeword

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	lru "github.com/hashicorp/golang-lru/simplelru"
)

// DefaultWordsPath and DefaultPatternIndexPath are the conventional
// on-disk locations of the dictionary's two files. Callers may pass
// different paths to LoadDictionary to override them.
const (
	DefaultWordsPath        = "data/words"
	DefaultPatternIndexPath = "data/patternIndex"
)

// groupCacheSize bounds the fast-path lookup cache; a miss always
// falls back to the authoritative linear scan, so this is purely an
// accelerator, never a correctness requirement.
const groupCacheSize = 2048

// PatternGroup is a set of dictionary words that share a length and a
// canonical shape. Words in the group are laid out back-to-back,
// Len bytes each, starting at Start within the dictionary's word
// buffer.
type PatternGroup struct {
	Len   byte
	Shape Shape
	Start uint32
	Count uint32
}

// Dictionary is an immutable, in-memory word list grouped by shape.
// It owns the word buffer and pattern groups; a Cursor holds a
// non-owning view into it.
type Dictionary struct {
	words  []byte
	groups []PatternGroup

	// groupCache accelerates FindGroup for shapes that have already
	// been looked up. A miss is resolved by the linear scan in
	// FindGroup and the result is cached; this preserves the spec's
	// exact-match predicate, it is never itself the source of truth.
	groupCache *lru.LRU
}

// ConfigError reports a problem with the dictionary or puzzle inputs:
// a missing/unreadable file, malformed contents, or (for the solver)
// a code word whose shape has no matching dictionary group. It is
// always fatal to the CLI/server entry points.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// LoadDictionary reads the words file and pattern index file and
// returns an immutable Dictionary. Both file handles are closed
// before this function returns, on every code path.
func LoadDictionary(wordsPath, patternIndexPath string) (*Dictionary, error) {
	words, err := os.ReadFile(wordsPath)
	if err != nil {
		return nil, &ConfigError{Op: "reading dictionary words file", Err: err}
	}

	groups, err := readPatternIndex(patternIndexPath)
	if err != nil {
		return nil, err
	}

	cache, err := lru.NewLRU(groupCacheSize, nil)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// groupCacheSize never is.
		panic(err)
	}

	return &Dictionary{words: words, groups: groups, groupCache: cache}, nil
}

func readPatternIndex(path string) ([]PatternGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Op: "opening pattern index", Err: err}
	}
	defer f.Close()

	var numPatterns uint32
	if err := binary.Read(f, binary.BigEndian, &numPatterns); err != nil {
		return nil, &ConfigError{Op: "reading pattern count", Err: err}
	}

	groups := make([]PatternGroup, numPatterns)
	for i := range groups {
		g, err := readPatternGroup(f)
		if err != nil {
			return nil, &ConfigError{Op: fmt.Sprintf("reading pattern group %d", i), Err: err}
		}
		groups[i] = g
	}
	return groups, nil
}

func readPatternGroup(r io.Reader) (PatternGroup, error) {
	var lenByte [1]byte
	if _, err := io.ReadFull(r, lenByte[:]); err != nil {
		return PatternGroup{}, err
	}
	length := lenByte[0]

	shape := make(Shape, length)
	if length > 0 {
		if _, err := io.ReadFull(r, shape); err != nil {
			return PatternGroup{}, err
		}
	}

	var start, count uint32
	if err := binary.Read(r, binary.BigEndian, &start); err != nil {
		return PatternGroup{}, err
	}
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return PatternGroup{}, err
	}

	return PatternGroup{Len: length, Shape: shape, Start: start, Count: count}, nil
}

// groupCacheKey produces a cache key that uniquely identifies a
// (length, shape) pair.
func groupCacheKey(shape Shape) string {
	key := make([]byte, 1+len(shape))
	key[0] = byte(len(shape))
	copy(key[1:], shape)
	return string(key)
}

// FindGroup returns the unique pattern group whose length and shape
// exactly match shape, or (nil, false) if no such group exists. A
// cache accelerates repeated lookups of the same shape; on a miss it
// falls back to a linear scan, which remains the authoritative
// exact-match predicate.
func (d *Dictionary) FindGroup(shape Shape) (*PatternGroup, bool) {
	key := groupCacheKey(shape)
	if idx, ok := d.groupCache.Get(key); ok {
		i := idx.(int)
		if i < 0 {
			return nil, false
		}
		return &d.groups[i], true
	}

	for i := range d.groups {
		g := &d.groups[i]
		if int(g.Len) == len(shape) && g.Shape.Equal(shape) {
			d.groupCache.Add(key, i)
			return g, true
		}
	}
	d.groupCache.Add(key, -1)
	return nil, false
}

// word returns the i-th word stored in group g as a byte slice
// borrowed from the dictionary's word buffer.
func (d *Dictionary) word(g *PatternGroup, i uint32) []byte {
	start := g.Start + i*uint32(g.Len)
	return d.words[start : start+uint32(g.Len)]
}
