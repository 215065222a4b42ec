// cursor.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements the pattern cursor: a lazy, finite, single-pass
// sequence of dictionary words matching a pattern group, filtered by
// a known-letter mask.

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

// Cursor advances through a pattern group's word region one word at a
// time, yielding only the words that agree with knownMask at every
// non-zero position. It carries its own position explicitly (current,
// bounded by the group's Count) rather than relying on hidden
// package-level state, so that
// multiple cursors may be constructed and used independently. A
// cursor is not restartable: once exhausted, construct a new one.
type Cursor struct {
	dict      *Dictionary
	group     *PatternGroup
	knownMask []byte
	current   uint32 // index (in words, not bytes) of the next candidate
}

// NewCursor constructs a cursor over group within dict. knownMask[i]
// is 0 (wildcard) or the lowercase letter that every yielded word
// must carry at position i. len(knownMask) must equal int(group.Len).
func NewCursor(dict *Dictionary, group *PatternGroup, knownMask []byte) *Cursor {
	return &Cursor{dict: dict, group: group, knownMask: knownMask}
}

// Next returns the next matching word, or (nil, false) once the group
// has been exhausted. Each matching word is returned at most once, in
// the group's stable storage order.
func (c *Cursor) Next() ([]byte, bool) {
	for c.current < c.group.Count {
		w := c.dict.word(c.group, c.current)
		c.current++
		if matchesMask(w, c.knownMask) {
			return w, true
		}
	}
	return nil, false
}

// matchesMask reports whether word agrees with mask at every position
// where mask holds a non-zero (known) letter.
func matchesMask(word, mask []byte) bool {
	for i, m := range mask {
		if m != 0 && word[i] != m {
			return false
		}
	}
	return true
}
