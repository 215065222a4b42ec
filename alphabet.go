// alphabet.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements LetterSet, the 26-bit bitmap representation
// of a subset of the English alphabet used throughout the solver.

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

import "math/bits"

// LetterSet is a bitmap over the 26 letters of the English alphabet.
// Bit i (i.e. 1<<i) represents letter 'a'+i.
type LetterSet uint32

// FullSet contains every letter a-z.
const FullSet LetterSet = 0x03FFFFFF

// letterBit returns the LetterSet containing only the lowercase
// letter c. c must be in 'a'..'z'.
func letterBit(c byte) LetterSet {
	return LetterSet(1) << (c - 'a')
}

// With returns the set with letter c added.
func (s LetterSet) With(c byte) LetterSet {
	return s | letterBit(c)
}

// Without returns the set with letter c removed.
func (s LetterSet) Without(c byte) LetterSet {
	return s &^ letterBit(c)
}

// Contains reports whether letter c is a member of s.
func (s LetterSet) Contains(c byte) bool {
	return s&letterBit(c) != 0
}

// Count returns the number of letters in s.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Single reports whether s contains exactly one letter, returning
// that letter (lowercase) and true, or (0, false) otherwise.
func (s LetterSet) Single() (byte, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	for c := byte('a'); c <= 'z'; c++ {
		if s.Contains(c) {
			return c, true
		}
	}
	// Unreachable given Count() == 1.
	return 0, false
}

// Letters returns the members of s in ascending order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Count())
	for c := byte('a'); c <= 'z'; c++ {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
