// shape.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements the pattern-shape codec: mapping a letter
// sequence, or an equivalent sequence of 1..26 code numbers, to its
// canonical letter-repetition fingerprint.

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

import "fmt"

// Shape is a word's canonical repetition-pattern vector, one entry
// per letter position. A value of 0 means the letter at that
// position is unique within the word; values 1, 2, ... label
// successive repeated-letter classes in left-to-right order of first
// occurrence.
type Shape []byte

// Equal reports whether two shapes have identical length and
// contents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if other[i] != v {
			return false
		}
	}
	return true
}

// OutOfRangeError is returned by ShapeOfLetters/ShapeOfCodes when a
// symbol falls outside the expected range. It is recoverable: the
// caller may discard the malformed word or code word and continue.
type OutOfRangeError struct {
	Pos   int
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range symbol %d at position %d", e.Value, e.Pos)
}

// shapeOf computes the canonical shape of a word given as 0-indexed
// letter classes (0..25, one per position). This is the shared
// engine behind ShapeOfLetters and ShapeOfCodes; it never fails,
// since its caller has already range-checked every class.
func shapeOf(classes []int) Shape {
	n := len(classes)
	shape := make(Shape, n)

	// Frequency of each letter class within the word.
	var freq [26]int
	for _, c := range classes {
		freq[c]++
	}

	// Assign group numbers left-to-right: the first position of the
	// first repeated class becomes group 1, the next new repeated
	// class becomes group 2, and so on. Positions whose letter is
	// unique in the word are labeled 0.
	var assigned [26]byte
	nextGroup := byte(1)
	for i, c := range classes {
		if freq[c] == 1 {
			shape[i] = 0
			continue
		}
		if assigned[c] == 0 {
			assigned[c] = nextGroup
			nextGroup++
		}
		shape[i] = assigned[c]
	}
	return shape
}

// ShapeOfLetters computes the canonical shape of a lowercase word.
// Every byte of word must lie in 'a'..'z'.
func ShapeOfLetters(word []byte) (Shape, error) {
	classes := make([]int, len(word))
	for i, b := range word {
		if b < 'a' || b > 'z' {
			return nil, &OutOfRangeError{Pos: i, Value: int(b)}
		}
		classes[i] = int(b - 'a')
	}
	return shapeOf(classes), nil
}

// ShapeOfCodes computes the canonical shape of a sequence of code
// numbers. Every entry of codes must lie in 1..26.
func ShapeOfCodes(codes []int) (Shape, error) {
	classes := make([]int, len(codes))
	for i, c := range codes {
		if c < 1 || c > 26 {
			return nil, &OutOfRangeError{Pos: i, Value: c}
		}
		classes[i] = c - 1
	}
	return shapeOf(classes), nil
}
