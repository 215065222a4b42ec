// puzzle.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements the puzzle model: code words, their per-
// position candidate bitsets and dirty flags, and the puzzle-wide
// known-letter mapping.

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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CodeWord is one encoded word from the puzzle file.
type CodeWord struct {
	Clets []int      // 1..26 code numbers, as read from the puzzle
	Shape Shape      // canonical shape, computed once at parse time
	Known []byte     // per-position known letter, 0 if unknown
	Cand  []LetterSet // per-position candidate set
	Dirty bool        // true iff Cand may not reflect puzzle.Known
}

// Len returns the number of code letters in the word.
func (cw *CodeWord) Len() int {
	return len(cw.Clets)
}

// NewCodeWord builds a fresh CodeWord from a sequence of 1..26 code
// numbers, computing its canonical shape and initializing its
// per-position candidate state to be refreshed on first use.
func NewCodeWord(clets []int) (*CodeWord, error) {
	shape, err := ShapeOfCodes(clets)
	if err != nil {
		return nil, err
	}
	return &CodeWord{
		Clets: clets,
		Shape: shape,
		Known: make([]byte, len(clets)),
		Cand:  make([]LetterSet, len(clets)),
		Dirty: true,
	}, nil
}

// Puzzle is a parsed codeword puzzle: an ordered list of code words,
// plus the global known-letter mapping and which code numbers are
// actually used anywhere in the puzzle.
type Puzzle struct {
	Words  []*CodeWord
	Known  [26]byte // Known[c] is the decoded letter for code number c+1, or 0
	Needed [26]bool // Needed[c] is true iff code number c+1 appears in some word
}

// NewPuzzle builds a Puzzle directly from in-memory code words and
// known-letter assignments, bypassing the text grammar ParsePuzzle
// consumes. This is the entry point used by callers (such as the
// solve server) that already have structured input, e.g. decoded
// from JSON, instead of a puzzle file.
func NewPuzzle(words [][]int, known map[int]byte) (*Puzzle, error) {
	p := &Puzzle{}
	for c, letter := range known {
		if c < 1 || c > 26 {
			return nil, fmt.Errorf("code number out of range: %d", c)
		}
		if letter < 'a' || letter > 'z' {
			return nil, fmt.Errorf("letter out of range: %q", letter)
		}
		p.Known[c-1] = letter
	}
	for _, clets := range words {
		for _, n := range clets {
			if n < 1 || n > 26 {
				return nil, fmt.Errorf("code number out of range: %d", n)
			}
		}
		cw, err := NewCodeWord(clets)
		if err != nil {
			return nil, err
		}
		p.Words = append(p.Words, cw)
	}
	for _, cw := range p.Words {
		for _, clet := range cw.Clets {
			p.Needed[clet-1] = true
		}
	}
	return p, nil
}

// SetKnown records that code number c (0-indexed) decodes to letter,
// and marks every code word containing that code number as dirty so
// its cached candidates will be refreshed on next use.
func (p *Puzzle) SetKnown(c int, letter byte) {
	p.Known[c] = letter
	p.markDirty(c)
}

// ClearKnown is the inverse of SetKnown, used when backtracking: it
// clears the puzzle-wide mapping for code number c and marks affected
// code words dirty again so a stale per-position Known value is
// overwritten on the next refresh.
func (p *Puzzle) ClearKnown(c int) {
	p.Known[c] = 0
	p.markDirty(c)
}

// markDirty marks every code word containing code number c (0-indexed)
// as dirty.
func (p *Puzzle) markDirty(c int) {
	for _, cw := range p.Words {
		for _, clet := range cw.Clets {
			if clet-1 == c {
				cw.Dirty = true
				break
			}
		}
	}
}

// ParseError reports a malformed puzzle file: a bad line, an
// out-of-range letter, or an out-of-range code number. It is always
// fatal to the caller.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ParsePuzzle reads a puzzle file (an optional known-letters section,
// a blank line or EOF, then one code word per remaining line) and
// builds a Puzzle.
//
// A code number repeated across multiple "known" lines resolves
// last-wins, matching the reference parser's unconditional overwrite.
func ParsePuzzle(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	p := &Puzzle{}

	lineNum := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNum++
		return scanner.Text(), true
	}

	// Section 1: known letters, terminated by a blank line or EOF.
	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "" {
			break
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("expected '<code> <letter>', got %q", line)}
		}
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("bad code number %q", fields[0])}
		}
		if code < 1 || code > 26 {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("code number out of range: %d", code)}
		}
		letters := fields[1]
		if len(letters) != 1 || letters[0] < 'a' || letters[0] > 'z' {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("letter out of range: %q", letters)}
		}
		p.Known[code-1] = letters[0]
	}

	// Section 2: code words, one per remaining line, to EOF.
	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		clets := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("bad code number %q", f)}
			}
			if n < 1 || n > 26 {
				return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("code number out of range: %d", n)}
			}
			clets[i] = n
		}
		cw, err := NewCodeWord(clets)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Msg: err.Error()}
		}
		p.Words = append(p.Words, cw)
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNum, Msg: err.Error()}
	}

	for _, cw := range p.Words {
		for _, clet := range cw.Clets {
			p.Needed[clet-1] = true
		}
	}

	return p, nil
}
