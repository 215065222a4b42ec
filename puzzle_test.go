// puzzle_test.go
//
// Copyright (C) 2026 Codeword Contributors

package codeword

import (
	"strings"
	"testing"
)

func newPuzzleString(s string) *strings.Reader {
	return strings.NewReader(s)
}

func TestParsePuzzleNoKnown(t *testing.T) {
	p, err := ParsePuzzle(newPuzzleString("\n1 2 3\n"))
	if err != nil {
		t.Fatalf("ParsePuzzle returned error: %v", err)
	}
	if len(p.Words) != 1 {
		t.Fatalf("expected 1 code word, got %d", len(p.Words))
	}
	if p.Words[0].Len() != 3 {
		t.Errorf("expected a 3-letter code word, got %d", p.Words[0].Len())
	}
	for _, c := range p.Known {
		if c != 0 {
			t.Errorf("expected no known letters, found %c", c)
		}
	}
	for i, needed := range p.Needed {
		want := i < 3
		if needed != want {
			t.Errorf("Needed[%d] = %v, want %v", i, needed, want)
		}
	}
}

func TestParsePuzzleWithKnown(t *testing.T) {
	p, err := ParsePuzzle(newPuzzleString("1 c\n\n1 2 3\n"))
	if err != nil {
		t.Fatalf("ParsePuzzle returned error: %v", err)
	}
	if p.Known[0] != 'c' {
		t.Errorf("expected code number 1 to decode to 'c', got %q", p.Known[0])
	}
	if len(p.Words) != 1 || p.Words[0].Len() != 3 {
		t.Fatalf("unexpected parsed code words: %+v", p.Words)
	}
}

func TestParsePuzzleDuplicateKnownLastWins(t *testing.T) {
	p, err := ParsePuzzle(newPuzzleString("1 q\n1 x\n\n1 2\n"))
	if err != nil {
		t.Fatalf("ParsePuzzle returned error: %v", err)
	}
	if p.Known[0] != 'x' {
		t.Errorf("expected the later 'known' line to win: got %q, want 'x'", p.Known[0])
	}
}

func TestParsePuzzleTerminatesKnownSectionOnEOF(t *testing.T) {
	// No blank line at all; EOF alone must terminate Section 1 when
	// there are no code words.
	p, err := ParsePuzzle(newPuzzleString("1 a\n2 b\n"))
	if err != nil {
		t.Fatalf("ParsePuzzle returned error: %v", err)
	}
	if p.Known[0] != 'a' || p.Known[1] != 'b' {
		t.Errorf("expected both known letters to be parsed, got %+v", p.Known)
	}
	if len(p.Words) != 0 {
		t.Errorf("expected no code words, got %d", len(p.Words))
	}
}

func TestParsePuzzleRejectsOutOfRangeCode(t *testing.T) {
	if _, err := ParsePuzzle(newPuzzleString("27 a\n\n1 2\n")); err == nil {
		t.Errorf("expected an error for an out-of-range code number in the known section")
	}
	if _, err := ParsePuzzle(newPuzzleString("\n1 2 27\n")); err == nil {
		t.Errorf("expected an error for an out-of-range code number in a code word")
	}
}

func TestParsePuzzleRejectsOutOfRangeLetter(t *testing.T) {
	if _, err := ParsePuzzle(newPuzzleString("1 Q\n\n1 2\n")); err == nil {
		t.Errorf("expected an error for an uppercase letter in the known section")
	}
}

func TestSetKnownAndClearKnownMarkAffectedWordsDirty(t *testing.T) {
	p, err := ParsePuzzle(newPuzzleString("\n1 2 1\n"))
	if err != nil {
		t.Fatalf("ParsePuzzle returned error: %v", err)
	}
	cw := p.Words[0]
	cw.Dirty = false

	p.SetKnown(0, 't') // code number 1 -> 0-indexed 0
	if !cw.Dirty {
		t.Errorf("expected the code word containing code number 1 to become dirty")
	}
	if p.Known[0] != 't' {
		t.Errorf("expected Known[0] == 't', got %q", p.Known[0])
	}

	cw.Dirty = false
	p.ClearKnown(0)
	if !cw.Dirty {
		t.Errorf("expected ClearKnown to mark the code word dirty again")
	}
	if p.Known[0] != 0 {
		t.Errorf("expected Known[0] to be cleared, got %q", p.Known[0])
	}
}
