// puzzlegen_test.go
//
// Copyright (C) 2026 Codeword Contributors

package codeword

import (
	"testing"
	"time"
)

func TestGeneratePuzzleProducesSolvablePuzzle(t *testing.T) {
	dict := newTestDictionary(t, []string{
		"cat", "cot", "dog", "dot", "tot", "oo", "at",
		"bake", "lake", "make", "rake", "fork", "word", "bird",
	})
	params := GenerationParams{
		Dict:          dict,
		WordCount:     4,
		MinWordLen:    2,
		MaxWordLen:    4,
		TimeLimit:     2 * time.Second,
		NumWorkers:    2,
		NumCandidates: 10,
	}
	heuristics := HeuristicConfig{MinUniqueLetters: 2}

	candidate, stats, err := GeneratePuzzle(params, heuristics)
	if err != nil {
		t.Fatalf("GeneratePuzzle returned error: %v", err)
	}
	if candidate == nil || candidate.Puzzle == nil {
		t.Fatalf("expected a non-nil candidate puzzle")
	}
	if stats.Candidates == 0 {
		t.Errorf("expected at least one accepted candidate")
	}
	for c := range candidate.Puzzle.Known {
		if candidate.Puzzle.Known[c] != 0 {
			t.Errorf("expected the returned puzzle to start with no known letters, found one at code %d", c+1)
		}
	}

	solved, err := Solve(dict, candidate.Puzzle)
	if err != nil {
		t.Fatalf("Solve returned error on a generated puzzle: %v", err)
	}
	if !solved {
		t.Errorf("expected the generated puzzle to be solvable")
	}
}

func TestGeneratePuzzleFailsWhenUnsatisfiable(t *testing.T) {
	dict := newTestDictionary(t, []string{"cat"})
	params := GenerationParams{
		Dict:          dict,
		WordCount:     3,
		MinWordLen:    3,
		MaxWordLen:    3,
		TimeLimit:     300 * time.Millisecond,
		NumWorkers:    2,
		NumCandidates: 10,
	}
	heuristics := HeuristicConfig{MinUniqueLetters: 26}

	if _, _, err := GeneratePuzzle(params, heuristics); err == nil {
		t.Errorf("expected an error when no candidate can satisfy the heuristics")
	}
}
