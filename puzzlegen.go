// puzzlegen.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements puzzle generation: building a fresh, solvable
// codeword puzzle out of the dictionary instead of reading one from a
// file. A pool of workers each assembles a random candidate,
// candidates are scored by a heuristic, and the best one wins.

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
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// GenerationParams controls how candidate puzzles are assembled.
type GenerationParams struct {
	Dict          *Dictionary
	WordCount     int // how many code words the generated puzzle should contain
	MinWordLen    int
	MaxWordLen    int
	TimeLimit     time.Duration
	NumWorkers    int
	NumCandidates int // stop once this many candidates have been accepted
}

// HeuristicConfig defines what makes a generated puzzle "good": one
// that exercises the solver's constraint propagation rather than
// falling apart into disconnected single-letter guesses.
type HeuristicConfig struct {
	MinUniqueLetters    int     // candidates using fewer distinct letters than this are rejected
	RepeatedLetterBonus float64 // reward code words with an internal repeated letter (a nontrivial shape)
	LengthVarietyBonus  float64 // reward a spread of word lengths over a uniform one
}

// DefaultHeuristics is a reasonable baseline for everyday puzzles.
var DefaultHeuristics = HeuristicConfig{
	MinUniqueLetters:    10,
	RepeatedLetterBonus: 2.0,
	LengthVarietyBonus:  1.0,
}

// Stats tallies why candidates were rejected during generation, for
// diagnostics.
type Stats struct {
	Candidates          int64
	TooFewUniqueLetters int
	Unsolvable          int
	ContextCancelled    int
}

// Candidate is an evaluated, generated puzzle awaiting ranking.
type Candidate struct {
	Puzzle *Puzzle
	Words  []string
	Score  float64
}

// randomWord picks a uniformly random word of length between min and
// max (inclusive) from the dictionary, or ("", false) if none exists.
func (d *Dictionary) randomWord(rng *rand.Rand, minLen, maxLen int) (string, bool) {
	var candidates []int
	total := 0
	for i, g := range d.groups {
		if int(g.Len) >= minLen && int(g.Len) <= maxLen {
			candidates = append(candidates, i)
			total += int(g.Count)
		}
	}
	if total == 0 {
		return "", false
	}
	pick := rng.Intn(total)
	for _, i := range candidates {
		g := &d.groups[i]
		if pick < int(g.Count) {
			return string(d.word(g, uint32(pick))), true
		}
		pick -= int(g.Count)
	}
	return "", false // unreachable given the accounting above
}

// generateCandidate assembles one random puzzle: WordCount words are
// drawn from the dictionary, each letter that appears is assigned the
// next unused code number in first-appearance order, and the result is
// checked for solvability from a blank slate.
func generateCandidate(ctx context.Context, params GenerationParams, heuristics HeuristicConfig, stats *Stats) (*Candidate, error) {
	rng := rand.New(rand.NewSource(rand.Int63()))

	letterToCode := make(map[byte]int)
	nextCode := 1
	var allWords []string
	var codeWords [][]int

	for n := 0; n < params.WordCount; n++ {
		select {
		case <-ctx.Done():
			stats.ContextCancelled++
			return nil, ctx.Err()
		default:
		}

		word, ok := params.Dict.randomWord(rng, params.MinWordLen, params.MaxWordLen)
		if !ok {
			continue
		}
		clets := make([]int, len(word))
		for i := 0; i < len(word); i++ {
			letter := word[i]
			code, seen := letterToCode[letter]
			if !seen {
				if nextCode > 26 {
					continue // exhausted the alphabet; not reached for a-z words, which have at most 26 distinct letters
				}
				code = nextCode
				letterToCode[letter] = code
				nextCode++
			}
			clets[i] = code
		}
		allWords = append(allWords, word)
		codeWords = append(codeWords, clets)
	}

	if len(letterToCode) < heuristics.MinUniqueLetters {
		stats.TooFewUniqueLetters++
		return nil, nil
	}

	puzzle, err := NewPuzzle(codeWords, nil)
	if err != nil {
		return nil, err
	}
	solved, err := Solve(params.Dict, puzzle)
	if err != nil || !solved {
		stats.Unsolvable++
		return nil, nil
	}

	score := float64(len(letterToCode))
	lengths := make(map[int]bool)
	for _, w := range allWords {
		lengths[len(w)] = true
		shape, _ := ShapeOfLetters([]byte(w))
		for i := 1; i < len(shape); i++ {
			if shape[i] != 0 {
				score += heuristics.RepeatedLetterBonus
				break
			}
		}
	}
	score += float64(len(lengths)) * heuristics.LengthVarietyBonus

	// Re-parse into a fresh, unsolved Puzzle: the one just solved has
	// its Known[] fully populated and is not what callers want handed
	// back to them.
	fresh, err := NewPuzzle(codeWords, nil)
	if err != nil {
		return nil, err
	}
	return &Candidate{Puzzle: fresh, Words: allWords, Score: score}, nil
}

// GeneratePuzzle runs params.NumWorkers workers concurrently, each
// repeatedly generating and scoring candidates until NumCandidates
// have been accepted or TimeLimit elapses, then returns the
// highest-scoring candidate found.
func GeneratePuzzle(params GenerationParams, heuristics HeuristicConfig) (*Candidate, *Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), params.TimeLimit)
	defer cancel()

	var wg sync.WaitGroup
	candidateChan := make(chan *Candidate, 100)
	stats := &Stats{}

	numWorkers := params.NumWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for atomic.LoadInt64(&stats.Candidates) < int64(params.NumCandidates) {
				select {
				case <-ctx.Done():
					return
				default:
					candidate, err := generateCandidate(ctx, params, heuristics, stats)
					if err == nil && candidate != nil {
						candidateChan <- candidate
						atomic.AddInt64(&stats.Candidates, 1)
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(candidateChan)
	}()

	var found []*Candidate
	for candidate := range candidateChan {
		found = append(found, candidate)
	}

	if len(found) == 0 {
		return nil, stats, fmt.Errorf("could not generate a suitable puzzle in the allotted time")
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Score > found[j].Score })
	return found[0], stats, nil
}
