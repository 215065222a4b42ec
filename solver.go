// solver.go
//
// Copyright (C) 2026 Codeword Contributors
//
// This file implements the constraint-propagation + backtracking
// solver: the recursive core of the system.

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

// SolverContext groups the mutable state a solve threads through its
// recursion: the dictionary, the puzzle being solved, the collated
// candidate sets per code number, and the set of letters already
// assigned. Collecting these into a value (rather than package-level
// globals, as the original C solver used) makes the solver reentrant
// and independently testable.
type SolverContext struct {
	Dict     *Dictionary
	Puzzle   *Puzzle
	possible [26]LetterSet
	used     LetterSet
}

// missingGroup is panicked by refreshCand when a code word's shape
// has no matching dictionary group. It never escapes Solve, which
// recovers it and reports it as a *ConfigError: this is a
// configuration error (the puzzle is unsolvable with the supplied
// dictionary), not a search contradiction.
type missingGroup struct {
	shape Shape
}

// Solve attempts to decode puzzle using dict as the source of valid
// words. It returns true if a complete, consistent assignment was
// found (the first one encountered; this solver does not enumerate
// all solutions). A non-nil error indicates a configuration problem:
// some code word's shape has no matching group in dict.
func Solve(dict *Dictionary, puzzle *Puzzle) (solved bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			mg, ok := r.(missingGroup)
			if !ok {
				panic(r)
			}
			err = &ConfigError{
				Op:  "solving",
				Err: fmt.Errorf("no dictionary entries of length %d match shape %v", len(mg.shape), []byte(mg.shape)),
			}
		}
	}()
	ctx := &SolverContext{Dict: dict, Puzzle: puzzle}
	solved = ctx.solve()
	return
}

// solve is one recursive call frame: check for termination, recompute
// `used`, collate candidates from every code word, and either commit
// forced assignments and recurse, or branch on the smallest ambiguous
// code number and recurse once per candidate letter. A frame that
// returns false leaves the puzzle's Known[] exactly as it found it:
// forced assignments made directly within this frame are reversed
// before returning failure, so a failed subtree never leaks a partial
// assignment to its caller; assignments made and later reversed by
// nested frames are already clean by the time they propagate here.
func (ctx *SolverContext) solve() bool {
	if ctx.terminated() {
		return true
	}

	ctx.recomputeUsed()
	ctx.collatePossibilities()

	solutions, guessable, contradiction := ctx.findSolutions()
	if contradiction {
		return false
	}

	if len(solutions) > 0 {
		for c, letter := range solutions {
			ctx.Puzzle.SetKnown(c, letter)
		}
		if ctx.solve() {
			return true
		}
		for c := range solutions {
			ctx.Puzzle.ClearKnown(c)
		}
		return false
	}

	if guessable < 0 {
		// No forced assignment and nothing to branch on; under I1
		// this should be unreachable unless Needed is inconsistent.
		return false
	}

	for _, letter := range ctx.possible[guessable].Letters() {
		ctx.Puzzle.SetKnown(guessable, letter)
		if ctx.solve() {
			return true
		}
		ctx.Puzzle.ClearKnown(guessable)
	}
	return false
}

// terminated reports whether every code number that is actually used
// somewhere in the puzzle has been decoded.
func (ctx *SolverContext) terminated() bool {
	t := 0
	for c := 0; c < 26; c++ {
		if ctx.Puzzle.Known[c] != 0 || !ctx.Puzzle.Needed[c] {
			t++
		}
	}
	return t == 26
}

// recomputeUsed rebuilds the set of letters already assigned to some
// code number.
func (ctx *SolverContext) recomputeUsed() {
	ctx.used = 0
	for c := 0; c < 26; c++ {
		if k := ctx.Puzzle.Known[c]; k != 0 {
			ctx.used = ctx.used.With(k)
		}
	}
}

// collatePossibilities recomputes, for every code number, the set of
// letters still consistent with every code word it appears in. Code
// words marked dirty have their cached candidates refreshed first.
func (ctx *SolverContext) collatePossibilities() {
	for c := range ctx.possible {
		ctx.possible[c] = FullSet
	}

	for _, cw := range ctx.Puzzle.Words {
		if cw.Dirty {
			ctx.refreshCand(cw)
		}
		for i, clet := range cw.Clets {
			ctx.possible[clet-1] &= cw.Cand[i]
		}
	}

	for c := range ctx.possible {
		ctx.possible[c] &^= ctx.used
	}
}

// refreshCand recomputes a code word's per-position candidate sets
// from the dictionary. It rebuilds cw.Known from puzzle.Known in full
// on every call (rather than only filling previously-zero positions)
// so that a position cleared by backtracking can never leak a stale
// letter into the next refresh.
func (ctx *SolverContext) refreshCand(cw *CodeWord) {
	for i, clet := range cw.Clets {
		cw.Known[i] = ctx.Puzzle.Known[clet-1]
	}
	for i := range cw.Cand {
		cw.Cand[i] = 0
	}

	group, ok := ctx.Dict.FindGroup(cw.Shape)
	if !ok {
		panic(missingGroup{shape: cw.Shape})
	}

	cursor := NewCursor(ctx.Dict, group, cw.Known)
	for {
		word, ok := cursor.Next()
		if !ok {
			break
		}
		for i, c := range word {
			cw.Cand[i] = cw.Cand[i].With(c)
		}
	}

	cw.Dirty = false
}

// findSolutions scans the collated possibility sets, skipping code
// numbers that are already known. It returns the forced assignments
// found (code numbers whose candidate set has exactly one member),
// the index of the "guessable" code number (the unknown with the
// fewest candidates, ties broken by lowest index, or -1 if none
// remain), and whether a contradiction (an unknown with zero
// candidates, or two unknowns forced onto the same letter) was seen.
// On contradiction the other return values are
// meaningless and must be ignored; the caller fails immediately rather
// than trying to salvage a partial result.
func (ctx *SolverContext) findSolutions() (solutions map[int]byte, guessable int, contradiction bool) {
	guessable = -1
	guessableNum := -1
	var forced LetterSet

	for c := 0; c < 26; c++ {
		if ctx.Puzzle.Known[c] != 0 {
			continue
		}
		n := ctx.possible[c].Count()
		switch {
		case n == 0:
			return nil, -1, true
		case n == 1:
			letter, _ := ctx.possible[c].Single()
			if forced.Contains(letter) {
				return nil, -1, true
			}
			forced = forced.With(letter)
			if solutions == nil {
				solutions = make(map[int]byte)
			}
			solutions[c] = letter
		default:
			if guessableNum == -1 || guessableNum > n {
				guessableNum = n
				guessable = c
			}
		}
	}
	return solutions, guessable, false
}
