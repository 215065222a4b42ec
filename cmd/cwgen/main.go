// main.go
// Copyright (C) 2026 Codeword Contributors
//
// cwgen generates a fresh, solvable codeword puzzle from the
// dictionary and prints it in the puzzle-file format ParsePuzzle
// reads, so its output can be piped straight into cwsolve.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/halldor/codeword"
)

func main() {
	log.SetFlags(0)
	_ = godotenv.Load()

	wordsPath := flag.String("words", envOr("CODEWORD_WORDS_PATH", codeword.DefaultWordsPath), "path to the dictionary word buffer")
	patternIndexPath := flag.String("patterns", envOr("CODEWORD_PATTERN_INDEX_PATH", codeword.DefaultPatternIndexPath), "path to the dictionary pattern index")
	wordCount := flag.Int("n", 15, "number of code words in the generated puzzle")
	minLen := flag.Int("min", 3, "minimum word length")
	maxLen := flag.Int("max", 9, "maximum word length")
	timeLimit := flag.Duration("time", 5*time.Second, "time budget for generation")
	workers := flag.Int("workers", 4, "number of concurrent generation workers")
	candidates := flag.Int("candidates", 50, "number of accepted candidates to collect before picking the best")
	flag.Parse()

	dict, err := codeword.LoadDictionary(*wordsPath, *patternIndexPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	params := codeword.GenerationParams{
		Dict:          dict,
		WordCount:     *wordCount,
		MinWordLen:    *minLen,
		MaxWordLen:    *maxLen,
		TimeLimit:     *timeLimit,
		NumWorkers:    *workers,
		NumCandidates: *candidates,
	}

	candidate, stats, err := codeword.GeneratePuzzle(params, codeword.DefaultHeuristics)
	if err != nil {
		log.Fatalf("generating puzzle: %v", err)
	}

	log.Printf("accepted %d candidates (rejected: %d too-few-letters, %d unsolvable)",
		stats.Candidates, stats.TooFewUniqueLetters, stats.Unsolvable)

	fmt.Fprintln(os.Stdout) // empty known-letters section, per the puzzle file grammar
	for _, cw := range candidate.Puzzle.Words {
		for i, clet := range cw.Clets {
			if i > 0 {
				fmt.Fprint(os.Stdout, " ")
			}
			fmt.Fprint(os.Stdout, strconv.Itoa(clet))
		}
		fmt.Fprintln(os.Stdout)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
