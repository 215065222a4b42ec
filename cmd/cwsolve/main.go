// main.go
// Copyright (C) 2026 Codeword Contributors
//
// cwsolve reads a puzzle file and prints its decoded letter mapping:
// usage is `cwsolve <puzzle_file>`.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/halldor/codeword"
)

func main() {
	log.SetFlags(0)
	_ = godotenv.Load()

	verbose := flag.Bool("v", false, "print code-letter usage and decoded words")
	wordsPath := flag.String("words", envOr("CODEWORD_WORDS_PATH", codeword.DefaultWordsPath), "path to the dictionary word buffer")
	patternIndexPath := flag.String("patterns", envOr("CODEWORD_PATTERN_INDEX_PATH", codeword.DefaultPatternIndexPath), "path to the dictionary pattern index")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] [-words path] [-patterns path] <puzzle_file>\n", os.Args[0])
		os.Exit(1)
	}
	puzzleFile := flag.Arg(0)

	dict, err := codeword.LoadDictionary(*wordsPath, *patternIndexPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	f, err := os.Open(puzzleFile)
	if err != nil {
		log.Fatalf("opening puzzle file: %v", err)
	}
	puzzle, err := codeword.ParsePuzzle(f)
	f.Close()
	if err != nil {
		log.Fatalf("parsing puzzle: %v", err)
	}

	if *verbose {
		printNeeded(puzzle)
	}

	solved, err := codeword.Solve(dict, puzzle)
	if err != nil {
		log.Fatalf("solving puzzle: %v", err)
	}

	if solved {
		fmt.Println("Puzzle Solved")
	} else {
		fmt.Println("Puzzle Not Solved")
	}

	fmt.Println("Mapping:")
	for i := 0; i < 26; i++ {
		if c := puzzle.Known[i]; c != 0 {
			fmt.Printf("    %d -> %c\n", i+1, c)
		} else {
			fmt.Printf("    %d -> ?\n", i+1)
		}
	}

	if *verbose {
		printDecodedWords(puzzle)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printNeeded(puzzle *codeword.Puzzle) {
	fmt.Print("code letters needed =")
	for i := 0; i < 26; i++ {
		if puzzle.Needed[i] {
			fmt.Printf(" %d", i+1)
		}
	}
	fmt.Println()
	fmt.Print(" (hence not needed) =")
	for i := 0; i < 26; i++ {
		if !puzzle.Needed[i] {
			fmt.Printf(" %d", i+1)
		}
	}
	fmt.Println()
}

func printDecodedWords(puzzle *codeword.Puzzle) {
	fmt.Println("Decoded Words:")
	for _, cw := range puzzle.Words {
		fmt.Print("    ")
		for i, clet := range cw.Clets {
			if c := puzzle.Known[clet-1]; c != 0 {
				fmt.Printf("%c", c)
			} else {
				fmt.Printf(" %d ", i+1)
			}
		}
		fmt.Println()
	}
}
