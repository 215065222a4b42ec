// main.go
// Copyright (C) 2026 Codeword Contributors
//
// cwbuild reads a newline-separated word list and writes the on-disk
// pattern index the solver loads at startup.

package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/halldor/codeword"
)

// patternBuildGroup accumulates the words sharing one canonical
// shape while the word list is read.
type patternBuildGroup struct {
	shape codeword.Shape
	words [][]byte
}

func main() {
	log.SetFlags(0)

	// Optional local override of the default on-disk paths.
	_ = godotenv.Load()

	args := os.Args[1:]
	if len(args) != 1 && len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <word_list_file> [test]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where word_list_file is the location of the dictionary file")
		os.Exit(1)
	}
	testMode := false
	if len(args) == 2 {
		if args[1] != "test" {
			log.Fatalf("unrecognised second argument %q", args[1])
		}
		testMode = true
	}

	groups, err := buildPatternGroups(args[0])
	if err != nil {
		log.Fatalf("building pattern index: %v", err)
	}

	if testMode {
		dumpGroups(os.Stdout, groups)
		return
	}

	wordsPath := envOr("CODEWORD_WORDS_PATH", codeword.DefaultWordsPath)
	patternIndexPath := envOr("CODEWORD_PATTERN_INDEX_PATH", codeword.DefaultPatternIndexPath)
	if err := writeDataFiles(wordsPath, patternIndexPath, groups); err != nil {
		log.Fatalf("writing dictionary files: %v", err)
	}
	log.Printf("wrote %d pattern groups to %s and %s", len(groups), patternIndexPath, wordsPath)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// buildPatternGroups reads file, one lowercase word per line, and
// groups the words by (length, canonical shape). Any byte outside
// a-z is a fatal error.
func buildPatternGroups(file string) ([]*patternBuildGroup, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var groups []*patternBuildGroup
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		word := scanner.Bytes()
		if len(word) == 0 {
			continue
		}
		clean := make([]byte, len(word))
		copy(clean, word)

		for i, b := range clean {
			if b < 'a' || b > 'z' {
				return nil, fmt.Errorf("line %d: out of range character %q at position %d", lineNum, b, i)
			}
		}

		shape, err := codeword.ShapeOfLetters(clean)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		groups = appendWord(groups, shape, clean)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// appendWord finds the group matching shape (by length and contents,
// a linear scan just as the dictionary's own FindGroup does) or
// creates a new one, and appends word to it.
func appendWord(groups []*patternBuildGroup, shape codeword.Shape, word []byte) []*patternBuildGroup {
	for _, g := range groups {
		if g.shape.Equal(shape) {
			g.words = append(g.words, word)
			return groups
		}
	}
	g := &patternBuildGroup{shape: shape}
	g.words = append(g.words, word)
	return append(groups, g)
}

// writeDataFiles writes the words buffer and the big-endian pattern
// index in the on-disk format LoadDictionary expects.
func writeDataFiles(wordsPath, patternIndexPath string, groups []*patternBuildGroup) error {
	wf, err := os.Create(wordsPath)
	if err != nil {
		return err
	}
	defer wf.Close()

	pf, err := os.Create(patternIndexPath)
	if err != nil {
		return err
	}
	defer pf.Close()

	if err := binary.Write(pf, binary.BigEndian, uint32(len(groups))); err != nil {
		return err
	}

	var offset uint32
	for _, g := range groups {
		if err := pf.WriteByte(byte(len(g.shape))); err != nil {
			return err
		}
		if _, err := pf.Write(g.shape); err != nil {
			return err
		}
		if err := binary.Write(pf, binary.BigEndian, offset); err != nil {
			return err
		}
		if err := binary.Write(pf, binary.BigEndian, uint32(len(g.words))); err != nil {
			return err
		}
		for _, w := range g.words {
			if _, err := wf.Write(w); err != nil {
				return err
			}
		}
		offset += uint32(len(g.words) * len(g.shape))
	}
	return nil
}

// dumpGroups writes a human-readable representation of every pattern
// group and its words, mirroring the reference builder's "test" mode.
func dumpGroups(w *os.File, groups []*patternBuildGroup) {
	for _, g := range groups {
		fmt.Fprintf(w, "'")
		for _, b := range g.shape {
			fmt.Fprintf(w, "%d ", b)
		}
		fmt.Fprintf(w, "' (%d words)\n", len(g.words))
		for _, word := range g.words {
			fmt.Fprintf(w, "\t%s\n", word)
		}
	}
}
