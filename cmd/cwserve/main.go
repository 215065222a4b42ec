// main.go
// Copyright (C) 2026 Codeword Contributors
//
// cwserve is a compact HTTP server that receives a JSON encoded
// puzzle and returns its decoded mapping: a bearer-token gate read
// from an env var, and a single stateless JSON endpoint. Solves are
// memoized in an LRU cache, since the same small puzzle is often
// resubmitted.

package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/simplelru"
	"github.com/joho/godotenv"

	"github.com/halldor/codeword"
)

// Bearer authorization token, if any. An empty value disables the check.
var authHeader string

// solveCacheSize bounds the memoization cache of recent solves.
const solveCacheSize = 256

var (
	dict       *codeword.Dictionary
	solveCache *lru.LRU
)

// KnownPair is one pre-filled code-number/letter assignment in a
// solve request, mirroring a known-letters line of the puzzle file
// grammar.
type KnownPair struct {
	Code   int    `json:"code"`
	Letter string `json:"letter"`
}

// SolveRequest is the JSON body accepted by POST /solve: the known
// assignments plus the code words, i.e. the puzzle file grammar
// reshaped as JSON instead of lines of text.
type SolveRequest struct {
	Known []KnownPair `json:"known"`
	Words [][]int     `json:"words"`
}

// SolveResponse reports the outcome of a solve.
type SolveResponse struct {
	Solved  bool     `json:"solved"`
	Mapping []string `json:"mapping"` // 26 entries, "" where still unknown
	Words   []string `json:"words"`   // decoded words, unknown positions as "_"
}

func main() {
	log.SetFlags(0)
	_ = godotenv.Load()

	addr := flag.String("addr", envOr("CODEWORD_SERVE_ADDR", ":8080"), "listen address")
	wordsPath := flag.String("words", envOr("CODEWORD_WORDS_PATH", codeword.DefaultWordsPath), "path to the dictionary word buffer")
	patternIndexPath := flag.String("patterns", envOr("CODEWORD_PATTERN_INDEX_PATH", codeword.DefaultPatternIndexPath), "path to the dictionary pattern index")
	flag.Parse()

	authHeader = os.Getenv("CODEWORD_ACCESS_KEY")

	var err error
	dict, err = codeword.LoadDictionary(*wordsPath, *patternIndexPath)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}

	solveCache, err = lru.NewLRU(solveCacheSize, nil)
	if err != nil {
		log.Fatalf("creating solve cache: %v", err)
	}

	http.HandleFunc("/solve", solveHandler)
	http.HandleFunc("/warmup", warmupHandler)

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func warmupHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("warmup request received")
}

func solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	if authHeader != "" && r.Header.Get("Authorization") != authHeader {
		http.Error(w, "authorization header mismatch", http.StatusUnauthorized)
		return
	}

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	known := make(map[int]byte, len(req.Known))
	for _, kp := range req.Known {
		if len(kp.Letter) != 1 {
			http.Error(w, fmt.Sprintf("invalid letter %q for code %d", kp.Letter, kp.Code), http.StatusBadRequest)
			return
		}
		known[kp.Code] = kp.Letter[0]
	}

	key := cacheKey(req.Known, req.Words)
	if cached, ok := solveCache.Get(key); ok {
		writeJSON(w, cached.(*SolveResponse))
		return
	}

	puzzle, err := codeword.NewPuzzle(req.Words, known)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	solved, err := codeword.Solve(dict, puzzle)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := &SolveResponse{Solved: solved, Mapping: mappingStrings(puzzle), Words: decodedWords(puzzle)}
	solveCache.Add(key, resp)
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, resp *SolveResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func mappingStrings(puzzle *codeword.Puzzle) []string {
	out := make([]string, 26)
	for i, c := range puzzle.Known {
		if c != 0 {
			out[i] = string(c)
		}
	}
	return out
}

func decodedWords(puzzle *codeword.Puzzle) []string {
	out := make([]string, len(puzzle.Words))
	for i, cw := range puzzle.Words {
		var sb strings.Builder
		for _, clet := range cw.Clets {
			if c := puzzle.Known[clet-1]; c != 0 {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('_')
			}
		}
		out[i] = sb.String()
	}
	return out
}

// cacheKey produces a stable digest of a solve request so repeated
// submissions of the same puzzle hit the memoization cache.
func cacheKey(known []KnownPair, words [][]int) string {
	sorted := append([]KnownPair(nil), known...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	h := sha256.New()
	for _, kp := range sorted {
		fmt.Fprintf(h, "%d=%s;", kp.Code, kp.Letter)
	}
	h.Write([]byte("|"))
	for _, word := range words {
		for _, n := range word {
			h.Write([]byte(strconv.Itoa(n)))
			h.Write([]byte(","))
		}
		h.Write([]byte(";"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
