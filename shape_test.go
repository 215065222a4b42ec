// shape_test.go
//
// Copyright (C) 2026 Codeword Contributors

package codeword

import "testing"

func TestShapeOfLettersCanonicality(t *testing.T) {
	cases := []struct {
		word  string
		shape []byte
	}{
		{"cat", []byte{0, 0, 0}},
		{"tot", []byte{1, 0, 1}},
		{"deed", []byte{1, 2, 2, 1}},
		{"abcabc", []byte{1, 2, 3, 1, 2, 3}},
		{"oo", []byte{1, 1}},
		{"a", []byte{0}},
	}
	for _, c := range cases {
		shape, err := ShapeOfLetters([]byte(c.word))
		if err != nil {
			t.Fatalf("ShapeOfLetters(%q) returned error: %v", c.word, err)
		}
		if !shape.Equal(Shape(c.shape)) {
			t.Errorf("ShapeOfLetters(%q) = %v, want %v", c.word, []byte(shape), c.shape)
		}
	}
}

func TestShapeOfLettersRejectsOutOfRange(t *testing.T) {
	if _, err := ShapeOfLetters([]byte("Cat")); err == nil {
		t.Errorf("expected an error for an uppercase letter")
	}
	if _, err := ShapeOfLetters([]byte("c-t")); err == nil {
		t.Errorf("expected an error for a non-letter byte")
	}
}

func TestShapeOfCodesMatchesLetters(t *testing.T) {
	// 20 15 20 is "tot" shifted into 1..26 code-number space.
	codes := []int{20, 15, 20}
	got, err := ShapeOfCodes(codes)
	if err != nil {
		t.Fatalf("ShapeOfCodes returned error: %v", err)
	}
	want, _ := ShapeOfLetters([]byte("tot"))
	if !got.Equal(want) {
		t.Errorf("ShapeOfCodes(%v) = %v, want %v", codes, []byte(got), []byte(want))
	}
}

func TestShapeOfCodesRejectsOutOfRange(t *testing.T) {
	if _, err := ShapeOfCodes([]int{0, 1, 2}); err == nil {
		t.Errorf("expected an error for code number 0")
	}
	if _, err := ShapeOfCodes([]int{1, 27}); err == nil {
		t.Errorf("expected an error for code number 27")
	}
}

// TestShapeGroupOrdering checks property P1(c): the first repeated
// class encountered, left to right, is labeled 1, and subsequent new
// classes receive strictly increasing labels.
func TestShapeGroupOrdering(t *testing.T) {
	shape, err := ShapeOfLetters([]byte("banana"))
	if err != nil {
		t.Fatalf("ShapeOfLetters returned error: %v", err)
	}
	// b=0 (unique), a=1 (first repeat encountered), n=2 (second), a,n,a repeat.
	want := Shape{0, 1, 2, 1, 2, 1}
	if !shape.Equal(want) {
		t.Errorf("ShapeOfLetters(%q) = %v, want %v", "banana", []byte(shape), []byte(want))
	}
}

// TestShapeBijectionEquivalence checks property P1(d): two words
// share a shape iff related by a letter-relabeling bijection.
func TestShapeBijectionEquivalence(t *testing.T) {
	s1, _ := ShapeOfLetters([]byte("cat"))
	s2, _ := ShapeOfLetters([]byte("dog"))
	if !s1.Equal(s2) {
		t.Errorf("expected cat and dog to share a shape (both all-unique 3-letter words)")
	}
	s3, _ := ShapeOfLetters([]byte("tot"))
	if s1.Equal(s3) {
		t.Errorf("expected cat and tot to have different shapes")
	}
}
