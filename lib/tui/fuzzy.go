// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for fzf's scratch allocator, matching fzf's own defaults.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

func init() {
	// fzf builds its character-class and bonus tables in Init; the
	// default scheme weights word boundaries the way interactive
	// filtering expects.
	algo.Init("default")
}

// FuzzyResult holds the outcome of matching a pattern against a text.
// Score is 0 when the pattern does not match. Positions are rune
// indices into the text for the matched characters, for highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// NewSlab returns a scratch slab for [FuzzyMatch]. Allocate one per
// filter pass and reuse it across every row; the matcher uses it to
// avoid per-call allocations.
func NewSlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// FuzzyMatch runs fzf's V2 fuzzy algorithm over a single text.
// Matching is case-insensitive: both sides are lowercased, so callers
// can pass user input as typed. An empty pattern matches nothing.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 || text == "" {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, r := range pattern {
		lowered[index] = unicode.ToLower(r)
	}
	chars := util.ToChars([]byte(strings.ToLower(text)))

	result, positions := algo.FuzzyMatchV2(true, true, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}
