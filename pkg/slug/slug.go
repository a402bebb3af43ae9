// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives the display slug stored next to venue, artist and
// genre names (e.g. "The Musical Hop" → "the_musical_hop").
//
// The transformation is lossy and not guaranteed unique; two names that only
// differ in punctuation or spacing share a slug.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unsafe holds the characters that are not URL safe and are dropped outright.
const unsafe = "\"#$%&+,/:;=?@[\\]^`{|}~'"

// lowerTag selects language-neutral case mapping. A [cases.Caser] is not safe
// for concurrent use, so From builds one per call.
var lowerTag = language.Und

// From converts a name into its slug.
//
// # Transformation Pipeline
//
//  1. Removes every character listed in unsafe.
//  2. Splits on runs of whitespace, dropping leading and trailing space.
//  3. Joins the words with underscores.
//  4. Lowercases the result.
func From(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafe, r) {
			return -1
		}
		return r
	}, name)

	joined := strings.Join(strings.Fields(stripped), "_")

	return cases.Lower(lowerTag).String(joined)
}
