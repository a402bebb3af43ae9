// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package choice describes the option lists that populate select inputs on
// the venue, artist and show forms.
package choice

// Option is one entry of a select input.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
