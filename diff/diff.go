// Copyright 2026 Nils Okroy (nils@okro.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package diff

import (
	"okro.io/pretty/internal/lines"
	"okro.io/pretty/internal/myers"
)

// Op classifies a single edit.
type Op int

const (
	Match  Op = iota // The element is present in both inputs.
	Delete           // The element is only present in the left input.
	Insert           // The element is only present in the right input.
)

// String returns the name of the operation.
func (op Op) String() string {
	switch op {
	case Match:
		return "Match"
	case Delete:
		return "Delete"
	case Insert:
		return "Insert"
	default:
		return "Op(invalid)"
	}
}

// Edit describes a single edit of a diff.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the deleted element and Y is the zero value.
//   - For Insert, Y contains the inserted element and X is the zero value.
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Edits compares x and y and returns the edits necessary to convert from one to
// the other, one edit per input element.
//
// The script reconstructs both inputs: the X values of all non-Insert edits are
// x in order, the Y values of all non-Delete edits are y in order. Within a
// changed region, deletions precede insertions. If x and y are identical, every
// edit is a match; for two empty inputs the result is empty.
func Edits[T comparable](x, y []T) []Edit[T] {
	rx, ry := myers.Diff(x, y)
	return script(x, y, rx, ry)
}

// EditsFunc is like [Edits] but compares elements with eq.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	rx, ry := myers.DiffFunc(x, y, eq)
	return script(x, y, rx, ry)
}

// Lines compares two text blocks line by line.
//
// Lines are compared without their separators. A missing trailing newline on one
// side only shows up as a one-line difference, an empty atom present on the side
// that ends in '\n'.
func Lines(x, y string) []Edit[string] {
	return Edits(lines.Split(x), lines.Split(y))
}

// Runes compares two strings rune by rune. This is the granularity used to
// highlight changes within a single line.
func Runes(x, y string) []Edit[rune] {
	return Edits([]rune(x), []rune(y))
}

// script translates the result vectors into the exported edit representation,
// emitting deletions before insertions at every change point.
func script[T any](x, y []T, rx, ry []bool) []Edit[T] {
	n, m := len(rx)-1, len(ry)-1
	if n == 0 && m == 0 {
		return nil
	}
	out := make([]Edit[T], 0, n+m)
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			out = append(out, Edit[T]{Op: Delete, X: x[s]})
			s++
		}
		for t < m && ry[t] {
			out = append(out, Edit[T]{Op: Insert, Y: y[t]})
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			out = append(out, Edit[T]{Op: Match, X: x[s], Y: y[t]})
			s++
			t++
		}
	}
	return out
}
