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

// Package myers implements the linear-space variant of Myers' diff algorithm.
//
// The algorithm models the comparison of x and y as a search on the edit graph: a
// step right deletes an element from x, a step down inserts an element from y, and
// a free diagonal step consumes a matching pair. A minimum-cost path from the top
// left to the bottom right corresponds to a minimal edit script.
//
// Myers' greedy search extends, for increasing edit distance d, the furthest
// reaching d-path on every diagonal k (where k = s - t for positions s in x and t
// in y). The linear-space refinement from section 4.2 of the paper searches forward
// from the start and backward from the end at the same time; when the two frontiers
// overlap, the overlap pins down a sequence of diagonal steps in the middle of an
// optimal path. The algorithm records that middle run and recurses into the two
// remaining corners.
//
// The result is reported as two boolean vectors: rx[s] is set when x[s] has no
// counterpart in y (a deletion), ry[t] is set when y[t] has no counterpart in x (an
// insertion). Unset positions pair up in order and form the common subsequence.
// Both vectors carry one extra trailing element so that callers can walk them
// without bounds checks on the last position.
//
// When the forward and backward frontiers tie on a diagonal, the search prefers
// the path reached through a deletion. This makes the output deterministic and
// orders deletions before insertions within a changed region.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations.
// Algorithmica 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers

import "math"

// Diff compares x and y and returns the result vectors marking deletions in x and
// insertions in y. The vectors are one element longer than their input.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	return DiffFunc(x, y, func(a, b T) bool { return a == b })
}

// DiffFunc is like [Diff] but compares elements with eq.
//
// eq must be an equivalence relation; in particular eq(a, b) must equal eq(b, a)
// for the result to be symmetric in x and y.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	rx, ry = Vectors(x, y)

	s0, t0 := 0, 0
	s1, t1 := len(x), len(y)

	// Strip the common prefix and suffix, they never contribute edits.
	for s0 < s1 && t0 < t1 && eq(x[s0], y[t0]) {
		s0++
		t0++
	}
	for s1 > s0 && t1 > t0 && eq(x[s1-1], y[t1-1]) {
		s1--
		t1--
	}

	switch {
	case s0 == s1 && t0 == t1:
		return rx, ry
	case t0 == t1:
		for s := s0; s < s1; s++ {
			rx[s] = true
		}
		return rx, ry
	case s0 == s1:
		for t := t0; t < t1; t++ {
			ry[t] = true
		}
		return rx, ry
	}

	// The frontier arrays cover every diagonal of the stripped problem plus a
	// sentinel on each side, for both search directions, in one allocation.
	diagonals := (s1 - s0) + (t1 - t0)
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)
	g := &graph[T]{
		x:   x,
		y:   y,
		eq:  eq,
		fwd: buf[:vlen:vlen],
		bwd: buf[vlen:],
		mid: diagonals + 1,
		rx:  rx,
		ry:  ry,
	}
	g.solve(s0, s1, t0, t1)
	return rx, ry
}

// Vectors allocates bordered result vectors for inputs of the given lengths.
func Vectors[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return rx, ry
}

type graph[T any] struct {
	x, y []T
	eq   func(a, b T) bool

	// Furthest reaching endpoints per diagonal for the forward and backward
	// searches. A diagonal k is stored at index mid+k; only the s coordinate is
	// kept since t = s - k.
	fwd, bwd []int
	mid      int

	rx, ry []bool
}

// solve marks all edits needed to transform x[s0:s1] into y[t0:t1]. The two
// ranges must not share a common prefix or suffix.
func (g *graph[T]) solve(s0, s1, t0, t1 int) {
	switch {
	case s0 == s1:
		for t := t0; t < t1; t++ {
			g.ry[t] = true
		}
	case t0 == t1:
		for s := s0; s < s1; s++ {
			g.rx[s] = true
		}
	default:
		// Find a run of matches in the middle of an optimal path and recurse
		// into the rectangles before and after it. Both rectangles come out of
		// the search without a common prefix or suffix, so they can be solved
		// directly.
		ms0, ms1, mt0, mt1 := g.middle(s0, s1, t0, t1)
		g.solve(s0, ms0, t0, mt0)
		g.solve(ms1, s1, mt1, t1)
	}
}

// middle runs the bidirectional greedy search over x[s0:s1] x y[t0:t1] and
// returns a possibly empty run of diagonal steps (ms0,mt0)..(ms1,mt1) lying on an
// optimal path. The ranges must not share a common prefix or suffix and must not
// both be empty.
func (g *graph[T]) middle(s0, s1, t0, t1 int) (ms0, ms1, mt0, mt1 int) {
	x, y := g.x, g.y
	fwd, bwd := g.fwd, g.bwd
	mid := g.mid

	// Diagonals touching the rectangle, and the diagonals through its corners.
	kmin, kmax := s0-t1, s1-t0
	fmid, bmid := s0-t0, s1-t1
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// Paths with an odd edit distance end on odd diagonals and even distances on
	// even diagonals, so only one of the two searches can detect the overlap.
	odd := (s1-s0-(t1-t0))%2 != 0

	// There is no common prefix or suffix, so there is no 0-path and the search
	// can start directly at d=1 with the trivial d=0 endpoints below.
	fwd[mid+fmid] = s0
	bwd[mid+bmid] = s1

	for d := 1; ; d++ {
		// Extend the forward frontier. Growing the search range past the
		// rectangle border is replaced by shrinking it, and a sentinel next to
		// the range lets the k-loop treat the border like any other diagonal.
		if fmin > kmin {
			fmin--
			fwd[mid+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			fwd[mid+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			i := mid + k
			// A furthest reaching d-path extends a (d-1)-path on a neighboring
			// diagonal by one horizontal or vertical step. On a tie, the
			// horizontal step wins: deletions before insertions.
			var s int
			if fwd[i-1] < fwd[i+1] {
				s = fwd[i+1]
			} else {
				s = fwd[i-1] + 1
			}
			t := s - k

			// Slide down the diagonal as far as matches allow.
			u, v := s, t
			for u < s1 && v < t1 && g.eq(x[u], y[v]) {
				u++
				v++
			}
			fwd[i] = u

			if odd && bmin <= k && k <= bmax && u >= bwd[i] {
				return s, u, t, v
			}
		}

		// Extend the backward frontier, mirroring the forward case.
		if bmin > kmin {
			bmin--
			bwd[mid+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			bwd[mid+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			i := mid + k
			var s int
			if bwd[i-1] < bwd[i+1] {
				s = bwd[i-1]
			} else {
				s = bwd[i+1] - 1
			}
			t := s - k

			u, v := s, t
			for u > s0 && v > t0 && g.eq(x[u-1], y[v-1]) {
				u--
				v--
			}
			bwd[i] = u

			if !odd && fmin <= k && k <= fmax && u <= fwd[i] {
				return u, s, v, t
			}
		}
	}
}
