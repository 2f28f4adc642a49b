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

package myers

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// marks returns the indices set in a result vector, ignoring the border.
func marks(r []bool) []int {
	var out []int
	for i, set := range r[:len(r)-1] {
		if set {
			out = append(out, i)
		}
	}
	return out
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []string
		wantDels []int
		wantIns  []int
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
		},
		{
			name: "empty",
		},
		{
			name:    "x-empty",
			y:       []string{"foo", "bar"},
			wantIns: []int{0, 1},
		},
		{
			name:     "y-empty",
			x:        []string{"foo", "bar"},
			wantDels: []int{0, 1},
		},
		{
			name:     "same-prefix",
			x:        []string{"foo", "bar"},
			y:        []string{"foo", "baz"},
			wantDels: []int{1},
			wantIns:  []int{1},
		},
		{
			name:     "same-suffix",
			x:        []string{"foo", "bar"},
			y:        []string{"loo", "bar"},
			wantDels: []int{0},
			wantIns:  []int{0},
		},
		{
			name:     "disjoint",
			x:        []string{"a", "b"},
			y:        []string{"c", "d", "e"},
			wantDels: []int{0, 1},
			wantIns:  []int{0, 1, 2},
		},
		{
			name:     "ABCABBA_to_CBABAC",
			x:        strings.Split("ABCABBA", ""),
			y:        strings.Split("CBABAC", ""),
			wantDels: []int{0, 2, 5},
			wantIns:  []int{0, 5},
		},
		{
			// Both alignments are minimal here; this pins down the one the
			// search picks so that accidental changes to the tie-break show up.
			name:     "swapped-pair",
			x:        []string{"A", "B"},
			y:        []string{"B", "A"},
			wantDels: []int{1},
			wantIns:  []int{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := Diff(tt.x, tt.y)
			if len(rx) != len(tt.x)+1 || len(ry) != len(tt.y)+1 {
				t.Fatalf("result vectors have lengths %d, %d, want %d, %d", len(rx), len(ry), len(tt.x)+1, len(tt.y)+1)
			}
			if diff := cmp.Diff(tt.wantDels, marks(rx)); diff != "" {
				t.Errorf("deletions differ [-want, +got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantIns, marks(ry)); diff != "" {
				t.Errorf("insertions differ [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestDiffFunc(t *testing.T) {
	eq := func(a, b string) bool { return strings.EqualFold(a, b) }
	rx, ry := DiffFunc([]string{"Foo", "BAR"}, []string{"foo", "baz"}, eq)
	if diff := cmp.Diff([]int{1}, marks(rx)); diff != "" {
		t.Errorf("deletions differ [-want, +got]:\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, marks(ry)); diff != "" {
		t.Errorf("insertions differ [-want, +got]:\n%s", diff)
	}
}

// TestDiffRandom checks the structural invariants on random inputs: the
// unmarked elements of both sides must form the same subsequence, the result
// must be deterministic, and comparing an input with itself must mark nothing.
func TestDiffRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x0ff, 0xbeef))
	randSeq := func() []byte {
		n := rng.IntN(40)
		s := make([]byte, n)
		for i := range s {
			s[i] = byte('a' + rng.IntN(4)) // small alphabet to force collisions
		}
		return s
	}

	for range 500 {
		x, y := randSeq(), randSeq()

		rx, ry := Diff(x, y)
		var cx, cy []byte
		for s := range x {
			if !rx[s] {
				cx = append(cx, x[s])
			}
		}
		for u := range y {
			if !ry[u] {
				cy = append(cy, y[u])
			}
		}
		if string(cx) != string(cy) {
			t.Fatalf("Diff(%q, %q): common subsequences disagree: %q vs %q", x, y, cx, cy)
		}

		rx2, ry2 := Diff(x, y)
		if diff := cmp.Diff(rx, rx2); diff != "" {
			t.Fatalf("Diff(%q, %q) is not deterministic [-first, +second]:\n%s", x, y, diff)
		}
		if diff := cmp.Diff(ry, ry2); diff != "" {
			t.Fatalf("Diff(%q, %q) is not deterministic [-first, +second]:\n%s", x, y, diff)
		}

		ix, iy := Diff(x, x)
		if len(marks(ix)) != 0 || len(marks(iy)) != 0 {
			t.Fatalf("Diff(%q, %q): self comparison marked edits", x, x)
		}
	}
}
