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

package pretty

import (
	"reflect"

	"okro.io/pretty/format"
)

// TB is the subset of [testing.TB] needed by the assertions.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Equal asserts that left and right are deeply equal. On failure the test is
// aborted with a diff of the two values.
func Equal(t TB, left, right any, opts ...Option) {
	t.Helper()
	if reflect.DeepEqual(left, right) {
		return
	}
	c := NewComparison(left, right, opts...)
	if !c.Render().Changed() {
		// The values differ but their representations do not, so a diff would
		// show nothing. Fall back to naming the representation.
		t.Fatalf("assertion failed: left == right\n\nvalues differ but render identically:\n%s\n", format.Value(left))
		return
	}
	t.Fatalf("assertion failed: left == right\n\n%s", c)
}

// NotEqual asserts that left and right are not deeply equal. On failure the
// test is aborted with the shared representation of both sides; there is
// nothing to diff.
func NotEqual(t TB, left, right any, _ ...Option) {
	t.Helper()
	if !reflect.DeepEqual(left, right) {
		return
	}
	t.Fatalf("assertion failed: left != right\n\nboth sides:\n%s\n", format.Value(left))
}
