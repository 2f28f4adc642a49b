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

// Package diff computes edit scripts between two slices of comparable atoms.
//
// [Edits] returns one edit per input element, classified as [Match], [Delete] or
// [Insert]. The same engine serves every granularity: [Lines] compares texts line
// by line and [Runes] compares two strings rune by rune. The underlying algorithm
// is the linear-space variant of Myers' algorithm, so the cost is O(ND) time and
// O(N) space where N is the combined input length and D the number of edits.
//
// The edit script is a pure function of its inputs: identical inputs always
// produce identical scripts, and concurrent calls are safe because no state is
// shared between invocations. The exact alignment between equally minimal scripts
// is deterministic but not guaranteed to stay stable across versions.
package diff
