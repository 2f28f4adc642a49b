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

// Package lines splits text blocks into the line atoms used for comparisons.
package lines

import "strings"

// Split returns the lines of s without their '\n' separators.
//
// The content after the last separator is always part of the result, even when it
// is empty. A text ending in '\n' therefore produces an empty final line while a
// text without one does not, so comparing two texts that disagree only on the
// trailing newline yields exactly one extra atom on one side instead of a
// misalignment. The empty text is the one exception: it has no lines at all, so
// it diffs cleanly against any other text.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
