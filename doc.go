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

// Package pretty provides equality assertions that fail with a colorized diff.
//
// A failing comparison of two large values usually prints both values in full
// and leaves spotting the difference to the reader. [Equal] instead renders a
// line diff of the two representations, and when the whole difference fits on a
// single changed line it highlights the differing characters within that line:
//
//	func TestConfig(t *testing.T) {
//	    got := LoadConfig()
//	    pretty.Equal(t, want, got)
//	}
//
// Values are rendered with a deterministic structural dump; strings and byte
// slices are diffed as the text they are. A [Comparison] gives access to the
// same rendering without the testing hook, e.g. for panic messages.
//
// Color is resolved against stderr and disabled automatically for pipes and
// under NO_COLOR. The subpackages do the actual work and can be used on their
// own: [okro.io/pretty/diff] computes edit scripts, [okro.io/pretty/render]
// renders them as role-tagged lines, and [okro.io/pretty/style] maps roles to
// terminal styles.
package pretty
