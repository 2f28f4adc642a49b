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

// Package format renders values as the text blocks that get diffed.
//
// Text-like values pass through untouched so that their own line structure is
// what gets compared. Everything else is rendered as an indented structural
// dump. The rendering is deterministic: two equal values always produce the
// same text, so a comparison of equal values never shows a spurious diff.
package format

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// dumper is tuned for diffing rather than debugging: pointer addresses and
// capacities would differ between two otherwise equal values, and unsorted map
// keys would make the rendering unstable.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value returns the text representation of v used for comparisons.
func Value(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		if v == nil {
			break
		}
		return v.Error()
	}
	return strings.TrimSuffix(dumper.Sdump(v), "\n")
}
