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
	"okro.io/pretty/format"
	"okro.io/pretty/render"
)

// Comparison is a deferred diff of two values. The values are only formatted
// and compared when the comparison is read, so constructing one is cheap and a
// Comparison can sit in a code path that rarely fires, such as a panic message:
//
//	if got != want {
//	    panic(fmt.Sprintf("state mismatch\n\n%s", pretty.NewComparison(want, got)))
//	}
type Comparison struct {
	left, right any
	cfg         config
}

// NewComparison stores two values for later comparison. The values may have
// different types; they are compared by their rendered representations.
func NewComparison(left, right any, opts ...Option) *Comparison {
	c := &Comparison{left: left, right: right}
	for _, opt := range opts {
		opt(&c.cfg)
	}
	return c
}

// Render computes the role-tagged diff of the two representations.
func (c *Comparison) Render() render.Output {
	return render.Compare(format.Value(c.left), format.Value(c.right), c.cfg.renderOpts...)
}

// String renders the diff with the configured theme.
func (c *Comparison) String() string {
	return c.Render().Styled(c.cfg.resolveTheme().Func())
}
