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

package render

type config struct {
	leftLabel  string
	rightLabel string
	delSign    rune
	insSign    rune
}

var defaults = config{
	leftLabel:  "left",
	rightLabel: "right",
	delSign:    '<',
	insSign:    '>',
}

// Option configures the rendering of a comparison.
type Option func(*config)

// Labels sets the names used for the two sides in the header. The defaults are
// "left" and "right".
func Labels(left, right string) Option {
	return func(cfg *config) {
		cfg.leftLabel = left
		cfg.rightLabel = right
	}
}

// Signs sets the signs marking deleted and inserted lines. The defaults are
// '<' and '>'; '-' and '+' give conventional diff output.
func Signs(del, ins rune) Option {
	return func(cfg *config) {
		cfg.delSign = del
		cfg.insSign = ins
	}
}
