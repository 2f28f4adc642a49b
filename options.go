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
	"os"

	"okro.io/pretty/render"
	"okro.io/pretty/style"
)

type config struct {
	renderOpts []render.Option
	theme      style.Theme
	themeSet   bool
}

func (cfg *config) resolveTheme() style.Theme {
	if cfg.themeSet {
		return cfg.theme
	}
	return style.Default(os.Stderr)
}

// Option configures an assertion or a [Comparison].
type Option func(*config)

// WithLabels names the two sides in the diff header instead of the default
// "left" and "right".
func WithLabels(left, right string) Option {
	return func(cfg *config) {
		cfg.renderOpts = append(cfg.renderOpts, render.Labels(left, right))
	}
}

// WithSigns replaces the '<' and '>' line signs, e.g. with '-' and '+'.
func WithSigns(del, ins rune) Option {
	return func(cfg *config) {
		cfg.renderOpts = append(cfg.renderOpts, render.Signs(del, ins))
	}
}

// WithTheme renders the diff with the given theme instead of the default theme
// bound to stderr. Use [style.NoColor] to force plain output.
func WithTheme(t style.Theme) Option {
	return func(cfg *config) {
		cfg.theme = t
		cfg.themeSet = true
	}
}
