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

// Package style maps display roles to terminal styles.
//
// The rendering core only tags its output with roles; this package decides how a
// role looks. Styles are bound to the output they will be written to, so color
// support is resolved per destination: a theme built for a pipe renders plain
// text, a theme built for a capable terminal renders ANSI colors.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"okro.io/pretty/render"
)

// Colors of the default theme. Deleted content is red, inserted content green;
// the emphasized runs of an inline pair additionally carry a dark background of
// the same hue and bold text.
var (
	red       = lipgloss.Color("1")
	green     = lipgloss.Color("2")
	darkRedBg = lipgloss.Color("52")
	darkGrnBg = lipgloss.Color("22")
)

// Theme holds one style per display role.
type Theme struct {
	Header       lipgloss.Style
	Context      lipgloss.Style
	Deleted      lipgloss.Style
	Inserted     lipgloss.Style
	DeletedEmph  lipgloss.Style
	InsertedEmph lipgloss.Style
}

// Default returns the red/green theme bound to w. Color degrades automatically
// with the capabilities of w and is disabled entirely when the NO_COLOR
// convention asks for it or when w is not a terminal.
func Default(w io.Writer) Theme {
	if termenv.EnvNoColor() {
		return NoColor()
	}
	return themed(lipgloss.NewRenderer(w))
}

// Forced returns the default theme bound to w with the given color profile,
// bypassing terminal detection. Use termenv.Ascii to strip color from a
// terminal and e.g. termenv.ANSI256 to keep color on a pipe.
func Forced(w io.Writer, profile termenv.Profile) Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return themed(r)
}

// NoColor returns a theme that renders every role as plain text.
func NoColor() Theme {
	return Theme{}
}

func themed(r *lipgloss.Renderer) Theme {
	return Theme{
		Header:       r.NewStyle().Bold(true),
		Context:      r.NewStyle(),
		Deleted:      r.NewStyle().Foreground(red),
		Inserted:     r.NewStyle().Foreground(green),
		DeletedEmph:  r.NewStyle().Bold(true).Foreground(red).Background(darkRedBg),
		InsertedEmph: r.NewStyle().Bold(true).Foreground(green).Background(darkGrnBg),
	}
}

// Func adapts the theme to the style mapping consumed by [render.Output.Styled].
func (t Theme) Func() render.StyleFunc {
	return func(role render.Role, text string) string {
		switch role {
		case render.Header:
			return t.Header.Render(text)
		case render.Deleted:
			return t.Deleted.Render(text)
		case render.Inserted:
			return t.Inserted.Render(text)
		case render.DeletedEmph:
			return t.DeletedEmph.Render(text)
		case render.InsertedEmph:
			return t.InsertedEmph.Render(text)
		default:
			return t.Context.Render(text)
		}
	}
}
