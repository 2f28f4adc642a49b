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

// Package render turns the edit script between two text blocks into a sequence
// of role-tagged display lines.
//
// [Compare] produces an [Output]: a header identifying the two sides followed by
// one line per edit. Changed regions are normally rendered as whole deleted and
// inserted lines. When a region consists of exactly one deleted line directly
// followed by exactly one inserted line, the pair is compared again rune by rune
// and rendered as an inline diff that highlights only the runs that differ.
//
// The output carries no escape codes. Every segment is tagged with a [Role];
// how a role looks, and whether it is styled at all, is decided by the caller
// through [Output.Styled] or left out entirely with [Output.Plain].
package render

import (
	"strings"

	"okro.io/pretty/diff"
)

// Role describes the display role of a segment.
type Role int

const (
	Header       Role = iota // Header block naming the two sides.
	Context                  // Line or filler present in both inputs.
	Deleted                  // Line only present in the left input.
	Inserted                 // Line only present in the right input.
	DeletedEmph              // Changed runs within a deleted line of an inline pair.
	InsertedEmph             // Changed runs within an inserted line of an inline pair.
)

// String returns the name of the role.
func (r Role) String() string {
	switch r {
	case Header:
		return "Header"
	case Context:
		return "Context"
	case Deleted:
		return "Deleted"
	case Inserted:
		return "Inserted"
	case DeletedEmph:
		return "DeletedEmph"
	case InsertedEmph:
		return "InsertedEmph"
	default:
		return "Role(invalid)"
	}
}

// Segment is a run of text with a single display role. Adjacent segments of a
// line never share a role.
type Segment struct {
	Role Role
	Text string
}

// Line is one display line, split into role-tagged segments. The line break is
// implicit.
type Line []Segment

// StyleFunc maps a role-tagged run of text to its display form. It is called
// once per segment; the results are concatenated in order.
type StyleFunc func(role Role, text string) string

// Output is the rendered comparison of two text blocks.
type Output struct {
	Lines []Line

	changed bool
}

// Changed reports whether the compared texts differ. An unchanged output
// renders as a header followed by context lines only.
func (o Output) Changed() bool {
	return o.changed
}

// Plain returns the rendering without any styling. Signs and labels make the
// output self-describing even without color.
func (o Output) Plain() string {
	return o.Styled(nil)
}

// Styled returns the rendering with every segment passed through f. A nil f
// leaves all segments unstyled.
func (o Output) Styled(f StyleFunc) string {
	var sb strings.Builder
	for _, ln := range o.Lines {
		for _, seg := range ln {
			if f != nil {
				sb.WriteString(f(seg.Role, seg.Text))
			} else {
				sb.WriteString(seg.Text)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compare renders the difference between two text blocks.
//
// Compare is total over its inputs: empty texts, texts consisting only of
// newlines, and identical texts all render without error. Identical texts
// produce an output whose body is context lines only.
func Compare(left, right string, opts ...Option) Output {
	cfg := defaults
	for _, opt := range opts {
		opt(&cfg)
	}

	edits := diff.Lines(left, right)
	out := Output{Lines: make([]Line, 0, len(edits)+1)}
	out.Lines = append(out.Lines, header(cfg))

	for i := 0; i < len(edits); {
		if edits[i].Op == diff.Match {
			out.Lines = append(out.Lines, Line{{Context, " " + edits[i].X}})
			i++
			continue
		}

		// A changed region: the script orders deletions before insertions, so
		// collect both runs and decide how to present the region as a whole.
		start := i
		for i < len(edits) && edits[i].Op == diff.Delete {
			i++
		}
		dels := edits[start:i]
		start = i
		for i < len(edits) && edits[i].Op == diff.Insert {
			i++
		}
		ins := edits[start:i]
		out.changed = true

		// One line replaced by one line is highlighted rune by rune. Larger
		// regions stay at line granularity: highlighting runes across several
		// changed lines is expensive and visually noisy.
		if len(dels) == 1 && len(ins) == 1 {
			l, r := inline(cfg, dels[0].X, ins[0].Y)
			out.Lines = append(out.Lines, l, r)
			continue
		}
		for _, e := range dels {
			out.Lines = append(out.Lines, Line{{Deleted, string(cfg.delSign) + e.X}})
		}
		for _, e := range ins {
			out.Lines = append(out.Lines, Line{{Inserted, string(cfg.insSign) + e.Y}})
		}
	}
	return out
}

// header renders the block naming the two sides, e.g. "Diff < left / right > :".
func header(cfg config) Line {
	return Line{
		{Header, "Diff"},
		{Context, " "},
		{Deleted, string(cfg.delSign) + " " + cfg.leftLabel},
		{Context, " / "},
		{Inserted, cfg.rightLabel + " " + string(cfg.insSign)},
		{Context, " :"},
	}
}

// inline renders a single replaced line as two lines whose differing runs are
// emphasized. Shared runes keep the plain deleted/inserted role so they read as
// context within the pair.
func inline(cfg config, del, ins string) (l, r Line) {
	l = grow(l, Deleted, string(cfg.delSign))
	r = grow(r, Inserted, string(cfg.insSign))
	for _, e := range diff.Runes(del, ins) {
		switch e.Op {
		case diff.Match:
			l = grow(l, Deleted, string(e.X))
			r = grow(r, Inserted, string(e.Y))
		case diff.Delete:
			l = grow(l, DeletedEmph, string(e.X))
		case diff.Insert:
			r = grow(r, InsertedEmph, string(e.Y))
		}
	}
	return l, r
}

// grow appends text to ln, merging with the final segment when the role
// matches so that consumers see maximal single-role runs.
func grow(ln Line, role Role, text string) Line {
	if text == "" {
		return ln
	}
	if n := len(ln); n > 0 && ln[n-1].Role == role {
		ln[n-1].Text += text
		return ln
	}
	return append(ln, Segment{role, text})
}
