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

// Prettydiff compares two text files and prints a colorized diff that
// highlights single-line changes character by character.
//
// The exit code follows diff conventions: 0 when the files match, 1 when they
// differ, 2 on usage or read errors.
package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"okro.io/pretty/render"
	"okro.io/pretty/style"
)

var (
	colorMode  string
	leftLabel  string
	rightLabel string
	plusMinus  bool

	changed bool
)

func main() {
	root := &cobra.Command{
		Use:          "prettydiff <left-file> <right-file>",
		Short:        "Show a colorized diff of two text files",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&colorMode, "color", "auto", "colorize the output: auto, always or never")
	root.Flags().StringVar(&leftLabel, "left-label", "left", "name of the left side in the header")
	root.Flags().StringVar(&rightLabel, "right-label", "right", "name of the right side in the header")
	root.Flags().BoolVar(&plusMinus, "plus-minus", false, "mark lines with -/+ instead of </>")

	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
	if changed {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	theme, err := resolveTheme()
	if err != nil {
		return err
	}

	left, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading left side: %w", err)
	}
	right, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading right side: %w", err)
	}

	opts := []render.Option{render.Labels(leftLabel, rightLabel)}
	if plusMinus {
		opts = append(opts, render.Signs('-', '+'))
	}

	out := render.Compare(string(left), string(right), opts...)
	changed = out.Changed()
	fmt.Fprint(cmd.OutOrStdout(), out.Styled(theme.Func()))
	return nil
}

func resolveTheme() (style.Theme, error) {
	switch colorMode {
	case "auto":
		return style.Default(os.Stdout), nil
	case "always":
		return style.Forced(os.Stdout, termenv.ANSI256), nil
	case "never":
		return style.NoColor(), nil
	default:
		return style.Theme{}, fmt.Errorf("invalid --color mode %q", colorMode)
	}
}
