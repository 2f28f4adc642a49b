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

package render_test

import (
	"fmt"

	"okro.io/pretty/render"
)

func ExampleCompare() {
	left := "one\ntwo\nthree"
	right := "one\ntoo\nthree"
	out := render.Compare(left, right)
	fmt.Print(out.Plain())
	// Output:
	// Diff < left / right > :
	//  one
	// <two
	// >too
	//  three
}

func ExampleCompare_labels() {
	out := render.Compare("cat", "dog\nfish", render.Labels("want", "got"), render.Signs('-', '+'))
	fmt.Print(out.Plain())
	// Output:
	// Diff - want / got + :
	// -cat
	// +dog
	// +fish
}
