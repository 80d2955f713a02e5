//  Copyright (c) 2024 the editfst authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package editfst

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// Dot writes f in the GraphViz (dot) file format.
func Dot(f *FST, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	for s := 0; s < f.NumStates(); s++ {
		if s == f.Start() {
			fmt.Fprintf(bw, "%d [shape=box]\n", s)
		}
		if f.IsFinal(s) {
			if f.Final(s) != 0 {
				fmt.Fprintf(bw, "%d [shape=doublecircle label=\"%d/%g\"]\n", s, s, f.Final(s))
			} else {
				fmt.Fprintf(bw, "%d [shape=doublecircle]\n", s)
			}
		}
		for _, a := range f.Arcs(s) {
			if a.Weight != 0 {
				fmt.Fprintf(bw, "%d -> %d [label=\"%s:%s/%g\"]\n",
					s, a.Next, labelText(a.In), labelText(a.Out), a.Weight)
			} else {
				fmt.Fprintf(bw, "%d -> %d [label=\"%s:%s\"]\n",
					s, a.Next, labelText(a.In), labelText(a.Out))
			}
		}
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func labelText(l Label) string {
	if l == Epsilon {
		return "<eps>"
	}
	if l <= Label(unicode.MaxRune) && strconv.IsPrint(rune(l)) {
		return string(rune(l))
	}
	return fmt.Sprintf("#%d", l)
}
