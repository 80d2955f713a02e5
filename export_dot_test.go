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
	"bytes"
	"strings"
	"testing"
)

func TestExportDot(t *testing.T) {
	var buf bytes.Buffer
	if err := Dot(Cross([]Label{'a'}, 'z', 0.5), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"digraph g {",
		"rankdir=LR",
		"doublecircle",
		`label="a:z/0.5"`,
		"}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dot output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExportDotEpsilon(t *testing.T) {
	var buf bytes.Buffer
	if err := Dot(Cross(nil, 'z', 0), &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<eps>:z") {
		t.Errorf("expected epsilon rendering, got:\n%s", buf.String())
	}
}
