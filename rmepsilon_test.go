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
	"reflect"
	"testing"
)

func hasEpsilonArcs(f *FST) bool {
	for s := 0; s < f.NumStates(); s++ {
		for _, a := range f.Arcs(s) {
			if a.In == Epsilon && a.Out == Epsilon {
				return true
			}
		}
	}
	return false
}

func TestRmEpsilon(t *testing.T) {
	// start -eps@1-> mid -a@2-> final collapses to a single a@3 arc
	f := New()
	start := f.AddState()
	mid := f.AddState()
	final := f.AddState()
	f.SetStart(start)
	f.SetFinal(final, 0)
	f.AddArc(start, Arc{Weight: 1, Next: mid})
	f.AddArc(mid, Arc{In: 'a', Out: 'a', Weight: 2, Next: final})

	r := RmEpsilon(f)
	if hasEpsilonArcs(r) {
		t.Fatal("expected no epsilon arcs to survive")
	}
	ss, err := Strings(r, TapeInput)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ss, []string{"a"}) {
		t.Errorf("expected the language to be preserved, got %v", ss)
	}
	beta := ShortestDistance(r, true)
	if beta[r.Start()] != 3 {
		t.Errorf("expected the epsilon weight folded in for a total of 3, got %g", beta[r.Start()])
	}
}

func TestRmEpsilonFinality(t *testing.T) {
	// an epsilon arc into a final state makes its origin final too
	f := New()
	start := f.AddState()
	final := f.AddState()
	f.SetStart(start)
	f.SetFinal(final, 2)
	f.AddArc(start, Arc{Weight: 1, Next: final})

	r := RmEpsilon(f)
	if !r.IsFinal(r.Start()) {
		t.Fatal("expected the start state to become final")
	}
	if r.Final(r.Start()) != 3 {
		t.Errorf("expected final weight 3, got %g", r.Final(r.Start()))
	}
}

func TestRmEpsilonEmpty(t *testing.T) {
	if !RmEpsilon(New()).Empty() {
		t.Error("expected the empty FST to stay empty")
	}
}

func TestRmEpsilonPicksShortestClosure(t *testing.T) {
	// two epsilon routes to the same state; the cheaper one must win
	f := New()
	start := f.AddState()
	hop := f.AddState()
	final := f.AddState()
	f.SetStart(start)
	f.SetFinal(final, 0)
	f.AddArc(start, Arc{Weight: 5, Next: final})
	f.AddArc(start, Arc{Weight: 1, Next: hop})
	f.AddArc(hop, Arc{Weight: 1, Next: final})

	r := RmEpsilon(f)
	if hasEpsilonArcs(r) {
		t.Fatal("expected no epsilon arcs to survive")
	}
	if r.Final(r.Start()) != 2 {
		t.Errorf("expected the cheaper closure distance 2, got %g", r.Final(r.Start()))
	}
}

func TestRmEpsilonAfterComposition(t *testing.T) {
	// composing through a closure leaves epsilon connector arcs behind;
	// removing them must not change the accepted language
	c := Compose(Accept("ab"), Closure(SymbolUnion([]Label{'a', 'b'})))
	r := RmEpsilon(c)
	if hasEpsilonArcs(r) {
		t.Fatal("expected no epsilon arcs to survive")
	}
	ss, err := Strings(r, TapeInput)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ss, []string{"ab"}) {
		t.Errorf("expected ab, got %v", ss)
	}
}
