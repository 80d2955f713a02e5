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

import "github.com/willf/bitset"

// Invert returns a copy of f with the input and output tapes swapped.
func Invert(f *FST) *FST {
	return mapArcs(f, func(a Arc) Arc {
		a.In, a.Out = a.Out, a.In
		return a
	})
}

// Relabel returns a copy of f with labels on the selected tape replaced
// according to pairs.  Labels absent from pairs are left unchanged.
func Relabel(f *FST, pairs map[Label]Label, tape Tape) *FST {
	return mapArcs(f, func(a Arc) Arc {
		if tape == TapeInput {
			if to, ok := pairs[a.In]; ok {
				a.In = to
			}
		} else {
			if to, ok := pairs[a.Out]; ok {
				a.Out = to
			}
		}
		return a
	})
}

// Project returns a copy of f collapsed to an acceptor over the selected
// tape.
func Project(f *FST, tape Tape) *FST {
	return mapArcs(f, func(a Arc) Arc {
		if tape == TapeInput {
			a.Out = a.In
		} else {
			a.In = a.Out
		}
		return a
	})
}

func mapArcs(f *FST, fn func(Arc) Arc) *FST {
	r := New()
	for s := 0; s < f.NumStates(); s++ {
		id := r.AddState()
		if f.IsFinal(s) {
			r.SetFinal(id, f.Final(s))
		}
		for _, a := range f.Arcs(s) {
			r.AddArc(id, fn(a))
		}
	}
	if !f.Empty() {
		r.SetStart(f.Start())
	}
	return r
}

// Connect returns a copy of f trimmed to states that are both reachable
// from the start and able to reach a final state.  If no accepting path
// exists the result is the empty FST.
func Connect(f *FST) *FST {
	if f.Empty() {
		return New()
	}
	n := uint(f.NumStates())

	// forward reachability
	fwd := bitset.New(n)
	stack := []int{f.Start()}
	fwd.Set(uint(f.Start()))
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.Arcs(s) {
			if !fwd.Test(uint(a.Next)) {
				fwd.Set(uint(a.Next))
				stack = append(stack, a.Next)
			}
		}
	}

	// backward reachability over reversed arcs
	rev := make([][]int, f.NumStates())
	for s := 0; s < f.NumStates(); s++ {
		for _, a := range f.Arcs(s) {
			rev[a.Next] = append(rev[a.Next], s)
		}
	}
	bwd := bitset.New(n)
	for s := 0; s < f.NumStates(); s++ {
		if f.IsFinal(s) {
			bwd.Set(uint(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !bwd.Test(uint(p)) {
				bwd.Set(uint(p))
				stack = append(stack, p)
			}
		}
	}

	keep := fwd.Intersection(bwd)
	if !keep.Test(uint(f.Start())) {
		return New()
	}

	remap := make([]int, f.NumStates())
	r := New()
	for s := 0; s < f.NumStates(); s++ {
		remap[s] = NoStateID
		if keep.Test(uint(s)) {
			remap[s] = r.AddState()
		}
	}
	for s := 0; s < f.NumStates(); s++ {
		if remap[s] == NoStateID {
			continue
		}
		if f.IsFinal(s) {
			r.SetFinal(remap[s], f.Final(s))
		}
		for _, a := range f.Arcs(s) {
			if remap[a.Next] == NoStateID {
				continue
			}
			a.Next = remap[a.Next]
			r.AddArc(remap[s], a)
		}
	}
	r.SetStart(remap[f.Start()])
	return r
}
