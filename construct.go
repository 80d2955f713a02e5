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

// Accept returns a linear acceptor for s: one arc per rune, identity
// mapping, total weight zero.
func Accept(s string) *FST {
	f := New()
	cur := f.AddState()
	f.SetStart(cur)
	for _, r := range s {
		next := f.AddState()
		f.AddArc(cur, Arc{In: Label(r), Out: Label(r), Next: next})
		cur = next
	}
	f.SetFinal(cur, 0)
	return f
}

// SymbolUnion returns a two-state acceptor matching any single symbol of
// labels, mapped to itself at weight zero.
func SymbolUnion(labels []Label) *FST {
	f := New()
	start := f.AddState()
	final := f.AddState()
	f.SetStart(start)
	f.SetFinal(final, 0)
	for _, l := range labels {
		f.AddArc(start, Arc{In: l, Out: l, Next: final})
	}
	return f
}

// Cross returns a two-state transducer mapping any single symbol of ins
// to out at weight w.  An empty ins yields the epsilon-input shape, a
// single arc consuming nothing and emitting out.
func Cross(ins []Label, out Label, w float64) *FST {
	f := New()
	start := f.AddState()
	final := f.AddState()
	f.SetStart(start)
	f.SetFinal(final, 0)
	if len(ins) == 0 {
		f.AddArc(start, Arc{In: Epsilon, Out: out, Weight: w, Next: final})
		return f
	}
	for _, l := range ins {
		f.AddArc(start, Arc{In: l, Out: out, Weight: w, Next: final})
	}
	return f
}

// Pair returns a linear transducer mapping in to out at weight w.  The
// shorter string is padded with epsilons.
func Pair(in, out string, w float64) *FST {
	ri, ro := []rune(in), []rune(out)
	n := len(ri)
	if len(ro) > n {
		n = len(ro)
	}
	f := New()
	cur := f.AddState()
	f.SetStart(cur)
	if n == 0 {
		f.SetFinal(cur, w)
		return f
	}
	for i := 0; i < n; i++ {
		a := Arc{In: Epsilon, Out: Epsilon}
		if i < len(ri) {
			a.In = Label(ri[i])
		}
		if i < len(ro) {
			a.Out = Label(ro[i])
		}
		if i == 0 {
			a.Weight = w
		}
		a.Next = f.AddState()
		f.AddArc(cur, a)
		cur = a.Next
	}
	f.SetFinal(cur, 0)
	return f
}

// Union returns an FST accepting the union of the operands' relations.
// Empty operands are skipped; the union of no (or only empty) operands
// is the empty FST.
func Union(fsts ...*FST) *FST {
	u := New()
	start := -1
	for _, f := range fsts {
		if f.Empty() {
			continue
		}
		if start == -1 {
			start = u.AddState()
			u.SetStart(start)
		}
		off := copyStates(u, f)
		u.AddArc(start, Arc{In: Epsilon, Out: Epsilon, Next: f.Start() + off})
	}
	return u
}

// Closure returns the Kleene star of f: zero or more concatenated
// repetitions of f's paths.  The closure of the empty FST accepts
// exactly the empty string.
func Closure(f *FST) *FST {
	c := New()
	start := c.AddState()
	c.SetStart(start)
	c.SetFinal(start, 0)
	if f.Empty() {
		return c
	}
	off := copyStates(c, f)
	c.AddArc(start, Arc{In: Epsilon, Out: Epsilon, Next: f.Start() + off})
	for s := 0; s < f.NumStates(); s++ {
		if f.IsFinal(s) {
			c.AddArc(s+off, Arc{In: Epsilon, Out: Epsilon, Weight: f.Final(s), Next: start})
		}
	}
	return c
}

// copyStates appends every state of src to dst, preserving arcs and
// final weights, and returns the index offset of the copy.
func copyStates(dst, src *FST) int {
	off := dst.NumStates()
	for s := 0; s < src.NumStates(); s++ {
		id := dst.AddState()
		if src.IsFinal(s) {
			dst.SetFinal(id, src.Final(s))
		}
		for _, a := range src.Arcs(s) {
			a.Next += off
			dst.AddArc(id, a)
		}
	}
	return off
}
