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

import "math"

// Label is an arc label.  Alphabet symbols use their rune value; values
// above unicode.MaxRune are free for caller-defined operation tags.
type Label int32

// Epsilon is the empty label.  An arc with an Epsilon input consumes
// nothing; an arc with an Epsilon output emits nothing.
const Epsilon Label = 0

// NoStateID marks the absence of a start state.  An FST whose start is
// NoStateID accepts the empty relation.
const NoStateID = -1

// Tape selects one of the two tapes of a transducer.
type Tape int

const (
	// TapeInput selects the input tape.
	TapeInput Tape = iota
	// TapeOutput selects the output tape.
	TapeOutput
)

// Arc is a single weighted transition to the state Next.
type Arc struct {
	In     Label
	Out    Label
	Weight float64
	Next   int
}

// FST is an in-memory weighted finite state transducer over the tropical
// (min, +) semiring.  States are integer indices into a flat arena; each
// state carries an arc slice and a final weight (infinity when the state
// is not final).
//
// Mutators exist for construction only.  Every operation in this package
// returns a freshly built FST and never modifies an operand, so a fully
// constructed FST may be shared freely across goroutines.
type FST struct {
	start  int
	arcs   [][]Arc
	finals []float64
}

// New returns an empty FST with no states and no start state.
func New() *FST {
	return &FST{start: NoStateID}
}

// AddState adds a new non-final state and returns its index.
func (f *FST) AddState() int {
	f.arcs = append(f.arcs, nil)
	f.finals = append(f.finals, math.Inf(1))
	return len(f.finals) - 1
}

// SetStart marks s as the start state.
func (f *FST) SetStart(s int) {
	f.start = s
}

// SetFinal marks s final with weight w.
func (f *FST) SetFinal(s int, w float64) {
	f.finals[s] = w
}

// AddArc appends an arc leaving state s.
func (f *FST) AddArc(s int, a Arc) {
	f.arcs[s] = append(f.arcs[s], a)
}

// Start returns the start state, or NoStateID if there is none.
func (f *FST) Start() int {
	return f.start
}

// Final returns the final weight of s, or +Inf if s is not final.
func (f *FST) Final(s int) float64 {
	return f.finals[s]
}

// IsFinal returns true if s is a final state.
func (f *FST) IsFinal(s int) bool {
	return !math.IsInf(f.finals[s], 1)
}

// NumStates returns the number of states.
func (f *FST) NumStates() int {
	return len(f.finals)
}

// Arcs returns the arcs leaving state s.  The returned slice is owned by
// the FST and must not be modified.
func (f *FST) Arcs(s int) []Arc {
	return f.arcs[s]
}

// NumArcs returns the total number of arcs.
func (f *FST) NumArcs() int {
	n := 0
	for _, as := range f.arcs {
		n += len(as)
	}
	return n
}

// Empty returns true if the FST accepts nothing, i.e. it has no start
// state.  Operations that trim their result (Compose, Connect, Prune)
// leave no start state behind when no accepting path survives.
func (f *FST) Empty() bool {
	return f.start == NoStateID
}
