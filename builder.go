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

import "sort"

// A Builder incrementally constructs a minimal acceptor mapping each
// inserted key to itself at weight zero.  States are frozen into the
// result as soon as no later key can share them, and frozen states are
// deduplicated through a registry, so common prefixes and suffixes are
// stored once.
type Builder struct {
	fst      *FST
	registry *registry
	// path holds the unfrozen states spelling the last key; path[0] is
	// the root, path[i] the state reached after last[:i].
	path []*builderState
	last []rune
	len  int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		fst:      New(),
		registry: newRegistry(),
		path:     []*builderState{{}},
	}
}

// Insert adds a key to the acceptor being built.
// NOTE: keys must be inserted in lexicographic order; duplicate keys are
// ignored.
func (b *Builder) Insert(key string) error {
	runes := []rune(key)
	switch cmp := compareRunes(runes, b.last); {
	case cmp < 0:
		return ErrOutOfOrder
	case cmp == 0 && b.len > 0:
		return nil
	}
	b.insert(runes)
	return nil
}

// Len returns the number of keys inserted so far.
func (b *Builder) Len() int {
	return b.len
}

// Close freezes the remaining states and returns the finished acceptor.
// The Builder must not be used afterwards.
func (b *Builder) Close() *FST {
	b.freezeSuffix(0)
	root := b.freeze(b.path[0])
	b.fst.SetStart(root)
	return b.fst
}

func (b *Builder) insert(key []rune) {
	common := commonPrefixLen(b.last, key)
	b.freezeSuffix(common)
	state := b.path[common]
	for _, r := range key[common:] {
		next := &builderState{}
		state.transitions = append(state.transitions, builderTransition{
			label: Label(r),
			dest:  next,
		})
		b.path = append(b.path, next)
		state = next
	}
	state.final = true
	b.last = key
	b.len++
}

// freezeSuffix freezes the unfrozen states of the last key deeper than
// depth, from the deepest up, recording each frozen id on the transition
// leading to it.
func (b *Builder) freezeSuffix(depth int) {
	for i := len(b.path) - 1; i > depth; i-- {
		id := b.freeze(b.path[i])
		parent := b.path[i-1]
		t := &parent.transitions[len(parent.transitions)-1]
		t.dest = nil
		t.id = id
	}
	b.path = b.path[:depth+1]
}

// freeze emits s into the result, reusing an equivalent already-frozen
// state when the registry holds one.  All of s's transitions must
// already be frozen.
func (b *Builder) freeze(s *builderState) int {
	if id, ok := b.registry.entry(s); ok {
		return id
	}
	id := b.fst.AddState()
	if s.final {
		b.fst.SetFinal(id, 0)
	}
	for _, t := range s.transitions {
		b.fst.AddArc(id, Arc{In: t.label, Out: t.label, Next: t.id})
	}
	b.registry.register(s, id)
	return id
}

type builderState struct {
	transitions []builderTransition
	final       bool
}

type builderTransition struct {
	label Label
	// dest points at the unfrozen destination; once frozen it is nil and
	// id holds the destination's state index in the result.
	dest *builderState
	id   int
}

// StringMap compiles a collection of strings into a minimal acceptor
// mapping each string to itself at weight zero.  Order and duplicates in
// keys are irrelevant.  An empty collection yields the empty FST.
func StringMap(keys []string) *FST {
	if len(keys) == 0 {
		return New()
	}
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)
	b := NewBuilder()
	for _, k := range sorted {
		// insertion cannot fail on sorted input
		_ = b.Insert(k)
	}
	return b.Close()
}

func commonPrefixLen(a, b []rune) int {
	lim := len(a)
	if len(b) < lim {
		lim = len(b)
	}
	n := 0
	for n < lim && a[n] == b[n] {
		n++
	}
	return n
}

func compareRunes(a, b []rune) int {
	lim := len(a)
	if len(b) < lim {
		lim = len(b)
	}
	for i := 0; i < lim; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
