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

// Package levenshtein computes exact weighted edit distances and closest
// lexicon matches using a factored edit transducer.
//
// An EditTransducer holds the two factors of a finite-alphabet edit
// transducer supporting insertion, deletion and substitution at
// user-specified costs.  An Automaton additionally fixes an output
// lexicon, composed with the right factor once at construction, so a
// single machine answers every subsequent closest-match query.
package levenshtein

import (
	"fmt"
	"unicode"

	"github.com/editfst/editfst"
)

// Reserved labels for the edit operations, above the valid rune range so
// they can never collide with an alphabet symbol.
const (
	insertLabel editfst.Label = unicode.MaxRune + 1 + iota
	deleteLabel
	substituteLabel
)

var (
	// ErrEmptyAlphabet is returned when constructing a transducer over no
	// symbols.
	ErrEmptyAlphabet = fmt.Errorf("alphabet must not be empty")

	// ErrNegativeCost is returned when any edit cost is negative.
	ErrNegativeCost = fmt.Errorf("edit costs must not be negative")

	// ErrEmptyLattice is returned when a query or target cannot be
	// aligned: it contains a symbol outside the transducer's alphabet, or
	// the lexicon holds no entry at all.
	ErrEmptyLattice = fmt.Errorf("lattice is empty")
)

// Costs holds the cost of each edit operation.
//
// Note that the cost of substitution should be less than the cost of
// insertion plus the cost of deletion, or no optimal alignment will ever
// use substitution.
type Costs struct {
	Insert     float64
	Delete     float64
	Substitute float64
}

var defaultCosts = &Costs{
	Insert:     1,
	Delete:     1,
	Substitute: 1,
}

// EditTransducer is a factored edit transducer over a fixed alphabet.
// Both factors are built once by NewEditTransducer and never modified,
// so a single EditTransducer may serve concurrent Distance calls.
type EditTransducer struct {
	left  *editfst.FST
	right *editfst.FST
}

// NewEditTransducer builds the two factors of an edit transducer over
// the given alphabet.  A nil costs uses unit costs for every operation.
func NewEditTransducer(alphabet []rune, costs *Costs) (*EditTransducer, error) {
	if costs == nil {
		costs = defaultCosts
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if costs.Insert < 0 || costs.Delete < 0 || costs.Substitute < 0 {
		return nil, ErrNegativeCost
	}

	labels := make([]editfst.Label, 0, len(alphabet))
	seen := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		labels = append(labels, editfst.Label(r))
	}

	// Left factor.  Edit costs are halved because the other half of each
	// operation is incurred again when traversing the right factor.
	match := editfst.SymbolUnion(labels)
	iInsert := editfst.Cross(nil, insertLabel, costs.Insert/2)
	iDelete := editfst.Cross(labels, deleteLabel, costs.Delete/2)
	iSubstitute := editfst.Cross(labels, substituteLabel, costs.Substitute/2)
	ops := editfst.Union(match, iInsert, iDelete, iSubstitute)

	// Right factor: invert the left factor (swapping the input and output
	// tapes), then swap the insert and delete tags on what is now the
	// input side.  The substitute tag is symmetric and stays put.
	swapped := editfst.Relabel(editfst.Invert(ops), map[editfst.Label]editfst.Label{
		insertLabel: deleteLabel,
		deleteLabel: insertLabel,
	}, editfst.TapeInput)

	return &EditTransducer{
		left:  editfst.Closure(ops),
		right: editfst.Closure(swapped),
	}, nil
}

// lattice composes an input/output pair of acceptors with the two
// factors.  Every accepting path of the result is an alignment and its
// weight the alignment's total edit cost.
func (t *EditTransducer) lattice(in, out *editfst.FST) (*editfst.FST, error) {
	li := editfst.Compose(in, t.left)
	lo := editfst.Compose(t.right, out)
	lattice := editfst.Compose(li, lo)
	if lattice.Empty() {
		return nil, ErrEmptyLattice
	}
	return lattice, nil
}

// Distance returns the minimum edit distance between a and b.  Returns
// ErrEmptyLattice if either string contains a symbol outside the
// transducer's alphabet.
func (t *EditTransducer) Distance(a, b string) (float64, error) {
	lattice, err := t.lattice(editfst.Accept(a), editfst.Accept(b))
	if err != nil {
		return 0, err
	}
	// The cheapest acceptance from the start state is the weight of the
	// best alignment.
	beta := editfst.ShortestDistance(lattice, true)
	return beta[lattice.Start()], nil
}
