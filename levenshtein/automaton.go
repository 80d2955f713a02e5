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

package levenshtein

import (
	"sort"

	"github.com/editfst/editfst"
)

// Automaton is an edit transducer with a fixed output lexicon.  The
// right factor is composed with the compiled lexicon once, at
// construction, so the cost of factoring the lexicon is amortized across
// every subsequent query.  The factored lexicon is never modified after
// construction; an Automaton may serve concurrent queries.
type Automaton struct {
	*EditTransducer
	lexicon *editfst.FST
}

// NewAutomaton builds an edit transducer over alphabet and composes its
// right factor with the lexicon.  A nil costs uses unit costs.
// Duplicate lexicon entries are accepted once.
func NewAutomaton(alphabet []rune, lexicon []string, costs *Costs) (*Automaton, error) {
	t, err := NewEditTransducer(alphabet, costs)
	if err != nil {
		return nil, err
	}
	return &Automaton{
		EditTransducer: t,
		lexicon:        editfst.Compose(t.right, editfst.StringMap(lexicon)),
	}, nil
}

// queryLattice composes a query with the left factor and the factored
// lexicon.  Every accepting path aligns the query with one lexicon
// entry on the output tape.
func (a *Automaton) queryLattice(query string) (*editfst.FST, error) {
	li := editfst.Compose(editfst.Accept(query), a.left)
	lattice := editfst.Compose(li, a.lexicon)
	if lattice.Empty() {
		return nil, ErrEmptyLattice
	}
	return lattice, nil
}

// ClosestMatch returns the lexicon entry closest to query.  When several
// entries tie for the minimum distance only one is returned; which one
// follows the engine's internal path order and should be treated as
// unspecified.  Use ClosestMatches to enumerate the ties.
//
// Returns ErrEmptyLattice if query contains a symbol outside the
// alphabet or the lexicon is empty.
func (a *Automaton) ClosestMatch(query string) (string, error) {
	lattice, err := a.queryLattice(query)
	if err != nil {
		return "", err
	}
	// the lattice is non-empty and trimmed, so its shortest path always
	// spells exactly one string
	matches, err := editfst.Strings(editfst.ShortestPath(lattice), editfst.TapeOutput)
	if err != nil {
		return "", err
	}
	return matches[0], nil
}

// ClosestMatches returns every lexicon entry whose distance to query
// equals the minimum, with no duplicates, sorted lexicographically.
//
// Returns ErrEmptyLattice under the same conditions as ClosestMatch.
func (a *Automaton) ClosestMatches(query string) ([]string, error) {
	lattice, err := a.queryLattice(query)
	if err != nil {
		return nil, err
	}
	// Prune all paths that are worse than the best one, collapse to an
	// acceptor over the lexicon side, and remove the epsilon arcs left
	// behind by the factor closures so each tie is spelled by a bounded
	// number of paths.
	tied := editfst.RmEpsilon(editfst.Project(editfst.Prune(lattice, 0), editfst.TapeOutput))
	matches, err := editfst.Strings(tied, editfst.TapeOutput)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
