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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cheeses = []string{
	"tilsit", "caerphilly", "stilton", "gruyere", "emmental",
	"liptauer", "lancashire", "cheshire", "brie", "roquefort",
	"savoyard", "boursin", "camembert", "gouda", "edam",
	"caithness", "wensleydale", "gorgonzola", "parmesan",
	"mozzarella", "fynbo", "cheddar", "ilchester", "limburger",
}

func newCheeseAutomaton(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewAutomaton(lowercase, cheeses, nil)
	require.NoError(t, err)
	return a
}

func queryAndDistance(t *testing.T, a *Automaton, query, wantClosest string, wantDistance float64) {
	t.Helper()
	closest, err := a.ClosestMatch(query)
	require.NoError(t, err)
	assert.Equal(t, wantClosest, closest)

	d, err := a.Distance(query, closest)
	require.NoError(t, err)
	assert.Equal(t, wantDistance, d)
}

func TestMatch(t *testing.T) {
	queryAndDistance(t, newCheeseAutomaton(t), "stilton", "stilton", 0.0)
}

func TestInsertion(t *testing.T) {
	queryAndDistance(t, newCheeseAutomaton(t), "cheeshire", "cheshire", 1.0)
}

func TestDeletion(t *testing.T) {
	queryAndDistance(t, newCheeseAutomaton(t), "mozarela", "mozzarella", 2.0)
}

func TestSubstitution(t *testing.T) {
	queryAndDistance(t, newCheeseAutomaton(t), "bourzin", "boursin", 1.0)
}

func TestClosestMatches(t *testing.T) {
	a := newCheeseAutomaton(t)
	matches, err := a.ClosestMatches("cheese")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheddar", "cheshire"}, matches)
}

func TestClosestMatchesLongQuery(t *testing.T) {
	// long queries make the tie lattice dense with epsilon moves; the
	// enumeration must still terminate and return only minimal entries
	a := newCheeseAutomaton(t)
	query := "wensleydalegorgonzola"

	matches, err := a.ClosestMatches(query)
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	best := -1.0
	for _, w := range cheeses {
		d, err := a.Distance(query, w)
		require.NoError(t, err)
		if best < 0 || d < best {
			best = d
		}
	}
	for _, m := range matches {
		assert.Contains(t, cheeses, m)
		d, err := a.Distance(query, m)
		require.NoError(t, err)
		assert.Equal(t, best, d, "match %q is not at the minimum distance", m)
	}
}

func TestClosestMatchIsATie(t *testing.T) {
	a := newCheeseAutomaton(t)
	closest, err := a.ClosestMatch("cheese")
	require.NoError(t, err)
	assert.Contains(t, []string{"cheddar", "cheshire"}, closest)
}

func TestClosestMatchAchievesMinimum(t *testing.T) {
	a := newCheeseAutomaton(t)
	for _, query := range []string{"brei", "gorgonzolla", "kamembert", "edam"} {
		closest, err := a.ClosestMatch(query)
		require.NoError(t, err)
		assert.Contains(t, cheeses, closest)

		got, err := a.Distance(query, closest)
		require.NoError(t, err)
		for _, w := range cheeses {
			d, err := a.Distance(query, w)
			require.NoError(t, err)
			assert.LessOrEqual(t, got, d, "entry %q beats the closest match for %q", w, query)
		}
	}
}

func TestClosestMatchesLexiconOrderIrrelevant(t *testing.T) {
	reversed := make([]string, len(cheeses))
	for i, w := range cheeses {
		reversed[len(cheeses)-1-i] = w
	}
	a, err := NewAutomaton(lowercase, reversed, nil)
	require.NoError(t, err)

	matches, err := a.ClosestMatches("cheese")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheddar", "cheshire"}, matches)
}

func TestDuplicateLexiconEntries(t *testing.T) {
	a, err := NewAutomaton(lowercase, []string{"brie", "brie", "edam"}, nil)
	require.NoError(t, err)

	matches, err := a.ClosestMatches("brie")
	require.NoError(t, err)
	assert.Equal(t, []string{"brie"}, matches)
}

func TestOutOfAlphabetQuery(t *testing.T) {
	a := newCheeseAutomaton(t)

	_, err := a.ClosestMatch("gruyère")
	assert.ErrorIs(t, err, ErrEmptyLattice)

	_, err = a.ClosestMatches("gruyère")
	assert.ErrorIs(t, err, ErrEmptyLattice)
}

func TestEmptyLexicon(t *testing.T) {
	a, err := NewAutomaton(lowercase, nil, nil)
	require.NoError(t, err)

	_, err = a.ClosestMatch("brie")
	assert.ErrorIs(t, err, ErrEmptyLattice)

	_, err = a.ClosestMatches("brie")
	assert.ErrorIs(t, err, ErrEmptyLattice)
}

func TestConcurrentQueries(t *testing.T) {
	a := newCheeseAutomaton(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			closest, err := a.ClosestMatch("bourzin")
			assert.NoError(t, err)
			assert.Equal(t, "boursin", closest)

			d, err := a.Distance("bourzin", "boursin")
			assert.NoError(t, err)
			assert.Equal(t, 1.0, d)
		}()
	}
	wg.Wait()
}
