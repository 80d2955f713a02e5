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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/editfst/editfst/levenshtein"
)

var matchAll bool

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match finds the closest lexicon entry to a query string.",
	Long:  `Match finds the lexicon entry (or, with --all, every tied entry) closest to the query string.  The lexicon file holds one entry per line.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("lexicon path and query required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := levenshtein.LoadLexicon(args[0])
		if err != nil {
			return err
		}
		automaton, err := levenshtein.NewAutomaton([]rune(alphabet), words, costs())
		if err != nil {
			return err
		}
		query := args[1]

		if matchAll {
			matches, err := automaton.ClosestMatches(query)
			if err != nil {
				return fmt.Errorf("matching %q: %w", query, err)
			}
			for _, m := range matches {
				d, err := automaton.Distance(query, m)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%g\n", m, d)
			}
			return nil
		}

		m, err := automaton.ClosestMatch(query)
		if err != nil {
			return fmt.Errorf("matching %q: %w", query, err)
		}
		d, err := automaton.Distance(query, m)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%g\n", m, d)
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVar(&matchAll, "all", false, "print every entry tied for the minimum distance")
	RootCmd.AddCommand(matchCmd)
}
