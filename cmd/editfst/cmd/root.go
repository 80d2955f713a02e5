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
	"os"

	"github.com/spf13/cobra"

	"github.com/editfst/editfst/levenshtein"
)

var (
	alphabet       string
	insertCost     float64
	deleteCost     float64
	substituteCost float64
)

// RootCmd is the root of the editfst command tree.
var RootCmd = &cobra.Command{
	Use:   "editfst",
	Short: "Editfst computes weighted edit distances and closest matches.",
	Long:  `Editfst computes weighted edit distances and closest lexicon matches with a factored edit transducer.`,
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&alphabet, "alphabet",
		"abcdefghijklmnopqrstuvwxyz", "edit alphabet")
	RootCmd.PersistentFlags().Float64Var(&insertCost, "insert-cost", 1,
		"cost of the insertion operation")
	RootCmd.PersistentFlags().Float64Var(&deleteCost, "delete-cost", 1,
		"cost of the deletion operation")
	RootCmd.PersistentFlags().Float64Var(&substituteCost, "substitute-cost", 1,
		"cost of the substitution operation")
}

func costs() *levenshtein.Costs {
	return &levenshtein.Costs{
		Insert:     insertCost,
		Delete:     deleteCost,
		Substitute: substituteCost,
	}
}
