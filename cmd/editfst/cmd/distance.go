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

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Distance computes the edit distance between two strings.",
	Long:  `Distance computes the minimum weighted edit distance between two strings over the configured alphabet and costs.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("two strings required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := levenshtein.NewEditTransducer([]rune(alphabet), costs())
		if err != nil {
			return err
		}
		d, err := t.Distance(args[0], args[1])
		if err != nil {
			return fmt.Errorf("computing distance: %w", err)
		}
		fmt.Printf("%g\n", d)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(distanceCmd)
}
