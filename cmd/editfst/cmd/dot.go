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

	"github.com/editfst/editfst"
	"github.com/editfst/editfst/levenshtein"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Dot exports a compiled lexicon in the GraphViz file format.",
	Long:  `Dot compiles a lexicon file into a minimal acceptor and writes it to stdout in the GraphViz (dot) file format.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("lexicon path required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		words, err := levenshtein.LoadLexicon(args[0])
		if err != nil {
			return err
		}
		return editfst.Dot(editfst.StringMap(words), os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(dotCmd)
}
