// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/golangee/mlg/chalktalk"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens file",
	Short: "Prints the structural tokens of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read '%s': %w", args[0], err)
		}

		tokens, diags := chalktalk.Lex(string(buf))

		out := cmd.OutOrStdout()
		for _, tok := range tokens {
			fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
		}

		if len(diags) > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), diags.Explain(string(buf)))
			return errProblems
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
