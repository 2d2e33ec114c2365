// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/golangee/mlg/chalktalk"
	"github.com/golangee/mlg/encoder"
	"github.com/spf13/cobra"
)

var (
	asXML bool
	write bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt file",
	Short: "Prints the canonical form of a document",
	Long: `Fmt prints a document in its canonical layout, or as XML. Documents with
structural errors are left alone, because their broken parts would be lost.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read '%s': %w", path, err)
		}

		root, diags := chalktalk.ParseString(string(buf))
		if len(diags) > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), diags.Explain(string(buf)))
			return errProblems
		}

		var tmp bytes.Buffer
		if err := format(&tmp, root); err != nil {
			return err
		}

		if write {
			if err := os.WriteFile(path, tmp.Bytes(), 0o644); err != nil {
				return fmt.Errorf("cannot write '%s': %w", path, err)
			}

			return nil
		}

		_, err = io.Copy(cmd.OutOrStdout(), &tmp)

		return err
	},
}

func init() {
	fmtCmd.Flags().BoolVar(&asXML, "xml", false, "print the structure as XML")
	fmtCmd.Flags().BoolVarP(&write, "write", "w", false, "write the canonical form back into the file")
	rootCmd.AddCommand(fmtCmd)
}

func format(w io.Writer, root *chalktalk.Root) error {
	if asXML {
		return encoder.NewXMLEncoder(w).Encode(root)
	}

	return encoder.NewEncoder(w).Encode(root)
}
