// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/golangee/mlg/collect"
	"github.com/golangee/mlg/config"
	"github.com/golangee/mlg/token"
	"github.com/spf13/cobra"
)

var (
	watch bool
	known []string
)

var errProblems = errors.New("problems found")

var checkCmd = &cobra.Command{
	Use:   "check [path...]",
	Short: "Checks documents and reports all problems",
	Long: `Check parses every document below the given directories, or the given
files, and reports structural, validation and statement problems together with
undefined and duplicate signatures. Without a path the working directory is checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&watch, "watch", "w", false, "check again whenever a document changes")
	checkCmd.Flags().StringSliceVar(&known, "known", nil, "signatures which are defined elsewhere, like \\set")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	log := newLogger()
	out := cmd.OutOrStdout()
	st := newStyles(out, cfg.Color)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = check(ctx, out, st, cfg, log, args)
	if !watch {
		return err
	}

	dir := args[0]
	if fi, statErr := os.Stat(dir); statErr != nil || !fi.IsDir() {
		return fmt.Errorf("cannot watch '%s': not a directory", dir)
	}

	return collect.Watch(ctx, dir, log, func(path string) {
		rel, err := filepath.Rel(dir, path)
		if err != nil || !collect.MatchAny(cfg.Include, filepath.ToSlash(rel)) {
			return
		}

		log.Debug("changed", "path", path)

		if err := check(ctx, out, st, cfg, log, args); err != nil && !errors.Is(err, errProblems) {
			log.Error("check failed", "err", err)
		}
	})
}

// check runs a single pass over all paths. It returns errProblems if the
// configuration considers the documents broken.
func check(ctx context.Context, out io.Writer, st styles, cfg *config.Config, log *slog.Logger, paths []string) error {
	docs, err := sources(paths, cfg)
	if err != nil {
		return err
	}

	idx, err := collect.Run(ctx, docs, collect.Options{
		Workers: cfg.Workers,
		Known:   known,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	errs, warnings := report(out, st, idx)

	if errs > 0 || (cfg.WarningsAsErrors && warnings > 0) {
		fmt.Fprintf(out, "%s\n", st.error.Render(fmt.Sprintf("%d error(s), %d warning(s) in %d document(s)", errs, warnings, len(idx.Files))))
		return errProblems
	}

	fmt.Fprintf(out, "%s\n", st.success.Render(fmt.Sprintf("%d document(s) ok, %d warning(s)", len(idx.Files), warnings)))

	return nil
}

// sources loads the documents. Directories are searched with the patterns
// of the config, files are taken as they are.
func sources(paths []string, cfg *config.Config) ([]collect.Source, error) {
	var res []collect.Source

	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot check '%s': %w", p, err)
		}

		if fi.IsDir() {
			found, err := collect.Files(p, cfg.Include, cfg.Exclude)
			if err != nil {
				return nil, err
			}

			res = append(res, found...)

			continue
		}

		buf, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("cannot read '%s': %w", p, err)
		}

		res = append(res, collect.Source{Path: p, Text: string(buf)})
	}

	return res, nil
}

// report prints the diagnostics of every file followed by the problems across files.
func report(out io.Writer, st styles, idx *collect.Index) (errs, warnings int) {
	for _, f := range idx.Files {
		diags := f.Result.Diagnostics
		if len(diags) == 0 {
			continue
		}

		fmt.Fprintln(out, st.path.Render(f.Path))

		for _, d := range diags {
			if d.Severity == token.Error {
				errs++
			} else {
				warnings++
			}

			fmt.Fprintf(out, "%s: %s: %s (%s)\n", d.Pos(), st.severity(d.Severity), d.Message, d.Origin)

			snippet := strings.TrimRight(token.Diagnostics{d}.Explain(f.Text), "\n")
			// the first line repeats the diagnostic itself
			lines := strings.Split(snippet, "\n")
			for _, line := range lines[1:] {
				fmt.Fprintln(out, st.snippet.Render(line))
			}
		}
	}

	for _, p := range idx.Problems() {
		errs++

		fmt.Fprintf(out, "%s: %s: %s\n", st.path.Render(p.Path+":"+p.Pos.String()), st.severity(token.Error), p.Message)
	}

	return errs, warnings
}
