// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Files reads every file below dir whose slash separated path relative to dir
// matches one of include and none of exclude. Patterns use the doublestar
// syntax, so '**' matches any amount of directories and {a,b} alternatives.
func Files(dir string, include, exclude []string) ([]Source, error) {
	var res []Source

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if !MatchAny(include, rel) || MatchAny(exclude, rel) {
			return nil
		}

		buf, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("cannot read source: %w", err)
		}

		res = append(res, Source{Path: p, Text: string(buf)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", dir, err)
	}

	return res, nil
}

// MatchAny returns true if one of the patterns matches name.
func MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Match(p, name) {
			return true
		}
	}

	return false
}

// Match reports whether the slash separated name matches pattern. Malformed
// patterns never match.
func Match(pattern, name string) bool {
	ok, err := doublestar.Match(pattern, name)

	return err == nil && ok
}
