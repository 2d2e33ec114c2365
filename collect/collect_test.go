// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package collect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golangee/mlg/token"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func run(t *testing.T, sources ...Source) *Index {
	t.Helper()

	idx, err := Run(context.Background(), sources, Options{Workers: 3, Known: []string{`\real`}, Logger: quiet()})
	if err != nil {
		t.Fatal(err)
	}

	return idx
}

func messages(problems []Problem) string {
	var tmp []string
	for _, p := range problems {
		tmp = append(tmp, p.String())
	}

	return strings.Join(tmp, "\n")
}

func TestSignatures(t *testing.T) {
	idx := run(t,
		Source{Path: "a.math", Text: "[\\set]\nDefines: X\nmeans: 'X is \\real'\nwritten: \"set\"\n"},
		Source{Path: "b.math", Text: "Theorem:\nthen: 'x is \\set', 'y is \\st'\n\n[\\set{x}]\nStates:\nthat: 'x'\nwritten: \"x\"\n"},
	)

	if got := strings.Join(idx.Signatures(), " "); got != `\set` {
		t.Fatalf("unexpected signatures %s", got)
	}

	if locs := idx.Defined(`\set`); len(locs) != 2 || locs[0].Path != "a.math" {
		t.Fatalf("unexpected definitions %v", locs)
	}

	want := `b.math:4:1: duplicate signature '\set', first defined at a.math:1:1`
	if got := messages(idx.Duplicates()); got != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, got)
	}

	want = `b.math:2:26: undefined signature '\st', did you mean '\set'?`
	if got := messages(idx.Undefined()); got != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, got)
	}
}

func TestDuplicateContent(t *testing.T) {
	idx := run(t,
		Source{Path: "a.math", Text: "Theorem:\nthen: 'x'\nMetadata:\n. tag: \"a\"\n"},
		Source{Path: "b.math", Text: "Axiom:\nthen: 'x'\n\nTheorem:\nthen: 'x'\nMetadata:\n. tag: \"b\"\n"},
	)

	want := "b.math:4:1: duplicate content, first written at a.math:1:1"
	if got := messages(idx.DuplicateContent()); got != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, got)
	}

	if got := messages(idx.Problems()); got != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, got)
	}

	for _, f := range idx.Files {
		if len(f.Result.Diagnostics) != 0 {
			t.Fatalf("unexpected problems in %s: %v", f.Path, f.Result.Diagnostics)
		}
	}
}

func TestResources(t *testing.T) {
	idx := run(t, Source{Path: "r.math", Text: "[book]\nResource:\n. name: \"Gophers\"\n. author: \"A\", \"B\"\n. year: \"2021\"\n"})

	book, ok := idx.Resources["book"]
	if !ok {
		t.Fatal("expected the book")
	}

	if book.Name != "Gophers" || book.Year != 2021 || len(book.Author) != 2 {
		t.Fatalf("unexpected resource %#v", book)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, []Source{{Path: "a", Text: "Axiom:\nthen: 'x'\n"}}, Options{Logger: quiet()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation but got %v", err)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"**/*.math", "a.math", true},
		{"**/*.math", "x/y/a.math", true},
		{"**/*.math", "a.txt", false},
		{"content/*.math", "content/a.math", true},
		{"content/*.math", "content/x/a.math", false},
		{"content/**", "content/x/a.math", true},
		{"a/**/b/*.math", "a/b/c.math", true},
		{"[", "a", false},
		{"{content,notes}/*.{math,mlg}", "notes/a.mlg", true},
		{"{content,notes}/*.{math,mlg}", "drafts/a.math", false},
	}

	for _, tt := range tests {
		if got := Match(tt.pattern, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
		}
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()

	write := func(name, text string) {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("a.math", "x")
	write("sub/b.math", "y")
	write("sub/c.txt", "z")
	write("drafts/d.math", "w")

	sources, err := Files(dir, []string{"**/*.math"}, []string{"drafts/**"})
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, s := range sources {
		rel, _ := filepath.Rel(dir, s.Path)
		got = append(got, filepath.ToSlash(rel)+"="+s.Text)
	}

	if strings.Join(got, " ") != "a.math=x sub/b.math=y" {
		t.Fatalf("unexpected sources %v", got)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	changed := make(chan string, 16)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, dir, quiet(), func(path string) { changed <- path })
	}()

	p := filepath.Join(dir, "a.math")
	deadline := time.After(10 * time.Second)
	// every write restarts the debounce, so writes must be further apart
	tick := time.NewTicker(3 * debounceDelay)

	defer tick.Stop()

wait:
	for {
		select {
		case got := <-changed:
			if got != p {
				t.Fatalf("unexpected change of %s", got)
			}

			break wait
		case <-tick.C:
			// the watcher may not be ready yet, so keep on writing
			if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	cancel()

	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestProblemString(t *testing.T) {
	p := Problem{Path: "a", Pos: token.Pos{Row: 1, Col: 2}, Message: "m"}
	if p.String() != "a:2:3: m" {
		t.Fatal(p.String())
	}
}
