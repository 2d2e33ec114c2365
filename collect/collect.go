// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package collect parses a whole set of documents and looks at them together:
// which commands are defined where, which are used without a definition and
// which groups were written twice.
package collect

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golangee/mlg"
	"github.com/golangee/mlg/ast"
	"github.com/golangee/mlg/chalktalk"
	"github.com/golangee/mlg/encoder"
	"github.com/golangee/mlg/textalk"
	"github.com/golangee/mlg/token"
	"golang.org/x/text/unicode/norm"
)

// Source is a single document.
type Source struct {
	Path string
	Text string
}

// Options of a Run.
type Options struct {
	// Workers is the amount of documents parsed in parallel, at least one.
	Workers int
	// Known signatures like \set are treated as defined.
	Known []string
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// File is a parsed Source.
type File struct {
	Source
	Result *mlg.Result
}

// Location points into a File.
type Location struct {
	Path string
	Pos  token.Pos
}

// Index is everything learned from a set of documents.
type Index struct {
	// Files in the order of the sources.
	Files []*File
	// Resources by their id.
	Resources map[string]Resource

	known   map[string]bool
	defined map[string][]Location
	used    map[string][]Location
	content map[string][]Location
}

// Resource is the bibliographic part of a Resource group.
type Resource struct {
	Type      string   `mlg:"type"`
	Name      string   `mlg:"name"`
	Author    []string `mlg:"author"`
	Homepage  string   `mlg:"homepage"`
	URL       string   `mlg:"url"`
	Edition   string   `mlg:"edition"`
	Publisher string   `mlg:"publisher"`
	Year      int      `mlg:"year"`
	Note      []string `mlg:"note"`
}

// Run parses all sources and indexes them. It only fails if ctx is cancelled.
// Problems within the documents are found in the diagnostics of each File and
// through the methods of Index.
func Run(ctx context.Context, sources []Source, opts Options) (*Index, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	files := make([]*File, len(sources))
	queue := make(chan int)

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range queue {
				src := sources[i]
				res := mlg.Parse(src.Text)
				files[i] = &File{Source: src, Result: res}

				log.Debug("parsed", "path", src.Path, "groups", len(res.Document.Groups), "diagnostics", len(res.Diagnostics))
			}
		}()
	}

	var err error

feed:
	for i := range sources {
		if ctx.Err() != nil {
			err = fmt.Errorf("cannot collect: %w", ctx.Err())
			break
		}

		select {
		case <-ctx.Done():
			err = fmt.Errorf("cannot collect: %w", ctx.Err())
			break feed
		case queue <- i:
		}
	}

	close(queue)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	idx := newIndex(opts.Known)
	for _, f := range files {
		idx.add(f, log)
	}

	log.Info("collected", "files", len(files), "signatures", len(idx.defined))

	return idx, nil
}

func newIndex(known []string) *Index {
	idx := &Index{
		Resources: map[string]Resource{},
		known:     map[string]bool{},
		defined:   map[string][]Location{},
		used:      map[string][]Location{},
		content:   map[string][]Location{},
	}

	for _, k := range known {
		idx.known[k] = true
	}

	return idx
}

// add indexes a single file. Files must be added in a stable order, so that
// reported problems do not depend on the scheduling of the workers.
func (idx *Index) add(f *File, log *slog.Logger) {
	idx.Files = append(idx.Files, f)
	res := f.Result

	for _, g := range res.Document.Groups {
		loc := Location{Path: f.Path}
		loc.Pos, _ = res.LocationOf(g)

		if sig := Signature(g); sig != "" {
			idx.defined[sig] = append(idx.defined[sig], loc)
		}

		if r, ok := g.(*ast.ResourceGroup); ok {
			var entry Resource
			if err := mlg.Unmarshal(r.Resource.Items, &entry, false); err != nil {
				log.Warn("invalid resource", "path", f.Path, "id", r.Id.Text, "err", err)
			}

			idx.Resources[r.Id.Text] = entry
		}

		if key := canonical(res.Root, loc.Pos); key != "" {
			idx.content[key] = append(idx.content[key], loc)
		}

		ast.Inspect(g, func(n ast.Node) bool {
			if stmt, ok := n.(*ast.Statement); ok {
				idx.uses(f.Path, stmt.Root)
			}

			return true
		})
	}
}

func (idx *Index) uses(path string, root textalk.Expression) {
	textalk.Inspect(root, func(e textalk.Expression) bool {
		if cmd, ok := e.(*textalk.CommandExpression); ok {
			sig := cmd.Signature()
			idx.used[sig] = append(idx.used[sig], Location{Path: path, Pos: cmd.Pos})
		}

		return true
	})
}

// Signature returns the signature of the command a Defines or States group
// introduces through its id, like \set.of for [\set.of{x}]. Other groups have
// no signature.
func Signature(g ast.TopLevelGroup) string {
	var id *ast.IdStatement

	switch n := g.(type) {
	case *ast.DefinesGroup:
		id = n.Id
	case *ast.StatesGroup:
		id = n.Id
	}

	if id == nil {
		return ""
	}

	switch e := id.Root.(type) {
	case *textalk.CommandExpression:
		return e.Signature()
	case *textalk.InfixCommandExpression:
		return e.Command.Signature()
	default:
		return ""
	}
}

// canonical returns the text of a group without its Metadata section, so that
// two groups with the same content but different tags compare equal.
func canonical(root *chalktalk.Root, pos token.Pos) string {
	for _, src := range root.Groups {
		if src.Pos != pos {
			continue
		}

		stripped := *src
		stripped.Sections = nil

		for _, sec := range src.Sections {
			if sec.Name != "Metadata" {
				stripped.Sections = append(stripped.Sections, sec)
			}
		}

		return norm.NFC.String(encoder.String(&stripped))
	}

	return ""
}
