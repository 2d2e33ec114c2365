// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgFile, verbose = "", false
	watch, known = false, nil
	asXML, write = false, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, text string) string {
	t.Helper()

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	return p
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.math", "[\\set]\nDefines: X\nmeans: 'X is \\real'\nwritten: \"set\"\n")

	out, err := execute(t, "check", "--known", `\real`, dir)
	if err != nil {
		t.Fatalf("unexpected error %v:\n%s", err, out)
	}

	if !strings.Contains(out, "1 document(s) ok, 0 warning(s)") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	writeFile(t, dir, "b.math", "Theorem:\nthen: 'x is \\st'\n")

	out, err = execute(t, "check", "--known", `\real`, dir)
	if !errors.Is(err, errProblems) {
		t.Fatalf("expected problems but got %v:\n%s", err, out)
	}

	for _, want := range []string{
		`undefined signature '\st', did you mean '\set'?`,
		"1 error(s), 0 warning(s) in 2 document(s)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckDiagnostics(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.math", "Theorem:\ngiven: x\n")

	out, err := execute(t, "check", p)
	if !errors.Is(err, errProblems) {
		t.Fatalf("expected problems but got %v:\n%s", err, out)
	}

	for _, want := range []string{
		"1:1: error: missing section 'then' (validator)",
		"1 |Theorem:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCheckMissingPath(t *testing.T) {
	if _, err := execute(t, "check", filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.math", "Theorem:\nthen:\n. 'a'\n. 'b'\n")

	out, err := execute(t, "fmt", p)
	if err != nil {
		t.Fatal(err)
	}

	if want := "Theorem:\nthen: 'a', 'b'\n"; out != want {
		t.Fatalf("expected\n%s\nbut got\n%s", want, out)
	}

	if _, err := execute(t, "fmt", "--write", p); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}

	if string(buf) != out {
		t.Fatalf("unexpected file content\n%s", buf)
	}

	out, err = execute(t, "fmt", "--xml", p)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, `<section name="then">`) {
		t.Fatalf("unexpected xml\n%s", out)
	}
}

func TestFmtRefusesBrokenInput(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.math", "Theorem:\nthen: 'x\n")

	if _, err := execute(t, "fmt", "--write", p); !errors.Is(err, errProblems) {
		t.Fatalf("expected problems but got %v", err)
	}

	buf, _ := os.ReadFile(p)
	if string(buf) != "Theorem:\nthen: 'x\n" {
		t.Fatal("broken input must not be rewritten")
	}
}

func TestTokens(t *testing.T) {
	p := writeFile(t, t.TempDir(), "a.math", "Theorem:\nthen: 'x'\n")

	out, err := execute(t, "tokens", p)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "Statement(x)") {
		t.Fatalf("unexpected tokens\n%s", out)
	}
}
