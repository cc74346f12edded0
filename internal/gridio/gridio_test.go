package gridio

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"lifepaint/internal/core"
)

func TestWriteFormat(t *testing.T) {
	g := core.NewGrid(2, 3, 10)
	g.Set(0, 1, true)
	g.Set(1, 2, true)
	want := "2 3\n0 1 0\n0 0 1\n"
	if got := Encode(g); got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestFileRoundTrip(t *testing.T) {
	src := core.NewGrid(13, 7, 10)
	core.FillRandom(src, 11, 0.4)
	path := filepath.Join(t.TempDir(), "grid.txt")
	if err := ExportFile(path, src); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := core.NewGrid(3, 3, 10)
	if err := ImportFile(path, dst); err != nil {
		t.Fatalf("import: %v", err)
	}
	if dst.Rows != src.Rows || dst.Cols != src.Cols {
		t.Fatalf("dims %dx%d, want %dx%d", dst.Rows, dst.Cols, src.Rows, src.Cols)
	}
	if !slices.Equal(src.Cells(), dst.Cells()) {
		t.Fatal("round trip changed the cell matrix")
	}
}

func TestImportKeepsView(t *testing.T) {
	g := core.NewGrid(3, 3, 17)
	g.View.OffsetX = 42
	path := filepath.Join(t.TempDir(), "g.txt")
	if err := os.WriteFile(path, []byte("1 2\n1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ImportFile(path, g); err != nil {
		t.Fatalf("import: %v", err)
	}
	if g.View.CellSize != 17 || g.View.OffsetX != 42 {
		t.Fatalf("import changed the view: %+v", g.View)
	}
}

func TestReadNonOneIsDead(t *testing.T) {
	rows, cols, cells, err := Read(strings.NewReader("1 4\n1 2 -1 0"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rows != 1 || cols != 4 || !slices.Equal(cells, []bool{true, false, false, false}) {
		t.Fatalf("got %dx%d %v", rows, cols, cells)
	}
}

func TestReadFailures(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"missing cols":    "3",
		"zero rows":       "0 3\n",
		"negative cols":   "2 -1\n",
		"bad header":      "a b\n",
		"short row":       "2 3\n1 0 1\n1 0\n",
		"malformed cell":  "2 2\n1 x\n0 0\n",
		"huge":            "100000 2\n",
		"long then short": "2 3\n1 0 1 1\n0 0\n",
		"header on cells": "1 2 1 0\n",
		"cells split":     "1 4\n1 0\n1 0\n",
	}
	for name, in := range cases {
		if _, _, _, err := Read(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestReadRowErrorNamesRow(t *testing.T) {
	_, _, _, err := Read(strings.NewReader("2 3\n1 0 1 1\n0 0\n"))
	if err == nil || !strings.Contains(err.Error(), "row 0: want 3 cells, got 4") {
		t.Fatalf("err = %v", err)
	}
}

func TestReadSkipsBlankLines(t *testing.T) {
	rows, cols, cells, err := Read(strings.NewReader("\n2 2\n\n1 0\n  \n0 1\ntrailing junk\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rows != 2 || cols != 2 || !slices.Equal(cells, []bool{true, false, false, true}) {
		t.Fatalf("got %dx%d %v", rows, cols, cells)
	}
}

func TestImportFailureLeavesGridUnchanged(t *testing.T) {
	g := core.NewGrid(4, 4, 10)
	g.Set(1, 1, true)
	before := append([]bool(nil), g.Cells()...)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("3 3\n1 1 1\n0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ragged := filepath.Join(dir, "ragged.txt")
	if err := os.WriteFile(ragged, []byte("2 3\n1 0 1 1\n0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{bad, ragged, filepath.Join(dir, "missing.txt")} {
		err := ImportFile(path, g)
		if err == nil {
			t.Fatalf("%s: expected error", path)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error %q should name the file", err)
		}
		if g.Rows != 4 || g.Cols != 4 || !slices.Equal(before, g.Cells()) {
			t.Fatalf("%s: failed import mutated the grid", path)
		}
	}
}

func TestExportFailure(t *testing.T) {
	g := core.NewGrid(1, 1, 10)
	if err := ExportFile(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), g); err == nil {
		t.Fatal("export into a missing directory should fail")
	}
}

func TestDecode(t *testing.T) {
	g, err := Decode(strings.NewReader("2 2\n1 0\n0 1\n"), 9)
	if err != nil {
		t.Fatal(err)
	}
	if !g.At(0, 0) || !g.At(1, 1) || g.Population() != 2 || g.View.CellSize != 9 {
		t.Fatalf("decoded %v view %+v", g.Cells(), g.View)
	}
}
