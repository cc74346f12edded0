// Package gridio reads and writes grids in the plain-text dump format:
//
//	<rows> <cols>
//	<cols space-separated 0/1 values>   (one line per row)
//
// Any integer other than 1 reads back as a dead cell.
package gridio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lifepaint/internal/core"
)

// Write serializes g to w.
func Write(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strconv.Itoa(g.Rows) + " " + strconv.Itoa(g.Cols) + "\n"); err != nil {
		return errors.Wrap(err, "write header")
	}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			if g.At(row, col) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "write row %d", row)
		}
	}
	return errors.Wrap(bw.Flush(), "flush grid")
}

// Encode returns the text form of g.
func Encode(g *core.Grid) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = Write(&b, g)
	return b.String()
}

// Read parses a grid dump. Blank lines are skipped; every row must hold
// exactly cols cells. Lines after the last row are ignored.
func Read(r io.Reader) (rows, cols int, cells []bool, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0

	nextLine := func(what string) ([]string, error) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, nil
			}
		}
		if err := sc.Err(); err != nil {
			return nil, errors.Wrapf(err, "read %s", what)
		}
		return nil, errors.Errorf("unexpected end of input reading %s", what)
	}

	header, err := nextLine("header")
	if err != nil {
		return 0, 0, nil, err
	}
	if len(header) != 2 {
		return 0, 0, nil, errors.Errorf("line %d: header wants <rows> <cols>, got %d fields", line, len(header))
	}
	if rows, err = strconv.Atoi(header[0]); err != nil {
		return 0, 0, nil, errors.Errorf("malformed row count %q", header[0])
	}
	if cols, err = strconv.Atoi(header[1]); err != nil {
		return 0, 0, nil, errors.Errorf("malformed column count %q", header[1])
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, nil, errors.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	if rows > MaxDim || cols > MaxDim {
		return 0, 0, nil, errors.Errorf("dimensions %dx%d exceed limit %d", rows, cols, MaxDim)
	}

	cells = make([]bool, rows*cols)
	for row := 0; row < rows; row++ {
		fields, err := nextLine("row " + strconv.Itoa(row))
		if err != nil {
			return 0, 0, nil, err
		}
		if len(fields) != cols {
			return 0, 0, nil, errors.Errorf("row %d: want %d cells, got %d", row, cols, len(fields))
		}
		for col, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return 0, 0, nil, errors.Errorf("row %d: malformed cell %q at column %d", row, tok, col)
			}
			cells[row*cols+col] = v == 1
		}
	}
	return rows, cols, cells, nil
}

// MaxDim caps each imported dimension so a corrupt header cannot request a
// huge allocation.
const MaxDim = 10000

// Decode parses a grid dump into a new grid with the given cell size.
func Decode(r io.Reader, cellSize int) (*core.Grid, error) {
	rows, cols, cells, err := Read(r)
	if err != nil {
		return nil, err
	}
	g := core.NewGrid(rows, cols, cellSize)
	g.Replace(rows, cols, cells)
	return g, nil
}

// ImportFile loads path into g. g is only modified when the whole file parses.
func ImportFile(path string, g *core.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	rows, cols, cells, err := Read(f)
	if err != nil {
		return errors.Wrapf(err, "import %s", path)
	}
	g.Replace(rows, cols, cells)
	return nil
}

// ExportFile writes g to path, replacing any existing file.
func ExportFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return errors.Wrapf(err, "export %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
