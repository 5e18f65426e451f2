package level

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a level file: one row per line, one character per cell.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}
	return g, nil
}

// Parse reads rows from r. Carriage returns are stripped and trailing blank
// lines are dropped; blank lines in the middle stay as zero-length rows.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("level has no rows")
	}
	return NewGrid(rows), nil
}
