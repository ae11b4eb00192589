package grid

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// sizeHeader prefixes the first line of the text maze format.
const sizeHeader = "SIZE:"

// Encode renders g in the text maze format: a "SIZE:N" header line
// followed by N lines of N '0' (open) or '1' (wall) runes.
func Encode(g *Grid) []byte {
	var buf bytes.Buffer
	buf.Grow((g.size + 1) * (g.size + 1))
	fmt.Fprintf(&buf, "%s%d\n", sizeHeader, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.walls[r][c] {
				buf.WriteByte('1')
			} else {
				buf.WriteByte('0')
			}
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// Decode parses the text maze format and validates the result through
// New, so a loaded maze obeys exactly the invariants of a generated one.
// Blank lines are ignored. Returns ErrInvalidMaze for malformed input
// and ErrBadSize for an out-of-range declared size.
func Decode(data []byte) (*Grid, error) {
	lines := nonBlankLines(string(data))
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidMaze)
	}
	if !strings.HasPrefix(lines[0], sizeHeader) {
		return nil, fmt.Errorf("%w: missing %q header", ErrInvalidMaze, sizeHeader)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(lines[0], sizeHeader)))
	if err != nil {
		return nil, fmt.Errorf("%w: bad size header %q", ErrInvalidMaze, lines[0])
	}
	if n < MinSize || n > MaxSize {
		return nil, fmt.Errorf("%w: declared %d", ErrBadSize, n)
	}

	rows := lines[1:]
	if len(rows) != n {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidMaze, len(rows), n)
	}
	walls := make([][]bool, n)
	for r, line := range rows {
		if len(line) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidMaze, r, len(line), n)
		}
		walls[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			switch line[c] {
			case '0':
				// open
			case '1':
				walls[r][c] = true
			default:
				return nil, fmt.Errorf("%w: row %d has invalid cell %q", ErrInvalidMaze, r, line[c])
			}
		}
	}

	return New(walls, Cell{Row: 1, Col: 1}, Cell{Row: n - 2, Col: n - 2})
}

// nonBlankLines splits s on newlines, trims carriage returns and
// surrounding space, and drops blank lines.
func nonBlankLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}
