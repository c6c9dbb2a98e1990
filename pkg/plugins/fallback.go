package plugins

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoTerminal is returned when the interactive menu cannot run because
// stdin or stdout is not a terminal. Callers fall back to PickFallback.
var ErrNoTerminal = errors.New("no interactive terminal")

// PickFallback reads a plugin selection without a terminal: the catalog is
// printed as a numbered list and one line of space-separated indices is
// parsed from in. Blank input selects nothing; invalid input re-prompts.
//
// in must be the same scanner the rest of the flow reads from. A scanner
// buffers ahead, so layering a second one over the same pipe would start at
// EOF and starve this prompt.
func PickFallback(in *bufio.Scanner, w io.Writer, catalog []string) ([]string, error) {
	fmt.Fprintln(w, "Available plugins:")
	for i, name := range catalog {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, name)
	}

	for {
		fmt.Fprint(w, "Plugin numbers (space-separated, blank for none): ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return nil, fmt.Errorf("reading selection: %w", err)
			}
			return nil, io.ErrUnexpectedEOF
		}

		line := strings.TrimSpace(in.Text())
		if line == "" {
			return []string{}, nil
		}

		picked, err := parseIndices(line, len(catalog))
		if err != nil {
			fmt.Fprintf(w, "  %v\n", err)
			continue
		}

		out := make([]string, 0, len(catalog))
		for i, name := range catalog {
			if picked[i] {
				out = append(out, name)
			}
		}
		return out, nil
	}
}

func parseIndices(line string, n int) ([]bool, error) {
	picked := make([]bool, n)
	for _, field := range strings.Fields(line) {
		idx, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", field)
		}
		if idx < 1 || idx > n {
			return nil, fmt.Errorf("%d is out of range (valid: 1-%d)", idx, n)
		}
		picked[idx-1] = true
	}
	return picked, nil
}
