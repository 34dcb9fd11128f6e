package network

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadNetwork parses one whitespace-delimited network table. The first line
// is the header; the two endpoint columns are located in it by name. Every
// following non-blank row is projected down to those two fields, in original
// row order. Any extra columns are ignored.
func ReadNetwork(path string, opts Options) ([]Edge, error) {
	opts = opts.withDefaults()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening network file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Interaction tables can carry wide annotation columns.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return nil, fmt.Errorf("%s: no header row: %w", path, ErrMissingColumn)
	}

	header := strings.Fields(scanner.Text())
	srcIdx, err := columnIndex(header, opts.SourceCol, path)
	if err != nil {
		return nil, err
	}
	tgtIdx, err := columnIndex(header, opts.TargetCol, path)
	if err != nil {
		return nil, err
	}

	minFields := srcIdx
	if tgtIdx > minFields {
		minFields = tgtIdx
	}
	minFields++

	var edges []Edge
	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if len(fields) < minFields {
			return nil, fmt.Errorf("%s:%d: got %d fields, need at least %d: %w",
				path, line, len(fields), minFields, ErrMalformedRow)
		}
		edges = append(edges, Edge{Source: fields[srcIdx], Target: fields[tgtIdx]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return edges, nil
}

// columnIndex finds the position of name in the header fields.
func columnIndex(header []string, name, path string) (int, error) {
	for i, col := range header {
		if col == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: column %q: %w", path, name, ErrMissingColumn)
}
