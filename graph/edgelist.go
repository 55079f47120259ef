package graph

import (
	"bufio"
	"io"
	"strconv"
)

// ReadEdgeList reads whitespace-separated "u v" integer pairs, one edge per
// line, until EOF. Blank lines are ignored. n is taken as
// max(u, v over all edges) + 1; duplicate edges collapse; self-loops are
// rejected with ErrMalformedEdgeList, the one sentinel callers checking for
// malformed input see (ErrSelfLoop is named in the message text only).
func ReadEdgeList(r io.Reader, opts ...Option) (*Graph, error) {
	type pair struct{ u, v int }
	var pairs []pair
	maxLabel := -1

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for scanner.Scan() {
		fields := splitFields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errorf("ReadEdgeList", ErrMalformedEdgeList, "expected 2 fields, got %d (%q)", len(fields), scanner.Text())
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil || u < 0 {
			return nil, errorf("ReadEdgeList", ErrMalformedEdgeList, "invalid vertex id %q", fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil || v < 0 {
			return nil, errorf("ReadEdgeList", ErrMalformedEdgeList, "invalid vertex id %q", fields[1])
		}
		if u == v {
			return nil, errorf("ReadEdgeList", ErrMalformedEdgeList, "self-loop (%d,%d): %v", u, v, ErrSelfLoop)
		}
		if u > maxLabel {
			maxLabel = u
		}
		if v > maxLabel {
			maxLabel = v
		}
		pairs = append(pairs, pair{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, errorf("ReadEdgeList", ErrMalformedEdgeList, "reading input: %v", err)
	}

	n := maxLabel + 1
	if n < 0 {
		n = 0
	}
	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err := g.AddEdge(p.u, p.v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// splitFields tokenizes a line on ASCII whitespace without pulling in the
// strings package's locale-aware machinery the reader does not need.
func splitFields(line string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(line); i++ {
		isSpace := i == len(line) || line[i] == ' ' || line[i] == '\t' || line[i] == '\r'
		if isSpace {
			if start >= 0 {
				out = append(out, line[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	return out
}
