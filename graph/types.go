package graph

// Backing selects the adjacency-set representation a Graph uses internally.
type Backing int

const (
	// BackingAuto picks Dense when n is at or below the configured
	// threshold (DefaultDenseMaxN unless overridden by WithAutoBacking),
	// Sparse otherwise. Never overflows.
	BackingAuto Backing = iota
	// BackingDense forces a per-vertex bitset. Overflows (ErrBackingOverflow)
	// if n exceeds DenseBackingLimit.
	BackingDense
	// BackingSparse forces a sorted-slice adjacency set. Never overflows.
	BackingSparse
)

// DenseBackingLimit is the largest n for which a dense bitset backing may
// be selected, mirroring the tiered fixed-width bitsets of the reference
// implementation this backing choice is grounded on.
const DenseBackingLimit = 1 << 13

// DefaultDenseMaxN is the threshold BackingAuto uses unless WithAutoBacking
// overrides it.
const DefaultDenseMaxN = 4096

type config struct {
	backing   Backing
	denseMaxN int
}

func defaultConfig() config {
	return config{backing: BackingAuto, denseMaxN: DefaultDenseMaxN}
}

// Option configures a Graph at construction time.
type Option func(*config)

// WithDenseBacking forces a dense bitset backing for every vertex's
// adjacency set.
func WithDenseBacking() Option {
	return func(c *config) { c.backing = BackingDense }
}

// WithSparseBacking forces a sparse (sorted-slice) backing.
func WithSparseBacking() Option {
	return func(c *config) { c.backing = BackingSparse }
}

// WithAutoBacking selects BackingAuto with a custom dense/sparse threshold:
// n <= maxN picks Dense, otherwise Sparse.
func WithAutoBacking(maxN int) Option {
	return func(c *config) { c.backing = BackingAuto; c.denseMaxN = maxN }
}

// Graph is an undirected simple graph over integer vertex ids 0..n-1. It
// has no self-loops; AddEdge between equal endpoints is rejected, and a
// second AddEdge between already-adjacent endpoints is a no-op (duplicate
// edges collapse).
type Graph struct {
	n       int
	m       int
	backing Backing
	adj     []adjacencySet
}

func newAdjacencySet(backing Backing, n int) adjacencySet {
	if backing == BackingDense {
		return newBitsetAdjacency(n)
	}
	return newSortedSetAdjacency()
}

// New constructs an edgeless Graph on n vertices (0..n-1).
func New(n int, opts ...Option) (*Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	backing := cfg.backing
	switch backing {
	case BackingDense:
		if n > DenseBackingLimit {
			return nil, errorf("New", ErrBackingOverflow, "n=%d exceeds dense limit %d", n, DenseBackingLimit)
		}
	case BackingAuto:
		if n <= cfg.denseMaxN && n <= DenseBackingLimit {
			backing = BackingDense
		} else {
			backing = BackingSparse
		}
	}

	g := &Graph{n: n, backing: backing, adj: make([]adjacencySet, n)}
	for i := range g.adj {
		g.adj[i] = newAdjacencySet(backing, n)
	}
	return g, nil
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of distinct edges added so far.
func (g *Graph) NumEdges() int { return g.m }

// Backing reports which adjacency representation this Graph uses.
func (g *Graph) Backing() Backing { return g.backing }

func (g *Graph) validate(method string, v int) error {
	if v < 0 || v >= g.n {
		return errorf(method, ErrVertexOutOfRange, "vertex %d, n=%d", v, g.n)
	}
	return nil
}

// AddEdge adds the undirected edge {u,v}. Rejects self-loops. A repeated
// call with the same endpoints is a no-op (duplicate edges collapse).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.validate("AddEdge", u); err != nil {
		return err
	}
	if err := g.validate("AddEdge", v); err != nil {
		return err
	}
	if u == v {
		return errorf("AddEdge", ErrSelfLoop, "u=v=%d", u)
	}
	if g.adj[u].has(v) {
		return nil
	}
	g.adj[u].add(v)
	g.adj[v].add(u)
	g.m++
	return nil
}

// HasEdge reports whether {u,v} is an edge. Out-of-range endpoints report
// false rather than erroring, matching the collaborator's read-only query
// surface.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}
	return g.adj[u].has(v)
}

// Degree returns the number of neighbors of u.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}
	return g.adj[u].degree()
}

// Neighbors returns u's neighbors, in increasing order.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}
	return g.adj[u].neighbors()
}

// Complement builds the complement graph: an edge {u,v} exists in the
// result iff u != v and it does not exist in g. Used by property tests that
// check complement symmetry of the modular decomposition.
func (g *Graph) Complement(opts ...Option) (*Graph, error) {
	c, err := New(g.n, opts...)
	if err != nil {
		return nil, err
	}
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if !g.HasEdge(u, v) {
				if err := c.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return c, nil
}
