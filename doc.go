// Package moddecomp computes the modular decomposition tree of an
// undirected graph.
//
// What: given a simple undirected graph, the decomposition finds every
// strong module and labels each internal node PRIME, SERIES (join) or
// PARALLEL (union), yielding a tree whose leaves are the graph's vertices
// in a left-to-right order consistent with every module's span.
//
// Under the hood, the module is organized as:
//
//	graph/    — the undirected simple Graph collaborator
//	forest/   — the generic arena-backed intrusive tree the algorithm builds on
//	fastset/  — a generation-stamped scratch set used during reduction
//	compute/  — the pivot/reduce pipeline that produces the raw decomposition
//	mdtree/   — wraps a reduced compute tree into the public output form
//	graphgen/ — deterministic topology constructors used by tests
//	cmd/moddecomp/ — a CLI reading an edge list and printing width, elapsed
//	                 time and the parenthesized tree string
//
// Quick example:
//
//	g, _ := graph.New(3)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(0, 2)
//	compTree, root, _ := compute.Compute(g)
//	tree, _ := mdtree.FromComputeTree(compTree, root)
//	tree.Sort()
//	fmt.Println(tree.String()) // (J(0)(1)(2))
package moddecomp
