package mesh

import (
	"fmt"
	"sort"
)

// Adjacency is a vertex-neighbor graph in CSR (compressed sparse row) form:
// the neighbors of vertex i live in neighbors[offsets[i]:offsets[i+1]],
// sorted ascending. It is index-based — vertex indices, not object
// references — so there are no cyclic pointer structures to manage.
//
// An Adjacency is derived once per mesh per invocation and never persisted;
// rebuild it whenever the triangle list changes.
type Adjacency struct {
	offsets   []int // len(offsets) == vertex count + 1
	neighbors []int // flat, grouped per vertex, each group sorted
}

// BuildAdjacency derives the symmetric vertex-neighbor graph from the mesh
// triangle list: triangle (a, b, c) contributes edges a–b, b–c, c–a in both
// directions. Duplicate edges from shared triangle borders are deduplicated.
//
// Preconditions: the mesh must be indexed and in-range (Validate passes).
//
// Complexity: O(V + E log d) where d is the maximum vertex degree
// (the log factor comes from sorting each neighbor group for determinism).
func BuildAdjacency(m *Mesh) (*Adjacency, error) {
	// 1) Enforce the indexed-mesh invariant before touching any buffer.
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("adjacency: %w", err)
	}

	// 2) Collect neighbor sets. A slice of maps keeps insertion O(1) and
	//    deduplicates shared edges; the flat CSR arrays are built after.
	n := len(m.Positions)
	sets := make([]map[int]struct{}, n)

	link := func(a, b int) {
		if sets[a] == nil {
			sets[a] = make(map[int]struct{}, 8)
		}
		sets[a][b] = struct{}{}
	}

	var t Tri
	for _, t = range m.Triangles {
		link(t[0], t[1])
		link(t[1], t[0])
		link(t[1], t[2])
		link(t[2], t[1])
		link(t[2], t[0])
		link(t[0], t[2])
	}

	// 3) Compact into CSR: prefix-sum offsets, then sorted neighbor groups.
	adj := &Adjacency{offsets: make([]int, n+1)}
	total := 0
	for i := 0; i < n; i++ {
		adj.offsets[i] = total
		total += len(sets[i])
	}
	adj.offsets[n] = total

	adj.neighbors = make([]int, 0, total)
	for i := 0; i < n; i++ {
		group := make([]int, 0, len(sets[i]))
		for nb := range sets[i] {
			group = append(group, nb)
		}
		sort.Ints(group)
		adj.neighbors = append(adj.neighbors, group...)
	}

	return adj, nil
}

// Len returns the number of vertices the graph was built over.
func (a *Adjacency) Len() int { return len(a.offsets) - 1 }

// Degree returns the number of neighbors of vertex i.
func (a *Adjacency) Degree(i int) int { return a.offsets[i+1] - a.offsets[i] }

// Neighbors returns the neighbor indices of vertex i, sorted ascending.
// The returned slice aliases the graph's internal buffer; callers must not
// modify it.
func (a *Adjacency) Neighbors(i int) []int {
	return a.neighbors[a.offsets[i]:a.offsets[i+1]]
}
