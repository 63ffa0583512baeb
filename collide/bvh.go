package collide

import (
	"fmt"
	"sort"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/vponomar/fitweave/mesh"
)

// bvhLeafSize is the triangle count below which a node stops splitting.
const bvhLeafSize = 4

// aabb is a local axis-aligned box used by BVH nodes and the slab test.
type aabb struct {
	min, max vec3.T
}

func (b *aabb) add(p *vec3.T) {
	for i, v := range p {
		if v < b.min[i] {
			b.min[i] = v
		}
		if v > b.max[i] {
			b.max[i] = v
		}
	}
}

// longestAxis returns the index of the box's longest extent.
func (b *aabb) longestAxis() int {
	axis, best := 0, -1.0
	for i := 0; i < 3; i++ {
		if l := b.max[i] - b.min[i]; l > best {
			best = l
			axis = i
		}
	}

	return axis
}

// hitBy runs the slab test: does the ray enter the box within tMax?
// invDir components may be ±Inf for axis-aligned rays; the comparisons
// below stay correct under IEEE semantics.
func (b *aabb) hitBy(origin, invDir *vec3.T, tMax float64) bool {
	tMin := 0.0
	for i := 0; i < 3; i++ {
		t1 := (b.min[i] - origin[i]) * invDir[i]
		t2 := (b.max[i] - origin[i]) * invDir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}

	return true
}

// bvhNode is one arena entry. Leaves have left == -1 and reference the
// contiguous range tris[start : start+count].
type bvhNode struct {
	bounds      aabb
	left, right int
	start       int
	count       int
}

// BVH is a median-split bounding-volume hierarchy over the body triangles.
// Nodes live in a flat slice indexed by integers (arena + index, no cyclic
// pointers). Safe for concurrent readers once built.
type BVH struct {
	body  *mesh.Mesh
	nodes []bvhNode
	tris  []int // triangle indices, permuted so leaves own contiguous runs
}

// NewBVH builds the hierarchy over a validated body mesh.
//
// Construction:
//  1. Start from all triangle indices.
//  2. At each node, bound the triangles, sort the node's index range by the
//     triangle's minimum coordinate on the box's longest axis, and split at
//     the median.
//  3. Stop when a node holds ≤ bvhLeafSize triangles.
//
// Complexity: O(T log² T) build, O(log T) expected per query.
func NewBVH(body *mesh.Mesh) (*BVH, error) {
	if err := body.Validate(); err != nil {
		return nil, fmt.Errorf("collide: %w", err)
	}

	b := &BVH{
		body: body,
		tris: make([]int, len(body.Triangles)),
	}
	for i := range b.tris {
		b.tris[i] = i
	}

	b.build(0, len(b.tris))

	return b, nil
}

// triBounds bounds the triangles in tris[start:end].
func (b *BVH) triBounds(start, end int) aabb {
	first := b.body.Triangles[b.tris[start]]
	box := aabb{min: b.body.Positions[first[0]], max: b.body.Positions[first[0]]}

	for i := start; i < end; i++ {
		tr := b.body.Triangles[b.tris[i]]
		box.add(&b.body.Positions[tr[0]])
		box.add(&b.body.Positions[tr[1]])
		box.add(&b.body.Positions[tr[2]])
	}

	return box
}

// minOnAxis is the triangle's smallest vertex coordinate on the given axis,
// the sort key for median splitting.
func (b *BVH) minOnAxis(tri, axis int) float64 {
	tr := b.body.Triangles[tri]
	m := b.body.Positions[tr[0]][axis]
	if v := b.body.Positions[tr[1]][axis]; v < m {
		m = v
	}
	if v := b.body.Positions[tr[2]][axis]; v < m {
		m = v
	}

	return m
}

// build appends the node covering tris[start:end] and returns its index.
func (b *BVH) build(start, end int) int {
	idx := len(b.nodes)
	node := bvhNode{bounds: b.triBounds(start, end), left: -1, right: -1}

	if end-start <= bvhLeafSize {
		node.start = start
		node.count = end - start
		b.nodes = append(b.nodes, node)

		return idx
	}

	axis := node.bounds.longestAxis()
	seg := b.tris[start:end]
	sort.Slice(seg, func(i, j int) bool {
		return b.minOnAxis(seg[i], axis) < b.minOnAxis(seg[j], axis)
	})

	b.nodes = append(b.nodes, node) // reserve the slot before recursing
	mid := start + (end-start)/2
	left := b.build(start, mid)
	right := b.build(mid, end)
	b.nodes[idx].left = left
	b.nodes[idx].right = right

	return idx
}

// NearestAlongRay walks the hierarchy with an explicit stack, pruning nodes
// whose box lies beyond the current best distance.
func (b *BVH) NearestAlongRay(origin, dir *vec3.T, maxDist float64) (Hit, bool) {
	invDir := vec3.T{1 / dir[0], 1 / dir[1], 1 / dir[2]}

	best := Hit{Distance: maxDist}
	found := false

	stack := make([]int, 0, 64)
	stack = append(stack, 0)

	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := &b.nodes[ni]

		if !node.bounds.hitBy(origin, &invDir, best.Distance) {
			continue
		}

		if node.left == -1 { // leaf
			for i := node.start; i < node.start+node.count; i++ {
				tri := b.tris[i]
				tr := b.body.Triangles[tri]
				t, ok := rayTriangle(origin, dir,
					&b.body.Positions[tr[0]],
					&b.body.Positions[tr[1]],
					&b.body.Positions[tr[2]])
				if !ok || t > best.Distance {
					continue
				}
				best = Hit{Distance: t, Triangle: tri}
				found = true
			}

			continue
		}

		stack = append(stack, node.left, node.right)
	}

	if !found {
		return Hit{}, false
	}

	return best, true
}

// assert at compile time that both implementations satisfy Surface.
var (
	_ Surface = (*BruteForce)(nil)
	_ Surface = (*BVH)(nil)
)
