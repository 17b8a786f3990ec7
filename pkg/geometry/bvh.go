package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("bvh: no objects")

	// ErrNoBoundingBox is returned when an object passed to the BVH has no bounding box
	ErrNoBoundingBox = errors.New("bvh: object has no bounding box")
)

// BVHNode is a node in the Bounding Volume Hierarchy.
//
// An interior node owns exactly two children. A node built from a single object
// wraps it as Left with a nil Right. Box encloses both children over the time
// interval the tree was built for.
type BVHNode struct {
	nonLight
	Box   core.AABB
	Left  Hittable
	Right Hittable // nil only for a single-object node
}

// bvhItem pairs an object with its precomputed bounding box
type bvhItem struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a BVH over objects for the time interval [time0, time1].
//
// Every object must be bounded; this is checked before any recursion. Split axes
// are drawn from sampler, so a seeded sampler gives a reproducible tree.
// The objects slice is not modified.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	items := make([]bvhItem, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("%w: object %d (%T)", ErrNoBoundingBox, i, object)
		}
		items[i] = bvhItem{object: object, box: box}
	}

	return buildBVH(items, sampler), nil
}

// buildBVH recursively splits items at the median of a randomly chosen axis
func buildBVH(items []bvhItem, sampler core.Sampler) *BVHNode {
	axis := core.SampleIndex(sampler.Get1D(), 3)
	sortItemsByAxis(items, axis)

	if len(items) == 1 {
		return &BVHNode{
			Box:  items[0].box,
			Left: items[0].object,
		}
	}

	mid := len(items) / 2
	left := buildBVH(items[:mid], sampler)
	right := buildBVH(items[mid:], sampler)

	return &BVHNode{
		Box:   left.Box.SurroundingBox(right.Box),
		Left:  left,
		Right: right,
	}
}

// sortItemsByAxis orders items by the minimum corner of their boxes along axis
func sortItemsByAxis(items []bvhItem, axis int) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})
}

// Hit tests the ray against the node's box, then the left child, then the
// right child with the upper bound shrunk to any left hit.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	if !n.Box.Hit(ray, tMin, tMax) {
		return false
	}

	hitLeft := n.Left.Hit(ray, tMin, tMax, hit)
	if hitLeft {
		tMax = hit.T
	}

	hitRight := n.Right != nil && n.Right.Hit(ray, tMin, tMax, hit)

	return hitLeft || hitRight
}

// BoundingBox returns the precomputed box of the node
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int     // BVH nodes, interior and single-object
	LeafNodes  int     // Nodes wrapping a single object
	Objects    int     // Objects stored in the tree
	MaxDepth   int     // Depth of the deepest node
	AvgDepth   float64 // Average depth of single-object nodes
}

// Stats walks the tree and reports its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if n.Right == nil {
		stats.LeafNodes++
		stats.Objects++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Objects++
		}
	}
}
