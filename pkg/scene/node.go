package scene

import (
	"sort"

	"github.com/philipparndt/segdraw/pkg/geometry"
	"github.com/philipparndt/segdraw/pkg/stl"
)

// Node is an element of the pickable hierarchy. A node may carry triangles
// in its local space; Position translates the node and all its children.
type Node struct {
	Name     string
	Position geometry.Vector3
	Visible  bool

	triangles []geometry.Triangle
	bounds    geometry.BoundingBox
	parent    *Node
	children  []*Node
}

// NewNode creates an empty, visible group node
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Visible: true,
		bounds:  geometry.NewBoundingBox(),
	}
}

// NewMeshNode creates a visible node holding triangles
func NewMeshNode(name string, triangles []geometry.Triangle) *Node {
	n := NewNode(name)
	n.SetTriangles(triangles)
	return n
}

// NewModelNode wraps an STL model. The node name defaults to the model name.
func NewModelNode(name string, model *stl.Model) *Node {
	if name == "" {
		name = model.Name
	}
	return NewMeshNode(name, model.Triangles)
}

// SetTriangles replaces the node's triangles
func (n *Node) SetTriangles(triangles []geometry.Triangle) {
	n.triangles = triangles
	n.bounds = geometry.NewBoundingBox()
	for _, tri := range triangles {
		n.bounds.Extend(tri.V1)
		n.bounds.Extend(tri.V2)
		n.bounds.Extend(tri.V3)
	}
}

// Triangles returns the node's own triangles in local space
func (n *Node) Triangles() []geometry.Triangle {
	return n.triangles
}

// Add attaches child, detaching it from its previous parent
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child if it belongs to n
func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the direct children
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil for a root
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldPosition returns the sum of the positions up to the root
func (n *Node) WorldPosition() geometry.Vector3 {
	pos := n.Position
	for p := n.parent; p != nil; p = p.parent {
		pos = pos.Add(p.Position)
	}
	return pos
}

// Traverse calls fn for n and every descendant, depth first
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// WorldBounds returns the world-space bounding box of n and its descendants
func (n *Node) WorldBounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	n.Traverse(func(node *Node) {
		if node.bounds.IsEmpty() {
			return
		}
		b := node.bounds.Translate(node.WorldPosition())
		bbox.Extend(b.Min)
		bbox.Extend(b.Max)
	})
	return bbox
}

// Intersect casts ray against n and, if recursive, its descendants. Hits are
// returned nearest first with points in world space. Hidden nodes and their
// subtrees are skipped.
func (n *Node) Intersect(ray geometry.Ray, recursive bool) []geometry.Hit {
	var hits []geometry.Hit
	n.intersect(ray, recursive, n.WorldPosition().Sub(n.Position), &hits)

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (n *Node) intersect(ray geometry.Ray, recursive bool, parentOffset geometry.Vector3, hits *[]geometry.Hit) {
	if !n.Visible {
		return
	}

	offset := parentOffset.Add(n.Position)

	if len(n.triangles) > 0 {
		local := geometry.Ray{Origin: ray.Origin.Sub(offset), Direction: ray.Direction}
		if _, ok := local.IntersectBox(n.bounds); ok {
			for i, tri := range n.triangles {
				if dist, ok := tri.IntersectRay(local); ok {
					*hits = append(*hits, geometry.Hit{
						Distance: dist,
						Point:    ray.At(dist),
						Object:   n.Name,
						Face:     i,
					})
				}
			}
		}
	}

	if !recursive {
		return
	}
	for _, c := range n.children {
		c.intersect(ray, recursive, offset, hits)
	}
}
