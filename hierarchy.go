package arbor

import "sort"

// Node is one element in an inheritance forest. Children are kept by name
// and handed out in case-sensitive name order.
type Node struct {
	Name     string
	children map[string]*Node
}

func newNode(name string) *Node {
	return &Node{Name: name, children: make(map[string]*Node)}
}

// Child returns the named child node, or nil.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// Children returns the child nodes sorted by name.
func (n *Node) Children() []*Node {
	return sortedNodes(n.children)
}

// Forest is a set of independent inheritance trees sharing one element-kind
// classification.
type Forest struct {
	roots map[string]*Node
}

func newForest() *Forest {
	return &Forest{roots: make(map[string]*Node)}
}

// Root returns the named root node, or nil.
func (f *Forest) Root(name string) *Node {
	return f.roots[name]
}

// Roots returns the root nodes sorted by name.
func (f *Forest) Roots() []*Node {
	return sortedNodes(f.roots)
}

// Empty reports whether the forest holds no trees.
func (f *Forest) Empty() bool {
	return len(f.roots) == 0
}

func sortedNodes(nodes map[string]*Node) []*Node {
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Node, len(names))
	for i, name := range names {
		out[i] = nodes[name]
	}
	return out
}

// Forests holds the four independent inheritance forests.
type Forests struct {
	Classes    *Forest
	Interfaces *Forest
	Traits     *Forest
	Exceptions *Forest
}

func (f *Forests) forestFor(kind Kind) *Forest {
	switch kind {
	case KindInterface:
		return f.Interfaces
	case KindTrait:
		return f.Traits
	case KindException:
		return f.Exceptions
	case KindClass, KindConstant, KindFunction:
		return f.Classes
	}
	return f.Classes
}

// buildForests builds the inheritance forests from the main, documented
// class-like elements. The kind of an element's topmost ancestor decides
// which forest its whole chain lands in, so a class rooted under an
// exception files under the exception forest. A parent name with no element
// in the snapshot roots the element as if it had no parent.
func (e *Engine) buildForests() *Forests {
	f := &Forests{
		Classes:    newForest(),
		Interfaces: newForest(),
		Traits:     newForest(),
		Exceptions: newForest(),
	}

	// Every element reachable as an ancestor also shows up in the sorted
	// top-level iteration, so one visited set keyed by name is enough to
	// keep each element in exactly one place.
	visited := make(map[string]bool)

	for _, el := range e.snap.ClassLike() {
		if !el.Main || !el.Documented || visited[el.Name] {
			continue
		}

		ancestors := e.snap.Ancestors(el)
		if len(ancestors) == 0 {
			forest := f.forestFor(el.Kind)
			if forest.roots[el.Name] == nil {
				forest.roots[el.Name] = newNode(el.Name)
			}
			visited[el.Name] = true
			continue
		}

		// Descend from the furthest ancestor, creating missing nodes on
		// the way; cursor re-pointing happens on the child maps, never by
		// rebinding node values.
		top := ancestors[len(ancestors)-1]
		cursor := f.forestFor(top.Kind).roots
		for i := len(ancestors) - 1; i >= 0; i-- {
			name := ancestors[i].Name
			node := cursor[name]
			if node == nil {
				node = newNode(name)
				cursor[name] = node
				visited[name] = true
			}
			cursor = node.children
		}
		if cursor[el.Name] == nil {
			cursor[el.Name] = newNode(el.Name)
		}
		visited[el.Name] = true
	}

	return f
}
