package model

import (
	"sort"
	"strings"
)

// Snapshot is the fixed, fully parsed element set one documentation run
// operates on. Elements live in per-kind namespaces: the four class-like
// kinds share one table, constants and functions each have their own, so a
// class and a function may carry the same fully-qualified name.
//
// A Snapshot is populated once (Add, then BuildRelations) and read-only
// afterwards; the read API is safe for concurrent use from that point on.
type Snapshot struct {
	classes   map[string]*Element
	constants map[string]*Element
	functions map[string]*Element

	// Relation indices built by BuildRelations. Name → set of names,
	// never Element → Element, so the model stays cycle-free.
	directSubclasses     map[string]map[string]bool
	indirectSubclasses   map[string]map[string]bool
	directImplementers   map[string]map[string]bool
	indirectImplementers map[string]map[string]bool
	directUsers          map[string]map[string]bool
	indirectUsers        map[string]map[string]bool
}

// NewSnapshot returns an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		classes:   make(map[string]*Element),
		constants: make(map[string]*Element),
		functions: make(map[string]*Element),
	}
}

// Add registers an element under its kind's namespace, replacing any
// previous element with the same name and kind namespace. Class-like
// elements get an empty ClassInfo when none was provided.
func (s *Snapshot) Add(e *Element) {
	e.Name = strings.TrimLeft(e.Name, Separator)
	switch e.Kind {
	case KindClass, KindInterface, KindTrait, KindException:
		if e.Class == nil {
			e.Class = &ClassInfo{}
		}
		if e.Class.Methods == nil {
			e.Class.Methods = make(map[string]*Member)
		}
		if e.Class.Properties == nil {
			e.Class.Properties = make(map[string]*Member)
		}
		if e.Class.Constants == nil {
			e.Class.Constants = make(map[string]*Member)
		}
		for _, m := range e.Class.Methods {
			m.Kind, m.Class = MemberMethod, e.Name
		}
		for _, m := range e.Class.Properties {
			m.Kind, m.Class = MemberProperty, e.Name
		}
		for _, m := range e.Class.Constants {
			m.Kind, m.Class = MemberConstant, e.Name
		}
		s.classes[e.Name] = e
	case KindConstant:
		s.constants[e.Name] = e
	case KindFunction:
		s.functions[e.Name] = e
	}
}

// ClassLike returns all class-like elements sorted by name.
func (s *Snapshot) ClassLike() []*Element {
	return sortedValues(s.classes)
}

// Constants returns all constant elements sorted by name.
func (s *Snapshot) Constants() []*Element {
	return sortedValues(s.constants)
}

// Functions returns all function elements sorted by name.
func (s *Snapshot) Functions() []*Element {
	return sortedValues(s.functions)
}

func sortedValues(table map[string]*Element) []*Element {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	elements := make([]*Element, len(names))
	for i, name := range names {
		elements[i] = table[name]
	}
	return elements
}

// Class looks up a documented class-like element. The name is tried scoped
// to ns first, then globally with leading separators trimmed. Undocumented
// elements are invisible: the lookup returns nil for them.
func (s *Snapshot) Class(name, ns string) *Element {
	return lookup(s.classes, name, ns)
}

// Constant looks up a documented constant element, with the same scoping
// rules as Class.
func (s *Snapshot) Constant(name, ns string) *Element {
	return lookup(s.constants, name, ns)
}

// Function looks up a documented function element, with the same scoping
// rules as Class.
func (s *Snapshot) Function(name, ns string) *Element {
	return lookup(s.functions, name, ns)
}

func lookup(table map[string]*Element, name, ns string) *Element {
	if name == "" {
		return nil
	}
	var e *Element
	if ns != "" {
		e = table[ns+Separator+name]
	}
	if e == nil {
		e = table[strings.TrimLeft(name, Separator)]
	}
	if e == nil || !e.Documented {
		return nil
	}
	return e
}

// ElementByName returns the element with the exact fully-qualified name,
// searching the class-like, constant, and function namespaces in that
// order. Unlike the scoped lookups it does not filter on Documented.
func (s *Snapshot) ElementByName(name string) *Element {
	name = strings.TrimLeft(name, Separator)
	if e := s.classes[name]; e != nil {
		return e
	}
	if e := s.constants[name]; e != nil {
		return e
	}
	return s.functions[name]
}

// Ancestors returns the ancestor chain of a class-like element ordered
// nearest to furthest. The chain stops at the first parent name with no
// element in the snapshot, and at any name already seen, so malformed
// input cannot loop.
func (s *Snapshot) Ancestors(e *Element) []*Element {
	if e == nil || e.Class == nil {
		return nil
	}
	seen := map[string]bool{e.Name: true}
	var chain []*Element
	cur := e
	for cur.Class != nil && cur.Class.Parent != "" {
		parent := s.classes[strings.TrimLeft(cur.Class.Parent, Separator)]
		if parent == nil || seen[parent.Name] {
			break
		}
		seen[parent.Name] = true
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}

// Method returns the documented method with the given name declared on cls
// or inherited from an ancestor, nearest declaration first.
func (s *Snapshot) Method(cls *Element, name string) *Member {
	return s.member(cls, name, func(c *ClassInfo) map[string]*Member { return c.Methods })
}

// Property returns the documented property with the given name (stored
// without a leading $) declared on cls or inherited from an ancestor.
func (s *Snapshot) Property(cls *Element, name string) *Member {
	return s.member(cls, name, func(c *ClassInfo) map[string]*Member { return c.Properties })
}

// ClassConstant returns the documented class constant with the given name
// declared on cls or inherited from an ancestor.
func (s *Snapshot) ClassConstant(cls *Element, name string) *Member {
	return s.member(cls, name, func(c *ClassInfo) map[string]*Member { return c.Constants })
}

func (s *Snapshot) member(cls *Element, name string, bucket func(*ClassInfo) map[string]*Member) *Member {
	if cls == nil || cls.Class == nil || name == "" {
		return nil
	}
	for _, c := range append([]*Element{cls}, s.Ancestors(cls)...) {
		if c.Class == nil {
			continue
		}
		if m := bucket(c.Class)[name]; m != nil {
			if !m.Documented {
				return nil
			}
			return m
		}
	}
	return nil
}
