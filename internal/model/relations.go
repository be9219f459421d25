package model

import (
	"sort"
	"strings"
)

// BuildRelations derives the back-reference indices (subclasses,
// implementers, trait users) from the declared parent, interface, and use
// names of every main, documented class-like element. It rebuilds the
// indices from scratch, so calling it again after further Add calls is
// safe.
//
// Direct sets hold immediate relations; indirect sets extend them through
// the subclass closure (a class inheriting from an implementer is an
// indirect implementer, and so on).
func (s *Snapshot) BuildRelations() {
	s.directSubclasses = make(map[string]map[string]bool)
	s.indirectSubclasses = make(map[string]map[string]bool)
	s.directImplementers = make(map[string]map[string]bool)
	s.indirectImplementers = make(map[string]map[string]bool)
	s.directUsers = make(map[string]map[string]bool)
	s.indirectUsers = make(map[string]map[string]bool)

	for _, e := range s.ClassLike() {
		if !e.Main || !e.Documented {
			continue
		}
		if parent := strings.TrimLeft(e.Class.Parent, Separator); parent != "" {
			addRelation(s.directSubclasses, parent, e.Name)
		}
		for _, iface := range e.Class.Interfaces {
			addRelation(s.directImplementers, strings.TrimLeft(iface, Separator), e.Name)
		}
		for _, trait := range e.Class.Uses {
			addRelation(s.directUsers, strings.TrimLeft(trait, Separator), e.Name)
		}
	}

	// Indirect subclasses: every descendant past the first level.
	for name := range s.directSubclasses {
		for _, direct := range setNames(s.directSubclasses[name]) {
			for _, deep := range s.descendants(direct, map[string]bool{name: true}) {
				addRelation(s.indirectSubclasses, name, deep)
			}
		}
	}

	// Indirect implementers/users: subclasses of a direct implementer/user
	// inherit the relation.
	closeOverSubclasses(s.directImplementers, s.indirectImplementers, s)
	closeOverSubclasses(s.directUsers, s.indirectUsers, s)
}

func closeOverSubclasses(direct, indirect map[string]map[string]bool, s *Snapshot) {
	for name, members := range direct {
		for member := range members {
			for _, sub := range s.descendants(member, map[string]bool{}) {
				if !direct[name][sub] {
					addRelation(indirect, name, sub)
				}
			}
		}
	}
}

// descendants returns every transitive subclass of name, excluding name
// itself. The guard set stops cycles.
func (s *Snapshot) descendants(name string, guard map[string]bool) []string {
	if guard[name] {
		return nil
	}
	guard[name] = true
	var out []string
	for sub := range s.directSubclasses[name] {
		out = append(out, sub)
		out = append(out, s.descendants(sub, guard)...)
	}
	return out
}

func addRelation(index map[string]map[string]bool, key, member string) {
	if key == "" || key == member {
		return
	}
	if index[key] == nil {
		index[key] = make(map[string]bool)
	}
	index[key][member] = true
}

func setNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DirectSubclassesOf returns the immediate subclasses of name, sorted.
func (s *Snapshot) DirectSubclassesOf(name string) []string {
	return setNames(s.directSubclasses[name])
}

// IndirectSubclassesOf returns the transitive (non-immediate) subclasses of
// name, sorted.
func (s *Snapshot) IndirectSubclassesOf(name string) []string {
	return setNames(s.indirectSubclasses[name])
}

// DirectImplementersOf returns the classes declaring the interface name,
// sorted.
func (s *Snapshot) DirectImplementersOf(name string) []string {
	return setNames(s.directImplementers[name])
}

// IndirectImplementersOf returns the classes inheriting an implementation
// of the interface name, sorted.
func (s *Snapshot) IndirectImplementersOf(name string) []string {
	return setNames(s.indirectImplementers[name])
}

// DirectUsersOf returns the classes directly using the trait name, sorted.
func (s *Snapshot) DirectUsersOf(name string) []string {
	return setNames(s.directUsers[name])
}

// IndirectUsersOf returns the classes inheriting a use of the trait name,
// sorted.
func (s *Snapshot) IndirectUsersOf(name string) []string {
	return setNames(s.indirectUsers[name])
}
