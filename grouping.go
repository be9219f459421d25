package arbor

import (
	"sort"
	"strings"

	"github.com/jward/arbor/internal/model"
)

// GroupMode selects how elements are grouped.
type GroupMode string

const (
	ModeAuto       GroupMode = "auto"
	ModeNamespaces GroupMode = "namespaces"
	ModePackages   GroupMode = "packages"
	ModeNone       GroupMode = "none"
)

// ValidGroupMode reports whether s names a grouping mode.
func ValidGroupMode(s string) bool {
	switch GroupMode(s) {
	case ModeAuto, ModeNamespaces, ModePackages, ModeNone:
		return true
	}
	return false
}

// Group is one namespace or package node: a name plus six member buckets
// keyed by short name. Synthetic ancestor groups have every bucket empty.
type Group struct {
	Name       string
	Classes    map[string]*model.Element
	Interfaces map[string]*model.Element
	Traits     map[string]*model.Element
	Exceptions map[string]*model.Element
	Constants  map[string]*model.Element
	Functions  map[string]*model.Element
}

func newGroup(name string) *Group {
	return &Group{
		Name:       name,
		Classes:    make(map[string]*model.Element),
		Interfaces: make(map[string]*model.Element),
		Traits:     make(map[string]*model.Element),
		Exceptions: make(map[string]*model.Element),
		Constants:  make(map[string]*model.Element),
		Functions:  make(map[string]*model.Element),
	}
}

// Bucket returns the member bucket holding elements of the given kind.
func (g *Group) Bucket(kind Kind) map[string]*model.Element {
	switch kind {
	case KindClass:
		return g.Classes
	case KindInterface:
		return g.Interfaces
	case KindTrait:
		return g.Traits
	case KindException:
		return g.Exceptions
	case KindConstant:
		return g.Constants
	case KindFunction:
		return g.Functions
	}
	return nil
}

// Grouping is the ordered, completed group structure for one run, together
// with the mode that was actually selected (never ModeAuto).
type Grouping struct {
	Mode   GroupMode
	Groups []*Group
}

// Group returns the named group, or nil.
func (gr *Grouping) Group(name string) *Group {
	for _, g := range gr.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// buildGrouping partitions the documented element set into namespace or
// package groups, completes the hierarchy with synthetic ancestors, and
// sorts it.
func (e *Engine) buildGrouping() *Grouping {
	namespaces := make(map[string]*Group)
	packages := make(map[string]*Group)

	assign := func(el *model.Element) {
		if !el.Documented {
			return
		}
		short := el.ShortName()
		groupFor(namespaces, el.PseudoNamespace()).Bucket(el.Kind)[short] = el
		groupFor(packages, el.PseudoPackage()).Bucket(el.Kind)[short] = el
	}
	for _, el := range e.snap.ClassLike() {
		assign(el)
	}
	for _, el := range e.snap.Constants() {
		assign(el)
	}
	for _, el := range e.snap.Functions() {
		assign(el)
	}

	// Mode selection: auto picks namespaces when at least one real
	// namespace exists or no real package does.
	userNamespaces := countReal(namespaces)
	userPackages := countReal(packages)

	var (
		chosen map[string]*Group
		mode   GroupMode
	)
	switch {
	case e.mode == ModeNamespaces || (e.mode == ModeAuto && (userNamespaces > 0 || userPackages == 0)):
		chosen, mode = namespaces, ModeNamespaces
	case e.mode == ModePackages || e.mode == ModeAuto:
		chosen, mode = packages, ModePackages
	default:
		return &Grouping{Mode: ModeNone, Groups: []*Group{}}
	}

	return &Grouping{Mode: mode, Groups: sortGroups(chosen, e.main)}
}

func groupFor(groups map[string]*Group, name string) *Group {
	g := groups[name]
	if g == nil {
		g = newGroup(name)
		groups[name] = g
	}
	return g
}

// countReal counts groups other than the "PHP" and "None" fallbacks.
func countReal(groups map[string]*Group) int {
	n := 0
	for name := range groups {
		if name != "PHP" && name != "None" {
			n++
		}
	}
	return n
}

// sortGroups completes the group hierarchy and orders it. An element set
// that grouped only into the "None" fallback yields no groups at all.
func sortGroups(groups map[string]*Group, main string) []*Group {
	if len(groups) == 1 && groups["None"] != nil {
		return []*Group{}
	}

	// Synthesize every missing proper-prefix group, comparing existing
	// names case-insensitively so "Foo" and "FOO\Bar" do not spawn a
	// second "foo".
	lower := make(map[string]bool, len(groups))
	for name := range groups {
		lower[strings.ToLower(name)] = true
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	for _, name := range names {
		prefix := ""
		for _, part := range strings.Split(name, model.Separator) {
			if prefix == "" {
				prefix = part
			} else {
				prefix += model.Separator + part
			}
			if !lower[strings.ToLower(prefix)] {
				lower[strings.ToLower(prefix)] = true
				groups[prefix] = newGroup(prefix)
			}
		}
	}

	sorted := make([]*Group, 0, len(groups))
	for _, g := range groups {
		sorted = append(sorted, g)
	}
	mainKey := sortKey(main)
	sort.Slice(sorted, func(i, j int) bool {
		// The separator sorts as a space so a namespace's descendants
		// stay adjacent to it; a configured main prefix sorts first.
		one := sortKey(sorted[i].Name)
		two := sortKey(sorted[j].Name)
		if mainKey != "" {
			oneMain := strings.HasPrefix(one, mainKey)
			twoMain := strings.HasPrefix(two, mainKey)
			if oneMain != twoMain {
				return oneMain
			}
		}
		return strings.ToLower(one) < strings.ToLower(two)
	})
	return sorted
}

func sortKey(name string) string {
	return strings.ReplaceAll(name, model.Separator, " ")
}
