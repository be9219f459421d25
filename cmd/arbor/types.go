package main

import "github.com/jward/arbor"

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIGrouping is a JSON-friendly grouping result.
type CLIGrouping struct {
	Mode   string     `json:"mode"`
	Groups []CLIGroup `json:"groups"`
}

// CLIGroup is a JSON-friendly group: short names per bucket, sorted.
type CLIGroup struct {
	Name       string   `json:"name"`
	Classes    []string `json:"classes,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
	Traits     []string `json:"traits,omitempty"`
	Exceptions []string `json:"exceptions,omitempty"`
	Constants  []string `json:"constants,omitempty"`
	Functions  []string `json:"functions,omitempty"`
}

// CLIForests is a JSON-friendly forest set.
type CLIForests struct {
	Classes    []CLINode `json:"classes,omitempty"`
	Interfaces []CLINode `json:"interfaces,omitempty"`
	Traits     []CLINode `json:"traits,omitempty"`
	Exceptions []CLINode `json:"exceptions,omitempty"`
}

// CLINode is one tree node with its children in name order.
type CLINode struct {
	Name     string    `json:"name"`
	Children []CLINode `json:"children,omitempty"`
}

// CLIRef is one per-reference resolution result.
type CLIRef struct {
	Reference string `json:"reference"`
	Resolved  bool   `json:"resolved"`
	Element   string `json:"element,omitempty"`
	Member    string `json:"member,omitempty"`
	Kind      string `json:"kind,omitempty"`
}

func toCLIGrouping(grouping *arbor.Grouping) CLIGrouping {
	out := CLIGrouping{
		Mode:   string(grouping.Mode),
		Groups: make([]CLIGroup, 0, len(grouping.Groups)),
	}
	for _, g := range grouping.Groups {
		out.Groups = append(out.Groups, CLIGroup{
			Name:       g.Name,
			Classes:    sortedKeys(g.Classes),
			Interfaces: sortedKeys(g.Interfaces),
			Traits:     sortedKeys(g.Traits),
			Exceptions: sortedKeys(g.Exceptions),
			Constants:  sortedKeys(g.Constants),
			Functions:  sortedKeys(g.Functions),
		})
	}
	return out
}

func toCLIForests(forests *arbor.Forests) CLIForests {
	return CLIForests{
		Classes:    toCLINodes(forests.Classes.Roots()),
		Interfaces: toCLINodes(forests.Interfaces.Roots()),
		Traits:     toCLINodes(forests.Traits.Roots()),
		Exceptions: toCLINodes(forests.Exceptions.Roots()),
	}
}

func toCLINodes(nodes []*arbor.Node) []CLINode {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]CLINode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, CLINode{
			Name:     n.Name,
			Children: toCLINodes(n.Children()),
		})
	}
	return out
}

func toCLIRef(reference string, ref *arbor.Ref) CLIRef {
	if ref == nil {
		return CLIRef{Reference: reference}
	}
	out := CLIRef{
		Reference: reference,
		Resolved:  true,
		Element:   ref.Element.Name,
		Kind:      string(ref.Element.Kind),
	}
	if ref.Member != nil {
		out.Member = ref.Member.Name
		out.Kind = string(ref.Member.Kind)
	}
	return out
}
