package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// outputResult marshals a CLIResult to stdout in the selected format.
func outputResult(result CLIResult) error {
	if flagFormat == "text" {
		return outputResultText(os.Stdout, result)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as
// a CLIResult envelope. In text mode it goes to stderr.
func outputError(command string, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: command,
		Error:   err.Error(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// outputResultText dispatches to the appropriate text formatter based on
// the result payload.
func outputResultText(w io.Writer, result CLIResult) error {
	switch payload := result.Results.(type) {
	case CLIGrouping:
		formatGroupingText(w, payload)
	case CLIForests:
		formatForestsText(w, payload)
	case []CLIRef:
		formatRefsText(w, payload)
	default:
		return fmt.Errorf("no text formatter for command %q", result.Command)
	}
	return nil
}

// formatGroupingText formats groups as aligned columns of bucket counts.
func formatGroupingText(w io.Writer, grouping CLIGrouping) {
	fmt.Fprintf(w, "Mode: %s\n", grouping.Mode)
	if len(grouping.Groups) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tCLASSES\tINTERFACES\tTRAITS\tEXCEPTIONS\tCONSTANTS\tFUNCTIONS")
	for _, g := range grouping.Groups {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
			g.Name, len(g.Classes), len(g.Interfaces), len(g.Traits),
			len(g.Exceptions), len(g.Constants), len(g.Functions))
	}
	tw.Flush()
}

// formatForestsText formats the four forests as indented trees.
func formatForestsText(w io.Writer, forests CLIForests) {
	sections := []struct {
		title string
		roots []CLINode
	}{
		{"Classes", forests.Classes},
		{"Interfaces", forests.Interfaces},
		{"Traits", forests.Traits},
		{"Exceptions", forests.Exceptions},
	}
	for _, section := range sections {
		if len(section.roots) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		for _, root := range section.roots {
			formatNodeText(w, root, 1)
		}
	}
}

func formatNodeText(w io.Writer, node CLINode, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), node.Name)
	for _, child := range node.Children {
		formatNodeText(w, child, depth+1)
	}
}

// formatRefsText formats resolution results, one per line.
func formatRefsText(w io.Writer, refs []CLIRef) {
	for _, r := range refs {
		if !r.Resolved {
			fmt.Fprintf(w, "%s -> (unresolved)\n", r.Reference)
			continue
		}
		target := r.Element
		if r.Member != "" {
			target += "::" + r.Member
		}
		fmt.Fprintf(w, "%s -> %s (%s)\n", r.Reference, target, r.Kind)
	}
}
