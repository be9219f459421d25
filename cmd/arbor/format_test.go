package main

import (
	"strings"
	"testing"

	"github.com/jward/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroupingText(t *testing.T) {
	var sb strings.Builder
	formatGroupingText(&sb, CLIGrouping{
		Mode: "namespaces",
		Groups: []CLIGroup{
			{Name: "App", Classes: []string{"Foo", "Bar"}, Functions: []string{"format"}},
			{Name: `App\Sub`},
		},
	})

	out := sb.String()
	assert.Contains(t, out, "Mode: namespaces")
	assert.Contains(t, out, "GROUP")
	assert.Contains(t, out, "App")
	assert.Contains(t, out, `App\Sub`)
}

func TestFormatForestsText(t *testing.T) {
	var sb strings.Builder
	formatForestsText(&sb, CLIForests{
		Classes: []CLINode{
			{Name: "A", Children: []CLINode{{Name: "B", Children: []CLINode{{Name: "C"}}}}},
		},
	})

	out := sb.String()
	assert.Contains(t, out, "Classes:\n  A\n    B\n      C\n")
	assert.NotContains(t, out, "Interfaces")
}

func TestFormatRefsText(t *testing.T) {
	var sb strings.Builder
	formatRefsText(&sb, []CLIRef{
		{Reference: "Bar::baz()", Resolved: true, Element: `App\Bar`, Member: "baz", Kind: "method"},
		{Reference: "Nope"},
	})

	out := sb.String()
	assert.Contains(t, out, `Bar::baz() -> App\Bar::baz (method)`)
	assert.Contains(t, out, "Nope -> (unresolved)")
}

func TestToCLIRef(t *testing.T) {
	el := &arbor.Element{Name: `App\Foo`, Kind: arbor.KindClass}

	got := toCLIRef("Foo", &arbor.Ref{Element: el})
	assert.True(t, got.Resolved)
	assert.Equal(t, `App\Foo`, got.Element)
	assert.Equal(t, "class", got.Kind)
	assert.Empty(t, got.Member)

	withMember := toCLIRef("Foo::run()", &arbor.Ref{
		Element: el,
		Member:  &arbor.Member{Name: "run", Kind: arbor.MemberMethod},
	})
	assert.Equal(t, "run", withMember.Member)
	assert.Equal(t, "method", withMember.Kind)

	unresolved := toCLIRef("Nope", nil)
	assert.False(t, unresolved.Resolved)
	assert.Empty(t, unresolved.Element)
}

func TestToCLIGroupingAndForests(t *testing.T) {
	snap := arbor.NewSnapshot()
	snap.Add(&arbor.Element{Name: `App\Foo`, Kind: arbor.KindClass, Documented: true, Tokenized: true, Main: true})
	child := &arbor.Element{Name: `App\Bar`, Kind: arbor.KindClass, Documented: true, Tokenized: true, Main: true}
	child.Class = &arbor.ClassInfo{Parent: `App\Foo`}
	snap.Add(child)
	snap.BuildRelations()

	engine := arbor.New(snap)

	grouping := toCLIGrouping(engine.Groups())
	require.Len(t, grouping.Groups, 1)
	assert.Equal(t, "App", grouping.Groups[0].Name)
	assert.Equal(t, []string{"Bar", "Foo"}, grouping.Groups[0].Classes)

	forests := toCLIForests(engine.Trees())
	require.Len(t, forests.Classes, 1)
	assert.Equal(t, `App\Foo`, forests.Classes[0].Name)
	require.Len(t, forests.Classes[0].Children, 1)
	assert.Equal(t, `App\Bar`, forests.Classes[0].Children[0].Name)
	assert.Empty(t, forests.Interfaces)
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("json"))
	assert.NoError(t, validateFormat("text"))
	assert.NoError(t, validateFormat("JSON"))
	assert.Error(t, validateFormat("xml"))
}
