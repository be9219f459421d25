package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jward/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDump(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elements.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	path := writeDump(t, `{
		"elements": [
			{
				"name": "App\\Base",
				"kind": "class",
				"methods": [{"name": "run"}]
			},
			{
				"name": "App\\Child",
				"kind": "class",
				"parent": "App\\Base",
				"aliases": {"Base": "App\\Base"}
			},
			{"name": "App\\VERSION", "kind": "constant"},
			{"name": "strlen", "kind": "function", "tokenized": false, "documented": false}
		]
	}`)

	snap, err := loadSnapshot(path)
	require.NoError(t, err)

	base := snap.ElementByName(`App\Base`)
	require.NotNil(t, base)
	assert.True(t, base.Documented, "documented defaults to true")
	assert.True(t, base.Main, "main defaults to true")
	assert.True(t, base.Tokenized)
	require.NotNil(t, base.Class)
	assert.True(t, base.Class.Methods["run"].Documented)

	child := snap.ElementByName(`App\Child`)
	require.NotNil(t, child)
	assert.Equal(t, `App\Base`, child.Class.Parent)
	assert.Equal(t, `App\Base`, child.Aliases["Base"])

	builtin := snap.ElementByName("strlen")
	require.NotNil(t, builtin)
	assert.False(t, builtin.Tokenized)
	assert.False(t, builtin.Documented)

	// Relations are built as part of loading.
	assert.Equal(t, []string{`App\Child`}, snap.DirectSubclassesOf(`App\Base`))
}

func TestLoadSnapshot_Errors(t *testing.T) {
	_, err := loadSnapshot(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loadSnapshot(writeDump(t, "not json"))
	assert.Error(t, err)

	_, err = loadSnapshot(writeDump(t, `{"elements": [{"name": "Foo", "kind": "struct"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	_, err = loadSnapshot(writeDump(t, `{"elements": [{"kind": "class"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name")
}

func TestLoadSnapshot_EndToEnd(t *testing.T) {
	path := writeDump(t, `{
		"elements": [
			{
				"name": "App\\Foo",
				"kind": "class",
				"aliases": {"Bar": "App\\Lib\\Bar"}
			},
			{
				"name": "App\\Lib\\Bar",
				"kind": "class",
				"methods": [{"name": "baz"}]
			}
		]
	}`)

	snap, err := loadSnapshot(path)
	require.NoError(t, err)

	engine := arbor.New(snap)
	ref := engine.Resolve("Bar::baz()", arbor.Context{Element: snap.ElementByName(`App\Foo`)})
	require.NotNil(t, ref)
	assert.Equal(t, "baz", ref.Member.Name)

	grouping := engine.Groups()
	assert.Equal(t, arbor.ModeNamespaces, grouping.Mode)
	require.Len(t, grouping.Groups, 2)
	assert.Equal(t, "App", grouping.Groups[0].Name)
	assert.Equal(t, `App\Lib`, grouping.Groups[1].Name)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Mode)

	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: packages\nmain: App\n"), 0o644))

	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "packages", cfg.Mode)
	assert.Equal(t, "App", cfg.Main)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
