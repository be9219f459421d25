package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jward/arbor"
	"gopkg.in/yaml.v3"
)

// document is the on-disk JSON form of a parsed element dump, as produced
// by an upstream parser.
type document struct {
	Elements []elementDoc `json:"elements"`
}

// elementDoc is one element of the dump. Documented and Main default to
// true when omitted, so hand-written dumps stay short.
type elementDoc struct {
	Name        string              `json:"name"`
	Kind        string              `json:"kind"`
	Documented  *bool               `json:"documented,omitempty"`
	Tokenized   *bool               `json:"tokenized,omitempty"`
	Main        *bool               `json:"main,omitempty"`
	Annotations map[string][]string `json:"annotations,omitempty"`
	Aliases     map[string]string   `json:"aliases,omitempty"`

	// Class-like payload.
	Parent     string      `json:"parent,omitempty"`
	Interfaces []string    `json:"interfaces,omitempty"`
	Uses       []string    `json:"uses,omitempty"`
	Methods    []memberDoc `json:"methods,omitempty"`
	Properties []memberDoc `json:"properties,omitempty"`
	Constants  []memberDoc `json:"constants,omitempty"`
}

// memberDoc is one class member of the dump.
type memberDoc struct {
	Name       string `json:"name"`
	Documented *bool  `json:"documented,omitempty"`
}

var elementKinds = map[string]arbor.Kind{
	"class":     arbor.KindClass,
	"interface": arbor.KindInterface,
	"trait":     arbor.KindTrait,
	"exception": arbor.KindException,
	"constant":  arbor.KindConstant,
	"function":  arbor.KindFunction,
}

// loadSnapshot reads a JSON element dump and builds a fully populated
// snapshot, relation indices included.
func loadSnapshot(path string) (*arbor.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading element dump: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding element dump %s: %w", path, err)
	}

	snap := arbor.NewSnapshot()
	for i, ed := range doc.Elements {
		el, err := toElement(ed)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		snap.Add(el)
	}
	snap.BuildRelations()
	return snap, nil
}

func toElement(ed elementDoc) (*arbor.Element, error) {
	if ed.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	kind, ok := elementKinds[ed.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q for %s", ed.Kind, ed.Name)
	}

	el := &arbor.Element{
		Name:        ed.Name,
		Kind:        kind,
		Documented:  boolOr(ed.Documented, true),
		Tokenized:   boolOr(ed.Tokenized, true),
		Main:        boolOr(ed.Main, true),
		Annotations: ed.Annotations,
		Aliases:     ed.Aliases,
	}
	if kind.IsClassLike() {
		el.Class = &arbor.ClassInfo{
			Parent:     ed.Parent,
			Interfaces: ed.Interfaces,
			Uses:       ed.Uses,
			Methods:    toMembers(ed.Methods),
			Properties: toMembers(ed.Properties),
			Constants:  toMembers(ed.Constants),
		}
	}
	return el, nil
}

func toMembers(docs []memberDoc) map[string]*arbor.Member {
	members := make(map[string]*arbor.Member, len(docs))
	for _, md := range docs {
		members[md.Name] = &arbor.Member{
			Name:       md.Name,
			Documented: boolOr(md.Documented, true),
		}
	}
	return members
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// fileConfig is the optional arbor.yaml config file.
type fileConfig struct {
	Mode string `yaml:"mode"`
	Main string `yaml:"main"`
}

// loadConfig reads an arbor.yaml file. An empty path yields the zero
// config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}
