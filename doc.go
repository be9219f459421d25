// Package arbor cross-references and organizes a documented codebase. It
// operates on a fixed, fully parsed snapshot of program elements (classes,
// interfaces, traits, exceptions, constants, functions and their members)
// and answers three kinds of questions about it:
//
//   - [Engine.Resolve] — map a free-text reference, as found in @see/@uses
//     annotations or inline links, to the concrete element it names under
//     PHP-style name-resolution rules (namespace aliases, self, $this,
//     parent::, member access operators). A reference that names nothing
//     documented yields nil, never an error.
//
//   - [Engine.Groups] — partition the documented element set into namespace
//     or package groups, synthesize missing ancestor groups so the hierarchy
//     is complete, and order it deterministically.
//
//   - [Engine.Trees] — build the four inheritance forests (classes,
//     interfaces, traits, exceptions), each tree rooted at an element with
//     no resolvable parent and filed by the kind of its topmost ancestor.
//
// # Usage
//
// Populate a Snapshot, build its relation indices, and query:
//
//	snap := arbor.NewSnapshot()
//	snap.Add(&arbor.Element{Name: `App\Foo`, Kind: arbor.KindClass, Documented: true, Tokenized: true, Main: true})
//	snap.BuildRelations()
//
//	e := arbor.New(snap, arbor.WithMode(arbor.ModeAuto))
//	ref := e.Resolve("Foo::bar()", arbor.Context{Element: ctx})
//	groups := e.Groups()
//	trees := e.Trees()
//
// Everything is synchronous and in-memory. Parsing source text, rendering
// HTML, and persisting output are jobs for the surrounding toolchain; arbor
// only consumes the parsed element set and produces resolution results,
// groups, and forests.
package arbor
