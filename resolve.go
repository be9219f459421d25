package arbor

import (
	"strings"

	"github.com/jward/arbor/internal/model"
)

// scalarTypes are the built-in scalar and pseudo type names. A reference
// equal to one of these never resolves to an element.
var scalarTypes = map[string]bool{
	"boolean":  true,
	"integer":  true,
	"float":    true,
	"string":   true,
	"array":    true,
	"object":   true,
	"resource": true,
	"callback": true,
	"callable": true,
	"NULL":     true,
	"false":    true,
	"true":     true,
	"mixed":    true,
}

// Context is the element a textual reference appears on. Element is the
// owning top-level element; Member is set when the annotation lives on a
// class member (Element is then the declaring class); Parameter is set when
// the annotation lives on a parameter of Member, or of Element when Element
// is a function.
type Context struct {
	Element   *model.Element
	Member    *model.Member
	Parameter bool
}

// Ref is a successful resolution. Element is the element the reference
// names, or the class the resolved member was looked up on; Member is
// non-nil when the reference named a method, property, or class constant.
type Ref struct {
	Element *model.Element
	Member  *model.Member
}

// Resolve maps a free-text reference (an @see/@uses value, an inline link
// target) to the element it names, or nil when it names nothing documented.
// Dangling and malformed references are expected input, so every dead end
// returns nil rather than an error, and the call never mutates any state.
func (e *Engine) Resolve(ref string, ctx Context) *Ref {
	def := ref
	if def == "" || scalarTypes[def] || ctx.Element == nil {
		return nil
	}

	// A parameter's reference resolves against its declaring function or
	// method; a class member's against its declaring class. Both collapse
	// to ctx.Element here, but rule 6 below still needs to know the
	// reference started on a parameter.
	context := ctx.Element
	wasParameter := ctx.Parameter

	if def == "self" || def == "$this" {
		if context.Kind.IsClassLike() {
			return &Ref{Element: context}
		}
		return nil
	}

	ns := context.Namespace()
	snap := e.snap

	// Alias expansion on the leading identifier segment. When the expanded
	// name carries member syntax it only rewrites the reference; the direct
	// lookups below run on the rewritten name and do not expand aliases
	// again. This mirrors the original resolution flow exactly, asymmetry
	// included.
	if base := leadingSegment(def); base != "" {
		if target, ok := context.Aliases[base]; ok {
			if expanded := target + def[len(base):]; expanded != def {
				if !strings.Contains(expanded, "::") {
					if cls := snap.Class(expanded, ns); cls != nil {
						return &Ref{Element: cls}
					}
					return nil
				}
				def = expanded
			}
		}
	}

	// Direct lookups: class-like, then constant, then function (also with
	// a call suffix stripped).
	if cls := snap.Class(def, ns); cls != nil {
		return &Ref{Element: cls}
	}
	if c := snap.Constant(def, ns); c != nil {
		return &Ref{Element: c}
	}
	if fn := snap.Function(def, ns); fn != nil {
		return &Ref{Element: fn}
	}
	if name, ok := strings.CutSuffix(def, "()"); ok {
		if fn := snap.Function(name, ns); fn != nil {
			return &Ref{Element: fn}
		}
	}

	if pos, op := memberSplit(def); pos >= 0 {
		classPart := def[:pos]
		memberPart := def[pos+len(op):]

		switch {
		case classPart == "parent" && op == "::":
			if context.Class == nil {
				return nil
			}
			parent := snap.Class(context.Class.Parent, "")
			if parent == nil {
				return nil
			}
			context = parent
		case classPart == "self":
			// keep the current context
		default:
			cls := snap.Class(classPart, ns)
			if cls == nil {
				cls = snap.Class(resolveClassFQN(classPart, context.Aliases, ns), ns)
			}
			if cls == nil {
				return nil
			}
			context = cls
		}
		def = memberPart
	} else if wasParameter {
		// Parameters cannot be dereferenced without member syntax.
		return nil
	}

	if !context.Kind.IsClassLike() {
		return nil
	}

	// Member resolution order: property, property without the leading $,
	// method, method without the call suffix, class constant.
	if m := snap.Property(context, def); m != nil {
		return &Ref{Element: context, Member: m}
	}
	if name, ok := strings.CutPrefix(def, "$"); ok {
		if m := snap.Property(context, name); m != nil {
			return &Ref{Element: context, Member: m}
		}
	}
	if m := snap.Method(context, def); m != nil {
		return &Ref{Element: context, Member: m}
	}
	if name, ok := strings.CutSuffix(def, "()"); ok {
		if m := snap.Method(context, name); m != nil {
			return &Ref{Element: context, Member: m}
		}
	}
	if m := snap.ClassConstant(context, def); m != nil {
		return &Ref{Element: context, Member: m}
	}
	return nil
}

// leadingSegment returns the reference text up to the first namespace
// separator or colon.
func leadingSegment(def string) string {
	if pos := strings.IndexAny(def, model.Separator+":"); pos >= 0 {
		return def[:pos]
	}
	return def
}

// memberSplit locates the first member access operator in def. It returns
// the operator's position and text, or -1 when def carries no member
// syntax.
func memberSplit(def string) (int, string) {
	static := strings.Index(def, "::")
	arrow := strings.Index(def, "->")
	switch {
	case static < 0 && arrow < 0:
		return -1, ""
	case arrow < 0 || (static >= 0 && static < arrow):
		return static, "::"
	default:
		return arrow, "->"
	}
}

// resolveClassFQN expands a class name against the namespace alias table:
// an absolute name is trimmed, an aliased leading segment is substituted,
// and anything else is qualified with the current namespace.
func resolveClassFQN(name string, aliases map[string]string, ns string) string {
	if strings.HasPrefix(name, model.Separator) {
		return strings.TrimLeft(name, model.Separator)
	}
	if pos := strings.Index(name, model.Separator); pos < 0 {
		if fqn, ok := aliases[name]; ok {
			return fqn
		}
	} else if fqn, ok := aliases[name[:pos]]; ok {
		return fqn + name[pos:]
	}
	if ns == "" {
		return name
	}
	return ns + model.Separator + name
}
