package model

import "strings"

// Separator is the namespace/package hierarchy separator.
const Separator = `\`

// Kind classifies a top-level element. The set is closed; code switching on
// Kind should enumerate every constant rather than default its way through.
type Kind string

const (
	KindClass     Kind = "class"
	KindInterface Kind = "interface"
	KindTrait     Kind = "trait"
	KindException Kind = "exception"
	KindConstant  Kind = "constant"
	KindFunction  Kind = "function"
)

// IsClassLike reports whether the kind is one of the four class-style kinds
// (class, interface, trait, exception).
func (k Kind) IsClassLike() bool {
	switch k {
	case KindClass, KindInterface, KindTrait, KindException:
		return true
	case KindConstant, KindFunction:
		return false
	}
	return false
}

// MemberKind classifies a class member.
type MemberKind string

const (
	MemberMethod   MemberKind = "method"
	MemberProperty MemberKind = "property"
	MemberConstant MemberKind = "classconst"
)

// Element is one documentable program entity: a class, interface, trait,
// exception, constant, or function. Elements are immutable once the snapshot
// is populated.
type Element struct {
	Name        string // fully-qualified name, no leading separator
	Kind        Kind
	Documented  bool // has a doc comment and passed inclusion filters
	Tokenized   bool // parsed from project source (false for built-ins)
	Main        bool // canonical definition, not a duplicate or alias
	Annotations map[string][]string
	Aliases     map[string]string // namespace aliases in scope at the declaration
	Class       *ClassInfo        // non-nil iff Kind.IsClassLike()
}

// ClassInfo carries the class-specific payload of an Element.
type ClassInfo struct {
	Parent     string // fully-qualified parent name, "" when none
	Interfaces []string
	Uses       []string // traits used
	Methods    map[string]*Member
	Properties map[string]*Member // keyed without the leading $
	Constants  map[string]*Member
}

// Member is a method, property, or class constant owned by its declaring
// class.
type Member struct {
	Name       string
	Kind       MemberKind
	Class      string // declaring class fully-qualified name
	Documented bool
}

// ShortName returns the name without its namespace prefix.
func (e *Element) ShortName() string {
	if pos := strings.LastIndex(e.Name, Separator); pos >= 0 {
		return e.Name[pos+len(Separator):]
	}
	return e.Name
}

// Namespace returns the namespace portion of the name, "" for the global
// namespace.
func (e *Element) Namespace() string {
	if pos := strings.LastIndex(e.Name, Separator); pos >= 0 {
		return e.Name[:pos]
	}
	return ""
}

// PseudoNamespace returns the namespace used for grouping: "PHP" for
// non-tokenized (built-in) elements and "None" for the global namespace.
func (e *Element) PseudoNamespace() string {
	if !e.Tokenized {
		return "PHP"
	}
	if ns := e.Namespace(); ns != "" {
		return ns
	}
	return "None"
}

// PseudoPackage returns the package used for grouping, derived from the
// package and subpackage annotations, with the same "PHP"/"None" fallbacks
// as PseudoNamespace.
func (e *Element) PseudoPackage() string {
	if !e.Tokenized {
		return "PHP"
	}
	pkg := e.annotationWord("package")
	if pkg == "" {
		return "None"
	}
	if sub := e.annotationWord("subpackage"); sub != "" {
		return pkg + Separator + sub
	}
	return pkg
}

// annotationWord returns the first whitespace-delimited word of the first
// value of the named annotation, "" when absent.
func (e *Element) annotationWord(name string) string {
	values := e.Annotations[name]
	if len(values) == 0 {
		return ""
	}
	fields := strings.Fields(values[0])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
