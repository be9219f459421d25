package arbor

import "github.com/jward/arbor/internal/model"

// Public type aliases for internal model types used in the Engine API.
// These are Go type aliases (=) — identical to the internal types at compile
// time. External consumers use these names; no conversion is needed.

type Snapshot = model.Snapshot
type Element = model.Element
type ClassInfo = model.ClassInfo
type Member = model.Member
type Kind = model.Kind
type MemberKind = model.MemberKind

const (
	KindClass     = model.KindClass
	KindInterface = model.KindInterface
	KindTrait     = model.KindTrait
	KindException = model.KindException
	KindConstant  = model.KindConstant
	KindFunction  = model.KindFunction

	MemberMethod   = model.MemberMethod
	MemberProperty = model.MemberProperty
	MemberConstant = model.MemberConstant

	Separator = model.Separator
)

// NewSnapshot returns an empty element snapshot.
func NewSnapshot() *Snapshot {
	return model.NewSnapshot()
}
