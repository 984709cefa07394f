package differ

import "strings"

// EditKind defines the type of an edit run.
type EditKind int

const (
	// Equal indicates tokens kept identical on both sides.
	Equal EditKind = iota
	// Delete indicates tokens present only in the original sequence.
	Delete
	// Insert indicates tokens present only in the corrected sequence.
	Insert
)

// String returns the lowercase name of the kind
func (k EditKind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// EditOp is a run of tokens sharing one edit kind. A holds the original-side tokens
// (Equal, Delete) and B the corrected-side tokens (Equal, Insert); the other side is nil.
type EditOp struct {
	Kind EditKind
	A    []string
	B    []string
}

// SideA concatenates the original-side tokens of a script
func SideA(script []EditOp) string {
	var b strings.Builder
	for _, op := range script {
		for _, tok := range op.A {
			b.WriteString(tok)
		}
	}
	return b.String()
}

// SideB concatenates the corrected-side tokens of a script
func SideB(script []EditOp) string {
	var b strings.Builder
	for _, op := range script {
		for _, tok := range op.B {
			b.WriteString(tok)
		}
	}
	return b.String()
}

// IsIdentity reports whether the script contains no Delete or Insert runs
func IsIdentity(script []EditOp) bool {
	for _, op := range script {
		if op.Kind != Equal {
			return false
		}
	}
	return true
}
