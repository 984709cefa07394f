// Package aligner maps original token indices to corrected token indices using an edit script.
package aligner

import "github.com/aleister1102/writealign/internal/differ"

// AlignmentMap relates the token sequences on both sides of an edit script.
type AlignmentMap struct {
	// EqualMap maps an original token index to the identical corrected token index.
	EqualMap map[int]int
	// InsertsBefore[i] lists corrected token indices inserted immediately before
	// original token i. Slot N collects insertions after the last original token.
	InsertsBefore [][]int
}

// Align walks the script with one cursor per side and records equal pairs and insertions.
func Align(script []differ.EditOp) AlignmentMap {
	n := 0
	for _, op := range script {
		n += len(op.A)
	}

	m := AlignmentMap{
		EqualMap:      make(map[int]int, n),
		InsertsBefore: make([][]int, n+1),
	}

	i, j := 0, 0
	for _, op := range script {
		switch op.Kind {
		case differ.Equal:
			for range op.A {
				m.EqualMap[i] = j
				i++
				j++
			}
		case differ.Delete:
			i += len(op.A)
		case differ.Insert:
			for range op.B {
				m.InsertsBefore[i] = append(m.InsertsBefore[i], j)
				j++
			}
		}
	}
	return m
}

// OriginalLen returns the number of original tokens covered by the map.
func (m AlignmentMap) OriginalLen() int {
	return len(m.InsertsBefore) - 1
}

// CorrectedIndices collects, in order, the corrected token indices that belong to the
// original token range [aStart, aEnd]: insertions before aStart, then for each original
// token its equal partner followed by the insertions after it.
func (m AlignmentMap) CorrectedIndices(aStart, aEnd int) []int {
	if aStart < 0 || aEnd < aStart || aEnd >= m.OriginalLen() {
		return nil
	}

	var out []int
	out = append(out, m.InsertsBefore[aStart]...)
	for ai := aStart; ai <= aEnd; ai++ {
		if bj, ok := m.EqualMap[ai]; ok {
			out = append(out, bj)
		}
		out = append(out, m.InsertsBefore[ai+1]...)
	}
	return out
}
