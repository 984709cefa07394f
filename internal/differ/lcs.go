package differ

import (
	"errors"
	"fmt"
)

// ErrInputTooLarge is returned when the token count exceeds the configured admission limit.
var ErrInputTooLarge = errors.New("input too large for token diff")

// Diff computes an edit script turning a into b from a longest-common-subsequence table.
// When dropping a[i] and skipping b[j] keep the same LCS length, the delete is taken first;
// callers rely on this to decide which original token receives inserted content.
// Runs time and space O(len(a)*len(b)).
func Diff(a, b []string) []EditOp {
	n, m := len(a), len(b)
	table := lcsTable(a, b)
	w := m + 1

	sb := newScriptBuilder(a, b)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			sb.step(Equal, i, j)
			i++
			j++
		case table[(i+1)*w+j] >= table[i*w+j+1]:
			sb.step(Delete, i, j)
			i++
		default:
			sb.step(Insert, i, j)
			j++
		}
	}
	for ; i < n; i++ {
		sb.step(Delete, i, j)
	}
	for ; j < m; j++ {
		sb.step(Insert, i, j)
	}
	return sb.finish(i, j)
}

// DiffBounded runs Diff unless len(a)+len(b) exceeds maxTokens. A maxTokens of zero or
// less disables the check.
func DiffBounded(a, b []string, maxTokens int) ([]EditOp, error) {
	if maxTokens > 0 && len(a)+len(b) > maxTokens {
		return nil, fmt.Errorf("%w: %d tokens exceeds limit of %d", ErrInputTooLarge, len(a)+len(b), maxTokens)
	}
	return Diff(a, b), nil
}

// lcsTable returns dp flattened row-major, where dp[i][j] is the LCS length of a[i:] and b[j:].
func lcsTable(a, b []string) []int32 {
	n, m := len(a), len(b)
	w := m + 1
	table := make([]int32, (n+1)*w)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i*w+j] = table[(i+1)*w+j+1] + 1
			} else {
				table[i*w+j] = max(table[(i+1)*w+j], table[i*w+j+1])
			}
		}
	}
	return table
}

// scriptBuilder coalesces single-token steps into runs. Each finished run holds
// capacity-capped subslices of the inputs so later appends cannot alias them.
type scriptBuilder struct {
	a, b   []string
	ops    []EditOp
	open   bool
	kind   EditKind
	starti int
	startj int
}

func newScriptBuilder(a, b []string) *scriptBuilder {
	return &scriptBuilder{a: a, b: b}
}

// step records one token move of kind k taken at cursor (i, j)
func (sb *scriptBuilder) step(k EditKind, i, j int) {
	if sb.open && sb.kind == k {
		return
	}
	sb.close(i, j)
	sb.open = true
	sb.kind = k
	sb.starti = i
	sb.startj = j
}

// close ends the current run at cursor (i, j)
func (sb *scriptBuilder) close(i, j int) {
	if !sb.open {
		return
	}
	op := EditOp{Kind: sb.kind}
	if i > sb.starti {
		op.A = sb.a[sb.starti:i:i]
	}
	if j > sb.startj {
		op.B = sb.b[sb.startj:j:j]
	}
	sb.ops = append(sb.ops, op)
	sb.open = false
}

func (sb *scriptBuilder) finish(i, j int) []EditOp {
	sb.close(i, j)
	return sb.ops
}
