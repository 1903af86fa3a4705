// Package reconcile translates a change between two visible sequences into
// the incremental insert/remove script a rendering surface consumes, and
// maps visible rows back to canonical positions.
package reconcile

import (
	"ticklist/internal/model"
	"ticklist/internal/project"
)

type OpKind string

const (
	OpInsert OpKind = "insert"
	OpRemove OpKind = "remove"
)

type Op struct {
	Kind OpKind
	Pos  int
	ID   string
}

// Diff returns the edit script that turns the old visible sequence into the
// new one, keyed by task id. Applying the ops in order is valid against a
// live surface: removals come first at descending positions (so earlier
// removals do not shift later ones), then insertions at ascending final
// positions.
func Diff(oldSeq, newSeq []project.Entry) []Op {
	oldIDs := entryIDs(oldSeq)
	newIDs := entryIDs(newSeq)

	// Longest-common-subsequence table over ids.
	table := make([][]int, len(oldIDs)+1)
	for i := range table {
		table[i] = make([]int, len(newIDs)+1)
	}
	for i := 1; i <= len(oldIDs); i++ {
		for j := 1; j <= len(newIDs); j++ {
			if oldIDs[i-1] == newIDs[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	var removed, inserted []Op
	i, j := len(oldIDs), len(newIDs)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && oldIDs[i-1] == newIDs[j-1]:
			i--
			j--
		case j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]):
			j--
			inserted = append(inserted, Op{Kind: OpInsert, Pos: j, ID: newIDs[j]})
		default:
			i--
			removed = append(removed, Op{Kind: OpRemove, Pos: i, ID: oldIDs[i]})
		}
	}

	// Backtracking walked from the tail, so removals are already in
	// descending position order; insertions need reversing to ascend.
	out := make([]Op, 0, len(removed)+len(inserted))
	out = append(out, removed...)
	for k := len(inserted) - 1; k >= 0; k-- {
		out = append(out, inserted[k])
	}
	return out
}

// Apply replays an edit script over a sequence of ids. It exists so the
// script's contract is checkable without a rendering surface.
func Apply(ids []string, ops []Op) []string {
	out := append([]string(nil), ids...)
	for _, op := range ops {
		switch op.Kind {
		case OpRemove:
			if op.Pos < 0 || op.Pos >= len(out) {
				continue
			}
			out = append(out[:op.Pos], out[op.Pos+1:]...)
		case OpInsert:
			if op.Pos < 0 || op.Pos > len(out) {
				continue
			}
			out = append(out[:op.Pos], append([]string{op.ID}, out[op.Pos:]...)...)
		}
	}
	return out
}

// ResolveCanonical maps a visible row back to its canonical index.
func ResolveCanonical(entries []project.Entry, visiblePos int) (int, bool) {
	if visiblePos < 0 || visiblePos >= len(entries) {
		return 0, false
	}
	return entries[visiblePos].CanonicalIndex, true
}

// FindByID locates a task in the canonical collection by its stable id,
// for callers holding a possibly stale snapshot.
func FindByID(tasks []model.Task, id string) (int, bool) {
	for i, t := range tasks {
		if t.ID == id {
			return i, true
		}
	}
	return 0, false
}

func entryIDs(entries []project.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Task.ID
	}
	return out
}
