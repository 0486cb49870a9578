package schema

import "fmt"

// ChangeType classifies a Change.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeRemoved  ChangeType = "removed"
	ChangeModified ChangeType = "modified"
)

// Change is one difference between two definitions.
// Added and removed entries cover a whole subtree; Field is empty for them.
type Change struct {
	Path  string     `json:"path"`
	Type  ChangeType `json:"type"`
	Field string     `json:"field,omitempty"` // "kind", "value" or "label" for ChangeModified
	Old   any        `json:"old,omitempty"`
	New   any        `json:"new,omitempty"`
}

func (c Change) String() string {
	switch c.Type {
	case ChangeModified:
		return fmt.Sprintf("~ %s.%s: %v -> %v", c.Path, c.Field, c.Old, c.New)
	case ChangeAdded:
		return fmt.Sprintf("+ %s", c.Path)
	default:
		return fmt.Sprintf("- %s", c.Path)
	}
}

// Diff calculates the differences between old and new, walking both trees in
// parallel. Children are matched by position: an insertion in the middle shows up
// as modifications followed by an addition.
// It returns nil when the definitions describe the same tree.
func Diff(old, new Definition) []Change {
	var changes []Change
	diff(old, new, RootPath, &changes)
	return changes
}

func diff(old, new Definition, path string, changes *[]Change) {
	if ok, nk := old.ResolvedKind(), new.ResolvedKind(); ok != nk {
		*changes = append(*changes, Change{Path: path, Type: ChangeModified, Field: "kind", Old: ok, New: nk})
	}
	if old.Value != new.Value {
		*changes = append(*changes, Change{Path: path, Type: ChangeModified, Field: "value", Old: old.Value, New: new.Value})
	}
	if old.Label != new.Label {
		*changes = append(*changes, Change{Path: path, Type: ChangeModified, Field: "label", Old: old.Label, New: new.Label})
	}

	common := min(len(old.Children), len(new.Children))
	for i := 0; i < common; i++ {
		diff(old.Children[i], new.Children[i], childPath(path, i), changes)
	}
	for i := common; i < len(new.Children); i++ {
		*changes = append(*changes, Change{Path: childPath(path, i), Type: ChangeAdded, New: new.Children[i].Clone()})
	}
	for i := common; i < len(old.Children); i++ {
		*changes = append(*changes, Change{Path: childPath(path, i), Type: ChangeRemoved, Old: old.Children[i].Clone()})
	}
}

func childPath(path string, i int) string {
	return fmt.Sprintf("%s.children[%d]", path, i)
}
