// Package taskgraph keeps the relationships between tasks consistent: the
// derived parent/subtask view recomputed from the flat collection, and the
// dependency graph held as a single directed edge set so the forward and
// backward views can never drift apart.
package taskgraph

import "github.com/mlindqvist/focal/internal/domain"

// RebuildSubtasks returns a new collection in which every task's SubtaskIDs
// equals exactly the ids of tasks whose ParentTaskID points at it. The input
// is not mutated. O(n) and idempotent; the derived field is never
// authoritative, so running after every mutation is always safe.
func RebuildSubtasks(tasks []*domain.Task) []*domain.Task {
	children := make(map[string][]string, len(tasks))
	for _, t := range tasks {
		if t.ParentTaskID != nil {
			children[*t.ParentTaskID] = append(children[*t.ParentTaskID], t.ID)
		}
	}

	out := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		clone := *t
		clone.SubtaskIDs = children[t.ID]
		out[i] = &clone
	}
	return out
}

// Descendants returns every task transitively reachable from rootID via
// ParentTaskID chains, deepest first. This is the order a cascading delete
// must process before removing the root itself. The root is not included.
func Descendants(tasks []*domain.Task, rootID string) []*domain.Task {
	children := make(map[string][]*domain.Task, len(tasks))
	for _, t := range tasks {
		if t.ParentTaskID != nil {
			children[*t.ParentTaskID] = append(children[*t.ParentTaskID], t)
		}
	}

	var out []*domain.Task
	var walk func(id string)
	walk = func(id string) {
		for _, child := range children[id] {
			walk(child.ID)
			out = append(out, child)
		}
	}
	walk(rootID)
	return out
}
