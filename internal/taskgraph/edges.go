package taskgraph

import (
	"errors"
	"sort"

	"github.com/mlindqvist/focal/internal/domain"
)

var (
	// ErrSelfDependency is returned when a task is asked to depend on itself.
	ErrSelfDependency = errors.New("a task cannot depend on itself")

	// ErrDependencyCycle is returned when adding an edge would make the
	// dependency graph circular.
	ErrDependencyCycle = errors.New("dependency would create a cycle")
)

// Edge records that TaskID is blocked until DependsOnID completes.
type Edge struct {
	TaskID      string
	DependsOnID string
}

// EdgeSet is the authoritative dependency graph: one directed edge set from
// which both the dependsOn and dependedOnBy views are derived, so the two
// sides are mutual inverses by construction rather than by convention.
type EdgeSet struct {
	edges map[Edge]struct{}
}

// NewEdgeSet builds an EdgeSet from existing edges, skipping self-loops.
func NewEdgeSet(edges ...Edge) *EdgeSet {
	s := &EdgeSet{edges: make(map[Edge]struct{}, len(edges))}
	for _, e := range edges {
		if e.TaskID != e.DependsOnID {
			s.edges[e] = struct{}{}
		}
	}
	return s
}

// Add inserts a dependency edge. Fails with ErrSelfDependency when both ends
// are the same task, and with ErrDependencyCycle when dependsOnID already
// depends, transitively, on taskID.
func (s *EdgeSet) Add(taskID, dependsOnID string) error {
	if taskID == dependsOnID {
		return ErrSelfDependency
	}
	if s.dependsTransitively(dependsOnID, taskID) {
		return ErrDependencyCycle
	}
	s.edges[Edge{TaskID: taskID, DependsOnID: dependsOnID}] = struct{}{}
	return nil
}

// Remove deletes a dependency edge. Removing an absent edge is a no-op.
func (s *EdgeSet) Remove(taskID, dependsOnID string) {
	delete(s.edges, Edge{TaskID: taskID, DependsOnID: dependsOnID})
}

// Contains reports whether the exact edge exists.
func (s *EdgeSet) Contains(taskID, dependsOnID string) bool {
	_, ok := s.edges[Edge{TaskID: taskID, DependsOnID: dependsOnID}]
	return ok
}

// DependsOn returns the sorted ids the given task is blocked by.
func (s *EdgeSet) DependsOn(taskID string) []string {
	var out []string
	for e := range s.edges {
		if e.TaskID == taskID {
			out = append(out, e.DependsOnID)
		}
	}
	sort.Strings(out)
	return out
}

// DependedOnBy returns the sorted ids of tasks blocked by the given task.
func (s *EdgeSet) DependedOnBy(taskID string) []string {
	var out []string
	for e := range s.edges {
		if e.DependsOnID == taskID {
			out = append(out, e.TaskID)
		}
	}
	sort.Strings(out)
	return out
}

// Edges returns all edges in an unspecified order.
func (s *EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, len(s.edges))
	for e := range s.edges {
		out = append(out, e)
	}
	return out
}

// RemoveTask drops every edge touching the given task id, in either
// direction. Used when a task is deleted.
func (s *EdgeSet) RemoveTask(taskID string) {
	for e := range s.edges {
		if e.TaskID == taskID || e.DependsOnID == taskID {
			delete(s.edges, e)
		}
	}
}

// Apply hydrates the derived DependsOn/DependedOnBy views onto a collection.
// Returns new task values; the input is not mutated.
func (s *EdgeSet) Apply(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		clone := *t
		clone.DependsOn = s.DependsOn(t.ID)
		clone.DependedOnBy = s.DependedOnBy(t.ID)
		out[i] = &clone
	}
	return out
}

// CanComplete reports whether every task the given task depends on is
// completed. Advisory only: callers decide whether to block the action.
// Unknown dependency ids count as incomplete.
func (s *EdgeSet) CanComplete(taskID string, byID map[string]*domain.Task) bool {
	for _, depID := range s.DependsOn(taskID) {
		dep, ok := byID[depID]
		if !ok || !dep.Completed {
			return false
		}
	}
	return true
}

// dependsTransitively reports whether from depends, through any chain of
// edges, on target.
func (s *EdgeSet) dependsTransitively(from, target string) bool {
	seen := map[string]bool{}
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		for e := range s.edges {
			if e.TaskID == id {
				stack = append(stack, e.DependsOnID)
			}
		}
	}
	return false
}
