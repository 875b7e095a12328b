package services

import (
	"github.com/aksara-labs/lexitree-cli/internal/core/domain"
)

// ResolveOrder computes the execution order for a run: every extension
// is placed after all of its declared dependencies that are present in
// the input. Ties break by original input position, so the same input
// always yields the same order.
//
// A declared dependency absent from the input is treated as satisfied;
// the registry cannot be assumed here, and run-time field checks report
// the gap if it matters. Duplicate ids and dependency cycles (including
// an extension depending on itself) fail resolution; nothing runs.
func ResolveOrder(exts []domain.Extension) ([]domain.Extension, error) {
	if len(exts) == 0 {
		return nil, nil
	}

	// 1. INDEX BY ID, REJECT DUPLICATES
	position := make(map[string]int, len(exts))
	for i, ext := range exts {
		id := ext.Info().ID
		if _, seen := position[id]; seen {
			return nil, &domain.DuplicateExtensionError{ID: id}
		}
		position[id] = i
	}

	// 2. KEEP ONLY DEPENDENCIES PRESENT IN THE INPUT
	deps := make([][]int, len(exts))
	for i, ext := range exts {
		seen := make(map[int]bool)
		for _, depID := range ext.Info().Dependencies {
			j, present := position[depID]
			if !present || seen[j] {
				continue
			}
			seen[j] = true
			deps[i] = append(deps[i], j)
		}
	}

	// 3. REPEATEDLY PLACE THE FIRST READY EXTENSION
	placed := make([]bool, len(exts))
	ordered := make([]domain.Extension, 0, len(exts))
	for len(ordered) < len(exts) {
		next := -1
		for i := range exts {
			if placed[i] {
				continue
			}
			if ready(deps[i], placed) {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, &domain.DependencyCycleError{IDs: cycleMembers(exts, deps, placed)}
		}
		placed[next] = true
		ordered = append(ordered, exts[next])
	}

	return ordered, nil
}

// ready reports whether every dependency of a node has been placed.
func ready(deps []int, placed []bool) bool {
	for _, j := range deps {
		if !placed[j] {
			return false
		}
	}
	return true
}

// cycleMembers narrows the stuck set down to the extensions actually on
// a cycle: nodes merely blocked downstream of the cycle are trimmed by
// repeatedly dropping stuck nodes that no other stuck node depends on.
func cycleMembers(exts []domain.Extension, deps [][]int, placed []bool) []string {
	stuck := make(map[int]bool)
	for i := range exts {
		if !placed[i] {
			stuck[i] = true
		}
	}

	for {
		trimmed := false
		for i := range exts {
			if !stuck[i] {
				continue
			}
			if stuckDependents(i, deps, stuck) == 0 {
				delete(stuck, i)
				trimmed = true
			}
		}
		if !trimmed {
			break
		}
	}

	var ids []string
	for i := range exts {
		if stuck[i] {
			ids = append(ids, exts[i].Info().ID)
		}
	}
	return ids
}

// stuckDependents counts stuck nodes depending on node i.
func stuckDependents(i int, deps [][]int, stuck map[int]bool) int {
	count := 0
	for j, jdeps := range deps {
		if !stuck[j] {
			continue
		}
		for _, d := range jdeps {
			if d == i {
				count++
				break
			}
		}
	}
	return count
}
